package core

import "errors"

// ErrValidationFailed wraps the summary of a validation.Result returned by
// registry.Validate that holds errors (warnings alone do not trigger it):
// one or more InvalidReference/negative-demand problems
// were found before a model was ever built.
var ErrValidationFailed = errors.New("input validation failed")
