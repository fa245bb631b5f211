// Package api defines the generic JSON response envelope solverapi's HTTP
// surface returns.
package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/shiftcore/assign/internal/validation"
)

// Response is a generic response envelope combining data, validation
// messages, an error, and metadata. T is the payload type (e.g. a solve
// result or a reporter artifact reference).
type Response[T any] struct {
	Data       T                  `json:"data"`
	Validation *validation.Result `json:"validation,omitempty"`
	Error      *ErrorDetail       `json:"error,omitempty"`
	Meta       *Meta              `json:"meta"`
}

// ErrorDetail carries a machine-readable code alongside a human message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Meta carries response-level metadata independent of the payload.
type Meta struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
	Version    string    `json:"version"`
	ServerTime int64     `json:"server_time"`
}

// New builds a successful Response around data, with a fresh request id and
// an empty validation result.
func New[T any](data T) *Response[T] {
	now := time.Now()
	return &Response[T]{
		Data:       data,
		Validation: validation.NewResult(),
		Meta: &Meta{
			Timestamp:  now,
			RequestID:  uuid.New().String(),
			Version:    "1.0",
			ServerTime: now.Unix(),
		},
	}
}

// WithValidation attaches a validation.Result gathered while building the
// run (so warnings surface even on an otherwise successful response).
func (r *Response[T]) WithValidation(v *validation.Result) *Response[T] {
	r.Validation = v
	return r
}

// WithError sets a hard error (validation failure, solver failure,
// malformed request) that never produced a usable payload.
func (r *Response[T]) WithError(code, message string) *Response[T] {
	r.Error = &ErrorDetail{Code: code, Message: message, Details: make(map[string]interface{})}
	return r
}

// WithErrorDetails adds contextual details to the error.
func (r *Response[T]) WithErrorDetails(details map[string]interface{}) *Response[T] {
	if r.Error == nil {
		r.Error = &ErrorDetail{Details: make(map[string]interface{})}
	}
	r.Error.Details = details
	return r
}

// IsSuccess reports whether the response carries no hard error and no
// validation errors (warnings do not count against success).
func (r *Response[T]) IsSuccess() bool {
	if r.Error != nil {
		return false
	}
	if r.Validation != nil && !r.Validation.IsValid() {
		return false
	}
	return true
}

// MarshalJSON marshals r through a local alias type, which has no
// MarshalJSON method, so encoding does not recurse back into this one.
func (r *Response[T]) MarshalJSON() ([]byte, error) {
	type alias Response[T]
	return json.Marshal((*alias)(r))
}
