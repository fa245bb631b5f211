package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult_StartsEmptyAndValid(t *testing.T) {
	result := NewResult()

	assert.Empty(t, result.Messages)
	assert.True(t, result.IsValid())
}

func TestAddError_FailsIsValid(t *testing.T) {
	result := NewResult()

	result.AddError(CodeInvalidReference, "demand references unknown post 9")

	assert.Len(t, result.Messages, 1)
	assert.False(t, result.IsValid())
	assert.Equal(t, 1, result.ErrorCount())
}

func TestAddWarning_DoesNotFailIsValid(t *testing.T) {
	result := NewResult()

	result.AddWarning(CodeEmptyPreference, "specialist list for post 3 is empty")

	assert.Len(t, result.Messages, 1)
	assert.True(t, result.IsValid())
	assert.Equal(t, 1, result.WarningCount())
}

func TestAddErrorWithContext_PreservesContext(t *testing.T) {
	result := NewResult()

	result.AddErrorWithContext(CodeNegativeDemand, "demand for post 10 shift 1 is negative", map[string]interface{}{
		"post": 10, "shift": 1,
	})

	msg := result.Messages[0]
	assert.Equal(t, 10, msg.Context["post"])
}

func TestChaining_AccumulatesInOrder(t *testing.T) {
	result := NewResult().
		AddError(CodeInvalidReference, "error 1").
		AddWarning(CodeEmptyPreference, "warning 1")

	assert.Len(t, result.Messages, 2)
	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, 1, result.WarningCount())
}

func TestSummary_ListsErrorsAndCounts(t *testing.T) {
	result := NewResult().
		AddError(CodeInvalidReference, "unknown post 9").
		AddWarning(CodeEmptyPreference, "empty specialist list for post 3")

	summary := result.Summary()

	assert.Contains(t, summary, "1 errors")
	assert.Contains(t, summary, "1 warnings")
	assert.Contains(t, summary, "unknown post 9")
}

func TestSummary_CleanResultReportsNoErrors(t *testing.T) {
	result := NewResult()

	assert.Equal(t, "validation passed: no errors", result.Summary())
}
