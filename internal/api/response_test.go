package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftcore/assign/internal/validation"
)

func TestNew_MarshalsDataAndMeta(t *testing.T) {
	resp := New(map[string]interface{}{"objective": 42})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var unmarshaled map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &unmarshaled))

	assert.NotNil(t, unmarshaled["data"])
	assert.NotNil(t, unmarshaled["meta"])
	assert.NotNil(t, unmarshaled["validation"])
	assert.NotContains(t, string(body), `"error":null`)
}

func TestWithError_SetsErrorAndFailsIsSuccess(t *testing.T) {
	resp := New("").WithError("SOLVER_FAILURE", "solver returned no feasible assignment")

	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "SOLVER_FAILURE", resp.Error.Code)
}

func TestWithValidation_ErrorsFailIsSuccess(t *testing.T) {
	v := validation.NewResult()
	v.AddError(validation.CodeInvalidReference, "post 9 does not exist")

	resp := New("").WithValidation(v)

	assert.False(t, resp.IsSuccess())
}

func TestWithValidation_WarningsDoNotFailIsSuccess(t *testing.T) {
	v := validation.NewResult()
	v.AddWarning(validation.CodeEmptyPreference, "specialist list for post 3 is empty")

	resp := New("data").WithValidation(v)

	assert.True(t, resp.IsSuccess())
}

func TestMeta_RequestIDIsUUID(t *testing.T) {
	resp := New("data")
	assert.Equal(t, 36, len(resp.Meta.RequestID))
}

func TestRoundtrip_PreservesTypedPayload(t *testing.T) {
	type solveSummary struct {
		Objective int64 `json:"objective"`
	}
	resp := New(solveSummary{Objective: 150})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var unmarshaled Response[solveSummary]
	require.NoError(t, json.Unmarshal(body, &unmarshaled))

	assert.Equal(t, int64(150), unmarshaled.Data.Objective)
}

func TestWithErrorDetails_WithoutPriorError(t *testing.T) {
	resp := New("data").WithErrorDetails(map[string]interface{}{"field": "demand"})

	require.NotNil(t, resp.Error)
	assert.Equal(t, "demand", resp.Error.Details["field"])
}
