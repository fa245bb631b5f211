package telemetry_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftcore/assign/internal/telemetry"
)

func TestNewLogger_DefaultsToProduction(t *testing.T) {
	logger, err := telemetry.NewLogger("prod")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestRunID_RoundTrip(t *testing.T) {
	ctx := telemetry.WithRunID(context.Background(), "run-123")
	assert.Equal(t, "run-123", telemetry.ExtractRunID(ctx))
}

func TestExtractRunID_EmptyWhenUntagged(t *testing.T) {
	assert.Equal(t, "", telemetry.ExtractRunID(context.Background()))
}

func TestNewMetrics_RecordSolveDoesNotPanic(t *testing.T) {
	m := telemetry.NewMetricsWithRegistry(prometheus.NewRegistry())
	assert.NotPanics(t, func() {
		m.RecordSolve("optimal", 0.5, 150)
	})
}
