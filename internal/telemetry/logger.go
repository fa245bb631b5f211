// Package telemetry wires logging and metrics around a planning run: a
// zap logger configured the same way across every entrypoint, and
// Prometheus counters/histograms describing what the solver did.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shiftcore/assign/internal/solver"
)

type contextKey string

const runIDKey contextKey = "run-id"

// NewLogger builds a SugaredLogger for env ("development"/"dev" or
// anything else, treated as production). If env is empty it reads
// APP_ENV.
func NewLogger(env string) (*zap.SugaredLogger, error) {
	if env == "" {
		env = os.Getenv("APP_ENV")
	}

	var config zap.Config
	switch env {
	case "development", "dev":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// WithRunID tags ctx with a planning-run correlation id for log/metric
// attribution across the solve.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// ExtractRunID returns the run id tagged onto ctx, or "".
func ExtractRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// LogSolve logs the outcome of one core.Solve call.
func LogSolve(logger *zap.SugaredLogger, ctx context.Context, result *solver.Result, durationMS int64) {
	logger.Infow("solve completed",
		"run_id", ExtractRunID(ctx),
		"status", string(result.Status),
		"objective", result.ObjectiveValue,
		"assigned", len(result.Assignment),
		"duration_ms", durationMS,
	)
}

// LogError logs a failed solve with contextual metadata.
func LogError(logger *zap.SugaredLogger, ctx context.Context, err error, extra map[string]interface{}) {
	fields := []interface{}{"run_id", ExtractRunID(ctx), "error", err}
	for k, v := range extra {
		fields = append(fields, k, v)
	}
	logger.Errorw("solve failed", fields...)
}
