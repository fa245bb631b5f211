// Command solverapi exposes the planning core over HTTP: POST /api/solve
// runs one planning horizon to completion and returns its assignment and
// coverage statistics, and /metrics serves Prometheus series for it.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/shiftcore/assign/internal/api"
	"github.com/shiftcore/assign/internal/core"
	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/solver"
	"github.com/shiftcore/assign/internal/telemetry"
)

func main() {
	logger, err := telemetry.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	metrics := telemetry.NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.New(map[string]string{"status": "ok"}))
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.POST("/api/solve", solveHandler(logger, metrics))

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	go func() {
		logger.Infow("solverapi starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server stopped unexpectedly", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("server shutdown error", "error", err)
	}
}

// solveRequest is the JSON body POST /api/solve accepts: a full
// entity.Input plus an optional solver time budget override.
type solveRequest struct {
	entity.Input
	MaxTimeSeconds float64 `json:"max_time_seconds,omitempty"`
}

func solveHandler(logger *zap.SugaredLogger, metrics *telemetry.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req solveRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.New("").WithError("MALFORMED_REQUEST", err.Error()))
		}

		runID := uuid.New().String()
		ctx := telemetry.WithRunID(c.Request().Context(), runID)

		opts := solver.DefaultOptions()
		if req.MaxTimeSeconds > 0 {
			opts.MaxTimeSeconds = req.MaxTimeSeconds
		}

		start := time.Now()
		result, err := core.SolveWithOptions(ctx, req.Input, opts)
		duration := time.Since(start)

		if err != nil {
			if errors.Is(err, core.ErrValidationFailed) {
				return c.JSON(http.StatusUnprocessableEntity, api.New("").WithError("VALIDATION_FAILED", err.Error()))
			}
			logger.Errorw("solve failed", "run_id", runID, "error", err)
			return c.JSON(http.StatusInternalServerError, api.New("").WithError("SOLVER_FAILURE", err.Error()))
		}

		metrics.RecordSolve(string(result.Solver.Status), duration.Seconds(), result.Solver.ObjectiveValue)
		telemetry.LogSolve(logger, ctx, result.Solver, duration.Milliseconds())

		resp := api.New(map[string]interface{}{
			"status":     result.Solver.Status,
			"assignment": result.Solver.Assignment,
			"objective":  result.Solver.ObjectiveValue,
			"statistics": result.Stats,
		}).WithValidation(result.Validation)

		return c.JSON(http.StatusOK, resp)
	}
}
