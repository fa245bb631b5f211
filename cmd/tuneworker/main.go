// Command tuneworker runs an Asynq server that processes scoring-parameter
// sweep trials enqueued by internal/tuning.Scheduler.
package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"

	"github.com/shiftcore/assign/internal/telemetry"
	"github.com/shiftcore/assign/internal/tuning"
)

func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	logger, err := telemetry.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	metrics := telemetry.NewMetrics()
	worker := tuning.NewWorker(logger, metrics)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux)

	logger.Infow("tuning worker starting", "redis_addr", redisAddr)
	if err := srv.Run(mux); err != nil {
		logger.Fatalw("tuning worker stopped", "error", err)
	}
}
