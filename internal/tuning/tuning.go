package tuning

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/shiftcore/assign/internal/core"
	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/preference"
	"github.com/shiftcore/assign/internal/solver"
	"github.com/shiftcore/assign/internal/telemetry"
)

// TypeSweep is the Asynq task type for one scoring-parameter candidate
// trial.
const TypeSweep = "tuning:sweep"

// SweepPayload is one trial of a parameter sweep: the full input plus a
// candidate ScoringParameters to solve it with. TrialID is caller-assigned
// and only used for log/metric correlation.
type SweepPayload struct {
	TrialID   string                   `json:"trial_id"`
	Input     entity.Input             `json:"input"`
	Candidate entity.ScoringParameters `json:"candidate"`
	Options   solver.Options           `json:"options"`
}

// Scheduler enqueues sweep trials onto Redis for Worker processes to pick
// up.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler dials redisAddr and verifies the connection.
func NewScheduler(redisAddr string) (*Scheduler, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	if err := client.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Scheduler{client: client}, nil
}

// EnqueueSweep schedules one candidate trial. Sweeps run once each; a
// failed solve is not worth retrying against the same candidate.
func (s *Scheduler) EnqueueSweep(ctx context.Context, payload SweepPayload) (*asynq.TaskInfo, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal sweep payload: %w", err)
	}

	task := asynq.NewTask(TypeSweep, body)
	info, err := s.client.EnqueueContext(ctx, task, asynq.MaxRetry(0), asynq.Timeout(2*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("enqueue sweep job: %w", err)
	}
	return info, nil
}

// Close releases the scheduler's Redis connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

// TrialResult is what a sweep trial produces for the caller watching the
// sweep, published only via logging/metrics since a run has no persistence
// layer of its own.
type TrialResult struct {
	TrialID string
	Status  solver.Status
	Loss    Loss
}

// Worker runs sweep trials: one core.SolveWithOptions call per candidate,
// scored by ComputeLoss.
type Worker struct {
	logger  *zap.SugaredLogger
	metrics *telemetry.Metrics
}

// NewWorker builds a sweep worker. Either argument may be nil.
func NewWorker(logger *zap.SugaredLogger, metrics *telemetry.Metrics) *Worker {
	return &Worker{logger: logger, metrics: metrics}
}

// RegisterHandlers wires HandleSweep onto mux under TypeSweep.
func (w *Worker) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeSweep, w.HandleSweep)
}

// HandleSweep runs one trial: solve the candidate's input under its
// ScoringParameters, then score the result with ComputeLoss. A solver
// failure is logged and swallowed rather than retried, since the sweep
// moves on to the next candidate regardless.
func (w *Worker) HandleSweep(ctx context.Context, t *asynq.Task) error {
	var payload SweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal sweep payload: %w", asynq.SkipRetry)
	}

	payload.Input.Scoring = payload.Candidate

	start := time.Now()
	result, err := core.SolveWithOptions(ctx, payload.Input, payload.Options)
	duration := time.Since(start)

	if err != nil {
		if w.logger != nil {
			telemetry.LogError(w.logger, ctx, err, map[string]interface{}{"trial_id": payload.TrialID})
		}
		return nil
	}

	idx := preference.Build(payload.Input.Preferences)
	loss := ComputeLoss(payload.Input, idx, result.Solver.Assignment)

	if w.logger != nil {
		w.logger.Infow("tuning trial completed",
			"trial_id", payload.TrialID,
			"status", string(result.Solver.Status),
			"loss_total", loss.Total(),
			"non_specialty", loss.NonSpecialtyAssignments,
			"non_volunteer_night", loss.NonVolunteerNightAssigned,
			"preference_unrespected", loss.ShiftPreferenceUnrespected,
			"duration_ms", duration.Milliseconds(),
		)
	}
	if w.metrics != nil {
		w.metrics.RecordSolve(string(result.Solver.Status), duration.Seconds(), result.Solver.ObjectiveValue)
	}

	return nil
}
