// Package solver configures and invokes the CP-SAT engine (spec.md §4.5):
// fixed seed and branching for determinism, status mapping to the core's
// three-value result, and extraction of the assignment plus the derived
// statistics the result summarizer needs.
package solver

import (
	"context"
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/google/or-tools/ortools/sat/go/sat"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/model"
	"github.com/shiftcore/assign/internal/scoring"
)

// Status is the three-value solver outcome of spec.md §4.5.
type Status string

const (
	StatusOptimal Status = "optimal"
	StatusFeasible Status = "feasible"
	StatusNone    Status = "none"
)

// Assignment is one accepted (worker, post, shift) triple.
type Assignment struct {
	Worker entity.WorkerID
	Post   entity.PostID
	Shift  entity.ShiftID
}

// Result is everything the result summarizer and reporter need out of one
// solve: the assignment, its status, and the derived statistics of §4.5.
type Result struct {
	Status     Status
	Assignment []Assignment

	ObjectiveValue int64
	WallTime       float64
	Conflicts      int64
	Branches       int64

	DoubledWorkers map[entity.WorkerID]bool

	SpecialtyAssignmentsTotal   int
	TypePreferenceRespected     map[entity.ShiftType]int
	LastAssignedCodePerSpecialty map[entity.PostID]string
	LastAssignedCodePerShiftType  map[entity.ShiftType]string
	LastDoubleCode                string
}

// Options configures the determinism policy of one solve.
type Options struct {
	RandomSeed      int32
	NumSearchWorkers int32
	MaxTimeSeconds   float64
}

// DefaultOptions fixes a deterministic single-worker search, per spec.md
// §4.5's fallback: if the engine cannot guarantee determinism under a
// configured seed at higher worker counts, use one worker.
func DefaultOptions() Options {
	return Options{RandomSeed: 1, NumSearchWorkers: 1, MaxTimeSeconds: 30}
}

// Solve builds the parameterized CP-SAT request from built, invokes the
// engine, and extracts the result. ctx is honored only as a cancellation
// signal before the call begins — the engine's own time bound is the sole
// suspension point during the call itself (spec.md §5).
func Solve(ctx context.Context, input entity.Input, built *model.Built, tables scoring.Tables, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cpModel, err := built.Builder.Model()
	if err != nil {
		return nil, fmt.Errorf("instantiate cp model: %w", err)
	}

	params := &sat.SatParameters{
		RandomSeed:       &opts.RandomSeed,
		NumSearchWorkers: &opts.NumSearchWorkers,
	}
	if opts.MaxTimeSeconds > 0 {
		params.MaxTimeInSeconds = &opts.MaxTimeSeconds
	}

	response, err := cpmodel.SolveCpModelWithParameters(cpModel, params)
	if err != nil {
		return nil, fmt.Errorf("solve cp model: %w", err)
	}

	status := mapStatus(response.GetStatus())
	result := &Result{
		Status:                        status,
		WallTime:                      response.GetWallTime(),
		Conflicts:                     response.GetNumConflicts(),
		Branches:                      response.GetNumBranches(),
		DoubledWorkers:                make(map[entity.WorkerID]bool),
		TypePreferenceRespected:       make(map[entity.ShiftType]int),
		LastAssignedCodePerSpecialty:  make(map[entity.PostID]string),
		LastAssignedCodePerShiftType:  make(map[entity.ShiftType]string),
	}

	if status == StatusNone {
		return result, nil
	}

	result.ObjectiveValue = int64(response.GetObjectiveValue())

	codeByWorker := make(map[entity.WorkerID]string, len(input.Workers))
	for _, w := range input.Workers {
		codeByWorker[w.ID] = w.Code
	}
	shiftByID := make(map[entity.ShiftID]entity.Shift, len(input.Shifts))
	for _, s := range input.Shifts {
		shiftByID[s.ID] = s
	}
	prefersType := make(map[entity.ShiftType]map[entity.WorkerID]bool, len(input.Preferences.ShiftPreference))
	for t, workers := range input.Preferences.ShiftPreference {
		prefersType[t] = make(map[entity.WorkerID]bool, len(workers))
		for _, w := range workers {
			prefersType[t][w] = true
		}
	}

	for _, w := range input.Workers {
		for _, p := range input.Posts {
			for _, s := range input.Shifts {
				tuple := scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}
				x, ok := built.Vars.Assign[tuple]
				if !ok || !cpmodel.SolutionBooleanValue(response, x) {
					continue
				}
				result.Assignment = append(result.Assignment, Assignment{Worker: w.ID, Post: p.ID, Shift: s.ID})

				if w.IsSpecialist(p.ID) {
					result.SpecialtyAssignmentsTotal++
					bumpCode(result.LastAssignedCodePerSpecialty, p.ID, w.Code)
				}
				if shift := shiftByID[s.ID]; shift.PreferenceBearing() && prefersType[shift.Type][w.ID] {
					result.TypePreferenceRespected[shift.Type]++
					bumpCode(result.LastAssignedCodePerShiftType, shift.Type, w.Code)
				}
			}
		}
	}

	for _, w := range input.Preferences.DoubleVolunteers {
		doubled, ok := built.Vars.Doubled[w]
		if !ok || !cpmodel.SolutionBooleanValue(response, doubled) {
			continue
		}
		result.DoubledWorkers[w] = true
		if code := codeByWorker[w]; code > result.LastDoubleCode {
			result.LastDoubleCode = code
		}
	}

	return result, nil
}

func bumpCode[K comparable](m map[K]string, key K, code string) {
	if code > m[key] {
		m[key] = code
	}
}

func mapStatus(s cpmodel.CpSolverStatus) Status {
	switch s {
	case cpmodel.CpSolverStatus_OPTIMAL:
		return StatusOptimal
	case cpmodel.CpSolverStatus_FEASIBLE:
		return StatusFeasible
	default:
		return StatusNone
	}
}
