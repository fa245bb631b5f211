// Package core wires the entity registry, preference index, scoring
// engine, CP model builder, solver driver and result summarizer into the
// single entry point a loader or external tuner calls: Solve.
package core

import (
	"context"
	"fmt"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/model"
	"github.com/shiftcore/assign/internal/preference"
	"github.com/shiftcore/assign/internal/registry"
	"github.com/shiftcore/assign/internal/scoring"
	"github.com/shiftcore/assign/internal/solver"
	"github.com/shiftcore/assign/internal/summary"
	"github.com/shiftcore/assign/internal/validation"
)

// Result bundles everything one Solve call produces: the raw solver
// outcome, the result-summarizer statistics, and the validation messages
// (always present, even when empty) observed while interning input.
type Result struct {
	Solver     *solver.Result
	Stats      summary.Statistics
	Validation *validation.Result
}

// Solve runs one planning horizon through the full core pipeline with the
// default, deterministic solver options.
func Solve(ctx context.Context, input entity.Input) (*Result, error) {
	return SolveWithOptions(ctx, input, solver.DefaultOptions())
}

// SolveWithOptions is Solve with caller-controlled solver options — the
// seam internal/tuning uses to sweep ScoringParameters without touching
// determinism settings.
func SolveWithOptions(ctx context.Context, input entity.Input, opts solver.Options) (*Result, error) {
	regs, err := registry.Build(input)
	if err != nil {
		return nil, err
	}

	v := regs.Validate(input)
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, v.Summary())
	}

	idx := preference.Build(input.Preferences)
	tables := scoring.Compute(input, idx)
	built := model.Build(input, tables)

	solved, err := solver.Solve(ctx, input, built, tables, opts)
	if err != nil {
		return nil, err
	}

	stats := summary.Summarize(input, idx, solved)

	return &Result{Solver: solved, Stats: stats, Validation: v}, nil
}
