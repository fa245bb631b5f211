// Package model builds the CP-SAT model of spec.md §4.4 over the scoring
// engine's coefficient tables: decision variables, the five hard
// constraints, and the linear objective. Variable and constraint creation
// always walks ordered input sequences (never a map) so that two builds
// from identical input produce byte-identical models, per spec.md §5.
package model

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/scoring"
)

// Variables indexes the decision variables this build created, for the
// solver driver to extract values from after solving.
type Variables struct {
	Assign  map[scoring.Tuple]cpmodel.BoolVar
	Doubled map[entity.WorkerID]cpmodel.BoolVar
}

// Built is a CP-SAT model together with the variable index needed to read
// a solution back out of it.
type Built struct {
	Builder *cpmodel.CpModelBuilder
	Vars    Variables
}

// Build constructs the CP-SAT model for one planning run.
func Build(input entity.Input, tables scoring.Tables) *Built {
	b := cpmodel.NewCpModelBuilder()
	vars := Variables{
		Assign:  make(map[scoring.Tuple]cpmodel.BoolVar, len(tables.CoefAssign)),
		Doubled: make(map[entity.WorkerID]cpmodel.BoolVar, len(input.Preferences.DoubleVolunteers)),
	}

	shiftByID := make(map[entity.ShiftID]entity.Shift, len(input.Shifts))
	for _, s := range input.Shifts {
		shiftByID[s.ID] = s
	}

	// Decision variables x(w,p,s), created only for candidate tuples, in
	// worker/post/shift input order.
	for _, w := range input.Workers {
		for _, p := range input.Posts {
			for _, s := range input.Shifts {
				tuple := scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}
				if _, candidate := tables.CoefAssign[tuple]; !candidate {
					continue
				}
				vars.Assign[tuple] = b.NewBoolVar()
			}
		}
	}

	doubleVolunteers := make(map[entity.WorkerID]bool, len(input.Preferences.DoubleVolunteers))
	for _, w := range input.Preferences.DoubleVolunteers {
		doubleVolunteers[w] = true
		vars.Doubled[w] = b.NewBoolVar()
	}

	// Constraint 1: demand coverage, equality, per (post, shift). Posted
	// for every (post, shift) pair, not only ones with a Demand entry —
	// an absent entry means demand 0, and still needs its equality or the
	// objective is free to fill an undemanded slot.
	for _, p := range input.Posts {
		for _, s := range input.Shifts {
			demand := input.Demand[entity.DemandKey{Post: p.ID, Shift: s.ID}]
			sum := cpmodel.NewLinearExpr()
			for _, w := range input.Workers {
				if x, ok := vars.Assign[scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}]; ok {
					sum.Add(x)
				}
			}
			b.AddEquality(sum, cpmodel.NewConstant(int64(demand)))
		}
	}

	// Constraint 2: at most one post per (worker, shift), for
	// double-volunteers only — implied for everyone else by constraint 3.
	for _, w := range input.Workers {
		if !doubleVolunteers[w.ID] {
			continue
		}
		for _, s := range input.Shifts {
			var postVars []cpmodel.BoolVar
			for _, p := range input.Posts {
				if x, ok := vars.Assign[scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}]; ok {
					postVars = append(postVars, x)
				}
			}
			if len(postVars) > 1 {
				b.AddAtMostOne(postVars...)
			}
		}
	}

	// Constraint 3: total shifts per worker bounded by double-volunteer
	// status.
	shiftsWorked := make(map[entity.WorkerID]*cpmodel.LinearExpr, len(input.Workers))
	for _, w := range input.Workers {
		sum := cpmodel.NewLinearExpr()
		for _, p := range input.Posts {
			for _, s := range input.Shifts {
				if x, ok := vars.Assign[scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}]; ok {
					sum.Add(x)
				}
			}
		}
		shiftsWorked[w.ID] = sum

		bound := int64(1)
		if doubleVolunteers[w.ID] {
			bound = 2
		}
		b.AddLessOrEqual(sum, cpmodel.NewConstant(bound))
	}

	// Constraint 4: doubling indicator. shiftsWorked is bounded above by 2
	// (constraint 3), so "!= 2" on that domain is equivalent to "<= 1".
	for _, w := range input.Preferences.DoubleVolunteers {
		sum := shiftsWorked[w]
		doubled := vars.Doubled[w]
		b.AddEquality(sum, cpmodel.NewConstant(2)).OnlyEnforceIf(doubled)
		b.AddLessOrEqual(sum, cpmodel.NewConstant(1)).OnlyEnforceIf(doubled.Not())
	}

	// Constraint 5: no doubling across non-doublable shifts. At the
	// implemented site this pins any double to {MORNING, AFTERNOON}.
	for _, w := range input.Preferences.DoubleVolunteers {
		nonDoublable := cpmodel.NewLinearExpr()
		for _, p := range input.Posts {
			for _, s := range input.Shifts {
				if shiftByID[s.ID].CanDouble {
					continue
				}
				if x, ok := vars.Assign[scoring.Tuple{Worker: w, Post: p.ID, Shift: s.ID}]; ok {
					nonDoublable.Add(x)
				}
			}
		}
		b.AddEquality(nonDoublable, cpmodel.NewConstant(0)).OnlyEnforceIf(vars.Doubled[w])
	}

	// Objective: maximize total assignment score plus doubling coefficient.
	objective := cpmodel.NewLinearExpr()
	for _, w := range input.Workers {
		for _, p := range input.Posts {
			for _, s := range input.Shifts {
				tuple := scoring.Tuple{Worker: w.ID, Post: p.ID, Shift: s.ID}
				if x, ok := vars.Assign[tuple]; ok {
					objective.AddTerm(x, int64(tables.CoefAssign[tuple]))
				}
			}
		}
	}
	for _, w := range input.Preferences.DoubleVolunteers {
		objective.AddTerm(vars.Doubled[w], int64(tables.CoefDouble[w]))
	}
	b.Maximize(objective)

	return &Built{Builder: b, Vars: vars}
}
