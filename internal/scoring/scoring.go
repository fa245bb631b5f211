// Package scoring computes the deterministic, table-driven coefficients of
// spec.md §4.3: one integer score per candidate (worker, post, shift) tuple,
// and one doubling coefficient per double-volunteer.
package scoring

import (
	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/preference"
)

// Tuple identifies one candidate (worker, post, shift) assignment.
type Tuple struct {
	Worker entity.WorkerID
	Post   entity.PostID
	Shift  entity.ShiftID
}

// Tables holds the coefficient tables the CP model builder consumes.
// CoefAssign is defined only on candidate tuples; CoefDouble only on
// double-volunteers.
type Tables struct {
	CoefAssign map[Tuple]int
	CoefDouble map[entity.WorkerID]int
}

// DefaultParameters returns the scoring parameters this implementation ships
// with. It is a thin alias over entity.DefaultScoringParameters so callers
// configure scoring entirely through this package.
func DefaultParameters() entity.ScoringParameters {
	return entity.DefaultScoringParameters()
}

// Compute builds the coefficient tables for one planning run. input.Shifts
// must be the full ordered shift set (including non-preference-bearing ones); only
// candidate tuples — worker capable of post, and (worker, shift) available —
// receive an entry.
func Compute(input entity.Input, idx *preference.Index) Tables {
	params := input.Scoring
	tables := Tables{
		CoefAssign: make(map[Tuple]int),
		CoefDouble: make(map[entity.WorkerID]int),
	}

	for _, worker := range input.Workers {
		for post, level := range worker.Capabilities {
			for _, shift := range input.Shifts {
				key := entity.AvailabilityKey{Worker: worker.ID, Shift: shift.ID}
				if _, available := input.Availability[key]; !available {
					continue
				}
				tables.CoefAssign[Tuple{Worker: worker.ID, Post: post, Shift: shift.ID}] =
					scoreCapability(params, level) +
						scoreSpecialty(params, idx, post, worker.ID) +
						scoreShift(params, idx, shift, worker.ID)
			}
		}
	}

	for _, worker := range input.Preferences.DoubleVolunteers {
		rank, _ := idx.Position(preference.DoubleKey(), worker)
		tables.CoefDouble[worker] = params.MaxDoubleVolunteer - params.DecayDoubleVolunteer*rank
	}

	return tables
}

func scoreCapability(p entity.ScoringParameters, level entity.SkillLevelID) int {
	return clampNonNegative(p.MaxCapability - p.DecayCapability*(level-1))
}

func scoreSpecialty(p entity.ScoringParameters, idx *preference.Index, post entity.PostID, worker entity.WorkerID) int {
	rank, ok := idx.Position(preference.SpecialtyKey(post), worker)
	if !ok {
		return 0
	}
	return clampNonNegative(p.MaxSpecialty - p.DecaySpecialty*rank)
}

// scoreShift implements the three-way branch of spec.md §4.3: a reward
// (unclamped) for preference-bearing shifts the worker volunteered for, a
// penalty for preference-bearing shifts they did not, and zero for split
// shifts.
func scoreShift(p entity.ScoringParameters, idx *preference.Index, shift entity.Shift, worker entity.WorkerID) int {
	if !shift.PreferenceBearing() {
		return 0
	}
	key := preference.ShiftKey(shift.Type)
	if rank, ok := idx.Position(key, worker); ok {
		return p.MaxShiftPreference[shift.Type] - p.DecayShiftPreference[shift.Type]*rank
	}
	return -p.ShiftPenalty[shift.Type]
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
