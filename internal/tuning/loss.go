// Package tuning measures how well one ScoringParameters candidate performs
// against a finished solve, and runs candidates as background Asynq jobs so
// a sweep can fan out across workers instead of blocking a caller.
package tuning

import (
	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/preference"
	"github.com/shiftcore/assign/internal/solver"
)

// Loss breaks a finished assignment down into the three failure counts the
// implemented site tunes against: a worker placed outside their specialty, a
// non-volunteer conscripted onto a night shift, and a morning/afternoon
// preference overridden by a different shift type. Lower is better.
type Loss struct {
	NonSpecialtyAssignments    int
	NonVolunteerNightAssigned  int
	ShiftPreferenceUnrespected int
}

// Total is the scalar loss a sweep minimizes: the unweighted sum of the
// three counts.
func (l Loss) Total() int {
	return l.NonSpecialtyAssignments + l.NonVolunteerNightAssigned + l.ShiftPreferenceUnrespected
}

// ComputeLoss walks a finished assignment and tallies Loss against the
// preference lists used to build idx.
func ComputeLoss(input entity.Input, idx *preference.Index, assignment []solver.Assignment) Loss {
	workerByID := make(map[entity.WorkerID]entity.Worker, len(input.Workers))
	for _, w := range input.Workers {
		workerByID[w.ID] = w
	}
	shiftByID := make(map[entity.ShiftID]entity.Shift, len(input.Shifts))
	for _, s := range input.Shifts {
		shiftByID[s.ID] = s
	}

	var loss Loss
	for _, a := range assignment {
		worker := workerByID[a.Worker]
		shift := shiftByID[a.Shift]

		if !worker.IsSpecialist(a.Post) {
			loss.NonSpecialtyAssignments++
		}
		if shift.Type == entity.ShiftTypeNight && !idx.Contains(preference.ShiftKey(entity.ShiftTypeNight), a.Worker) {
			loss.NonVolunteerNightAssigned++
		}
		if idx.Contains(preference.ShiftKey(entity.ShiftTypeMorning), a.Worker) && shift.Type != entity.ShiftTypeMorning {
			loss.ShiftPreferenceUnrespected++
		}
		if idx.Contains(preference.ShiftKey(entity.ShiftTypeAfternoon), a.Worker) && shift.Type != entity.ShiftTypeAfternoon {
			loss.ShiftPreferenceUnrespected++
		}
	}

	return loss
}
