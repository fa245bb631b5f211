// Package summary computes the result summarizer of spec.md §4.6 plus the
// WorstRankAccepted statistic supplemented from the original
// print_estadisticas_avanzadas report: quantitative coverage and
// preference-depth statistics computed from a finished solve, reported
// verbatim without feeding back into the model.
package summary

import (
	"fmt"
	"math"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/preference"
	"github.com/shiftcore/assign/internal/solver"
)

// CoverageStatus classifies how much of a shift type's demand was staffed
// by workers on that type's preference list.
type CoverageStatus string

const (
	StatusFull      CoverageStatus = "FULL"
	StatusPartial   CoverageStatus = "PARTIAL"
	StatusUncovered CoverageStatus = "UNCOVERED"
)

// ShiftTypeCoverage reports, for one shift type, how much of its demand was
// staffed and how much of that staffing came from a volunteer/preferring
// worker.
type ShiftTypeCoverage struct {
	ShiftType              entity.ShiftType
	DemandedPosts          int
	PreferringAvailable    int
	AssignedWithPreference int
	CoveragePercentage     float64
	Status                 CoverageStatus
}

// SpecialtyCoverage is assignments-matching-specialty over total demand.
type SpecialtyCoverage struct {
	MatchingAssignments int
	TotalDemand         int
	Percentage          float64
}

// WorkerUtilization is distinct assigned workers over distinct available
// workers.
type WorkerUtilization struct {
	DistinctAssigned  int
	DistinctAvailable int
	Percentage        float64
}

// Statistics is the complete result-summarizer output.
type Statistics struct {
	ByShiftType map[entity.ShiftType]ShiftTypeCoverage
	Specialty   SpecialtyCoverage
	Utilization WorkerUtilization
	ObjectiveValue int64

	// WorstRankAccepted is the highest (0-based) preference rank among
	// accepted assignments, per category — "how far down the list did we
	// go" — keyed the same way the preference index is: specialty lists by
	// post, shift lists by type. The double list has a single rank,
	// WorstRankAcceptedDouble, valid only when HasDoubleRank is true.
	WorstRankAcceptedBySpecialty map[entity.PostID]int
	WorstRankAcceptedByShiftType map[entity.ShiftType]int
	WorstRankAcceptedDouble      int
	HasDoubleRank                bool

	Summary string
}

// Summarize computes Statistics from a finished solve. It never mutates
// input or result.
func Summarize(input entity.Input, idx *preference.Index, result *solver.Result) Statistics {
	stats := Statistics{
		ByShiftType:                  make(map[entity.ShiftType]ShiftTypeCoverage),
		WorstRankAcceptedBySpecialty: make(map[entity.PostID]int),
		WorstRankAcceptedByShiftType: make(map[entity.ShiftType]int),
		ObjectiveValue:               result.ObjectiveValue,
	}

	if result.Status == solver.StatusNone {
		stats.Summary = "no feasible assignment"
		return stats
	}

	demandByShiftType := make(map[entity.ShiftType]int)
	preferringAvailableByType := make(map[entity.ShiftType]map[entity.WorkerID]bool)
	shiftByID := make(map[entity.ShiftID]entity.Shift, len(input.Shifts))
	for _, s := range input.Shifts {
		shiftByID[s.ID] = s
		preferringAvailableByType[s.Type] = make(map[entity.WorkerID]bool)
	}
	for key, count := range input.Demand {
		demandByShiftType[shiftByID[key.Shift].Type] += count
	}
	for key := range input.Availability {
		t := shiftByID[key.Shift].Type
		if idx.Contains(preference.ShiftKey(t), key.Worker) {
			preferringAvailableByType[t][key.Worker] = true
		}
	}

	assignedWithPreference := make(map[entity.ShiftType]int)
	specialtyMatches := 0
	totalDemand := 0
	for _, c := range input.Demand {
		totalDemand += c
	}
	distinctAssigned := make(map[entity.WorkerID]bool)
	distinctAvailable := make(map[entity.WorkerID]bool)
	for key := range input.Availability {
		distinctAvailable[key.Worker] = true
	}

	for _, a := range result.Assignment {
		distinctAssigned[a.Worker] = true
		shift := shiftByID[a.Shift]

		if rank, ok := idx.Position(preference.SpecialtyKey(a.Post), a.Worker); ok {
			specialtyMatches++
			bumpMax(stats.WorstRankAcceptedBySpecialty, a.Post, rank)
		}
		if shift.PreferenceBearing() {
			if rank, ok := idx.Position(preference.ShiftKey(shift.Type), a.Worker); ok {
				assignedWithPreference[shift.Type]++
				bumpMax(stats.WorstRankAcceptedByShiftType, shift.Type, rank)
			}
		}
	}

	for w := range result.DoubledWorkers {
		if rank, ok := idx.Position(preference.DoubleKey(), w); ok {
			if !stats.HasDoubleRank || rank > stats.WorstRankAcceptedDouble {
				stats.WorstRankAcceptedDouble = rank
				stats.HasDoubleRank = true
			}
		}
	}

	for shiftType, demanded := range demandByShiftType {
		assigned := assignedWithPreference[shiftType]
		pct := percentage(assigned, demanded)
		stats.ByShiftType[shiftType] = ShiftTypeCoverage{
			ShiftType:              shiftType,
			DemandedPosts:          demanded,
			PreferringAvailable:    len(preferringAvailableByType[shiftType]),
			AssignedWithPreference: assigned,
			CoveragePercentage:     pct,
			Status:                 statusFor(assigned, demanded),
		}
	}

	stats.Specialty = SpecialtyCoverage{
		MatchingAssignments: specialtyMatches,
		TotalDemand:         totalDemand,
		Percentage:          percentage(specialtyMatches, totalDemand),
	}
	stats.Utilization = WorkerUtilization{
		DistinctAssigned:  len(distinctAssigned),
		DistinctAvailable: len(distinctAvailable),
		Percentage:        percentage(len(distinctAssigned), len(distinctAvailable)),
	}
	stats.Summary = fmt.Sprintf(
		"objective=%d specialty=%.1f%% utilization=%.1f%% (%s)",
		stats.ObjectiveValue, stats.Specialty.Percentage, stats.Utilization.Percentage, result.Status,
	)

	return stats
}

func bumpMax[K comparable](m map[K]int, key K, rank int) {
	if rank > m[key] {
		m[key] = rank
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := (float64(part) / float64(total)) * 100
	return math.Round(pct*100) / 100
}

func statusFor(assigned, required int) CoverageStatus {
	switch {
	case required == 0, assigned >= required:
		return StatusFull
	case assigned > 0:
		return StatusPartial
	default:
		return StatusUncovered
	}
}
