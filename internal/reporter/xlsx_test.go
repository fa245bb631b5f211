package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/reporter"
	"github.com/shiftcore/assign/internal/solver"
	"github.com/shiftcore/assign/internal/summary"
)

func TestWriteWorkbook_ListsAssignmentsAndCoverage(t *testing.T) {
	input := entity.Input{
		Workers: []entity.Worker{{ID: 1, Code: "W1"}},
		Posts:   []entity.Post{{ID: 1, Name: "TRIAGE"}},
		Shifts:  []entity.Shift{{ID: entity.ShiftIDMorning, Name: "MORNING", Type: entity.ShiftTypeMorning}},
	}
	result := &solver.Result{
		Status:         solver.StatusOptimal,
		Assignment:     []solver.Assignment{{Worker: 1, Post: 1, Shift: entity.ShiftIDMorning}},
		DoubledWorkers: map[entity.WorkerID]bool{},
	}
	stats := summary.Statistics{
		ByShiftType: map[entity.ShiftType]summary.ShiftTypeCoverage{
			entity.ShiftTypeMorning: {ShiftType: entity.ShiftTypeMorning, DemandedPosts: 1, AssignedWithPreference: 1, CoveragePercentage: 100, Status: summary.StatusFull},
		},
		Summary: "objective=0 specialty=0.0% utilization=100.0% (optimal)",
	}

	f, err := reporter.WriteWorkbook(input, result, stats)
	require.NoError(t, err)

	rows, err := f.GetRows("Assignments")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "W1", rows[1][0])
	assert.Equal(t, "TRIAGE", rows[1][1])
	assert.Equal(t, "MORNING", rows[1][2])

	coverage, err := f.GetRows("Coverage")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(coverage), 2)
}
