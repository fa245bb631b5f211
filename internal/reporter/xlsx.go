// Package reporter is an example implementation of the Reporter contract
// of spec.md §6: it renders a finished solve to a human-readable workbook.
// It is explicitly one legal reporter, not the contract itself — the
// contract is the solver.Result/summary.Statistics pair this package
// consumes.
package reporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/solver"
	"github.com/shiftcore/assign/internal/summary"
)

// WriteWorkbook renders one solve to an .xlsx workbook: an "Assignments"
// sheet listing every (worker, post, shift) triple, and a "Coverage" sheet
// summarizing per-shift-type staffing.
func WriteWorkbook(input entity.Input, result *solver.Result, stats summary.Statistics) (*excelize.File, error) {
	f := excelize.NewFile()

	codeByWorker := make(map[entity.WorkerID]string, len(input.Workers))
	postName := make(map[entity.PostID]string, len(input.Posts))
	shiftName := make(map[entity.ShiftID]string, len(input.Shifts))
	for _, w := range input.Workers {
		codeByWorker[w.ID] = w.Code
	}
	for _, p := range input.Posts {
		postName[p.ID] = p.Name
	}
	for _, s := range input.Shifts {
		shiftName[s.ID] = s.Name
	}

	if err := writeAssignmentsSheet(f, result, codeByWorker, postName, shiftName); err != nil {
		return nil, err
	}
	if err := writeCoverageSheet(f, stats); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	return f, nil
}

func writeAssignmentsSheet(f *excelize.File, result *solver.Result, codeByWorker map[entity.WorkerID]string, postName map[entity.PostID]string, shiftName map[entity.ShiftID]string) error {
	const sheet = "Assignments"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", sheet, err)
	}

	header := []string{"Worker", "Post", "Shift", "Doubled"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, a := range result.Assignment {
		row := i + 2
		values := []any{
			codeByWorker[a.Worker],
			postName[a.Post],
			shiftName[a.Shift],
			result.DoubledWorkers[a.Worker],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeCoverageSheet(f *excelize.File, stats summary.Statistics) error {
	const sheet = "Coverage"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", sheet, err)
	}

	header := []string{"ShiftType", "Demanded", "AssignedWithPreference", "CoveragePct", "Status"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	row := 2
	for shiftType, cov := range stats.ByShiftType {
		values := []any{
			shiftType.String(),
			cov.DemandedPosts,
			cov.AssignedWithPreference,
			cov.CoveragePercentage,
			string(cov.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	summaryRow := row + 1
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	return f.SetCellValue(sheet, cell, stats.Summary)
}
