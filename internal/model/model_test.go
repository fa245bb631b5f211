package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/model"
	"github.com/shiftcore/assign/internal/preference"
	"github.com/shiftcore/assign/internal/scoring"
)

func TestBuild_CreatesOneVariablePerCandidateTuple(t *testing.T) {
	morning := entity.Shift{ID: entity.ShiftIDMorning, CanDouble: true, Type: entity.ShiftTypeMorning}
	input := entity.Input{
		Workers: []entity.Worker{{ID: 1, Capabilities: map[entity.PostID]entity.SkillLevelID{1: entity.SpecialtyLevel}}},
		Posts:   []entity.Post{{ID: 1, Name: "TRIAGE"}},
		Shifts:  []entity.Shift{morning},
		Demand:  map[entity.DemandKey]int{{Post: 1, Shift: morning.ID}: 1},
		Availability: map[entity.AvailabilityKey]struct{}{
			{Worker: 1, Shift: morning.ID}: {},
		},
		Scoring: entity.DefaultScoringParameters(),
	}

	idx := preference.Build(input.Preferences)
	tables := scoring.Compute(input, idx)
	built := model.Build(input, tables)

	assert.Len(t, built.Vars.Assign, 1)
	assert.Empty(t, built.Vars.Doubled)
}

func TestBuild_CreatesOneDoubledVariablePerVolunteer(t *testing.T) {
	input := entity.Input{
		Preferences: entity.PreferenceLists{DoubleVolunteers: []entity.WorkerID{1, 2}},
		Scoring:     entity.DefaultScoringParameters(),
	}

	idx := preference.Build(input.Preferences)
	tables := scoring.Compute(input, idx)
	built := model.Build(input, tables)

	assert.Len(t, built.Vars.Doubled, 2)
	_, ok := built.Vars.Doubled[1]
	assert.True(t, ok)
	_, ok = built.Vars.Doubled[2]
	assert.True(t, ok)
}

func TestBuild_NoVariableForNonCandidateTuple(t *testing.T) {
	morning := entity.Shift{ID: entity.ShiftIDMorning, Type: entity.ShiftTypeMorning}
	input := entity.Input{
		Workers:      []entity.Worker{{ID: 1, Capabilities: map[entity.PostID]entity.SkillLevelID{1: 2}}},
		Posts:        []entity.Post{{ID: 1}},
		Shifts:       []entity.Shift{morning},
		Availability: map[entity.AvailabilityKey]struct{}{},
		Scoring:      entity.DefaultScoringParameters(),
	}

	idx := preference.Build(input.Preferences)
	tables := scoring.Compute(input, idx)
	built := model.Build(input, tables)

	assert.Empty(t, built.Vars.Assign)
}
