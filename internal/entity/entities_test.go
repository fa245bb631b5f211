package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorker_Capable(t *testing.T) {
	w := Worker{ID: 1, Code: "W1", Capabilities: map[PostID]SkillLevelID{10: SpecialtyLevel, 11: 3}}

	level, ok := w.Capable(10)
	assert.True(t, ok)
	assert.Equal(t, SpecialtyLevel, level)

	_, ok = w.Capable(99)
	assert.False(t, ok)
}

func TestWorker_IsSpecialist(t *testing.T) {
	w := Worker{ID: 1, Capabilities: map[PostID]SkillLevelID{10: SpecialtyLevel, 11: 2}}

	assert.True(t, w.IsSpecialist(10))
	assert.False(t, w.IsSpecialist(11))
	assert.False(t, w.IsSpecialist(999))
}

func TestShiftType_String(t *testing.T) {
	assert.Equal(t, "MORNING", ShiftTypeMorning.String())
	assert.Equal(t, "AFTERNOON", ShiftTypeAfternoon.String())
	assert.Equal(t, "NIGHT", ShiftTypeNight.String())
	assert.Equal(t, "UNKNOWN", ShiftType(99).String())
}

func TestShiftType_Valid(t *testing.T) {
	assert.True(t, ShiftTypeMorning.Valid())
	assert.True(t, ShiftTypeAfternoon.Valid())
	assert.True(t, ShiftTypeNight.Valid())
	assert.False(t, ShiftType(0).Valid())
	assert.False(t, ShiftType(99).Valid())
}

func TestShift_PreferenceBearing(t *testing.T) {
	split := Shift{ID: ShiftIDSplit, Name: "SPLIT", Type: ShiftTypeMorning}
	morning := Shift{ID: ShiftIDMorning, Name: "MORNING", Type: ShiftTypeMorning}

	assert.False(t, split.PreferenceBearing())
	assert.True(t, morning.PreferenceBearing())
}

func TestCanonicalShifts_MatchesImplementedSite(t *testing.T) {
	shifts := CanonicalShifts()
	require := map[ShiftID]Shift{}
	for _, s := range shifts {
		require[s.ID] = s
	}

	assert.Len(t, shifts, 5)

	morning := require[ShiftIDMorning]
	assert.True(t, morning.CanDouble)
	assert.Equal(t, ShiftTypeMorning, morning.Type)

	afternoon := require[ShiftIDAfternoon]
	assert.True(t, afternoon.CanDouble)
	assert.Equal(t, ShiftTypeAfternoon, afternoon.Type)

	split := require[ShiftIDSplit]
	assert.False(t, split.CanDouble)
	assert.Equal(t, ShiftTypeMorning, split.Type)
	assert.False(t, split.PreferenceBearing())

	for _, id := range []ShiftID{ShiftIDNight1, ShiftIDNight2} {
		night := require[id]
		assert.False(t, night.CanDouble)
		assert.Equal(t, ShiftTypeNight, night.Type)
	}
}

func TestDefaultScoringParameters_NightPenalized(t *testing.T) {
	p := DefaultScoringParameters()

	assert.Greater(t, p.ShiftPenalty[ShiftTypeNight], 0)
	assert.Equal(t, 0, p.ShiftPenalty[ShiftTypeMorning])
	assert.Equal(t, 0, p.ShiftPenalty[ShiftTypeAfternoon])
	assert.Less(t, p.MaxDoubleVolunteer, 0)
}

func TestDuplicateIdConflict_Error(t *testing.T) {
	err := &DuplicateIdConflict{EntityType: "Worker", ID: 7, Field: "*", Existing: "a", Incoming: "b"}
	assert.Contains(t, err.Error(), "Worker")
	assert.Contains(t, err.Error(), "7")
}

func TestInvalidReference_Error(t *testing.T) {
	err := &InvalidReference{EntityType: "Post", ID: 3, Context: "demand"}
	assert.Contains(t, err.Error(), "Post")
	assert.Contains(t, err.Error(), "demand")
}
