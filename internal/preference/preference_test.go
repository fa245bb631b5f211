package preference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/preference"
)

func TestBuild_RankIsZeroBased(t *testing.T) {
	idx := preference.Build(entity.PreferenceLists{
		Specialists: map[entity.PostID][]entity.WorkerID{10: {5, 3, 7}},
	})

	rank, ok := idx.Position(preference.SpecialtyKey(10), 5)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)

	rank, ok = idx.Position(preference.SpecialtyKey(10), 7)
	assert.True(t, ok)
	assert.Equal(t, 2, rank)
}

func TestPosition_UnknownWorkerOrList(t *testing.T) {
	idx := preference.Build(entity.PreferenceLists{
		Specialists: map[entity.PostID][]entity.WorkerID{10: {5}},
	})

	_, ok := idx.Position(preference.SpecialtyKey(10), 999)
	assert.False(t, ok)

	_, ok = idx.Position(preference.SpecialtyKey(20), 5)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	idx := preference.Build(entity.PreferenceLists{
		ShiftPreference:  map[entity.ShiftType][]entity.WorkerID{entity.ShiftTypeNight: {1, 2}},
		DoubleVolunteers: []entity.WorkerID{9},
	})

	assert.True(t, idx.Contains(preference.ShiftKey(entity.ShiftTypeNight), 1))
	assert.False(t, idx.Contains(preference.ShiftKey(entity.ShiftTypeNight), 3))
	assert.True(t, idx.Contains(preference.DoubleKey(), 9))
	assert.False(t, idx.Contains(preference.DoubleKey(), 1))
}

func TestBuild_IsDeterministicAcrossRebuilds(t *testing.T) {
	lists := entity.PreferenceLists{
		Specialists: map[entity.PostID][]entity.WorkerID{10: {5, 3, 7}},
	}

	a := preference.Build(lists)
	b := preference.Build(lists)

	for _, w := range []entity.WorkerID{5, 3, 7} {
		ra, _ := a.Position(preference.SpecialtyKey(10), w)
		rb, _ := b.Position(preference.SpecialtyKey(10), w)
		assert.Equal(t, ra, rb)
	}
}
