// Package helpers provides fluent builders, factories, and fixture loaders
// for constructing entity.Input test data without repeating struct literals
// across package tests.
package helpers

import "github.com/shiftcore/assign/internal/entity"

// WorkerBuilder builds entity.Worker values with a fluent interface.
type WorkerBuilder struct {
	id           entity.WorkerID
	code         string
	givenName    string
	familyName   string
	capabilities map[entity.PostID]entity.SkillLevelID
}

// NewWorkerBuilder creates a WorkerBuilder with sensible defaults.
func NewWorkerBuilder(id entity.WorkerID) *WorkerBuilder {
	return &WorkerBuilder{
		id:           id,
		code:         "W1",
		givenName:    "Test",
		familyName:   "Worker",
		capabilities: map[entity.PostID]entity.SkillLevelID{},
	}
}

func (b *WorkerBuilder) WithCode(code string) *WorkerBuilder {
	b.code = code
	return b
}

func (b *WorkerBuilder) WithName(given, family string) *WorkerBuilder {
	b.givenName = given
	b.familyName = family
	return b
}

func (b *WorkerBuilder) WithCapability(post entity.PostID, level entity.SkillLevelID) *WorkerBuilder {
	b.capabilities[post] = level
	return b
}

func (b *WorkerBuilder) WithSpecialty(post entity.PostID) *WorkerBuilder {
	return b.WithCapability(post, entity.SpecialtyLevel)
}

// Build creates the Worker entity.
func (b *WorkerBuilder) Build() entity.Worker {
	return entity.Worker{
		ID:           b.id,
		Code:         b.code,
		GivenName:    b.givenName,
		FamilyName:   b.familyName,
		Capabilities: b.capabilities,
	}
}

// PostBuilder builds entity.Post values with a fluent interface.
type PostBuilder struct {
	id   entity.PostID
	name string
}

// NewPostBuilder creates a PostBuilder with sensible defaults.
func NewPostBuilder(id entity.PostID) *PostBuilder {
	return &PostBuilder{id: id, name: "TRIAGE"}
}

func (b *PostBuilder) WithName(name string) *PostBuilder {
	b.name = name
	return b
}

// Build creates the Post entity.
func (b *PostBuilder) Build() entity.Post {
	return entity.Post{ID: b.id, Name: b.name}
}

// InputBuilder assembles a full entity.Input incrementally. Availability
// holds exactly the (worker, shift) pairs passed to WithAvailability;
// adding a worker does not make it available for any shift.
type InputBuilder struct {
	workers      []entity.Worker
	posts        []entity.Post
	shifts       []entity.Shift
	demand       map[entity.DemandKey]int
	availability map[entity.AvailabilityKey]struct{}
	preferences  entity.PreferenceLists
	scoring      entity.ScoringParameters
}

// NewInputBuilder creates an InputBuilder seeded with the canonical five
// shifts and default scoring parameters.
func NewInputBuilder() *InputBuilder {
	return &InputBuilder{
		shifts:       entity.CanonicalShifts(),
		demand:       map[entity.DemandKey]int{},
		availability: map[entity.AvailabilityKey]struct{}{},
		preferences: entity.PreferenceLists{
			Specialists:     map[entity.PostID][]entity.WorkerID{},
			ShiftPreference: map[entity.ShiftType][]entity.WorkerID{},
		},
		scoring: entity.DefaultScoringParameters(),
	}
}

func (b *InputBuilder) WithWorker(w entity.Worker) *InputBuilder {
	b.workers = append(b.workers, w)
	return b
}

func (b *InputBuilder) WithPost(p entity.Post) *InputBuilder {
	b.posts = append(b.posts, p)
	return b
}

func (b *InputBuilder) WithDemand(post entity.PostID, shift entity.ShiftID, count int) *InputBuilder {
	b.demand[entity.DemandKey{Post: post, Shift: shift}] = count
	return b
}

func (b *InputBuilder) WithAvailability(worker entity.WorkerID, shift entity.ShiftID) *InputBuilder {
	b.availability[entity.AvailabilityKey{Worker: worker, Shift: shift}] = struct{}{}
	return b
}

func (b *InputBuilder) WithSpecialistList(post entity.PostID, workers ...entity.WorkerID) *InputBuilder {
	b.preferences.Specialists[post] = workers
	return b
}

func (b *InputBuilder) WithShiftPreferenceList(t entity.ShiftType, workers ...entity.WorkerID) *InputBuilder {
	b.preferences.ShiftPreference[t] = workers
	return b
}

func (b *InputBuilder) WithDoubleVolunteers(workers ...entity.WorkerID) *InputBuilder {
	b.preferences.DoubleVolunteers = workers
	return b
}

func (b *InputBuilder) WithScoring(params entity.ScoringParameters) *InputBuilder {
	b.scoring = params
	return b
}

// Build assembles the entity.Input.
func (b *InputBuilder) Build() entity.Input {
	return entity.Input{
		Workers:      b.workers,
		Posts:        b.posts,
		Shifts:       b.shifts,
		Demand:       b.demand,
		Availability: b.availability,
		Preferences:  b.preferences,
		Scoring:      b.scoring,
	}
}
