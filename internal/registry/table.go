package registry

import (
	"fmt"

	"github.com/shiftcore/assign/internal/entity"
	"github.com/shiftcore/assign/internal/validation"
)

// Registries bundles the interned tables for every entity type in one
// planning run. Build populates one from an entity.Input, detecting
// duplicate-id conflicts as it interns, then Validate checks every
// cross-reference (demand, availability, preference lists) against what
// was actually interned.
type Registries struct {
	Workers     *EntityTable[entity.Worker]
	Posts       *EntityTable[entity.Post]
	SkillLevels *EntityTable[entity.SkillLevel]
	Shifts      *EntityTable[entity.Shift]
}

// Build interns every entity in input. It returns the first
// *entity.DuplicateIdConflict encountered, matching spec.md §4.1's "fatal,
// not accumulated" treatment of duplicate ids.
func Build(input entity.Input) (*Registries, error) {
	r := &Registries{
		Workers:     NewEntityTable[entity.Worker]("Worker", func(w entity.Worker) int { return w.ID }),
		Posts:       NewEntityTable[entity.Post]("Post", func(p entity.Post) int { return p.ID }),
		SkillLevels: NewEntityTable[entity.SkillLevel]("SkillLevel", func(s entity.SkillLevel) int { return s.ID }),
		Shifts:      NewEntityTable[entity.Shift]("Shift", func(s entity.Shift) int { return s.ID }),
	}

	for _, w := range input.Workers {
		if err := r.Workers.Register(w); err != nil {
			return nil, err
		}
	}
	for _, p := range input.Posts {
		if err := r.Posts.Register(p); err != nil {
			return nil, err
		}
	}
	for _, s := range input.Shifts {
		if err := r.Shifts.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Validate checks every reference made by demand, availability, and
// preference lists against the interned registries, and flags negative
// demand counts. Whether demand can actually be met is not checked here.
// Unlike Build's fatal duplicate-id check, these are
// accumulated into a validation.Result so a caller sees every problem in
// one pass rather than one-at-a-time.
func (r *Registries) Validate(input entity.Input) *validation.Result {
	result := validation.NewResult()

	for key, count := range input.Demand {
		if _, ok := r.Posts.Lookup(key.Post); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("demand references unknown post %d", key.Post),
				map[string]interface{}{"post": key.Post, "shift": key.Shift})
		}
		if _, ok := r.Shifts.Lookup(key.Shift); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("demand references unknown shift %d", key.Shift),
				map[string]interface{}{"post": key.Post, "shift": key.Shift})
		}
		if count < 0 {
			result.AddErrorWithContext(validation.CodeNegativeDemand,
				fmt.Sprintf("demand for post %d shift %d is negative: %d", key.Post, key.Shift, count),
				map[string]interface{}{"post": key.Post, "shift": key.Shift, "count": count})
		}
	}

	for key := range input.Availability {
		if _, ok := r.Workers.Lookup(key.Worker); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("availability references unknown worker %d", key.Worker),
				map[string]interface{}{"worker": key.Worker, "shift": key.Shift})
		}
		if _, ok := r.Shifts.Lookup(key.Shift); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("availability references unknown shift %d", key.Shift),
				map[string]interface{}{"worker": key.Worker, "shift": key.Shift})
		}
	}

	for post, list := range input.Preferences.Specialists {
		if _, ok := r.Posts.Lookup(post); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("specialist list references unknown post %d", post),
				map[string]interface{}{"post": post})
		}
		if len(list) == 0 {
			result.AddWarningWithContext(validation.CodeEmptyPreference,
				fmt.Sprintf("specialist list for post %d is empty", post),
				map[string]interface{}{"post": post})
		}
		for _, worker := range list {
			if _, ok := r.Workers.Lookup(worker); !ok {
				result.AddErrorWithContext(validation.CodeInvalidReference,
					fmt.Sprintf("specialist list for post %d references unknown worker %d", post, worker),
					map[string]interface{}{"post": post, "worker": worker})
			}
		}
	}

	for shiftType, list := range input.Preferences.ShiftPreference {
		for _, worker := range list {
			if _, ok := r.Workers.Lookup(worker); !ok {
				result.AddErrorWithContext(validation.CodeInvalidReference,
					fmt.Sprintf("shift preference list for %s references unknown worker %d", shiftType, worker),
					map[string]interface{}{"shiftType": shiftType.String(), "worker": worker})
			}
		}
	}

	for _, worker := range input.Preferences.DoubleVolunteers {
		if _, ok := r.Workers.Lookup(worker); !ok {
			result.AddErrorWithContext(validation.CodeInvalidReference,
				fmt.Sprintf("double-volunteer list references unknown worker %d", worker),
				map[string]interface{}{"worker": worker})
		}
	}

	return result
}
