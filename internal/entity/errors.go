package entity

import "fmt"

// Domain error kinds per spec.md §7. Validation errors (DuplicateIdConflict,
// InvalidReference) are fatal and raised synchronously; solver outcomes
// (DemandInfeasible, SolverTimeout, SolverFailure) are returned as status
// values by internal/solver rather than returned as Go errors from
// internal/core; the two sentinels below name those outcomes, and no code
// path in internal/solver or internal/core returns them.
var (
	// ErrDemandInfeasible describes the outcome where total demand exceeds
	// what availability/capability/doubling rules can satisfy.
	ErrDemandInfeasible = fmt.Errorf("demand infeasible: no assignment satisfies every hard constraint")

	// ErrSolverFailure describes the outcome where the underlying engine
	// proved neither optimal nor feasible and did not time out.
	ErrSolverFailure = fmt.Errorf("solver failure: engine returned neither optimal nor feasible")
)

// DuplicateIdConflict reports that the same (type, id) was registered twice
// with differing field values. It is fatal: the registry never silently
// picks one of the two conflicting values.
type DuplicateIdConflict struct {
	EntityType string
	ID         int
	Field      string
	Existing   any
	Incoming   any
}

func (e *DuplicateIdConflict) Error() string {
	return fmt.Sprintf("duplicate id conflict: %s id=%d field=%q existing=%v incoming=%v",
		e.EntityType, e.ID, e.Field, e.Existing, e.Incoming)
}

// InvalidReference reports that a preference list or availability tuple
// names a worker, post, or shift that is not present in the registry.
type InvalidReference struct {
	EntityType string
	ID         int
	Context    string
}

func (e *InvalidReference) Error() string {
	return fmt.Sprintf("invalid reference: %s id=%d not found (%s)", e.EntityType, e.ID, e.Context)
}
