// Package preference precomputes O(1) lookups over the ordered preference
// lists of spec.md §3: rank-in-list and list membership, keyed by the three
// concrete list keys the scoring engine needs — per-post specialist lists,
// per-shift-type volunteer lists, and the single double-volunteer list.
package preference

import "github.com/shiftcore/assign/internal/entity"

// ListKey names one ordered preference list. Kind is one of "specialty",
// "shift", or "double"; Post/ShiftType are set only for the matching Kind.
type ListKey struct {
	Kind      string
	Post      entity.PostID
	ShiftType entity.ShiftType
}

func SpecialtyKey(post entity.PostID) ListKey { return ListKey{Kind: "specialty", Post: post} }
func ShiftKey(t entity.ShiftType) ListKey     { return ListKey{Kind: "shift", ShiftType: t} }
func DoubleKey() ListKey                      { return ListKey{Kind: "double"} }

// Index is the built preference index: for every list key, a rank map from
// worker id to its 0-based position in that ordered list.
type Index struct {
	ranks map[ListKey]map[entity.WorkerID]int
}

// Build computes rank maps for every list in lists. Recomputing the index
// from the same lists always yields the same rank maps (spec.md §8.9).
func Build(lists entity.PreferenceLists) *Index {
	idx := &Index{ranks: make(map[ListKey]map[entity.WorkerID]int)}

	for post, workers := range lists.Specialists {
		idx.ranks[SpecialtyKey(post)] = rankOf(workers)
	}
	for shiftType, workers := range lists.ShiftPreference {
		idx.ranks[ShiftKey(shiftType)] = rankOf(workers)
	}
	idx.ranks[DoubleKey()] = rankOf(lists.DoubleVolunteers)

	return idx
}

func rankOf(workers []entity.WorkerID) map[entity.WorkerID]int {
	ranks := make(map[entity.WorkerID]int, len(workers))
	for i, w := range workers {
		if _, seen := ranks[w]; !seen {
			ranks[w] = i
		}
	}
	return ranks
}

// Position returns the 0-based rank of worker in the list named by key, if
// present.
func (idx *Index) Position(key ListKey, worker entity.WorkerID) (int, bool) {
	ranks, ok := idx.ranks[key]
	if !ok {
		return 0, false
	}
	rank, ok := ranks[worker]
	return rank, ok
}

// Contains reports whether worker appears anywhere in the list named by key.
func (idx *Index) Contains(key ListKey, worker entity.WorkerID) bool {
	_, ok := idx.Position(key, worker)
	return ok
}
