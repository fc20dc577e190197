// Package semantics carries the child-index protocol that accessibility and
// navigation infrastructure consume from item hosts.
//
// An item host realizes visual children for some of its items. Assistive
// technology needs to announce "item 3 of 120" without forcing every item to
// be realized, so the host exposes the index mapping and the known total
// directly, and raises a change notification whenever an index assignment
// shifts.
package semantics

import "github.com/go-drift/vista/pkg/visual"

// ChildIndexChange describes one index (re)assignment for a realized child.
type ChildIndexChange struct {
	Child visual.Visual
	Index int
}

// ChildIndexProvider is implemented by controls that map realized children to
// collection indices.
type ChildIndexProvider interface {
	// ChildIndex returns the collection index child currently represents,
	// or -1 when child is not a realized container of this provider.
	ChildIndex(child visual.Visual) int

	// TotalCount returns the number of items in the backing collection and
	// whether that number is known.
	TotalCount() (count int, known bool)

	// AddChildIndexChangedListener subscribes fn to index assignments.
	// The returned function removes the subscription.
	AddChildIndexChangedListener(fn func(ChildIndexChange)) func()
}
