// Package store persists goals and their period-scoped state records on
// disk and streams change notifications to live consumers.
package store

import (
	"context"

	"tableflip.dev/cascade/pkg/goal"
)

// Reassignment moves a goal to a different period. Only the period fields
// change; the hierarchy edge (parent id) is preserved.
type Reassignment struct {
	GoalID string      `json:"goalId"`
	Period goal.Period `json:"period"`
}

// Batch is one coherent unit of writes: state mutations plus period
// reassignments. The engine's contract is to describe the full change set in
// a single Apply call; the store provides the transaction boundary.
type Batch struct {
	States        []goal.State
	Reassignments []Reassignment
}

// Empty reports whether the batch carries no work.
func (b Batch) Empty() bool {
	return len(b.States) == 0 && len(b.Reassignments) == 0
}

// Persistence is the storage contract for goals and goal state.
type Persistence interface {
	// Snapshot returns the full read model: all goals and state records.
	Snapshot(ctx context.Context) *goal.Snapshot
	// Goals lists all goal records.
	Goals(ctx context.Context) []*goal.Goal
	// States lists all state records.
	States(ctx context.Context) []*goal.State
	// Store creates or updates a goal record, assigning an ID when empty.
	Store(g *goal.Goal) error
	// Delete removes a goal and cascades to its descendant goals and all of
	// their state records. The engines never delete; only this boundary does.
	Delete(id string) error
	// Apply writes a batch as one unit, reporting success or failure as a
	// whole.
	Apply(batch Batch) error
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
