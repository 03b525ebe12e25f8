package transfer

import (
	"fmt"

	"tableflip.dev/cascade/pkg/goal"
)

// StatusMove is the outcome of dragging a single quarterly goal's priority
// status from a source week to a target week. Upsert is the status record to
// write for the target week; ClearSource is the source-week record to write
// when move semantics apply, nil otherwise. Both nil means the drag was a
// no-op (the goal carried no status to begin with).
type StatusMove struct {
	Upsert      *goal.State
	ClearSource *goal.State
}

// Empty reports whether the drag changes nothing.
func (m *StatusMove) Empty() bool {
	return m == nil || (m.Upsert == nil && m.ClearSource == nil)
}

// MoveStatus computes the drag of a quarterly goal's starred/pinned status
// from one week to another. With duplicate set (the modifier key held at
// drag time) the source week's status is left untouched; otherwise it is
// cleared, but only if it was starred or pinned to begin with. Status-less
// goals are never "cleared" after a drag.
func MoveStatus(snap *goal.Snapshot, id string, fromWeek, toWeek PeriodRef, duplicate bool) (*StatusMove, error) {
	g, err := snap.Goal(id)
	if err != nil {
		return nil, err
	}
	if g.Depth != goal.DepthQuarterly {
		return nil, fmt.Errorf("transfer: %w: %s goal %s carries no weekly status", goal.ErrInvalidTransition, g.Depth, id)
	}
	if fromWeek.IsDay() || toWeek.IsDay() {
		return nil, fmt.Errorf("transfer: %w: status moves between weeks only", goal.ErrInvalidTransition)
	}

	source := snap.State(g.ID, goal.WeekKey(fromWeek.Year, fromWeek.Week))
	if !source.HasStatus() {
		return &StatusMove{}, nil
	}

	target := snap.State(g.ID, goal.WeekKey(toWeek.Year, toWeek.Week))
	target.IsStarred = source.IsStarred
	target.IsPinned = source.IsPinned

	move := &StatusMove{Upsert: &target}
	if !duplicate {
		cleared := source
		cleared.IsStarred = false
		cleared.IsPinned = false
		move.ClearSource = &cleared
	}
	return move, nil
}
