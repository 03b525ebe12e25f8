// Package status implements the starred/pinned priority flags quarterly
// goals carry per week. The two flags are mutually exclusive: setting one
// always clears the other, and toggling an already-active flag clears it.
package status

import (
	"fmt"

	"tableflip.dev/cascade/pkg/goal"
)

func quarterly(snap *goal.Snapshot, id string) (*goal.Goal, error) {
	g, err := snap.Goal(id)
	if err != nil {
		return nil, err
	}
	if g.Depth != goal.DepthQuarterly {
		return nil, fmt.Errorf("status: %w: %s goal %s cannot carry priority flags", goal.ErrInvalidTransition, g.Depth, id)
	}
	return g, nil
}

// Star toggles the starred flag for the goal's status in the given week.
// Starring a pinned goal replaces the pin; starring a starred goal clears it.
func Star(snap *goal.Snapshot, id string, year, week int) (goal.State, error) {
	g, err := quarterly(snap, id)
	if err != nil {
		return goal.State{}, err
	}
	st := snap.State(g.ID, goal.WeekKey(year, week))
	if st.IsStarred {
		st.IsStarred = false
	} else {
		st.IsStarred = true
		st.IsPinned = false
	}
	return st, nil
}

// Pin toggles the pinned flag for the goal's status in the given week, with
// the same replace/clear semantics as Star.
func Pin(snap *goal.Snapshot, id string, year, week int) (goal.State, error) {
	g, err := quarterly(snap, id)
	if err != nil {
		return goal.State{}, err
	}
	st := snap.State(g.ID, goal.WeekKey(year, week))
	if st.IsPinned {
		st.IsPinned = false
	} else {
		st.IsPinned = true
		st.IsStarred = false
	}
	return st, nil
}

// Clear removes both priority flags for the goal's status in the given week.
func Clear(snap *goal.Snapshot, id string, year, week int) (goal.State, error) {
	g, err := quarterly(snap, id)
	if err != nil {
		return goal.State{}, err
	}
	st := snap.State(g.ID, goal.WeekKey(year, week))
	st.IsStarred = false
	st.IsPinned = false
	return st, nil
}

// Upsert builds the status record replicating starred/pinned onto a target
// week, used by the transfer engine's carry-over. Completion fields of an
// existing target record are preserved.
func Upsert(snap *goal.Snapshot, id string, year, week int, starred, pinned bool) goal.State {
	st := snap.State(id, goal.WeekKey(year, week))
	st.IsStarred = starred && !pinned
	st.IsPinned = pinned && !starred
	return st
}
