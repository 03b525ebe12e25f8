// Package completion implements the propagation rules between daily and
// weekly goals: soft completion derived from children, the hard-complete
// override, and the cascade confirmation workflow.
//
// Every function is a pure transform over a snapshot. Mutated state records
// are returned as an Effect for the caller to persist in one batch; nothing
// here performs I/O.
package completion

import (
	"fmt"
	"time"

	"tableflip.dev/cascade/pkg/goal"
)

// Effect lists the state records an operation changed. Callers submit the
// whole effect to the store as a single batch.
type Effect struct {
	States []goal.State
}

// Empty reports whether the operation changed nothing.
func (e Effect) Empty() bool {
	return len(e.States) == 0
}

// WeeklyToggle is the outcome of toggling a weekly goal. When
// RequiresConfirmation is set no state was mutated; the caller must re-invoke
// through CompleteWeekly with an explicit cascade decision.
type WeeklyToggle struct {
	RequiresConfirmation bool
	Incomplete           []*goal.Goal // the daily children blocking a direct complete
	Effect               Effect
}

// ToggleDaily sets a daily (or adhoc) goal's completion flag and recomputes
// the parent weekly goal's soft completion.
//
// Clearing a child's completion always re-validates the parent's
// hard-complete flag: unchecking any child must not leave a stale
// manual-complete marker behind. Checking a child while the parent is
// already hard-complete leaves the hard flag untouched.
func ToggleDaily(snap *goal.Snapshot, id string, complete bool, now time.Time) (Effect, error) {
	g, err := snap.Goal(id)
	if err != nil {
		return Effect{}, err
	}
	if g.Depth != goal.DepthDaily && g.Depth != goal.DepthAdhoc {
		return Effect{}, fmt.Errorf("completion: %w: cannot toggle %s goal %s as a leaf", goal.ErrInvalidTransition, g.Depth, id)
	}

	st := snap.StateOf(g)
	st.SetComplete(complete, now)
	eff := Effect{States: []goal.State{st}}

	if g.Depth != goal.DepthDaily || g.ParentID == "" {
		return eff, nil
	}
	parent, err := snap.Goal(g.ParentID)
	if err != nil {
		return Effect{}, err
	}

	ws := snap.StateOf(parent)
	if !complete {
		ws.IsHardComplete = false
	}
	override := map[string]bool{id: complete}
	ws.SetComplete(derivedSoft(snap, parent, override), now)
	eff.States = append(eff.States, ws)
	return eff, nil
}

// ToggleWeekly governs the hard-complete workflow for a weekly goal.
//
// Requesting false clears the hard flag if set and recomputes soft
// completion; no children change. Requesting true completes directly when
// the goal has no daily children or all of them are already complete;
// otherwise it signals RequiresConfirmation without mutating anything.
func ToggleWeekly(snap *goal.Snapshot, id string, requested bool, now time.Time) (WeeklyToggle, error) {
	g, err := snap.Goal(id)
	if err != nil {
		return WeeklyToggle{}, err
	}
	if g.Depth != goal.DepthWeekly {
		return WeeklyToggle{}, fmt.Errorf("completion: %w: %s goal %s is not weekly", goal.ErrInvalidTransition, g.Depth, id)
	}

	st := snap.StateOf(g)
	if !requested {
		if !st.IsHardComplete {
			// Nothing to clear; soft completion is derived, not set.
			return WeeklyToggle{}, nil
		}
		st.IsHardComplete = false
		st.SetComplete(derivedSoft(snap, g, nil), now)
		return WeeklyToggle{Effect: Effect{States: []goal.State{st}}}, nil
	}

	incomplete := incompleteChildren(snap, g)
	if len(incomplete) > 0 {
		return WeeklyToggle{RequiresConfirmation: true, Incomplete: incomplete}, nil
	}
	st.IsHardComplete = true
	st.SetComplete(true, now)
	return WeeklyToggle{Effect: Effect{States: []goal.State{st}}}, nil
}

// CompleteWeekly applies the confirmed hard-complete decision. With cascade
// every daily child is marked complete and soft completion follows; without
// it only the hard flag is set and children stay as they are, leaving
// IsHardComplete=true with IsComplete=false as a valid, intentional state.
func CompleteWeekly(snap *goal.Snapshot, id string, cascade bool, now time.Time) (Effect, error) {
	g, err := snap.Goal(id)
	if err != nil {
		return Effect{}, err
	}
	if g.Depth != goal.DepthWeekly {
		return Effect{}, fmt.Errorf("completion: %w: %s goal %s is not weekly", goal.ErrInvalidTransition, g.Depth, id)
	}

	var eff Effect
	override := make(map[string]bool)
	if cascade {
		for _, child := range weekChildren(snap, g) {
			cs := snap.StateOf(child)
			override[child.ID] = true
			if cs.IsComplete {
				continue
			}
			cs.SetComplete(true, now)
			eff.States = append(eff.States, cs)
		}
	}

	st := snap.StateOf(g)
	st.IsHardComplete = true
	if cascade {
		st.SetComplete(true, now)
	} else {
		st.SetComplete(derivedSoft(snap, g, nil), now)
	}
	eff.States = append(eff.States, st)
	return eff, nil
}

// derivedSoft computes weekly soft completion: true iff the goal has at least
// one daily child in its week and every one of them is complete. override
// substitutes leaf values not yet persisted in the snapshot.
func derivedSoft(snap *goal.Snapshot, weekly *goal.Goal, override map[string]bool) bool {
	children := weekChildren(snap, weekly)
	if len(children) == 0 {
		return false
	}
	for _, child := range children {
		done, ok := override[child.ID]
		if !ok {
			done = snap.StateOf(child).IsComplete
		}
		if !done {
			return false
		}
	}
	return true
}

func incompleteChildren(snap *goal.Snapshot, weekly *goal.Goal) []*goal.Goal {
	var out []*goal.Goal
	for _, child := range weekChildren(snap, weekly) {
		if !snap.StateOf(child).IsComplete {
			out = append(out, child)
		}
	}
	return out
}

// weekChildren returns the weekly goal's daily children still assigned to its
// week. A child pulled into another week keeps the hierarchy edge but counts
// toward the week it now lives in, not this one.
func weekChildren(snap *goal.Snapshot, weekly *goal.Goal) []*goal.Goal {
	var out []*goal.Goal
	for _, child := range snap.DailyChildren(weekly.ID) {
		if child.Period.Year == weekly.Period.Year && child.Period.Week == weekly.Period.Week {
			out = append(out, child)
		}
	}
	return out
}
