package status

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/cascade/pkg/goal"
)

func snapWith(states ...*goal.State) *goal.Snapshot {
	created := goal.Timestamp{Time: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)}
	goals := []*goal.Goal{
		{ID: "q1", Title: "ship onboarding", Depth: goal.DepthQuarterly,
			Period: goal.Period{Year: 2026, Quarter: 3}, Created: created},
		{ID: "w1", Title: "draft doc", Depth: goal.DepthWeekly, ParentID: "q1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35}, Created: created},
	}
	return goal.NewSnapshot(goals, states)
}

func TestStarThenPinReplaces(t *testing.T) {
	snap := snapWith()
	st, err := Star(snap, "q1", 2026, 35)
	if err != nil {
		t.Fatalf("star: %v", err)
	}
	if !st.IsStarred || st.IsPinned {
		t.Fatalf("after star: %+v", st)
	}

	snap = snapWith(&st)
	st, err = Pin(snap, "q1", 2026, 35)
	if err != nil {
		t.Fatalf("pin: %v", err)
	}
	if st.IsStarred || !st.IsPinned {
		t.Fatalf("pin must replace star: %+v", st)
	}
}

func TestStarTogglesOff(t *testing.T) {
	snap := snapWith(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 35), IsStarred: true})
	st, err := Star(snap, "q1", 2026, 35)
	if err != nil {
		t.Fatalf("star: %v", err)
	}
	if st.HasStatus() {
		t.Fatalf("starring a starred goal clears it: %+v", st)
	}
}

func TestPinTogglesOff(t *testing.T) {
	snap := snapWith(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 35), IsPinned: true})
	st, err := Pin(snap, "q1", 2026, 35)
	if err != nil {
		t.Fatalf("pin: %v", err)
	}
	if st.HasStatus() {
		t.Fatalf("pinning a pinned goal clears it: %+v", st)
	}
}

func TestClearRemovesEitherFlag(t *testing.T) {
	snap := snapWith(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 35), IsStarred: true})
	st, err := Clear(snap, "q1", 2026, 35)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if st.HasStatus() {
		t.Fatalf("after clear: %+v", st)
	}
}

func TestStatusScopedPerWeek(t *testing.T) {
	snap := snapWith(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 35), IsStarred: true})
	st, err := Star(snap, "q1", 2026, 36)
	if err != nil {
		t.Fatalf("star: %v", err)
	}
	if !st.IsStarred || st.Period != goal.WeekKey(2026, 36) {
		t.Fatalf("week 36 status is independent: %+v", st)
	}
}

func TestStatusRejectsNonQuarterly(t *testing.T) {
	snap := snapWith()
	if _, err := Star(snap, "w1", 2026, 35); !errors.Is(err, goal.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := Pin(snap, "missing", 2026, 35); !errors.Is(err, goal.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertPreservesCompletionFields(t *testing.T) {
	snap := snapWith(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 36), IsComplete: true})
	st := Upsert(snap, "q1", 2026, 36, true, false)
	if !st.IsStarred || st.IsPinned {
		t.Fatalf("upsert flags: %+v", st)
	}
	if !st.IsComplete {
		t.Fatal("upsert must not clobber completion fields on the target record")
	}
}
