package goal

import (
	"testing"
	"time"
)

func TestSetCompleteStampsEdges(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)
	st := State{GoalID: "d1", Period: "2026W35D2"}

	st.SetComplete(true, now)
	if !st.IsComplete || st.CompletedAt == nil || !st.CompletedAt.Equal(now) {
		t.Fatalf("false->true should stamp CompletedAt: %+v", st)
	}

	// Re-asserting the same value must not restamp.
	later := now.Add(time.Hour)
	st.SetComplete(true, later)
	if !st.CompletedAt.Equal(now) {
		t.Fatalf("no-op toggle restamped CompletedAt: %v", st.CompletedAt)
	}

	st.SetComplete(false, later)
	if st.IsComplete || st.CompletedAt != nil {
		t.Fatalf("true->false should clear CompletedAt: %+v", st)
	}
}

func TestEffectiveComplete(t *testing.T) {
	if (State{}).EffectiveComplete() {
		t.Fatal("zero state is not complete")
	}
	if !(State{IsComplete: true}).EffectiveComplete() {
		t.Fatal("soft completion displays as done")
	}
	if !(State{IsHardComplete: true}).EffectiveComplete() {
		t.Fatal("hard completion displays as done even without soft completion")
	}
}

func TestZeroIgnoresCompletedAt(t *testing.T) {
	st := State{GoalID: "d1", Period: "2026W35D2"}
	if !st.Zero() {
		t.Fatal("identifier-only record is zero")
	}
	st.IsPinned = true
	if st.Zero() {
		t.Fatal("pinned record is not zero")
	}
}
