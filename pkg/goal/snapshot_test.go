package goal

import (
	"testing"
	"time"
)

func ts(day int) Timestamp {
	return Timestamp{Time: time.Date(2026, time.August, day, 12, 0, 0, 0, time.UTC)}
}

func testTree() *Snapshot {
	q := &Goal{ID: "q1", Title: "ship onboarding", Depth: DepthQuarterly,
		Period: Period{Year: 2026, Quarter: 3}, Created: ts(1)}
	w := &Goal{ID: "w1", Title: "draft doc", Depth: DepthWeekly, ParentID: "q1",
		Period: Period{Year: 2026, Quarter: 3, Week: 35}, Created: ts(2)}
	d2 := &Goal{ID: "d2", Title: "second", Depth: DepthDaily, ParentID: "w1",
		Period: Period{Year: 2026, Quarter: 3, Week: 35, Day: 3}, Created: ts(4)}
	d1 := &Goal{ID: "d1", Title: "first", Depth: DepthDaily, ParentID: "w1",
		Period: Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: ts(3)}
	a := &Goal{ID: "a1", Title: "renew passport", Depth: DepthAdhoc, Domain: "life",
		Period: Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: ts(5)}
	return NewSnapshot([]*Goal{q, w, d2, d1, a}, nil)
}

func TestChildrenOrderedByCreation(t *testing.T) {
	snap := testTree()
	kids := snap.DailyChildren("w1")
	if len(kids) != 2 {
		t.Fatalf("expected 2 daily children, got %d", len(kids))
	}
	if kids[0].ID != "d1" || kids[1].ID != "d2" {
		t.Fatalf("children out of creation order: %s, %s", kids[0].ID, kids[1].ID)
	}
}

func TestStateDefaultsToZeroRecord(t *testing.T) {
	snap := testTree()
	st := snap.State("d1", DayKey(2026, 35, 2))
	if st.GoalID != "d1" || st.Period != "2026W35D2" {
		t.Fatalf("zero state should carry identifiers: %+v", st)
	}
	if !st.Zero() {
		t.Fatalf("missing record should read as zero: %+v", st)
	}
}

func TestAncestryRootDown(t *testing.T) {
	snap := testTree()
	titles := snap.Ancestry("d1")
	if len(titles) != 2 || titles[0] != "ship onboarding" || titles[1] != "draft doc" {
		t.Fatalf("ancestry: %v", titles)
	}
	if got := snap.Ancestry("q1"); len(got) != 0 {
		t.Fatalf("root goal has no ancestry, got %v", got)
	}
}

func TestDailyGoalsInNarrowsByDay(t *testing.T) {
	snap := testTree()
	if got := snap.DailyGoalsIn(2026, 35, 0); len(got) != 2 {
		t.Fatalf("whole week: expected 2, got %d", len(got))
	}
	got := snap.DailyGoalsIn(2026, 35, 3)
	if len(got) != 1 || got[0].ID != "d2" {
		t.Fatalf("day 3: %v", got)
	}
}

func TestAdhocGoalsByDomain(t *testing.T) {
	snap := testTree()
	if got := snap.AdhocGoals("life"); len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("domain life: %v", got)
	}
	if got := snap.AdhocGoals("work"); len(got) != 0 {
		t.Fatalf("domain work should be empty: %v", got)
	}
}

func TestFlaggedInReturnsOnlyStatusRecords(t *testing.T) {
	q2 := &Goal{ID: "q2", Title: "other", Depth: DepthQuarterly,
		Period: Period{Year: 2026, Quarter: 3}, Created: ts(6)}
	goals := append(testTree().Goals(), q2)
	states := []*State{
		{GoalID: "q1", Period: WeekKey(2026, 35), IsStarred: true},
		{GoalID: "q2", Period: WeekKey(2026, 35), IsComplete: true},
	}
	snap := NewSnapshot(goals, states)

	flagged := snap.FlaggedIn(2026, 35)
	if len(flagged) != 1 || flagged[0].GoalID != "q1" {
		t.Fatalf("flagged: %+v", flagged)
	}
	if len(snap.FlaggedIn(2026, 36)) != 0 {
		t.Fatal("week 36 should carry no flags")
	}
}
