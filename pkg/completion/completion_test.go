package completion

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/cascade/pkg/goal"
)

var now = time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC)

func tree(states ...*goal.State) *goal.Snapshot {
	created := func(day int) goal.Timestamp {
		return goal.Timestamp{Time: time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)}
	}
	goals := []*goal.Goal{
		{ID: "q1", Title: "ship onboarding", Depth: goal.DepthQuarterly,
			Period: goal.Period{Year: 2026, Quarter: 3}, Created: created(1)},
		{ID: "w1", Title: "draft doc", Depth: goal.DepthWeekly, ParentID: "q1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35}, Created: created(2)},
		{ID: "d1", Title: "write intro", Depth: goal.DepthDaily, ParentID: "w1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: created(3)},
		{ID: "d2", Title: "write body", Depth: goal.DepthDaily, ParentID: "w1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 3}, Created: created(4)},
		{ID: "w2", Title: "empty weekly", Depth: goal.DepthWeekly, ParentID: "q1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35}, Created: created(5)},
		{ID: "a1", Title: "renew passport", Depth: goal.DepthAdhoc, Domain: "life",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: created(6)},
	}
	return goal.NewSnapshot(goals, states)
}

func stateFor(eff Effect, goalID string) (goal.State, bool) {
	for _, st := range eff.States {
		if st.GoalID == goalID {
			return st, true
		}
	}
	return goal.State{}, false
}

func TestToggleDailyCompletesLeafAndRecomputesParent(t *testing.T) {
	snap := tree()
	eff, err := ToggleDaily(snap, "d1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	leaf, ok := stateFor(eff, "d1")
	if !ok || !leaf.IsComplete || leaf.CompletedAt == nil {
		t.Fatalf("leaf state: %+v", leaf)
	}
	parent, ok := stateFor(eff, "w1")
	if !ok {
		t.Fatal("parent state missing from effect")
	}
	if parent.IsComplete {
		t.Fatal("one of two children complete should not soft-complete the parent")
	}
}

func TestToggleDailyLastChildSoftCompletesParent(t *testing.T) {
	snap := tree(&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true})
	eff, err := ToggleDaily(snap, "d2", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	parent, ok := stateFor(eff, "w1")
	if !ok || !parent.IsComplete {
		t.Fatalf("all children complete should soft-complete the parent: %+v", parent)
	}
}

func TestUncheckingChildClearsParentHardComplete(t *testing.T) {
	snap := tree(
		&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true},
		&goal.State{GoalID: "d2", Period: "2026W35D3", IsComplete: true},
		&goal.State{GoalID: "w1", Period: "2026W35", IsComplete: true, IsHardComplete: true},
	)
	eff, err := ToggleDaily(snap, "d1", false, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	parent, ok := stateFor(eff, "w1")
	if !ok {
		t.Fatal("parent state missing from effect")
	}
	if parent.IsHardComplete {
		t.Fatal("unchecking a child must clear the parent's hard-complete flag")
	}
	if parent.IsComplete {
		t.Fatal("soft completion must recompute to false")
	}
}

func TestUncheckingSiblingIsIdempotentOnParent(t *testing.T) {
	// d2 already incomplete, parent no longer hard-complete. Unchecking d1 now
	// leaves the parent exactly as it is.
	snap := tree(
		&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true},
	)
	eff, err := ToggleDaily(snap, "d1", false, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	parent, ok := stateFor(eff, "w1")
	if !ok {
		t.Fatal("parent state missing from effect")
	}
	if parent.IsHardComplete || parent.IsComplete {
		t.Fatalf("parent should stay incomplete: %+v", parent)
	}
}

func TestToggleDailyAdhocSkipsPropagation(t *testing.T) {
	snap := tree()
	eff, err := ToggleDaily(snap, "a1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(eff.States) != 1 || eff.States[0].GoalID != "a1" {
		t.Fatalf("adhoc toggle should touch only the leaf: %+v", eff.States)
	}
}

func TestToggleDailyRejectsNonLeaf(t *testing.T) {
	snap := tree()
	_, err := ToggleDaily(snap, "w1", true, now)
	if !errors.Is(err, goal.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestToggleWeeklyRequiresConfirmationWithOpenChildren(t *testing.T) {
	snap := tree()
	res, err := ToggleWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.RequiresConfirmation {
		t.Fatal("open children must force confirmation")
	}
	if len(res.Incomplete) != 2 {
		t.Fatalf("expected both children listed, got %d", len(res.Incomplete))
	}
	if !res.Effect.Empty() {
		t.Fatalf("confirmation path must not mutate: %+v", res.Effect.States)
	}
}

func TestToggleWeeklyDirectCompleteWithoutChildren(t *testing.T) {
	snap := tree()
	res, err := ToggleWeekly(snap, "w2", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.RequiresConfirmation {
		t.Fatal("childless weekly completes directly")
	}
	st, ok := stateFor(res.Effect, "w2")
	if !ok || !st.IsHardComplete || !st.IsComplete {
		t.Fatalf("direct complete: %+v", st)
	}
}

func TestToggleWeeklyDirectCompleteWhenChildrenDone(t *testing.T) {
	snap := tree(
		&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true},
		&goal.State{GoalID: "d2", Period: "2026W35D3", IsComplete: true},
	)
	res, err := ToggleWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.RequiresConfirmation {
		t.Fatal("all children complete should not require confirmation")
	}
}

func TestToggleWeeklyFalseClearsHardFlag(t *testing.T) {
	snap := tree(
		&goal.State{GoalID: "w1", Period: "2026W35", IsComplete: true, IsHardComplete: true},
	)
	res, err := ToggleWeekly(snap, "w1", false, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	st, ok := stateFor(res.Effect, "w1")
	if !ok || st.IsHardComplete {
		t.Fatalf("hard flag should clear: %+v", st)
	}
	if st.IsComplete {
		t.Fatal("soft completion recomputes from the open children")
	}
}

func TestToggleWeeklyFalseWithoutHardFlagIsNoop(t *testing.T) {
	snap := tree()
	res, err := ToggleWeekly(snap, "w1", false, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Effect.Empty() {
		t.Fatalf("nothing to clear: %+v", res.Effect.States)
	}
}

func TestCompleteWeeklyCascadeCompletesChildren(t *testing.T) {
	snap := tree()
	eff, err := CompleteWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	for _, id := range []string{"d1", "d2"} {
		st, ok := stateFor(eff, id)
		if !ok || !st.IsComplete {
			t.Fatalf("child %s should be completed by cascade: %+v", id, st)
		}
	}
	st, ok := stateFor(eff, "w1")
	if !ok || !st.IsHardComplete || !st.IsComplete {
		t.Fatalf("weekly state after cascade: %+v", st)
	}
}

func TestCompleteWeeklyNoCascadeLeavesChildrenOpen(t *testing.T) {
	snap := tree()
	eff, err := CompleteWeekly(snap, "w1", false, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(eff.States) != 1 {
		t.Fatalf("only the weekly record should change: %+v", eff.States)
	}
	st := eff.States[0]
	if st.GoalID != "w1" || !st.IsHardComplete {
		t.Fatalf("weekly state: %+v", st)
	}
	// Hard-complete with open children is a valid, intentional state.
	if st.IsComplete {
		t.Fatal("soft completion stays derived, children are open")
	}
	if !st.EffectiveComplete() {
		t.Fatal("the goal still displays as done via the hard flag")
	}
}

func TestCompleteWeeklyCascadeSkipsAlreadyCompleteChildren(t *testing.T) {
	snap := tree(&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true})
	eff, err := CompleteWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, ok := stateFor(eff, "d1"); ok {
		t.Fatal("already complete child should not be rewritten")
	}
	if _, ok := stateFor(eff, "d2"); !ok {
		t.Fatal("open child should be completed")
	}
}

// pulledTree mirrors tree() after d2 was pulled into week 36: the hierarchy
// edge to w1 survives, the period anchor does not.
func pulledTree(states ...*goal.State) *goal.Snapshot {
	created := func(day int) goal.Timestamp {
		return goal.Timestamp{Time: time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)}
	}
	goals := []*goal.Goal{
		{ID: "q1", Title: "ship onboarding", Depth: goal.DepthQuarterly,
			Period: goal.Period{Year: 2026, Quarter: 3}, Created: created(1)},
		{ID: "w1", Title: "draft doc", Depth: goal.DepthWeekly, ParentID: "q1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35}, Created: created(2)},
		{ID: "d1", Title: "write intro", Depth: goal.DepthDaily, ParentID: "w1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: created(3)},
		{ID: "d2", Title: "write body", Depth: goal.DepthDaily, ParentID: "w1",
			Period: goal.Period{Year: 2026, Quarter: 3, Week: 36, Day: 3}, Created: created(4)},
	}
	return goal.NewSnapshot(goals, states)
}

func TestToggleDailyDerivesParentFromItsWeekOnly(t *testing.T) {
	snap := pulledTree()
	eff, err := ToggleDaily(snap, "d1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	parent, ok := stateFor(eff, "w1")
	if !ok || !parent.IsComplete {
		t.Fatalf("the pulled child belongs to week 36; completing d1 should soft-complete w1: %+v", parent)
	}
}

func TestToggleWeeklyIgnoresPulledChildren(t *testing.T) {
	snap := pulledTree(&goal.State{GoalID: "d1", Period: "2026W35D2", IsComplete: true})
	res, err := ToggleWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.RequiresConfirmation {
		t.Fatalf("the open child in week 36 must not block week 35: %+v", res.Incomplete)
	}
}

func TestCompleteWeeklyCascadeLeavesPulledChildrenAlone(t *testing.T) {
	snap := pulledTree()
	eff, err := CompleteWeekly(snap, "w1", true, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, ok := stateFor(eff, "d2"); ok {
		t.Fatal("cascade must not complete a child pulled into another week")
	}
	if _, ok := stateFor(eff, "d1"); !ok {
		t.Fatal("the week's own child should be completed")
	}
}

func TestCompleteWeeklyRejectsNonWeekly(t *testing.T) {
	snap := tree()
	if _, err := CompleteWeekly(snap, "q1", true, now); !errors.Is(err, goal.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
