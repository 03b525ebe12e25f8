package transfer

import (
	"errors"
	"testing"

	"tableflip.dev/cascade/pkg/goal"
)

func TestMoveStatusRelocatesFlag(t *testing.T) {
	snap := planningTree(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 34), IsStarred: true})

	move, err := MoveStatus(snap, "q1", WeekRef(2026, 34), WeekRef(2026, 35), false)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if move.Upsert == nil || !move.Upsert.IsStarred || move.Upsert.Period != goal.WeekKey(2026, 35) {
		t.Fatalf("upsert: %+v", move.Upsert)
	}
	if move.ClearSource == nil || move.ClearSource.HasStatus() {
		t.Fatalf("source should be cleared: %+v", move.ClearSource)
	}
	if move.ClearSource.Period != goal.WeekKey(2026, 34) {
		t.Fatalf("clear targets the source week: %+v", move.ClearSource)
	}
}

func TestMoveStatusDuplicateKeepsSource(t *testing.T) {
	snap := planningTree(&goal.State{GoalID: "q1", Period: goal.WeekKey(2026, 34), IsPinned: true})

	move, err := MoveStatus(snap, "q1", WeekRef(2026, 34), WeekRef(2026, 35), true)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if move.Upsert == nil || !move.Upsert.IsPinned {
		t.Fatalf("upsert: %+v", move.Upsert)
	}
	if move.ClearSource != nil {
		t.Fatalf("duplicate drag leaves the source untouched: %+v", move.ClearSource)
	}
}

func TestMoveStatusWithoutFlagIsNoop(t *testing.T) {
	snap := planningTree()
	move, err := MoveStatus(snap, "q1", WeekRef(2026, 34), WeekRef(2026, 35), false)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !move.Empty() {
		t.Fatalf("status-less goal yields a no-op: %+v", move)
	}
}

func TestMoveStatusRejectsNonQuarterlyAndDays(t *testing.T) {
	snap := planningTree()
	if _, err := MoveStatus(snap, "w1", WeekRef(2026, 34), WeekRef(2026, 35), false); !errors.Is(err, goal.ErrInvalidTransition) {
		t.Fatalf("weekly goal: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := MoveStatus(snap, "q1", DayRef(2026, 34, 1), WeekRef(2026, 35), false); !errors.Is(err, goal.ErrInvalidTransition) {
		t.Fatalf("day endpoint: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := MoveStatus(snap, "missing", WeekRef(2026, 34), WeekRef(2026, 35), false); !errors.Is(err, goal.ErrNotFound) {
		t.Fatalf("unknown goal: expected ErrNotFound, got %v", err)
	}
}
