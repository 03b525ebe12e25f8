package printers

import (
	"testing"

	"tableflip.dev/cascade/pkg/goal"
)

func TestWeeklyMarkerPrefersHardComplete(t *testing.T) {
	if got := weeklyMarker(goal.State{IsHardComplete: true, IsComplete: true}); got != "✔" {
		t.Fatalf("hard complete: got %q", got)
	}
	if got := weeklyMarker(goal.State{IsComplete: true}); got != "✘" {
		t.Fatalf("soft complete: got %q", got)
	}
	if got := weeklyMarker(goal.State{}); got != "○" {
		t.Fatalf("open: got %q", got)
	}
}

func TestFlagSymbol(t *testing.T) {
	if got := flagSymbol(goal.State{IsStarred: true}); got != "★" {
		t.Fatalf("starred: got %q", got)
	}
	if got := flagSymbol(goal.State{IsPinned: true}); got != "⚑" {
		t.Fatalf("pinned: got %q", got)
	}
	if got := flagSymbol(goal.State{}); got != " " {
		t.Fatalf("no flag: got %q", got)
	}
}

func TestDailyMarker(t *testing.T) {
	if got := dailyMarker(goal.State{IsComplete: true}); got != "✘" {
		t.Fatalf("complete: got %q", got)
	}
	if got := dailyMarker(goal.State{}); got != "○" {
		t.Fatalf("open: got %q", got)
	}
}
