package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/cascade/pkg/goal"
)

func TestBuildWeekBoardGroupsAndSorts(t *testing.T) {
	m := newMemory()
	ctx := context.Background()
	created := func(day int) goal.Timestamp {
		return goal.Timestamp{Time: time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)}
	}

	qa := &goal.Goal{Title: "alpha goal", Depth: goal.DepthQuarterly,
		Period: goal.Period{Year: 2026, Quarter: 3}, Created: created(1)}
	qb := &goal.Goal{Title: "beta goal", Depth: goal.DepthQuarterly,
		Period: goal.Period{Year: 2026, Quarter: 3}, Created: created(2)}
	for _, g := range []*goal.Goal{qa, qb} {
		if err := m.Store(g); err != nil {
			t.Fatal(err)
		}
	}
	w := &goal.Goal{Title: "draft doc", Depth: goal.DepthWeekly, ParentID: qa.ID,
		Period: goal.Period{Year: 2026, Quarter: 3, Week: 35}, Created: created(3)}
	if err := m.Store(w); err != nil {
		t.Fatal(err)
	}
	d := &goal.Goal{Title: "write intro", Depth: goal.DepthDaily, ParentID: w.ID,
		Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: created(4)}
	if err := m.Store(d); err != nil {
		t.Fatal(err)
	}
	adhoc := &goal.Goal{Title: "renew passport", Depth: goal.DepthAdhoc, Domain: "life",
		Period: goal.Period{Year: 2026, Quarter: 3, Week: 35, Day: 2}, Created: created(5)}
	if err := m.Store(adhoc); err != nil {
		t.Fatal(err)
	}

	// Starring beta must lift it above alpha for this week only.
	s := &Service{Persistence: m}
	if _, err := s.Star(ctx, qb.ID, 2026, 35); err != nil {
		t.Fatalf("star: %v", err)
	}

	board, err := s.WeekBoard(ctx, 2026, 35)
	if err != nil {
		t.Fatalf("board: %v", err)
	}

	if board.Year != 2026 || board.Quarter != 3 || board.Week != 35 {
		t.Fatalf("board header: %+v", board)
	}
	if len(board.Sections) != 2 {
		t.Fatalf("sections: %d", len(board.Sections))
	}
	if board.Sections[0].Goal.ID != qb.ID {
		t.Fatal("starred quarterly should sort first")
	}
	if !board.Sections[0].State.IsStarred {
		t.Fatalf("section state: %+v", board.Sections[0].State)
	}

	alpha := board.Sections[1]
	if len(alpha.Weeklies) != 1 || alpha.Weeklies[0].Goal.ID != w.ID {
		t.Fatalf("weeklies under alpha: %+v", alpha.Weeklies)
	}
	if len(alpha.Weeklies[0].Dailies) != 1 || alpha.Weeklies[0].Dailies[0].Goal.ID != d.ID {
		t.Fatalf("dailies under the weekly: %+v", alpha.Weeklies[0].Dailies)
	}

	if len(board.Adhoc) != 1 || board.Adhoc[0].Goal.ID != adhoc.ID {
		t.Fatalf("adhoc row: %+v", board.Adhoc)
	}
}

func TestBuildWeekBoardFiltersOtherWeeks(t *testing.T) {
	m := newMemory()
	_, _, _, _ = seedWeek(t, m)
	s := &Service{Persistence: m}

	board, err := s.WeekBoard(context.Background(), 2026, 36)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	for _, section := range board.Sections {
		if len(section.Weeklies) != 0 {
			t.Fatalf("week 36 should carry no weeklies: %+v", section.Weeklies)
		}
	}
}
