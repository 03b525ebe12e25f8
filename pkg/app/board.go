package app

import (
	"context"

	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/timeutil"
)

// WeekBoard is the assembled view of one week: quarterly goals in canonical
// order, each with its weekly goals for the week and their daily children.
type WeekBoard struct {
	Year     int
	Quarter  int
	Week     int
	Sections []BoardSection
	Adhoc    []BoardDaily
}

// BoardSection groups one quarterly goal with its weekly goals for the week.
type BoardSection struct {
	Goal     *goal.Goal
	State    goal.State // week-scoped status (star/pin)
	Weeklies []BoardWeekly
}

// BoardWeekly pairs a weekly goal with its state and daily children.
type BoardWeekly struct {
	Goal    *goal.Goal
	State   goal.State
	Dailies []BoardDaily
}

// BoardDaily pairs a daily or adhoc goal with its state.
type BoardDaily struct {
	Goal  *goal.Goal
	State goal.State
}

// WeekBoard assembles the board for (year, week). Quarterly sections sort by
// the canonical status order; sections without weekly goals this week are
// included so priority flags stay visible.
func (s *Service) WeekBoard(ctx context.Context, year, week int) (*WeekBoard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildWeekBoard(snap, year, week), nil
}

// BuildWeekBoard assembles a board from an existing snapshot.
func BuildWeekBoard(snap *goal.Snapshot, year, week int) *WeekBoard {
	monday := timeutil.DateOf(year, week, 1)
	_, quarter := timeutil.QuarterOf(monday)

	board := &WeekBoard{Year: year, Quarter: quarter, Week: week}
	weekKey := goal.WeekKey(year, week)

	quarterlies := snap.QuarterlyGoals(monday.Year(), quarter)
	goal.SortByStatus(quarterlies, func(id string) goal.State {
		return snap.State(id, weekKey)
	})

	weekliesByParent := make(map[string][]*goal.Goal)
	for _, wg := range snap.WeeklyGoals(year, week) {
		weekliesByParent[wg.ParentID] = append(weekliesByParent[wg.ParentID], wg)
	}

	for _, qg := range quarterlies {
		section := BoardSection{
			Goal:  qg,
			State: snap.State(qg.ID, weekKey),
		}
		for _, wg := range weekliesByParent[qg.ID] {
			bw := BoardWeekly{Goal: wg, State: snap.StateOf(wg)}
			for _, dg := range snap.DailyChildren(wg.ID) {
				if dg.Period.Year != year || dg.Period.Week != week {
					continue
				}
				bw.Dailies = append(bw.Dailies, BoardDaily{Goal: dg, State: snap.StateOf(dg)})
			}
			section.Weeklies = append(section.Weeklies, bw)
		}
		board.Sections = append(board.Sections, section)
	}

	for _, ag := range snap.AdhocGoals("") {
		if ag.Period.Year != year || ag.Period.Week != week {
			continue
		}
		board.Adhoc = append(board.Adhoc, BoardDaily{Goal: ag, State: snap.StateOf(ag)})
	}

	return board
}
