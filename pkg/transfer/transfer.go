// Package transfer moves incomplete work from one period to the next: the
// bulk "pull incomplete" between weeks or days, and the single-goal priority
// status drag between weeks.
//
// Transfers are two-phase. Preview derives a plan without mutating anything;
// Commit re-derives the same plan from current data (never trusting a stale
// client-held preview) and describes the whole change as one store batch.
package transfer

import (
	"fmt"

	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/status"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
)

// PeriodRef identifies a transfer endpoint: a whole week, or a single day
// when Day is 1..7.
type PeriodRef struct {
	Year int
	Week int
	Day  int
}

// WeekRef builds a whole-week endpoint.
func WeekRef(year, week int) PeriodRef {
	return PeriodRef{Year: year, Week: week}
}

// DayRef builds a single-day endpoint.
func DayRef(year, week, day int) PeriodRef {
	return PeriodRef{Year: year, Week: week, Day: day}
}

// IsDay reports whether the endpoint targets a single day.
func (r PeriodRef) IsDay() bool {
	return r.Day != 0
}

func (r PeriodRef) String() string {
	if r.IsDay() {
		return string(goal.DayKey(r.Year, r.Week, r.Day))
	}
	return string(goal.WeekKey(r.Year, r.Week))
}

// Item is one incomplete daily goal the plan will reassign. Ancestry titles
// are carried for preview display.
type Item struct {
	GoalID         string
	Title          string
	WeeklyTitle    string
	QuarterlyTitle string
	From           goal.Period
	To             goal.Period
}

// StatusCarry replicates a quarterly goal's starred/pinned status into the
// target week. Only quarterlies whose goals the plan moves carry over; an
// empty plan carries nothing.
type StatusCarry struct {
	GoalID  string
	Title   string
	Starred bool
	Pinned  bool
}

// Plan describes everything a transfer commit would change.
type Plan struct {
	From     PeriodRef
	To       PeriodRef
	Items    []Item
	Statuses []StatusCarry
}

// Empty reports whether committing the plan would change nothing. Callers
// should present a no-op confirmation instead of committing an empty plan.
func (p *Plan) Empty() bool {
	return p == nil || (len(p.Items) == 0 && len(p.Statuses) == 0)
}

// GoalIDs returns the ids of the daily goals the plan moves.
func (p *Plan) GoalIDs() []string {
	if p == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		ids = append(ids, item.GoalID)
	}
	return ids
}

// Preview computes the transfer plan for (from, to) without mutating
// anything. It is a pure function of the snapshot: identical inputs yield
// identical plans.
func Preview(snap *goal.Snapshot, from, to PeriodRef) (*Plan, error) {
	if err := validateEndpoints(from, to); err != nil {
		return nil, err
	}

	plan := &Plan{From: from, To: to}

	for _, g := range snap.DailyGoalsIn(from.Year, from.Week, from.Day) {
		st := snap.StateOf(g)
		if st.IsComplete {
			// Completed goals stay where they were finished.
			continue
		}
		plan.Items = append(plan.Items, Item{
			GoalID:         g.ID,
			Title:          g.Title,
			WeeklyTitle:    parentTitle(snap, g.ParentID),
			QuarterlyTitle: grandparentTitle(snap, g.ParentID),
			From:           g.Period,
			To:             targetPeriod(g, to),
		})
	}

	if (from.Year != to.Year || from.Week != to.Week) && len(plan.Items) > 0 {
		affected := affectedQuarterlies(snap, plan.Items)
		for _, st := range snap.FlaggedIn(from.Year, from.Week) {
			if _, ok := affected[st.GoalID]; !ok {
				continue
			}
			g, err := snap.Goal(st.GoalID)
			if err != nil {
				continue
			}
			plan.Statuses = append(plan.Statuses, StatusCarry{
				GoalID:  st.GoalID,
				Title:   g.Title,
				Starred: st.IsStarred,
				Pinned:  st.IsPinned,
			})
		}
	}

	return plan, nil
}

// Commit re-derives the plan from current data and renders it as one store
// batch. When a previewed plan is provided, Dropped lists the goal ids shown
// in the preview that are no longer eligible (for example completed between
// preview and confirm); the commit proceeds with the fresh plan regardless
// and the caller informs the user the acted-upon set may differ.
type Commit struct {
	Plan    *Plan
	Batch   store.Batch
	Dropped []string
}

// CommitPlan builds the commit for (from, to). The caller applies
// Commit.Batch through the store in a single call; this engine never writes.
func CommitPlan(snap *goal.Snapshot, from, to PeriodRef, previewed *Plan) (*Commit, error) {
	plan, err := Preview(snap, from, to)
	if err != nil {
		return nil, err
	}

	c := &Commit{Plan: plan}
	for _, item := range plan.Items {
		c.Batch.Reassignments = append(c.Batch.Reassignments, store.Reassignment{
			GoalID: item.GoalID,
			Period: item.To,
		})
	}
	for _, carry := range plan.Statuses {
		c.Batch.States = append(c.Batch.States,
			status.Upsert(snap, carry.GoalID, to.Year, to.Week, carry.Starred, carry.Pinned))
	}

	if previewed != nil {
		current := make(map[string]struct{}, len(plan.Items))
		for _, item := range plan.Items {
			current[item.GoalID] = struct{}{}
		}
		for _, id := range previewed.GoalIDs() {
			if _, ok := current[id]; !ok {
				c.Dropped = append(c.Dropped, id)
			}
		}
	}

	return c, nil
}

func validateEndpoints(from, to PeriodRef) error {
	if from.Week < 1 || to.Week < 1 || from.Year <= 0 || to.Year <= 0 {
		return fmt.Errorf("transfer: %w: endpoints must name a week", goal.ErrInvalidTransition)
	}
	if from.IsDay() != to.IsDay() {
		return fmt.Errorf("transfer: %w: endpoints must both be weeks or both be days", goal.ErrInvalidTransition)
	}
	if from == to {
		return fmt.Errorf("transfer: %w: source and target period are the same", goal.ErrInvalidTransition)
	}
	return nil
}

// targetPeriod computes the goal's new period anchor. Whole-week pulls keep
// the goal's weekday; day pulls land on the target day. The hierarchy edge is
// untouched either way.
func targetPeriod(g *goal.Goal, to PeriodRef) goal.Period {
	day := g.Period.Day
	if to.IsDay() {
		day = to.Day
	}
	date := timeutil.DateOf(to.Year, to.Week, day)
	_, quarter := timeutil.QuarterOf(date)
	return goal.Period{
		Year:    to.Year,
		Quarter: quarter,
		Week:    to.Week,
		Day:     day,
		Date:    goal.Timestamp{Time: date},
	}
}

// affectedQuarterlies collects the quarterly roots of the goals the plan
// moves. Flags on an untouched quarterly stay scoped to the source week.
func affectedQuarterlies(snap *goal.Snapshot, items []Item) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		g, err := snap.Goal(item.GoalID)
		if err != nil {
			continue
		}
		for g.ParentID != "" {
			parent, err := snap.Goal(g.ParentID)
			if err != nil {
				break
			}
			g = parent
		}
		if g.Depth == goal.DepthQuarterly {
			out[g.ID] = struct{}{}
		}
	}
	return out
}

func parentTitle(snap *goal.Snapshot, parentID string) string {
	if parentID == "" {
		return ""
	}
	if g, err := snap.Goal(parentID); err == nil {
		return g.Title
	}
	return ""
}

func grandparentTitle(snap *goal.Snapshot, parentID string) string {
	if parentID == "" {
		return ""
	}
	parent, err := snap.Goal(parentID)
	if err != nil || parent.ParentID == "" {
		return ""
	}
	if g, err := snap.Goal(parent.ParentID); err == nil {
		return g.Title
	}
	return ""
}
