package goal

import (
	"fmt"
	"sort"
)

type stateKey struct {
	goalID string
	period PeriodKey
}

// Snapshot is the immutable read model an engine invocation operates on. It
// is built from the goal and state records the store returned and indexes
// them for child and ancestry queries. Engines never mutate a snapshot; they
// return new state values for the caller to persist.
type Snapshot struct {
	goals    map[string]*Goal
	states   map[stateKey]State
	children map[string][]string
	order    []string
}

// NewSnapshot indexes the provided records. Nil entries are skipped.
func NewSnapshot(goals []*Goal, states []*State) *Snapshot {
	s := &Snapshot{
		goals:    make(map[string]*Goal, len(goals)),
		states:   make(map[stateKey]State, len(states)),
		children: make(map[string][]string),
	}
	for _, g := range goals {
		if g == nil || g.ID == "" {
			continue
		}
		if _, ok := s.goals[g.ID]; ok {
			continue
		}
		s.goals[g.ID] = g
		s.order = append(s.order, g.ID)
		if g.ParentID != "" {
			s.children[g.ParentID] = append(s.children[g.ParentID], g.ID)
		}
	}
	for parent := range s.children {
		ids := s.children[parent]
		sort.SliceStable(ids, func(i, j int) bool {
			left, right := s.goals[ids[i]], s.goals[ids[j]]
			if left.Created.Equal(right.Created.Time) {
				return left.ID < right.ID
			}
			return left.Created.Before(right.Created.Time)
		})
	}
	for _, st := range states {
		if st == nil || st.GoalID == "" || st.Period == "" {
			continue
		}
		s.states[stateKey{st.GoalID, st.Period}] = *st
	}
	return s
}

// Goal looks up a goal by id.
func (s *Snapshot) Goal(id string) (*Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal: %w: %s", ErrNotFound, id)
	}
	return g, nil
}

// Has reports whether the snapshot contains the goal id.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.goals[id]
	return ok
}

// State returns the state record for the goal scoped to period. A missing
// record yields the zero state with identifiers filled in, so callers can
// treat absent and all-false records the same way.
func (s *Snapshot) State(id string, period PeriodKey) State {
	if st, ok := s.states[stateKey{id, period}]; ok {
		return st
	}
	return State{GoalID: id, Period: period}
}

// StateOf is shorthand for the state scoped to the goal's own period.
func (s *Snapshot) StateOf(g *Goal) State {
	return s.State(g.ID, g.StateKey())
}

// Goals returns all goals in insertion order.
func (s *Snapshot) Goals() []*Goal {
	out := make([]*Goal, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.goals[id])
	}
	return out
}

// Children returns the direct children of the goal, ordered by creation time.
func (s *Snapshot) Children(id string) []*Goal {
	ids := s.children[id]
	out := make([]*Goal, 0, len(ids))
	for _, cid := range ids {
		out = append(out, s.goals[cid])
	}
	return out
}

// DailyChildren returns the daily-level children of a weekly goal.
func (s *Snapshot) DailyChildren(weeklyID string) []*Goal {
	var out []*Goal
	for _, c := range s.Children(weeklyID) {
		if c.Depth == DepthDaily {
			out = append(out, c)
		}
	}
	return out
}

// Ancestry returns the titles from the root of the tree down to the goal's
// direct parent, for preview display. Unknown parents truncate the chain.
func (s *Snapshot) Ancestry(id string) []string {
	var titles []string
	g, ok := s.goals[id]
	if !ok {
		return nil
	}
	for g.ParentID != "" {
		parent, ok := s.goals[g.ParentID]
		if !ok {
			break
		}
		titles = append([]string{parent.Title}, titles...)
		g = parent
	}
	return titles
}

// QuarterlyGoals lists quarterly goals anchored to the given quarter.
func (s *Snapshot) QuarterlyGoals(year, quarter int) []*Goal {
	var out []*Goal
	for _, g := range s.Goals() {
		if g.Depth == DepthQuarterly && g.Period.Year == year && g.Period.Quarter == quarter {
			out = append(out, g)
		}
	}
	return out
}

// WeeklyGoals lists weekly goals anchored to the given week.
func (s *Snapshot) WeeklyGoals(year, week int) []*Goal {
	var out []*Goal
	for _, g := range s.Goals() {
		if g.Depth == DepthWeekly && g.Period.Year == year && g.Period.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// DailyGoalsIn lists daily goals anchored to the given week, optionally
// narrowed to a single day (day 0 means the whole week).
func (s *Snapshot) DailyGoalsIn(year, week, day int) []*Goal {
	var out []*Goal
	for _, g := range s.Goals() {
		if g.Depth != DepthDaily || g.Period.Year != year || g.Period.Week != week {
			continue
		}
		if day != 0 && g.Period.Day != day {
			continue
		}
		out = append(out, g)
	}
	return out
}

// AdhocGoals lists adhoc goals, optionally narrowed to a domain.
func (s *Snapshot) AdhocGoals(domain string) []*Goal {
	var out []*Goal
	for _, g := range s.Goals() {
		if g.Depth != DepthAdhoc {
			continue
		}
		if domain != "" && g.Domain != domain {
			continue
		}
		out = append(out, g)
	}
	return out
}

// FlaggedIn returns the starred/pinned status records quarterly goals carry
// for the given week.
func (s *Snapshot) FlaggedIn(year, week int) []State {
	key := WeekKey(year, week)
	var out []State
	for _, g := range s.Goals() {
		if g.Depth != DepthQuarterly {
			continue
		}
		if st := s.State(g.ID, key); st.HasStatus() {
			out = append(out, st)
		}
	}
	return out
}
