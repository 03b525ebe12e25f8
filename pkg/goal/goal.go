// Package goal defines the quarterly/weekly/daily goal model shared by the
// cascade engines. It is pure data access: structural helpers and queries,
// no side effects.
package goal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation references a goal id absent from
// the provided snapshot.
var ErrNotFound = errors.New("goal not found")

// ErrInvalidTransition is returned when an operation is applied to a goal at
// the wrong hierarchy level (for example hard-completing a daily goal).
var ErrInvalidTransition = errors.New("invalid transition")

// Depth identifies the hierarchy level of a goal.
type Depth int

const (
	// DepthAdhoc is a standalone goal outside the quarterly tree, grouped
	// by domain instead of ancestry.
	DepthAdhoc Depth = -1
	// DepthQuarterly is the root level of the tree.
	DepthQuarterly Depth = 0
	// DepthWeekly goals hang under a quarterly goal.
	DepthWeekly Depth = 1
	// DepthDaily goals hang under a weekly goal and are the completion leaves.
	DepthDaily Depth = 2
)

func (d Depth) String() string {
	switch d {
	case DepthAdhoc:
		return "adhoc"
	case DepthQuarterly:
		return "quarterly"
	case DepthWeekly:
		return "weekly"
	case DepthDaily:
		return "daily"
	default:
		return fmt.Sprintf("depth(%d)", int(d))
	}
}

// Period anchors a goal to a time bucket. Quarterly goals carry year and
// quarter; weekly goals additionally carry the ISO week number; daily and
// adhoc goals also carry the day of week (1=Monday..7=Sunday) and the
// calendar date.
type Period struct {
	Year    int       `json:"year"`
	Quarter int       `json:"quarter,omitempty"`
	Week    int       `json:"week,omitempty"`
	Day     int       `json:"day,omitempty"`
	Date    Timestamp `json:"date,omitempty"`
}

// PeriodKey is the canonical string form of a period bucket, used to scope
// persisted state records. Examples: "2026Q3", "2026W35", "2026W35D2".
type PeriodKey string

// QuarterKey builds the key for a quarter bucket.
func QuarterKey(year, quarter int) PeriodKey {
	return PeriodKey(fmt.Sprintf("%04dQ%d", year, quarter))
}

// WeekKey builds the key for a week bucket.
func WeekKey(year, week int) PeriodKey {
	return PeriodKey(fmt.Sprintf("%04dW%02d", year, week))
}

// DayKey builds the key for a day bucket.
func DayKey(year, week, day int) PeriodKey {
	return PeriodKey(fmt.Sprintf("%04dW%02dD%d", year, week, day))
}

// KeyFor returns the period key at the granularity the given depth is scoped
// to: quarter for quarterly goals, week for weekly goals, day for daily and
// adhoc goals.
func (p Period) KeyFor(d Depth) PeriodKey {
	switch d {
	case DepthQuarterly:
		return QuarterKey(p.Year, p.Quarter)
	case DepthWeekly:
		return WeekKey(p.Year, p.Week)
	default:
		return DayKey(p.Year, p.Week, p.Day)
	}
}

// Goal is a node in the hierarchy.
type Goal struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Details  string     `json:"details,omitempty"` // rich text, opaque to the engines
	Depth    Depth      `json:"depth"`
	ParentID string     `json:"parentId,omitempty"`
	Period   Period     `json:"period"`
	DueDate  *Timestamp `json:"dueDate,omitempty"`
	Domain   string     `json:"domain,omitempty"` // adhoc grouping label
	Created  Timestamp  `json:"created"`
}

// New builds a goal at the given depth and period. The ID is assigned by the
// store on first write.
func New(title string, depth Depth, period Period) *Goal {
	return &Goal{
		Title:  strings.TrimSpace(title),
		Depth:  depth,
		Period: period,
	}
}

// StateKey is the period key the goal's mutable state is scoped to.
func (g *Goal) StateKey() PeriodKey {
	return g.Period.KeyFor(g.Depth)
}

// Validate checks structural invariants: parent linkage by depth, and
// plausible period fields for the level.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("goal: title required")
	}
	switch g.Depth {
	case DepthQuarterly, DepthAdhoc:
		if g.ParentID != "" {
			return fmt.Errorf("goal: %s goals cannot have a parent", g.Depth)
		}
	case DepthWeekly, DepthDaily:
		if g.ParentID == "" {
			return fmt.Errorf("goal: %s goals require a parent", g.Depth)
		}
	default:
		return fmt.Errorf("goal: unknown depth %d", int(g.Depth))
	}
	if g.Period.Year <= 0 {
		return errors.New("goal: period year required")
	}
	if g.Depth != DepthAdhoc && (g.Period.Quarter < 1 || g.Period.Quarter > 4) {
		return fmt.Errorf("goal: quarter %d out of range", g.Period.Quarter)
	}
	if g.Depth == DepthWeekly || g.Depth == DepthDaily {
		if g.Period.Week < 1 || g.Period.Week > 53 {
			return fmt.Errorf("goal: week %d out of range", g.Period.Week)
		}
	}
	if g.Depth == DepthDaily || g.Depth == DepthAdhoc {
		if g.Period.Day < 1 || g.Period.Day > 7 {
			return fmt.Errorf("goal: day %d out of range", g.Period.Day)
		}
	}
	return nil
}
