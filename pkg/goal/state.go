package goal

import "time"

// State is the mutable, period-scoped status attached to a goal.
//
// A daily goal's IsComplete is the single source of truth for that leaf and
// is never derived. A weekly goal's IsComplete is soft completion derived
// from its daily children; IsHardComplete is the explicit manual override
// that participates in propagation. IsStarred/IsPinned apply to quarterly
// goals only and are scoped per week.
type State struct {
	GoalID         string     `json:"goalId"`
	Period         PeriodKey  `json:"period"`
	IsComplete     bool       `json:"isComplete,omitempty"`
	IsHardComplete bool       `json:"isHardComplete,omitempty"`
	IsStarred      bool       `json:"isStarred,omitempty"`
	IsPinned       bool       `json:"isPinned,omitempty"`
	CompletedAt    *Timestamp `json:"completedAt,omitempty"`
}

// EffectiveComplete reports whether the goal should display as done: soft
// completion or the manual hard-complete override.
func (s State) EffectiveComplete() bool {
	return s.IsComplete || s.IsHardComplete
}

// HasStatus reports whether a priority flag is set.
func (s State) HasStatus() bool {
	return s.IsStarred || s.IsPinned
}

// Zero reports whether the record carries no flags at all; zero records need
// not be persisted.
func (s State) Zero() bool {
	return !s.IsComplete && !s.IsHardComplete && !s.IsStarred && !s.IsPinned
}

// SetComplete transitions the completion flag, stamping CompletedAt on the
// false→true edge and clearing it on true→false.
func (s *State) SetComplete(v bool, now time.Time) {
	if v == s.IsComplete {
		return
	}
	s.IsComplete = v
	if v {
		s.CompletedAt = &Timestamp{Time: now}
	} else {
		s.CompletedAt = nil
	}
}
