package goal

import (
	"sort"
	"strings"
)

// StatusLess is the canonical ordering shared by every list surface: starred
// goals first, then pinned, then alphabetical by title (case-folded). All
// views sort through this one function; none re-implement the rule.
func StatusLess(a, b *Goal, sa, sb State) bool {
	if sa.IsStarred != sb.IsStarred {
		return sa.IsStarred
	}
	if sa.IsPinned != sb.IsPinned {
		return sa.IsPinned
	}
	la, lb := strings.ToLower(a.Title), strings.ToLower(b.Title)
	if la != lb {
		return la < lb
	}
	return a.ID < b.ID
}

// SortByStatus sorts goals in place using StatusLess. stateOf resolves the
// status record each goal should be ranked by (callers choose the week the
// star/pin flags are scoped to).
func SortByStatus(goals []*Goal, stateOf func(id string) State) {
	sort.SliceStable(goals, func(i, j int) bool {
		return StatusLess(goals[i], goals[j], stateOf(goals[i].ID), stateOf(goals[j].ID))
	})
}
