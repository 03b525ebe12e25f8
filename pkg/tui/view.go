package tui

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/cascade/pkg/glyph"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/optimistic"
	"tableflip.dev/cascade/pkg/timeutil"
)

const (
	minWidth  = 40
	minHeight = 10

	statusTTL = 4 * time.Second
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.width < minWidth {
		return "window too narrow"
	}
	if m.height > 0 && m.height < minHeight {
		return "window too short"
	}

	var b strings.Builder

	title := fmt.Sprintf(" cascade · %d", m.year)
	if m.board != nil {
		title = fmt.Sprintf(" cascade · %d Q%d · week %d", m.board.Year, m.board.Quarter, m.board.Week)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("  no goals this week; add some with `cascade add`"))
		b.WriteString("\n")
	}
	for i, r := range m.rows {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirm != "" {
		prompt := fmt.Sprintf("%d daily goals still open: y complete them too, n leave them open, esc cancel", m.confirmN)
		b.WriteString(statusStyle.Render(prompt))
	} else if m.statusMsg != "" && time.Since(m.statusTime) < statusTTL {
		b.WriteString(statusStyle.Render(m.statusMsg))
	} else {
		b.WriteString(helpStyle.Render(helpLine))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderRow(i int, r row) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("› ")
	}

	line := cursor + rowBody(r)
	if sync := m.syncMark(r.goal.ID); sync != "" {
		line += " " + sync
	}
	return line
}

func rowBody(r row) string {
	switch r.goal.Depth {
	case goal.DepthQuarterly:
		flag := " "
		switch {
		case r.state.IsStarred:
			flag = flagStyle.Render(glyph.Starred.String())
		case r.state.IsPinned:
			flag = flagStyle.Render(glyph.Pinned.String())
		}
		return flag + " " + sectionStyle.Render(r.goal.Title)

	case goal.DepthWeekly:
		marker := glyph.Open.String()
		title := r.goal.Title
		switch {
		case r.state.IsHardComplete:
			marker = glyph.HardDone.String()
			title = doneStyle.Render(title)
		case r.state.EffectiveComplete():
			marker = glyph.Done.String()
			title = doneStyle.Render(title)
		}
		return "  " + marker + " " + title

	default: // daily and adhoc
		marker := glyph.Open.String()
		title := r.goal.Title
		if r.state.IsComplete {
			marker = glyph.Done.String()
			title = doneStyle.Render(title)
		}
		label := ""
		if r.goal.Depth == goal.DepthDaily {
			label = helpStyle.Render(" ("+timeutil.DayLabel(r.goal.Period.Day)+")")
		}
		indent := "    "
		if r.goal.Depth == goal.DepthAdhoc {
			indent = "  "
		}
		return indent + marker + " " + title + label
	}
}

// syncMark renders the optimistic write state for a goal, if any.
func (m Model) syncMark(id string) string {
	switch m.tracker.StateOf(id) {
	case optimistic.Pending:
		return pendingStyle.Render("…")
	case optimistic.Error:
		return errorStyle.Render("!")
	}
	return ""
}
