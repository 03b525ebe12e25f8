// Package printers renders goal boards and transfer plans for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/glyph"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/timeutil"
	"tableflip.dev/cascade/pkg/transfer"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Week renders the assembled board: quarterly sections with their priority
// flags, weekly goals with completion markers, and daily children indented
// under them.
func (pp *PrettyPrint) Week(board *app.WeekBoard) {
	pp.Title(fmt.Sprintf("Week %d, %d (Q%d)", board.Week, board.Year, board.Quarter))

	if len(board.Sections) == 0 && len(board.Adhoc) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "

	for _, section := range board.Sections {
		pp.addRow(tbl, section.Goal.ID, flagSymbol(section.State), section.Goal.Title, "")
		for _, weekly := range section.Weeklies {
			pp.addRow(tbl, weekly.Goal.ID, weeklyMarker(weekly.State), "  "+weekly.Goal.Title, "")
			for _, daily := range weekly.Dailies {
				pp.addRow(tbl, daily.Goal.ID, dailyMarker(daily.State), "    "+daily.Goal.Title,
					timeutil.DayLabel(daily.Goal.Period.Day))
			}
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(board.Adhoc) > 0 {
		pp.Title("Adhoc")
		adhoc := uitable.New()
		adhoc.Separator = " "
		for _, item := range board.Adhoc {
			label := item.Goal.Title
			if item.Goal.Domain != "" {
				label = fmt.Sprintf("%s (%s)", label, item.Goal.Domain)
			}
			pp.addRow(adhoc, item.Goal.ID, dailyMarker(item.State), label,
				timeutil.DayLabel(item.Goal.Period.Day))
		}
		_, _ = fmt.Fprintln(color.Output, adhoc)
	}
}

// Plan renders a transfer preview: the goals that would move with their
// ancestry, and the priority statuses that would carry over.
func (pp *PrettyPrint) Plan(plan *transfer.Plan) {
	pp.Title(fmt.Sprintf("Pull %s → %s", plan.From, plan.To))

	if plan.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing to pull\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	for _, item := range plan.Items {
		ancestry := item.WeeklyTitle
		if item.QuarterlyTitle != "" {
			ancestry = item.QuarterlyTitle + " / " + item.WeeklyTitle
		}
		pp.addRow(tbl, item.GoalID, glyph.Pulled.String(), item.Title, ancestry)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(plan.Statuses) > 0 {
		pp.Title("Status carry-over")
		carry := uitable.New()
		carry.Separator = " "
		for _, st := range plan.Statuses {
			symbol := glyph.Starred.String()
			if st.Pinned {
				symbol = glyph.Pinned.String()
			}
			pp.addRow(carry, st.GoalID, symbol, st.Title, "")
		}
		_, _ = fmt.Fprintln(color.Output, carry)
	}
}

func (pp *PrettyPrint) addRow(tbl *uitable.Table, id, marker, title, note string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	if pp.ShowID {
		tbl.AddRow(y.Sprint(id), marker, title, f.Sprint(note))
		return
	}
	tbl.AddRow(marker, title, f.Sprint(note))
}

func flagSymbol(st goal.State) string {
	switch {
	case st.IsStarred:
		return glyph.Starred.String()
	case st.IsPinned:
		return glyph.Pinned.String()
	default:
		return glyph.NoFlag.String()
	}
}

func weeklyMarker(st goal.State) string {
	switch {
	case st.IsHardComplete:
		return glyph.HardDone.String()
	case st.IsComplete:
		return glyph.Done.String()
	default:
		return glyph.Open.String()
	}
}

func dailyMarker(st goal.State) string {
	if st.IsComplete {
		return glyph.Done.String()
	}
	return glyph.Open.String()
}
