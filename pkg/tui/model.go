// Package tui renders the interactive week board: quarterly sections with
// weekly and daily goals, live store updates, and optimistic pending markers
// while mutations commit in the background.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/optimistic"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
	"tableflip.dev/cascade/pkg/transfer"
)

// boardMsg delivers a freshly loaded board plus the goal ids it covers.
type boardMsg struct {
	board *app.WeekBoard
	ids   []string
	err   error
}

// storeChangedMsg is sent when the persistence watcher reports a change.
type storeChangedMsg struct{}

// syncMsg relays an optimistic tracker transition.
type syncMsg optimistic.Event

// row is one selectable line of the board.
type row struct {
	goal  *goal.Goal
	state goal.State
}

// Model is the Bubble Tea model for the week board.
type Model struct {
	service *app.Service
	tracker *optimistic.Tracker
	events  <-chan store.Event

	year int
	week int

	board  *app.WeekBoard
	rows   []row
	cursor int

	// confirm holds the weekly goal id awaiting a cascade decision.
	confirm    string
	confirmN   int
	statusMsg  string
	statusTime time.Time
	err        error

	width  int
	height int
}

// NewModel builds the model for the current week and subscribes to store
// change events. Subscription failure degrades to manual refresh.
func NewModel(service *app.Service) Model {
	year, week := timeutil.WeekOf(time.Now())
	events, err := service.Watch(context.Background())
	if err != nil {
		events = nil
	}
	return Model{
		service: service,
		tracker: optimistic.NewTracker(),
		events:  events,
		year:    year,
		week:    week,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.watch(), m.nextSync())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case boardMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.board = msg.board
		m.rows = flattenBoard(msg.board)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		// The snapshot is authoritative; whatever was pending or failed for
		// these goals is superseded now.
		m.tracker.Reconcile(msg.ids...)
		return m, nil

	case storeChangedMsg:
		return m, tea.Batch(m.load(), m.watch())

	case syncMsg:
		if msg.State == optimistic.Error && msg.Err != nil {
			m.setStatus("save failed: " + msg.Err.Error())
		}
		return m, tea.Batch(m.load(), m.nextSync())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != "" {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case keyQuit, keyInterrupt:
		return m, tea.Quit
	case keyDown, keyDownArrow:
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case keyUp, keyUpArrow:
		if m.cursor > 0 {
			m.cursor--
		}
	case keyPrevWeek:
		m.year, m.week = timeutil.PrevWeek(m.year, m.week)
		m.cursor = 0
		return m, m.load()
	case keyNextWeek:
		m.year, m.week = timeutil.NextWeek(m.year, m.week)
		m.cursor = 0
		return m, m.load()
	case keyToggle:
		return m.toggleCursor()
	case keyStar:
		return m.flagCursor(m.service.Star, "starred")
	case keyPin:
		return m.flagCursor(m.service.Pin, "pinned")
	case keyClear:
		return m.flagCursor(m.service.ClearStatus, "cleared")
	case keyPull:
		return m.pullPrevious()
	case keyReload:
		return m, m.load()
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirm
	switch msg.String() {
	case keyConfirmYes:
		m.confirm = ""
		return m.track(id, func() error {
			return m.service.CompleteWeekly(context.Background(), id, true)
		})
	case keyConfirmNo:
		m.confirm = ""
		return m.track(id, func() error {
			return m.service.CompleteWeekly(context.Background(), id, false)
		})
	case keyEscape, keyQuit:
		m.confirm = ""
		m.setStatus("left as-is")
	}
	return m, nil
}

func (m Model) toggleCursor() (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	id := r.goal.ID
	switch r.goal.Depth {
	case goal.DepthDaily, goal.DepthAdhoc:
		next := !r.state.IsComplete
		return m.track(id, func() error {
			return m.service.ToggleDaily(context.Background(), id, next)
		})
	case goal.DepthWeekly:
		requested := !r.state.IsHardComplete
		res, err := m.service.ToggleWeekly(context.Background(), id, requested)
		if err != nil {
			m.setStatus(err.Error())
			return m, nil
		}
		if res.RequiresConfirmation {
			m.confirm = id
			m.confirmN = len(res.Incomplete)
			return m, nil
		}
		return m, m.load()
	}
	return m, nil
}

func (m Model) flagCursor(op func(context.Context, string, int, int) (goal.State, error), verb string) (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	if r.goal.Depth != goal.DepthQuarterly {
		m.setStatus("only quarterly goals can be " + verb)
		return m, nil
	}
	id, year, week := r.goal.ID, m.year, m.week
	return m.track(id, func() error {
		_, err := op(context.Background(), id, year, week)
		return err
	})
}

func (m Model) pullPrevious() (tea.Model, tea.Cmd) {
	fromYear, fromWeek := timeutil.PrevWeek(m.year, m.week)
	from := transfer.WeekRef(fromYear, fromWeek)
	to := transfer.WeekRef(m.year, m.week)
	commit, err := m.service.Pull(context.Background(), from, to, nil)
	if err != nil {
		m.setStatus(err.Error())
		return m, nil
	}
	if commit.Plan.Empty() {
		m.setStatus("nothing to pull from " + from.String())
		return m, nil
	}
	m.setStatus("pulled " + from.String())
	return m, m.load()
}

// track runs the commit through the optimistic tracker so the row shows a
// pending marker until the write settles.
func (m Model) track(id string, commit func() error) (tea.Model, tea.Cmd) {
	m.tracker.Track(id, commit)
	return m, nil
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now()
}

func (m Model) load() tea.Cmd {
	service, year, week := m.service, m.year, m.week
	return func() tea.Msg {
		ctx := context.Background()
		snap, err := service.Snapshot(ctx)
		if err != nil {
			return boardMsg{err: err}
		}
		board := app.BuildWeekBoard(snap, year, week)
		var ids []string
		for _, g := range snap.Goals() {
			ids = append(ids, g.ID)
		}
		return boardMsg{board: board, ids: ids}
	}
}

func (m Model) watch() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return storeChangedMsg{}
		}
		return nil
	}
}

func (m Model) nextSync() tea.Cmd {
	events := m.tracker.Events()
	return func() tea.Msg {
		if ev, ok := <-events; ok {
			return syncMsg(ev)
		}
		return nil
	}
}

// flattenBoard turns the board into selectable rows in display order.
func flattenBoard(board *app.WeekBoard) []row {
	var rows []row
	for _, section := range board.Sections {
		rows = append(rows, row{goal: section.Goal, state: section.State})
		for _, weekly := range section.Weeklies {
			rows = append(rows, row{goal: weekly.Goal, state: weekly.State})
			for _, daily := range weekly.Dailies {
				rows = append(rows, row{goal: daily.Goal, state: daily.State})
			}
		}
	}
	for _, item := range board.Adhoc {
		rows = append(rows, row{goal: item.Goal, state: item.State})
	}
	return rows
}
