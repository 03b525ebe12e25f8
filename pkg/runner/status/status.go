// Package status provides the runner logic for the star/pin/clear verbs.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/printers"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
)

// Op selects which priority flag operation to run.
type Op string

const (
	OpStar  Op = "star"
	OpPin   Op = "pin"
	OpClear Op = "clear"
)

// Status applies a priority flag operation to a quarterly goal for a week.
type Status struct {
	ID          string
	Op          Op
	Year        int
	Week        int
	Persistence store.Persistence
}

// Do executes the status operation.
func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not change status, no persistence")
	}

	year, week := n.Year, n.Week
	if week == 0 {
		year, week = timeutil.WeekOf(time.Now())
	}

	service := &app.Service{Persistence: n.Persistence}
	var (
		st  goal.State
		err error
	)
	switch n.Op {
	case OpStar:
		st, err = service.Star(ctx, n.ID, year, week)
	case OpPin:
		st, err = service.Pin(ctx, n.ID, year, week)
	case OpClear:
		st, err = service.ClearStatus(ctx, n.ID, year, week)
	default:
		return fmt.Errorf("unknown status operation %q", n.Op)
	}
	if err != nil {
		return err
	}

	switch {
	case st.IsStarred:
		fmt.Printf("%s starred for week %d\n", n.ID, week)
	case st.IsPinned:
		fmt.Printf("%s pinned for week %d\n", n.ID, week)
	default:
		fmt.Printf("%s has no status for week %d\n", n.ID, week)
	}

	board, err := service.WeekBoard(ctx, year, week)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Week(board)
	return nil
}
