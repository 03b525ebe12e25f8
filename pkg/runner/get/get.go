// Package get provides the runner logic for listing the week board.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/printers"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/timeutil"
)

// Get prints the board for a week (defaults to the current week).
type Get struct {
	Year        int
	Week        int
	ShowID      bool
	Persistence store.Persistence
}

// Do executes the get operation.
func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	year, week := n.Year, n.Week
	if week == 0 {
		year, week = timeutil.WeekOf(time.Now())
	} else if year == 0 {
		year, _ = timeutil.WeekOf(time.Now())
	}

	service := &app.Service{Persistence: n.Persistence}
	board, err := service.WeekBoard(ctx, year, week)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Week(board)
	return nil
}
