// Package add provides the runner logic for creating goals.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/printers"
	"tableflip.dev/cascade/pkg/store"
)

// Add creates a goal and prints the week it landed in.
type Add struct {
	Goal        *goal.Goal
	ShowID      bool
	Persistence store.Persistence
}

// Do executes the add operation.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Goal == nil {
		return errors.New("can not add, no goal")
	}

	service := &app.Service{Persistence: n.Persistence}
	created, err := service.Add(ctx, n.Goal)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if created.Depth == goal.DepthQuarterly {
		fmt.Printf("added %s goal %s to Q%d %d\n", created.Depth, created.ID, created.Period.Quarter, created.Period.Year)
		return nil
	}

	board, err := service.WeekBoard(ctx, created.Period.Year, created.Period.Week)
	if err != nil {
		return err
	}
	pp.Week(board)
	return nil
}
