// Package complete provides the runner logic for toggling goal completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/printers"
	"tableflip.dev/cascade/pkg/store"
)

// Complete toggles completion for the configured goal ID. Daily and adhoc
// goals toggle directly; weekly goals route through the hard-complete
// workflow, where Cascade resolves the confirmation non-interactively
// (nil means not decided yet).
type Complete struct {
	ID          string
	Undo        bool
	Cascade     *bool
	Persistence store.Persistence
}

// Do executes the completion operation.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	service := &app.Service{Persistence: n.Persistence}
	snap, err := service.Snapshot(ctx)
	if err != nil {
		return err
	}
	g, err := snap.Goal(n.ID)
	if err != nil {
		return err
	}

	switch g.Depth {
	case goal.DepthDaily, goal.DepthAdhoc:
		if err := service.ToggleDaily(ctx, n.ID, !n.Undo); err != nil {
			return err
		}
	case goal.DepthWeekly:
		if err := n.completeWeekly(ctx, service); err != nil {
			return err
		}
	default:
		return fmt.Errorf("can not complete %s goal %s directly", g.Depth, n.ID)
	}

	board, err := service.WeekBoard(ctx, g.Period.Year, g.Period.Week)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Week(board)
	return nil
}

func (n *Complete) completeWeekly(ctx context.Context, service *app.Service) error {
	if n.Cascade != nil && !n.Undo {
		return service.CompleteWeekly(ctx, n.ID, *n.Cascade)
	}
	res, err := service.ToggleWeekly(ctx, n.ID, !n.Undo)
	if err != nil {
		return err
	}
	if !res.RequiresConfirmation {
		return nil
	}
	fmt.Printf("%d daily goals under %s are still open:\n", len(res.Incomplete), n.ID)
	for _, child := range res.Incomplete {
		fmt.Printf("  %s  %s\n", child.ID, child.Title)
	}
	return errors.New("confirm with --cascade to complete them too, or --no-cascade to leave them open")
}
