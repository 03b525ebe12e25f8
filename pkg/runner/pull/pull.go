// Package pull provides the runner logic for transferring incomplete goals
// between periods.
package pull

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/printers"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/transfer"
)

// Pull previews and optionally commits a period transfer.
type Pull struct {
	From        transfer.PeriodRef
	To          transfer.PeriodRef
	DryRun      bool
	ShowID      bool
	Persistence store.Persistence
}

// Do executes the pull operation. The preview prints first; unless DryRun is
// set, the commit then re-derives the plan from current data and applies it
// as one batch.
func (n *Pull) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not pull, no persistence")
	}

	service := &app.Service{Persistence: n.Persistence}
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	plan, err := service.PullPreview(ctx, n.From, n.To)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp.Plan(plan)

	if n.DryRun || plan.Empty() {
		return nil
	}

	commit, err := service.Pull(ctx, n.From, n.To, plan)
	if err != nil {
		return err
	}
	fmt.Printf("pulled %d goals to %s\n", len(commit.Plan.Items), n.To)
	if len(commit.Dropped) > 0 {
		fmt.Printf("%d previewed goals were no longer eligible and stayed behind: %v\n",
			len(commit.Dropped), commit.Dropped)
	}
	return nil
}
