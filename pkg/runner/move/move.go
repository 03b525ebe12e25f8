// Package move provides the runner logic for dragging a quarterly goal's
// priority status between weeks.
package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cascade/pkg/app"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/transfer"
)

// Move relocates (or duplicates, with Keep) a quarterly goal's star/pin
// status from one week to another.
type Move struct {
	ID          string
	From        transfer.PeriodRef
	To          transfer.PeriodRef
	Keep        bool
	Persistence store.Persistence
}

// Do executes the status move.
func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}

	service := &app.Service{Persistence: n.Persistence}
	result, err := service.MoveStatus(ctx, n.ID, n.From, n.To, n.Keep)
	if err != nil {
		return err
	}

	if result.Empty() {
		fmt.Printf("%s has no status in %s; nothing to move\n", n.ID, n.From)
		return nil
	}
	verb := "moved"
	if n.Keep {
		verb = "copied"
	}
	fmt.Printf("%s status %s from %s to %s\n", n.ID, verb, n.From, n.To)
	return nil
}
