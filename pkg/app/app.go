// Package app provides high-level operations over the goal engines and
// persistence so the CLI and TUI can share logic.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/cascade/pkg/completion"
	"tableflip.dev/cascade/pkg/goal"
	"tableflip.dev/cascade/pkg/status"
	"tableflip.dev/cascade/pkg/store"
	"tableflip.dev/cascade/pkg/transfer"
)

// Service wraps persistence and the pure engines. Every operation reads a
// fresh snapshot, runs the engine transform, and persists the effect as one
// batch.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Snapshot returns the current read model.
func (s *Service) Snapshot(ctx context.Context) (*goal.Snapshot, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Snapshot(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Add validates and stores a new goal.
func (s *Service) Add(ctx context.Context, g *goal.Goal) (*goal.Goal, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if g.Created.IsZero() {
		g.Created = goal.Timestamp{Time: time.Now()}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.ParentID != "" {
		snap := s.Persistence.Snapshot(ctx)
		if _, err := snap.Goal(g.ParentID); err != nil {
			return nil, err
		}
	}
	if err := s.Persistence.Store(g); err != nil {
		return nil, err
	}
	return g, nil
}

// ToggleDaily flips a daily (or adhoc) goal's completion and persists the
// propagated weekly effect.
func (s *Service) ToggleDaily(ctx context.Context, id string, complete bool) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	eff, err := completion.ToggleDaily(snap, id, complete, time.Now())
	if err != nil {
		return err
	}
	return s.apply(eff)
}

// ToggleWeekly runs the weekly hard-complete workflow. When the result
// requires confirmation nothing was persisted; the caller decides and
// re-invokes through CompleteWeekly.
func (s *Service) ToggleWeekly(ctx context.Context, id string, requested bool) (completion.WeeklyToggle, error) {
	if s.Persistence == nil {
		return completion.WeeklyToggle{}, errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	res, err := completion.ToggleWeekly(snap, id, requested, time.Now())
	if err != nil {
		return completion.WeeklyToggle{}, err
	}
	if res.RequiresConfirmation {
		return res, nil
	}
	return res, s.apply(res.Effect)
}

// CompleteWeekly applies the confirmed hard-complete decision.
func (s *Service) CompleteWeekly(ctx context.Context, id string, cascade bool) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	eff, err := completion.CompleteWeekly(snap, id, cascade, time.Now())
	if err != nil {
		return err
	}
	return s.apply(eff)
}

// Star toggles the starred flag on a quarterly goal for the given week.
func (s *Service) Star(ctx context.Context, id string, year, week int) (goal.State, error) {
	return s.flag(ctx, id, year, week, status.Star)
}

// Pin toggles the pinned flag on a quarterly goal for the given week.
func (s *Service) Pin(ctx context.Context, id string, year, week int) (goal.State, error) {
	return s.flag(ctx, id, year, week, status.Pin)
}

// ClearStatus removes both priority flags for the given week.
func (s *Service) ClearStatus(ctx context.Context, id string, year, week int) (goal.State, error) {
	return s.flag(ctx, id, year, week, status.Clear)
}

func (s *Service) flag(ctx context.Context, id string, year, week int,
	op func(*goal.Snapshot, string, int, int) (goal.State, error)) (goal.State, error) {
	if s.Persistence == nil {
		return goal.State{}, errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	st, err := op(snap, id, year, week)
	if err != nil {
		return goal.State{}, err
	}
	return st, s.Persistence.Apply(store.Batch{States: []goal.State{st}})
}

// PullPreview computes the transfer plan without mutating anything.
func (s *Service) PullPreview(ctx context.Context, from, to transfer.PeriodRef) (*transfer.Plan, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	return transfer.Preview(snap, from, to)
}

// Pull re-derives the plan and commits it as one batch. An empty plan
// commits nothing.
func (s *Service) Pull(ctx context.Context, from, to transfer.PeriodRef, previewed *transfer.Plan) (*transfer.Commit, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	c, err := transfer.CommitPlan(snap, from, to, previewed)
	if err != nil {
		return nil, err
	}
	if c.Batch.Empty() {
		return c, nil
	}
	if err := s.Persistence.Apply(c.Batch); err != nil {
		return nil, err
	}
	return c, nil
}

// MoveStatus drags a quarterly goal's priority status between weeks. keep
// requests duplicate semantics (source status left untouched).
func (s *Service) MoveStatus(ctx context.Context, id string, fromWeek, toWeek transfer.PeriodRef, keep bool) (*transfer.StatusMove, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	move, err := transfer.MoveStatus(snap, id, fromWeek, toWeek, keep)
	if err != nil {
		return nil, err
	}
	if move.Empty() {
		return move, nil
	}
	var batch store.Batch
	if move.Upsert != nil {
		batch.States = append(batch.States, *move.Upsert)
	}
	if move.ClearSource != nil {
		batch.States = append(batch.States, *move.ClearSource)
	}
	if err := s.Persistence.Apply(batch); err != nil {
		return nil, err
	}
	return move, nil
}

// Delete removes a goal through the store boundary (cascading to descendant
// records there, never in the engines).
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	snap := s.Persistence.Snapshot(ctx)
	if _, err := snap.Goal(id); err != nil {
		return err
	}
	return s.Persistence.Delete(id)
}

func (s *Service) apply(eff completion.Effect) error {
	if eff.Empty() {
		return nil
	}
	return s.Persistence.Apply(store.Batch{States: eff.States})
}
