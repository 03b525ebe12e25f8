package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/cascade/pkg/goal"
)

func TestPersistenceWatchEmitsGoalChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	g := goal.New("ship onboarding", goal.DepthQuarterly, goal.Period{Year: 2026, Quarter: 3})
	if err := p.Store(g); err != nil {
		t.Fatalf("store goal: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventGoalsChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a goal change event")
		}
	}
}

func TestPersistenceWatchEmitsStateChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	g := goal.New("ship onboarding", goal.DepthQuarterly, goal.Period{Year: 2026, Quarter: 3})
	if err := p.Store(g); err != nil {
		t.Fatalf("store goal: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	st := goal.State{GoalID: g.ID, Period: goal.WeekKey(2026, 35), IsStarred: true}
	if err := p.Apply(Batch{States: []goal.State{st}}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventStatesChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a state change event")
		}
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel never closed after cancellation")
		}
	}
}
