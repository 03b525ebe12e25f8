// Package optimistic tracks in-flight mutations per goal so UIs can show
// pending and error markers while the store commit runs in the background.
//
// Each goal moves through three states: Synced (no record), Pending (a
// commit is in flight), and Error (the last commit failed). A fresh
// authoritative snapshot always wins: Reconcile returns a goal to Synced
// regardless of its prior state, and the snapshot value supersedes whatever
// optimistic value the UI held.
package optimistic

import "sync"

// SyncState is the reconciliation state of a single goal.
type SyncState int

const (
	Synced SyncState = iota
	Pending
	Error
)

func (s SyncState) String() string {
	switch s {
	case Synced:
		return "synced"
	case Pending:
		return "pending"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event notifies subscribers that a goal's sync state changed.
type Event struct {
	GoalID string
	State  SyncState
	Err    error
}

type record struct {
	seq  uint64
	done bool
	err  error
}

// Tracker coordinates optimistic mutations. It tracks at most one pending
// mutation per goal; a second mutation issued while one is in flight simply
// replaces the tracked one for display purposes. It does not cancel the
// running commit.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	records map[string]*record
	events  chan Event
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		records: make(map[string]*record),
		events:  make(chan Event, 64),
	}
}

// Events exposes the sync-state change stream for UI subscriptions.
func (t *Tracker) Events() <-chan Event {
	return t.events
}

// Track registers an in-flight mutation for the goal and runs commit in the
// background. The goal reads as pending until commit settles. On failure the
// error is retained for display; the tracker never retries and never rolls
// back, the authoritative snapshot corrects the view once it arrives.
func (t *Tracker) Track(goalID string, commit func() error) {
	if goalID == "" || commit == nil {
		return
	}
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.records[goalID] = &record{seq: seq}
	t.mu.Unlock()
	t.emit(Event{GoalID: goalID, State: Pending})

	go func() {
		err := commit()

		t.mu.Lock()
		rec, ok := t.records[goalID]
		if !ok || rec.seq != seq {
			// A newer mutation replaced this one; last write wins.
			t.mu.Unlock()
			return
		}
		if err == nil {
			delete(t.records, goalID)
			t.mu.Unlock()
			t.emit(Event{GoalID: goalID, State: Synced})
			return
		}
		rec.done = true
		rec.err = err
		t.mu.Unlock()
		t.emit(Event{GoalID: goalID, State: Error, Err: err})
	}()
}

// IsPending reports whether a mutation is in flight for the goal.
func (t *Tracker) IsPending(goalID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.records[goalID]
	return ok && !rec.done
}

// Err returns the failure of the goal's last settled mutation, if any.
func (t *Tracker) Err(goalID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rec, ok := t.records[goalID]; ok && rec.done {
		return rec.err
	}
	return nil
}

// StateOf returns the goal's current sync state.
func (t *Tracker) StateOf(goalID string) SyncState {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.records[goalID]
	switch {
	case !ok:
		return Synced
	case rec.done:
		return Error
	default:
		return Pending
	}
}

// Reconcile marks the given goals as synced because an authoritative
// snapshot that includes them arrived. Prior pending or error state is
// discarded.
func (t *Tracker) Reconcile(goalIDs ...string) {
	for _, id := range goalIDs {
		t.mu.Lock()
		_, ok := t.records[id]
		delete(t.records, id)
		t.mu.Unlock()
		if ok {
			t.emit(Event{GoalID: id, State: Synced})
		}
	}
}

func (t *Tracker) emit(ev Event) {
	select {
	case t.events <- ev:
	default:
	}
}
