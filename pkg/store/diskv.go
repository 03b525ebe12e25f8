package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/cascade/pkg/goal"
)

const (
	goalPrefix  = "goal"
	statePrefix = "state"
)

// Load creates a Persistence backed by diskv using the provided config. A nil
// config loads the default configuration.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Snapshot(ctx context.Context) *goal.Snapshot {
	return goal.NewSnapshot(p.Goals(ctx), p.States(ctx))
}

func (p *persistence) Goals(ctx context.Context) []*goal.Goal {
	all := make([]*goal.Goal, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, goalPrefix+"-") {
			continue
		}
		g, err := p.readGoal(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, g)
	}
	return all
}

func (p *persistence) States(ctx context.Context) []*goal.State {
	all := make([]*goal.State, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, statePrefix+"-") {
			continue
		}
		st, err := p.readState(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, st)
	}
	return all
}

func (p *persistence) readGoal(key string) (*goal.Goal, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	g := &goal.Goal{}
	if err := json.Unmarshal(val, g); err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = keyToPathTransform(key).FileName
	}
	return g, nil
}

func (p *persistence) readState(key string) (*goal.State, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	st := &goal.State{}
	if err := json.Unmarshal(val, st); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	if st.GoalID == "" && len(pk.Path) == 2 {
		st.GoalID = pk.Path[1]
	}
	if st.Period == "" {
		st.Period = goal.PeriodKey(pk.FileName)
	}
	return st, nil
}

func (p *persistence) Store(g *goal.Goal) error {
	if g == nil {
		return errors.New("store: nil goal")
	}
	if g.ID == "" {
		b, _ := json.Marshal(g)
		id := md5.Sum(b)
		g.ID = fmt.Sprintf("%x", id[:8])
	}
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return p.d.Write(goalKey(g.ID), data)
}

func (p *persistence) writeState(st goal.State) error {
	key := stateKey(st.GoalID, st.Period)
	if st.Zero() {
		// All-false records are equivalent to absent ones; drop them instead
		// of accumulating empty files.
		if p.d.Has(key) {
			return p.d.Erase(key)
		}
		return nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// Apply writes the batch in one call. Reassignments move any existing state
// record of the goal's old period along to the new one so completion
// timestamps and flags survive the move.
func (p *persistence) Apply(batch Batch) error {
	for _, re := range batch.Reassignments {
		if err := p.reassign(re); err != nil {
			return fmt.Errorf("store: apply reassignment %s: %w", re.GoalID, err)
		}
	}
	for _, st := range batch.States {
		if st.GoalID == "" || st.Period == "" {
			return errors.New("store: apply: state record missing identifiers")
		}
		if err := p.writeState(st); err != nil {
			return fmt.Errorf("store: apply state %s/%s: %w", st.GoalID, st.Period, err)
		}
	}
	return nil
}

func (p *persistence) reassign(re Reassignment) error {
	g, err := p.readGoal(goalKey(re.GoalID))
	if err != nil {
		return err
	}
	oldKey := stateKey(g.ID, g.StateKey())
	g.Period = re.Period
	newKey := stateKey(g.ID, g.StateKey())

	if oldKey != newKey && p.d.Has(oldKey) {
		val, err := p.d.Read(oldKey)
		if err != nil {
			return err
		}
		st := goal.State{}
		if err := json.Unmarshal(val, &st); err != nil {
			return err
		}
		st.GoalID = g.ID
		st.Period = g.StateKey()
		data, err := json.Marshal(st)
		if err != nil {
			return err
		}
		if err := p.d.Write(newKey, data); err != nil {
			return err
		}
		if err := p.d.Erase(oldKey); err != nil {
			return err
		}
	}

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return p.d.Write(goalKey(g.ID), data)
}

// Delete removes the goal, its descendants, and every state record any of
// them carried.
func (p *persistence) Delete(id string) error {
	if id == "" {
		return errors.New("store: goal id required")
	}
	ctx, cancel := context.WithCancel(context.Background())
	goals := p.Goals(ctx)
	cancel()

	children := make(map[string][]string, len(goals))
	for _, g := range goals {
		if g.ParentID != "" {
			children[g.ParentID] = append(children[g.ParentID], g.ID)
		}
	}
	doomed := []string{id}
	for i := 0; i < len(doomed); i++ {
		doomed = append(doomed, children[doomed[i]]...)
	}

	for _, gid := range doomed {
		if err := p.eraseStates(gid); err != nil {
			return err
		}
		key := goalKey(gid)
		if !p.d.Has(key) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: delete %s: %w", gid, err)
		}
	}
	return nil
}

func (p *persistence) eraseStates(goalID string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	prefix := fmt.Sprintf("%s-%s-", statePrefix, goalID)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase state %s: %w", key, err)
		}
	}
	return nil
}

// goalKey makes `goal-<id>`.
func goalKey(id string) string {
	return fmt.Sprintf("%s-%s", goalPrefix, id)
}

// stateKey makes `state-<goal id>-<period key>`. Period keys contain no
// dashes, so the diskv path transform stays reversible.
func stateKey(id string, period goal.PeriodKey) string {
	return fmt.Sprintf("%s-%s-%s", statePrefix, id, period)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
