package sim

import (
	"encoding/json"
	"fmt"

	"fromagerie/internal/event"
	"fromagerie/internal/sched"
	"fromagerie/internal/telemetry"
)

// Save is a flat, serializable snapshot of a run: the state record, the
// firing history, and the seed. Resuming from it replays the same month
// selections and finances as an uninterrupted run under the same policy.
type Save struct {
	Version int                       `json:"version"`
	Seed    int64                     `json:"seed"`
	Outcome Outcome                   `json:"outcome"`
	State   json.RawMessage           `json:"state"`
	History map[event.ID]sched.Firing `json:"history"`
	Firings []telemetry.Firing        `json:"firings"`
}

const saveVersion = 1

// Save captures the run. A month that has begun but not resolved is not
// captured as pending; on resume the month simply begins again, which is
// the same no-consumption semantic as abandoning a selection.
func (e *Engine) Save(seed int64) (Save, error) {
	raw, err := json.Marshal(e.st.Snapshot())
	if err != nil {
		return Save{}, fmt.Errorf("marshal state: %w", err)
	}
	return Save{
		Version: saveVersion,
		Seed:    seed,
		Outcome: e.outcome,
		State:   raw,
		History: e.sched.History().Snapshot(),
		Firings: e.firings.List(),
	}, nil
}

// Resume rebuilds an engine from a save against the same catalog and
// balance the save was produced with.
func Resume(opts Options, save Save) (*Engine, error) {
	if save.Version != saveVersion {
		return nil, fmt.Errorf("unsupported save version %d", save.Version)
	}

	opts.Seed = save.Seed
	e, err := New(opts)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(save.State, e.st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	e.sched.History().Restore(save.History)
	for _, f := range save.Firings {
		e.firings.Record(f)
	}
	if save.Outcome != "" {
		e.outcome = save.Outcome
	}
	return e, nil
}
