// Package sched selects the single event presented each month.
package sched

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

var ErrEmptyChoices = errors.New("event resolved to an empty choice set")

// Scheduler picks exactly one event per month from the catalog.
//
// Precedence: still-unfired mandatory events first (priority descending,
// declaration order on ties), then the highest-priority eligible event
// (seeded-random pick among equals), then the quiet-month fallback.
type Scheduler struct {
	catalog *event.Catalog
	hist    *History
	seed    int64
}

func New(catalog *event.Catalog, seed int64) *Scheduler {
	return &Scheduler{
		catalog: catalog,
		hist:    NewHistory(),
		seed:    seed,
	}
}

// History exposes the firing bookkeeping for persistence and reporting.
func (s *Scheduler) History() *History { return s.hist }

// SelectNext returns the month's event and its resolved choice set.
// Selection alone consumes nothing; call MarkResolved once the player's
// choice has actually been applied.
func (s *Scheduler) SelectNext(st state.State, month int) (*event.Event, []event.Choice, error) {
	var mandatory, regular []*event.Event

	pool := s.catalog.All()
	for i := range pool {
		ev := &pool[i]
		if !s.eligible(ev, st, month) {
			continue
		}
		if ev.Mandatory {
			mandatory = append(mandatory, ev)
		} else {
			regular = append(regular, ev)
		}
	}

	picked := s.pick(mandatory, regular, month)
	if picked == nil {
		picked = s.catalog.Fallback()
	}

	choices := picked.ResolveChoices(st)
	if len(choices) == 0 {
		return nil, nil, fmt.Errorf("event %s: %w", picked.ID, ErrEmptyChoices)
	}
	return picked, choices, nil
}

// MarkResolved records the firing month for unique/mandatory consumption
// and recurring cooldowns.
func (s *Scheduler) MarkResolved(id event.ID, month int) {
	s.hist.Mark(id, month)
}

func (s *Scheduler) eligible(ev *event.Event, st state.State, month int) bool {
	if !ev.Eligible(st, month) {
		return false
	}
	f, fired := s.hist.Get(ev.ID)
	if !fired || f.Count == 0 {
		return true
	}
	if !ev.Recurring {
		// One-shot by default: unique and mandatory events, and any
		// event not explicitly marked recurring, fire at most once.
		return false
	}
	return month-f.LastMonth >= ev.Cooldown
}

func (s *Scheduler) pick(mandatory, regular []*event.Event, month int) *event.Event {
	if len(mandatory) > 0 {
		// Stable sort keeps declaration order as the tie-break, which
		// must be deterministic for reproducible simulation.
		sort.SliceStable(mandatory, func(i, j int) bool {
			return mandatory[i].Priority > mandatory[j].Priority
		})
		return mandatory[0]
	}

	if len(regular) == 0 {
		return nil
	}

	best := regular[0].Priority
	for _, ev := range regular[1:] {
		if ev.Priority > best {
			best = ev.Priority
		}
	}
	var cohort []*event.Event
	for _, ev := range regular {
		if ev.Priority == best {
			cohort = append(cohort, ev)
		}
	}
	if len(cohort) == 1 {
		return cohort[0]
	}
	return cohort[s.rng(month).Intn(len(cohort))]
}

// rng derives the tie-break generator from the seed and the month alone,
// never from selection history. A resumed run replays the same picks for
// the same months as the uninterrupted run.
func (s *Scheduler) rng(month int) *rand.Rand {
	return rand.New(rand.NewSource(s.seed + int64(month)*0x9e3779b9))
}
