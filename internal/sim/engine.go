// Package sim runs the month loop: economy, burnout, event selection,
// choice resolution, invariants, month increment. One turn is one month;
// nothing in a month is concurrent, and a month's mutations complete
// atomically before the loop checks its stop condition.
package sim

import (
	"errors"
	"fmt"
	"log"

	"fromagerie/internal/burnout"
	"fromagerie/internal/config"
	"fromagerie/internal/economy"
	"fromagerie/internal/effect"
	"fromagerie/internal/event"
	"fromagerie/internal/sched"
	"fromagerie/internal/state"
	"fromagerie/internal/telemetry"
)

type Outcome string

const (
	OutcomeRunning   Outcome = "running"
	OutcomeBurnout   Outcome = "burnout"
	OutcomeBankrupt  Outcome = "bankrupt"
	OutcomeCompleted Outcome = "completed"
)

var (
	ErrRunOver       = errors.New("run is over")
	ErrNoPending     = errors.New("no event pending")
	ErrMonthPending  = errors.New("month already begun, resolve its choice first")
	ErrBadChoice     = errors.New("choice index out of range")
	ErrTargetUnknown = errors.New("target event not in catalog")
)

// ChoiceFunc picks one of the resolved choices for an event. Automated
// drivers supply a policy; the interactive server forwards the player.
type ChoiceFunc func(ev *event.Event, choices []event.Choice, s state.State) int

// MonthEvent is the month's selection, presented before resolution.
// Event is nil when the run ended this month before an event could fire.
type MonthEvent struct {
	Month   int            `json:"month"`
	Event   *event.Event   `json:"event,omitempty"`
	Choices []event.Choice `json:"choices,omitempty"`
	Finance economy.Report `json:"finance"`
	Crashed bool           `json:"crashed"`
	Outcome Outcome        `json:"outcome"`
}

// MonthResult reports a fully resolved month.
type MonthResult struct {
	Month   int            `json:"month"`
	EventID event.ID       `json:"event_id"`
	Choice  int            `json:"choice"`
	Finance economy.Report `json:"finance"`
	Crashed bool           `json:"crashed"`
	Outcome Outcome        `json:"outcome"`
}

type Options struct {
	Balance config.Balance
	Catalog *event.Catalog
	Seed    int64
	Logger  *log.Logger
}

// Engine owns one run's state. Multiple engines can share one catalog;
// firing history and telemetry are per-engine.
type Engine struct {
	balance  config.Balance
	catalog  *event.Catalog
	sched    *sched.Scheduler
	resolver effect.Resolver
	burnout  burnout.Machine
	firings  *telemetry.Log
	logger   *log.Logger

	st      *state.State
	outcome Outcome
	pending *MonthEvent
}

func New(opts Options) (*Engine, error) {
	if opts.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if errs := event.CheckMandatoryReachable(opts.Catalog.All(), opts.Balance.TotalMonths); len(errs) > 0 {
		return nil, fmt.Errorf("catalog unusable for a %d-month run: %w", opts.Balance.TotalMonths, errs[0])
	}

	return &Engine{
		balance:  opts.Balance,
		catalog:  opts.Catalog,
		sched:    sched.New(opts.Catalog, opts.Seed),
		resolver: effect.Resolver{Balance: opts.Balance},
		burnout:  burnout.Machine{Balance: opts.Balance},
		firings:  telemetry.NewLog(),
		logger:   opts.Logger,
		st:       state.New(opts.Balance),
		outcome:  OutcomeRunning,
	}, nil
}

// State returns a read-only snapshot. The renderer boundary: consumers
// never write back.
func (e *Engine) State() state.State { return e.st.Snapshot() }

func (e *Engine) Outcome() Outcome { return e.outcome }

// Firings returns the resolved (event, month) log in order.
func (e *Engine) Firings() []telemetry.Firing { return e.firings.List() }

// Month is the 1-based run month currently being played.
func (e *Engine) Month() int { return e.st.MonthsPlayed + 1 }

// BeginMonth settles the elapsed month's finances, runs the burnout
// machine, and selects the month's event. Selection consumes nothing:
// abandoning the run here leaves mandatory events unconsumed.
func (e *Engine) BeginMonth() (MonthEvent, error) {
	if e.outcome != OutcomeRunning {
		return MonthEvent{}, ErrRunOver
	}
	if e.pending != nil {
		return MonthEvent{}, ErrMonthPending
	}

	month := e.Month()

	report := economy.MonthlyProfit(e.st.Snapshot(), month, e.balance)
	e.st.AddBank(report.Net)

	e.burnout.Accrue(e.st, month)
	crashed, terminal := e.burnout.Check(e.st, month)
	if crashed && e.logger != nil {
		e.logger.Printf("month %d: burnout crash #%d, energy cap now %d", month, e.st.BurnoutCount, e.st.MaxEnergyCap)
	}
	if terminal {
		e.outcome = OutcomeBurnout
		return MonthEvent{Month: month, Finance: report, Crashed: true, Outcome: e.outcome}, nil
	}

	ev, choices, err := e.sched.SelectNext(e.st.Snapshot(), month)
	if err != nil {
		return MonthEvent{}, fmt.Errorf("month %d: %w", month, err)
	}

	me := MonthEvent{
		Month:   month,
		Event:   ev,
		Choices: choices,
		Finance: report,
		Crashed: crashed,
		Outcome: OutcomeRunning,
	}
	e.pending = &me
	return me, nil
}

// ResolveChoice applies the pending event's chosen option, records the
// firing, and increments the month. Only now is the event consumed.
func (e *Engine) ResolveChoice(idx int) (MonthResult, error) {
	if e.outcome != OutcomeRunning {
		return MonthResult{}, ErrRunOver
	}
	if e.pending == nil || e.pending.Event == nil {
		return MonthResult{}, ErrNoPending
	}
	if idx < 0 || idx >= len(e.pending.Choices) {
		return MonthResult{}, fmt.Errorf("%w: %d of %d", ErrBadChoice, idx, len(e.pending.Choices))
	}

	p := e.pending
	if err := e.resolver.Apply(e.st, p.Choices[idx], p.Month); err != nil {
		return MonthResult{}, fmt.Errorf("resolve %s: %w", p.Event.ID, err)
	}

	e.sched.MarkResolved(p.Event.ID, p.Month)
	e.firings.Record(telemetry.Firing{
		Month:   p.Month,
		EventID: p.Event.ID,
		Type:    p.Event.Type,
		Choice:  idx,
	})
	e.pending = nil

	e.st.AdvanceMonth()

	switch {
	case e.st.Bank <= 0 && e.st.Loan >= e.balance.MaxLoan:
		e.outcome = OutcomeBankrupt
	case e.st.MonthsPlayed >= e.balance.TotalMonths:
		e.outcome = OutcomeCompleted
	}

	return MonthResult{
		Month:   p.Month,
		EventID: p.Event.ID,
		Choice:  idx,
		Finance: p.Finance,
		Crashed: p.Crashed,
		Outcome: e.outcome,
	}, nil
}

// PlayMonth runs one full month with the given policy.
func (e *Engine) PlayMonth(choose ChoiceFunc) (MonthResult, error) {
	me, err := e.BeginMonth()
	if err != nil {
		return MonthResult{}, err
	}
	if me.Event == nil {
		// terminal before an event could fire
		return MonthResult{Month: me.Month, Finance: me.Finance, Crashed: me.Crashed, Outcome: e.outcome}, nil
	}

	idx := choose(me.Event, me.Choices, e.st.Snapshot())
	if idx < 0 || idx >= len(me.Choices) {
		idx = 0
	}
	return e.ResolveChoice(idx)
}
