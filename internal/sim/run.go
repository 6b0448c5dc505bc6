package sim

import (
	"fmt"

	"fromagerie/internal/event"
	"fromagerie/internal/state"
	"fromagerie/internal/telemetry"
)

// RunReport is the automation boundary's result: the final snapshot and
// the full list of fired event ids with their months.
type RunReport struct {
	Final          state.State        `json:"final"`
	Outcome        Outcome            `json:"outcome"`
	Firings        []telemetry.Firing `json:"firings"`
	TargetFired    bool               `json:"target_fired"`
	MonthsPlayed   int                `json:"months_played"`
	BankAtDeadline int                `json:"bank_at_deadline"`
}

// RunUntil plays unattended until target fires, the run ends, or the
// month ceiling is reached. An empty target just plays out the ceiling.
// BankAtDeadline captures the balance when the building deadline month
// begins, for affordability regression checks.
func (e *Engine) RunUntil(target event.ID, maxMonths int, choose ChoiceFunc) (RunReport, error) {
	if target != "" {
		if _, ok := e.catalog.Get(target); !ok {
			return RunReport{}, fmt.Errorf("%w: %s", ErrTargetUnknown, target)
		}
	}
	if maxMonths <= 0 || maxMonths > e.balance.TotalMonths {
		maxMonths = e.balance.TotalMonths
	}

	report := RunReport{}
	for e.outcome == OutcomeRunning && e.Month() <= maxMonths {
		if e.Month() == e.balance.BuildingDeadlineMonth {
			report.BankAtDeadline = e.st.Bank
		}

		res, err := e.PlayMonth(choose)
		if err != nil {
			return RunReport{}, err
		}
		if target != "" && res.EventID == target {
			report.TargetFired = true
			break
		}
	}

	report.Final = e.st.Snapshot()
	report.Outcome = e.outcome
	report.Firings = e.firings.List()
	report.MonthsPlayed = e.st.MonthsPlayed
	return report, nil
}

// JumpTo fast-forwards directly to a named milestone event with an
// injected bank balance, skipping the economy, so affordability branching
// can be tested deterministically. Prerequisite flags for the building
// chain are set to make the target's window reachable.
func (e *Engine) JumpTo(target event.ID, bank int) (MonthEvent, error) {
	if e.outcome != OutcomeRunning {
		return MonthEvent{}, ErrRunOver
	}
	if e.pending != nil {
		return MonthEvent{}, ErrMonthPending
	}

	ev, ok := e.catalog.Get(target)
	if !ok {
		return MonthEvent{}, fmt.Errorf("%w: %s", ErrTargetUnknown, target)
	}
	if ev.FirstMonth <= e.st.MonthsPlayed {
		return MonthEvent{}, fmt.Errorf("event %s window opened at month %d, already at %d", target, ev.FirstMonth, e.Month())
	}

	e.st.Bank = bank
	for e.st.MonthsPlayed < ev.FirstMonth-1 {
		e.st.AdvanceMonth()
	}

	switch target {
	case "building_deadline":
		e.st.ApplyFlags(state.FlagPatch{BuildingOfferReceived: state.Bool(true)})
	case "building_deadline_extended":
		e.st.ApplyFlags(state.FlagPatch{
			BuildingOfferReceived: state.Bool(true),
			BuildingDelayPaid:     state.Bool(true),
			BuildingPenaltyOwed:   state.Bool(true),
		})
	}

	month := e.Month()
	picked, choices, err := e.sched.SelectNext(e.st.Snapshot(), month)
	if err != nil {
		return MonthEvent{}, err
	}
	if picked.ID != target {
		return MonthEvent{}, fmt.Errorf("jumped to month %d but scheduler picked %s, not %s", month, picked.ID, target)
	}

	me := MonthEvent{
		Month:   month,
		Event:   picked,
		Choices: choices,
		Outcome: OutcomeRunning,
	}
	e.pending = &me
	return me, nil
}
