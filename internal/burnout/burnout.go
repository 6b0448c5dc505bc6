// Package burnout derives the crash state machine from accumulated stress.
package burnout

import (
	"fromagerie/internal/config"
	"fromagerie/internal/state"
)

type Phase string

const (
	PhaseNormal     Phase = "normal"
	PhaseRecovering Phase = "recovering"
	PhaseGameOver   Phase = "game_over"
)

// Machine evaluates one month of stress flow and crash transitions.
// It holds no state of its own; everything lives on the State record.
type Machine struct {
	Balance config.Balance
}

// CurrentPhase derives the phase from the state record.
func (m Machine) CurrentPhase(s state.State) Phase {
	switch {
	case s.BurnoutCount >= m.Balance.MaxBurnouts:
		return PhaseGameOver
	case s.RecoveryMonths > 0:
		return PhaseRecovering
	default:
		return PhaseNormal
	}
}

// Threshold is the stress bar for the next crash. Each crash raises it,
// so later burnouts take progressively more accumulated stress.
func (m Machine) Threshold(s state.State) int {
	return m.Balance.BurnoutThresholdBase + m.Balance.BurnoutThresholdPerCrash*s.BurnoutCount
}

// Accrue runs one month of stress accumulation and recovery. During a
// recovery window normal accrual is suspended in favor of a small fixed
// increment. month is the 1-based run month.
func (m Machine) Accrue(s *state.State, month int) {
	var base int
	if s.RecoveryMonths > 0 {
		// The crash window: accrual drops to a fixed trickle, but passive
		// recovery, family wear, and the dog keep working as usual.
		s.RecoveryMonths--
		base = 1
	} else {
		base = m.accrualBase(s, month)
	}

	s.AddStress(base)
	s.AddEnergy(4)

	recovery := 5
	if s.OpenSunday {
		recovery = 3
	}
	if s.Autonomy >= 50 {
		recovery++
	}
	if s.Autonomy >= 70 {
		recovery++
	}
	s.AddStress(-recovery)

	s.AddFamily(-1)

	if s.HasDog {
		s.AddEnergy(-2)
		s.AddFamily(3)
		s.AddStress(-2)
	}
}

func (m Machine) accrualBase(s *state.State, month int) int {
	base := 2
	if s.OpenSunday {
		// Sunday load compounds the longer the grind runs.
		switch {
		case month <= 4:
			base += 1
		case month <= 8:
			base += 3
		case month <= 14:
			base += 5
		default:
			base += 3
		}
		if s.HasHenry {
			base -= 3
		} else if s.HasLucas {
			base -= 1
		}
	}

	if !s.HasLucas && !s.HasHenry {
		base += 2
	}
	if s.Loan > 0 && month > 6 {
		base += 1
	}
	if s.Bank < 5000 && month > 4 {
		base += 2
	}

	if reduction := (s.Autonomy - 20) / 20; reduction > 0 {
		base -= reduction
	}
	if base < 0 {
		base = 0
	}

	if s.Energy < 40 {
		base += (40 - s.Energy + 9) / 10
	}
	if s.Family < 50 {
		base += (50 - s.Family + 9) / 10
	}
	return base
}

// Check fires at most one crash transition for the month. A crash resets
// stress to a low recovery value, permanently shrinks the energy ceiling,
// opens a forced recovery window, and closes the extra trading day.
// terminal is true when the crash was the last one the character has in
// them; the owning simulation must stop with a burnout outcome.
func (m Machine) Check(s *state.State, month int) (crashed, terminal bool) {
	if month < m.Balance.BurnoutMinMonth {
		return false, false
	}
	if s.RecoveryMonths > 0 {
		return false, false
	}
	if s.Stress < m.Threshold(*s) {
		return false, false
	}

	s.BurnoutCount++
	s.Stress = m.Balance.BurnoutStressReset
	s.ReduceEnergyCap(m.Balance.EnergyCapReduction, m.Balance.MinEnergyCap)
	s.RecoveryMonths = m.Balance.BurnoutRecoveryMonths
	s.OpenSunday = false

	return true, s.BurnoutCount >= m.Balance.MaxBurnouts
}
