// Package effect applies a resolved choice to the state record.
package effect

import (
	"fmt"

	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

// Resolver applies choice effects, flags, and special actions. Every write
// goes through the state's clamping accessors, so no choice can push a
// bounded attribute out of range or drive the bank negative.
type Resolver struct {
	Balance config.Balance
}

// Apply mutates s with everything the choice declares. month is the
// 1-based run month the choice resolves in.
//
// Conditional effects are evaluated against the pre-mutation state, so
// scaling rewards see the state as it was at decision time, not after the
// flat deltas already moved it.
func (r Resolver) Apply(s *state.State, ch event.Choice, month int) error {
	pre := s.Snapshot()

	applyEffects(s, ch.Effects)

	if ch.Conditional != nil {
		applyEffects(s, ch.Conditional(pre))
	}

	if ch.Flags != nil {
		s.ApplyFlags(*ch.Flags)
	}

	return r.runAction(s, ch.Action, month)
}

func applyEffects(s *state.State, eff event.Effects) {
	if eff.Bank != 0 {
		s.AddBank(eff.Bank)
	}
	if eff.Stress != 0 {
		s.AddStress(eff.Stress)
	}
	if eff.Energy != 0 {
		s.AddEnergy(eff.Energy)
	}
	if eff.Family != 0 {
		s.AddFamily(eff.Family)
	}
	if eff.Reputation != 0 {
		s.AddReputation(eff.Reputation)
	}
	if eff.Autonomy != 0 {
		s.AddAutonomy(eff.Autonomy)
	}
	if eff.CheeseTypes != 0 {
		s.AddCheeseTypes(eff.CheeseTypes)
	}
	if eff.RacletteTypes != 0 {
		s.AddRacletteTypes(eff.RacletteTypes)
	}
	if eff.CheeseExpertise != 0 {
		s.AddCheeseExpertise(eff.CheeseExpertise)
	}
	if eff.ProducerRelationships != 0 {
		s.AddProducerRelationships(eff.ProducerRelationships)
	}
	if eff.SupplierDiscount != 0 {
		s.AddSupplierDiscount(eff.SupplierDiscount)
	}
}

// runAction executes a named special handler. Each is a small independent
// transition; effects the author wants alongside (a reputation hit for the
// fire sale, a family cost for asking) stay in the choice's declared
// effects.
func (r Resolver) runAction(s *state.State, action event.Action, month int) error {
	switch action {
	case event.ActionNone:
		return nil
	case event.ActionTakeLoan:
		s.AddLoan(r.Balance.LoanAmount)
		s.AddBank(r.Balance.LoanAmount)
		return nil
	case event.ActionSellEquipment:
		s.AddBank(r.Balance.EquipmentSale)
		return nil
	case event.ActionFamilyHelp:
		s.AddBank(r.Balance.FamilyHelpAmount)
		return nil
	case event.ActionSetFineFood:
		s.ApplyFlags(state.FlagPatch{HasFineFoodFocus: state.Bool(true)})
		return nil
	case event.ActionSignBuilding:
		// Ownership flags come from the generated choice; the purchase
		// month anchors the lifestyle ramp.
		s.BuildingMonth = month
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}
