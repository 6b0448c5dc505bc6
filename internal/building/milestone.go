// Package building manages the fixed-price, deadline-bound purchase
// milestone. Its choice sets are computed from the live bank balance at
// firing time, never authored statically: an unaffordable "sign" must be
// structurally impossible, not checked after the fact.
package building

import (
	"fmt"

	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

const (
	DeadlineEventID event.ID = "building_deadline"
	ExtendedEventID event.ID = "building_deadline_extended"
	OfferEventID    event.ID = "building_offer"
)

// DeadlineChoices builds the option set for the main deadline.
//
// Affordable: sign (debits exactly the price) plus an explicit decline.
// Unaffordable: a one-time extension (family chips in, penalty accrues)
// plus letting the building go.
func DeadlineChoices(s state.State, bal config.Balance) []event.Choice {
	canAfford := s.Bank >= bal.BuildingCost
	var choices []event.Choice

	if canAfford {
		choices = append(choices, event.Choice{
			Label:   fmt.Sprintf("Sign. Pay the %d down payment - this is it", bal.BuildingCost),
			Effects: event.Effects{Bank: -bal.BuildingCost, Stress: -20, Energy: 20},
			Flags: &state.FlagPatch{
				OwnsBuilding:  state.Bool(true),
				SalaryStarted: state.Bool(true),
			},
			Conditional: func(state.State) event.Effects {
				return event.Effects{Reputation: 5, Family: 10}
			},
			Action: event.ActionSignBuilding,
		})
	} else {
		choices = append(choices, event.Choice{
			Label:   fmt.Sprintf("Ask for one more month - %d penalty due at closing, family chips in %d", bal.BuildingDelayPenalty, bal.BuildingFamilyChipIn),
			Effects: event.Effects{Stress: 20, Bank: bal.BuildingFamilyChipIn},
			Flags: &state.FlagPatch{
				BuildingDelayPaid:   state.Bool(true),
				BuildingPenaltyOwed: state.Bool(true),
			},
		})
	}

	declineStress, declineFamily := 5, 0
	label := "Let it go anyway"
	if !canAfford {
		declineStress, declineFamily = 25, -10
		label = "Watch it slip away"
	}
	choices = append(choices, event.Choice{
		Label:   label,
		Effects: event.Effects{Stress: declineStress, Family: declineFamily},
		Flags:   &state.FlagPatch{FutureRentIncrease: state.Bool(true)},
	})

	return choices
}

// ExtendedChoices builds the option set for the extended deadline. The
// full base price is never waivable, but the penalty is: a bank sitting
// between price and price+penalty pays everything it has.
func ExtendedChoices(s state.State, bal config.Balance) []event.Choice {
	total := bal.BuildingCost + bal.BuildingDelayPenalty
	canAfford := s.Bank >= bal.BuildingCost

	payment := total
	if s.Bank < total {
		payment = s.Bank
	}

	var choices []event.Choice

	if canAfford {
		struggling := s.Bank < total
		signStress := -20
		label := fmt.Sprintf("Sign. Pay %d (price plus penalty) - this is it", total)
		if struggling {
			signStress = -10
			label = fmt.Sprintf("Scrape together %d - every last euro you have", payment)
		}
		choices = append(choices, event.Choice{
			Label:   label,
			Effects: event.Effects{Bank: -payment, Stress: signStress, Energy: 20},
			Flags: &state.FlagPatch{
				OwnsBuilding:        state.Bool(true),
				BuildingPenaltyOwed: state.Bool(false),
				SalaryStarted:       state.Bool(true),
			},
			Conditional: func(state.State) event.Effects {
				return event.Effects{Reputation: 5, Family: 10}
			},
			Action: event.ActionSignBuilding,
		})
	}

	declineStress, declineFamily := 5, 0
	label := "Let it go anyway"
	if !canAfford {
		declineStress, declineFamily = 30, -15
		label = "Watch it slip away"
	}
	choices = append(choices, event.Choice{
		Label:   label,
		Effects: event.Effects{Stress: declineStress, Family: declineFamily},
		Flags:   &state.FlagPatch{FutureRentIncrease: state.Bool(true)},
	})

	return choices
}

// DeadlineCondition gates the main deadline event: the offer was seen,
// nothing signed, no extension taken.
func DeadlineCondition(s state.State) bool {
	return s.BuildingOfferReceived && !s.OwnsBuilding && !s.BuildingDelayPaid
}

// ExtendedCondition gates the extension event: it exists only for runs
// that took the extension and still have not signed.
func ExtendedCondition(s state.State) bool {
	return s.BuildingDelayPaid && !s.OwnsBuilding
}
