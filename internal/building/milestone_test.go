package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

func signChoice(choices []event.Choice) (event.Choice, bool) {
	for _, c := range choices {
		if c.Action == event.ActionSignBuilding {
			return c, true
		}
	}
	return event.Choice{}, false
}

func TestDeadlineChoices_UnaffordableHasNoSignOption(t *testing.T) {
	bal := config.Realistic()
	s := state.State{Bank: bal.BuildingCost - 1}

	choices := DeadlineChoices(s.Snapshot(), bal)
	_, ok := signChoice(choices)
	assert.False(t, ok, "sign must be structurally absent, not merely disabled")

	// What remains is the extension and the decline.
	require.Len(t, choices, 2)
	assert.True(t, *choices[0].Flags.BuildingDelayPaid)
	assert.True(t, *choices[0].Flags.BuildingPenaltyOwed)
	assert.True(t, *choices[1].Flags.FutureRentIncrease)
}

func TestDeadlineChoices_AffordableSignDebitsExactPrice(t *testing.T) {
	bal := config.Realistic()
	s := state.State{Bank: bal.BuildingCost + 500}

	choices := DeadlineChoices(s.Snapshot(), bal)
	sign, ok := signChoice(choices)
	require.True(t, ok)

	assert.Equal(t, -bal.BuildingCost, sign.Effects.Bank)
	assert.True(t, *sign.Flags.OwnsBuilding)
	assert.True(t, *sign.Flags.SalaryStarted)

	bonus := sign.Conditional(s.Snapshot())
	assert.Equal(t, 5, bonus.Reputation)
	assert.Equal(t, 10, bonus.Family)
}

func TestDeadlineChoices_DeclineCostsMoreWhenBroke(t *testing.T) {
	bal := config.Realistic()

	rich := DeadlineChoices(state.State{Bank: bal.BuildingCost}, bal)
	broke := DeadlineChoices(state.State{Bank: 0}, bal)

	richDecline := rich[len(rich)-1]
	brokeDecline := broke[len(broke)-1]
	assert.Greater(t, brokeDecline.Effects.Stress, richDecline.Effects.Stress)
	assert.Less(t, brokeDecline.Effects.Family, 0)
}

func TestExtendedChoices_FullPenaltyWhenBankCovers(t *testing.T) {
	bal := config.Realistic()
	total := bal.BuildingCost + bal.BuildingDelayPenalty
	s := state.State{Bank: total + 1000}

	sign, ok := signChoice(ExtendedChoices(s.Snapshot(), bal))
	require.True(t, ok)
	assert.Equal(t, -total, sign.Effects.Bank)
	assert.False(t, *sign.Flags.BuildingPenaltyOwed, "signing settles the penalty")
}

func TestExtendedChoices_PartialPenaltyDrainsTheBank(t *testing.T) {
	bal := config.Realistic()
	// Covers the price but not the full penalty: pays everything held.
	bank := bal.BuildingCost + bal.BuildingDelayPenalty/2
	s := state.State{Bank: bank}

	sign, ok := signChoice(ExtendedChoices(s.Snapshot(), bal))
	require.True(t, ok)
	assert.Equal(t, -bank, sign.Effects.Bank)
}

func TestExtendedChoices_StillUnaffordable(t *testing.T) {
	bal := config.Realistic()
	s := state.State{Bank: bal.BuildingCost - 1}

	choices := ExtendedChoices(s.Snapshot(), bal)
	_, ok := signChoice(choices)
	assert.False(t, ok)
	require.Len(t, choices, 1)
	assert.True(t, *choices[0].Flags.FutureRentIncrease)
}

func TestConditions(t *testing.T) {
	var s state.State
	assert.False(t, DeadlineCondition(s), "no offer seen yet")

	s.BuildingOfferReceived = true
	assert.True(t, DeadlineCondition(s))

	s.BuildingDelayPaid = true
	assert.False(t, DeadlineCondition(s), "the extension replaces the main deadline")
	assert.True(t, ExtendedCondition(s))

	s.OwnsBuilding = true
	assert.False(t, DeadlineCondition(s))
	assert.False(t, ExtendedCondition(s))
}
