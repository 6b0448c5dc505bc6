package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

func newResolverForTest() (Resolver, *state.State) {
	bal := config.Realistic()
	return Resolver{Balance: bal}, state.New(bal)
}

func TestApply_FlatEffects(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{
		Effects: event.Effects{Bank: -3000, Stress: 10, CheeseTypes: 5},
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, 12000, s.Bank)
	assert.Equal(t, 40, s.Stress)
	assert.Equal(t, 5, s.CheeseTypes)
}

func TestApply_EffectsClampThroughAccessors(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{
		Effects: event.Effects{Bank: -1_000_000, Stress: 500, Energy: 500},
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Bank, "bank floors at zero rather than going negative")
	assert.Equal(t, 100, s.Stress)
	assert.Equal(t, s.MaxEnergyCap, s.Energy)
}

func TestApply_ConditionalSeesPreMutationState(t *testing.T) {
	r, s := newResolverForTest()
	s.CheeseTypes = 10

	var seen int
	err := r.Apply(s, event.Choice{
		Effects: event.Effects{CheeseTypes: 50},
		Conditional: func(pre state.State) event.Effects {
			seen = pre.CheeseTypes
			return event.Effects{Bank: pre.CheeseTypes * 100}
		},
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, 10, seen, "the scaling reward prices the range as it was at decision time")
	assert.Equal(t, 16000, s.Bank)
	assert.Equal(t, 60, s.CheeseTypes)
}

func TestApply_FlagsAfterEffects(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{
		Flags: &state.FlagPatch{OpenSunday: state.Bool(true), ShopName: state.Str("Fromagerie Julien")},
	}, 1)
	require.NoError(t, err)

	assert.True(t, s.OpenSunday)
	assert.Equal(t, "Fromagerie Julien", s.ShopName)
}

func TestApply_TakeLoanAction(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{Action: event.ActionTakeLoan}, 8)
	require.NoError(t, err)

	assert.Equal(t, r.Balance.LoanAmount, s.Loan)
	assert.Equal(t, 15000+r.Balance.LoanAmount, s.Bank)
}

func TestApply_SellEquipmentAndFamilyHelp(t *testing.T) {
	r, s := newResolverForTest()

	require.NoError(t, r.Apply(s, event.Choice{Action: event.ActionSellEquipment}, 8))
	assert.Equal(t, 15000+r.Balance.EquipmentSale, s.Bank)

	require.NoError(t, r.Apply(s, event.Choice{Action: event.ActionFamilyHelp}, 8))
	assert.Equal(t, 15000+r.Balance.EquipmentSale+r.Balance.FamilyHelpAmount, s.Bank)
}

func TestApply_SignBuildingAnchorsPurchaseMonth(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{
		Effects: event.Effects{Bank: -r.Balance.BuildingCost},
		Flags:   &state.FlagPatch{OwnsBuilding: state.Bool(true), SalaryStarted: state.Bool(true)},
		Action:  event.ActionSignBuilding,
	}, 25)
	require.NoError(t, err)

	assert.Equal(t, 25, s.BuildingMonth)
	assert.True(t, s.OwnsBuilding)
	assert.True(t, s.SalaryStarted)
}

func TestApply_UnknownActionIsAnError(t *testing.T) {
	r, s := newResolverForTest()

	err := r.Apply(s, event.Choice{Action: event.Action("fire_the_landlord")}, 1)
	assert.Error(t, err)
}
