package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fromagerie/internal/config"
)

func newStateForTest() *State {
	return New(config.Realistic())
}

func TestNew_StartsFromBalance(t *testing.T) {
	bal := config.Realistic()
	s := New(bal)

	assert.Equal(t, bal.StartingBank, s.Bank)
	assert.Equal(t, bal.StartingStress, s.Stress)
	assert.Equal(t, bal.StartingEnergy, s.Energy)
	assert.Equal(t, bal.StartingEnergy, s.MaxEnergyCap)
	assert.Equal(t, 0, s.MonthsPlayed)
	assert.False(t, s.OwnsBuilding)
}

func TestAttributes_ClampToRange(t *testing.T) {
	s := newStateForTest()

	s.AddStress(500)
	assert.Equal(t, 100, s.Stress)
	s.AddStress(-500)
	assert.Equal(t, 0, s.Stress)

	s.AddFamily(-500)
	assert.Equal(t, 0, s.Family)

	s.AddReputation(1000)
	assert.Equal(t, 100, s.Reputation)
}

func TestAddEnergy_HonorsReducedCap(t *testing.T) {
	s := newStateForTest()

	s.ReduceEnergyCap(20, 40)
	assert.Equal(t, 80, s.MaxEnergyCap)
	assert.Equal(t, 80, s.Energy, "current energy trims to the new cap")

	s.AddEnergy(50)
	assert.Equal(t, 80, s.Energy, "energy never exceeds the cap")

	// Cap floor holds no matter how many reductions land.
	for i := 0; i < 10; i++ {
		s.ReduceEnergyCap(20, 40)
	}
	assert.Equal(t, 40, s.MaxEnergyCap)
}

func TestAddBank_FloorsAtZero(t *testing.T) {
	s := newStateForTest()

	s.AddBank(-1_000_000)
	assert.Equal(t, 0, s.Bank)

	s.AddLoan(-50)
	assert.Equal(t, 0, s.Loan)
}

func TestApplyFlags_PermanentFlagsNeverRevert(t *testing.T) {
	s := newStateForTest()

	s.ApplyFlags(FlagPatch{OwnsBuilding: Bool(true), SalaryStarted: Bool(true)})
	require.True(t, s.OwnsBuilding)
	require.True(t, s.SalaryStarted)

	s.ApplyFlags(FlagPatch{OwnsBuilding: Bool(false), SalaryStarted: Bool(false)})
	assert.True(t, s.OwnsBuilding, "a signed deed does not unsign")
	assert.True(t, s.SalaryStarted)
}

func TestApplyFlags_RevertibleFlagsToggle(t *testing.T) {
	s := newStateForTest()

	s.ApplyFlags(FlagPatch{OpenSunday: Bool(true), HasDog: Bool(true)})
	assert.True(t, s.OpenSunday)
	assert.True(t, s.HasDog)

	s.ApplyFlags(FlagPatch{OpenSunday: Bool(false)})
	assert.False(t, s.OpenSunday)
	assert.True(t, s.HasDog, "untouched flags stay put")
}

func TestApplyFlags_NilPatchIsNoop(t *testing.T) {
	s := newStateForTest()
	before := s.Snapshot()

	s.ApplyFlags(FlagPatch{})
	assert.Equal(t, before, s.Snapshot())
}

func TestAdvanceMonth_TenureCounters(t *testing.T) {
	s := newStateForTest()

	s.AdvanceMonth()
	assert.Equal(t, 1, s.MonthsPlayed)
	assert.Equal(t, 0, s.LucasMonthsWorked)

	s.ApplyFlags(FlagPatch{HasLucas: Bool(true), HasDog: Bool(true)})
	s.AdvanceMonth()
	s.AdvanceMonth()
	assert.Equal(t, 3, s.MonthsPlayed)
	assert.Equal(t, 2, s.LucasMonthsWorked)
	assert.Equal(t, 2, s.DogMonths)
}

func TestState_JSONRoundTrip(t *testing.T) {
	s := newStateForTest()
	s.ApplyFlags(FlagPatch{
		OwnsBuilding: Bool(true),
		ShopName:     Str("Chez Julien & Fils"),
	})
	s.AddCheeseTypes(42)
	s.AdvanceMonth()

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s.Snapshot(), back)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newStateForTest()
	snap := s.Snapshot()

	s.AddBank(1000)
	assert.NotEqual(t, s.Bank, snap.Bank)
}
