package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fromagerie/internal/building"
	"fromagerie/internal/config"
	"fromagerie/internal/content"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

func newEngineForTest(t *testing.T, seed int64) *Engine {
	t.Helper()
	bal := config.Realistic()
	catalog, err := content.NewCatalog(bal)
	require.NoError(t, err)

	e, err := New(Options{Balance: bal, Catalog: catalog, Seed: seed})
	require.NoError(t, err)
	return e
}

// quietEngine runs against a pool holding only the fallback, so every
// month is a deterministic quiet month.
func quietEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	bal := config.Realistic()
	catalog, err := event.NewCatalog([]event.Event{
		{
			ID: event.FallbackID, Type: event.TypeRoutine,
			FirstMonth: 1, LastMonth: bal.TotalMonths,
			Recurring: true,
			Choices: []event.Choice{
				{Label: "rest", Effects: event.Effects{Stress: -10, Energy: 15}},
				{Label: "tinker", Effects: event.Effects{Stress: 5}},
			},
		},
	})
	require.NoError(t, err)

	e, err := New(Options{Balance: bal, Catalog: catalog, Seed: seed})
	require.NoError(t, err)
	return e
}

func TestBeginMonth_OneEventAtATime(t *testing.T) {
	e := newEngineForTest(t, 1)

	me, err := e.BeginMonth()
	require.NoError(t, err)
	require.NotNil(t, me.Event)
	assert.Equal(t, 1, me.Month)
	assert.Equal(t, event.ID("sunday_opening"), me.Event.ID,
		"the Sunday question opens the run")

	_, err = e.BeginMonth()
	assert.ErrorIs(t, err, ErrMonthPending)
}

func TestBeginMonth_SettlesFinancesIntoBank(t *testing.T) {
	e := newEngineForTest(t, 1)
	before := e.State().Bank

	me, err := e.BeginMonth()
	require.NoError(t, err)

	assert.Equal(t, before+me.Finance.Net, e.State().Bank)
}

func TestResolveChoice_RequiresAPendingEvent(t *testing.T) {
	e := newEngineForTest(t, 1)

	_, err := e.ResolveChoice(0)
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestResolveChoice_RejectsBadIndex(t *testing.T) {
	e := newEngineForTest(t, 1)

	me, err := e.BeginMonth()
	require.NoError(t, err)

	_, err = e.ResolveChoice(len(me.Choices))
	assert.ErrorIs(t, err, ErrBadChoice)
	_, err = e.ResolveChoice(-1)
	assert.ErrorIs(t, err, ErrBadChoice)
}

func TestResolveChoice_AdvancesTheMonth(t *testing.T) {
	e := newEngineForTest(t, 1)
	require.Equal(t, 1, e.Month())

	_, err := e.BeginMonth()
	require.NoError(t, err)
	res, err := e.ResolveChoice(0)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Month)
	assert.Equal(t, 2, e.Month())
	assert.Len(t, e.Firings(), 1)
}

func TestQuietRun_CompletesAllMonths(t *testing.T) {
	e := quietEngine(t, 3)

	report, err := e.RunUntil("", 0, PolicyFor(StyleNeutral))
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Equal(t, 42, report.MonthsPlayed)
	assert.Len(t, report.Firings, 42, "exactly one event per month")
	assert.Greater(t, report.Final.Bank, 0)
}

func TestRunUntil_StopsAtTarget(t *testing.T) {
	e := newEngineForTest(t, 5)

	report, err := e.RunUntil("first_christmas", 0, PolicyFor(StyleReasonable))
	require.NoError(t, err)

	require.True(t, report.TargetFired)
	last := report.Firings[len(report.Firings)-1]
	assert.Equal(t, event.ID("first_christmas"), last.EventID)
	assert.Equal(t, 6, last.Month, "the first December is run month 6")
}

func TestRunUntil_UnknownTarget(t *testing.T) {
	e := newEngineForTest(t, 5)

	_, err := e.RunUntil("wrong_id", 0, PolicyFor(StyleNeutral))
	assert.ErrorIs(t, err, ErrTargetUnknown)
}

func TestJumpTo_AffordableDeadlineSigns(t *testing.T) {
	e := newEngineForTest(t, 9)
	bal := config.Realistic()

	me, err := e.JumpTo(building.DeadlineEventID, bal.BuildingCost+2000)
	require.NoError(t, err)
	require.Equal(t, building.DeadlineEventID, me.Event.ID)

	signIdx := -1
	for i, c := range me.Choices {
		if c.Action == event.ActionSignBuilding {
			signIdx = i
		}
	}
	require.GreaterOrEqual(t, signIdx, 0, "affordable bank must see the sign option")

	_, err = e.ResolveChoice(signIdx)
	require.NoError(t, err)

	st := e.State()
	assert.True(t, st.OwnsBuilding)
	assert.True(t, st.SalaryStarted)
	assert.Equal(t, 2000, st.Bank, "the purchase debits exactly the price")
	assert.Equal(t, bal.BuildingDeadlineMonth, st.BuildingMonth)
}

func TestJumpTo_UnaffordableDeadlineThenExtension(t *testing.T) {
	e := newEngineForTest(t, 9)
	bal := config.Realistic()

	me, err := e.JumpTo(building.DeadlineEventID, 40000)
	require.NoError(t, err)

	for _, c := range me.Choices {
		require.NotEqual(t, event.ActionSignBuilding, c.Action,
			"sign must be structurally absent below the price")
	}

	// First option is the extension. It books the penalty for later.
	_, err = e.ResolveChoice(0)
	require.NoError(t, err)
	st := e.State()
	require.True(t, st.BuildingDelayPaid)
	require.True(t, st.BuildingPenaltyOwed)
	require.False(t, st.OwnsBuilding)

	// A month later, with the full amount scraped together, the
	// extended deadline settles price plus penalty.
	total := bal.BuildingCost + bal.BuildingDelayPenalty
	me, err = e.JumpTo(building.ExtendedEventID, total)
	require.NoError(t, err)

	signIdx := -1
	for i, c := range me.Choices {
		if c.Action == event.ActionSignBuilding {
			signIdx = i
		}
	}
	require.GreaterOrEqual(t, signIdx, 0)

	_, err = e.ResolveChoice(signIdx)
	require.NoError(t, err)

	st = e.State()
	assert.True(t, st.OwnsBuilding)
	assert.False(t, st.BuildingPenaltyOwed, "signing settles the penalty")
	assert.Equal(t, 0, st.Bank)
}

func TestJumpTo_PassedWindowIsAnError(t *testing.T) {
	e := newEngineForTest(t, 9)

	_, err := e.JumpTo(building.DeadlineEventID, 100000)
	require.NoError(t, err)
	_, err = e.ResolveChoice(0)
	require.NoError(t, err)

	_, err = e.JumpTo("sunday_opening", 100000)
	assert.Error(t, err, "month 1 is long gone")
}

func TestSaveResume_ContinuesIdentically(t *testing.T) {
	const seed = 77
	a := newEngineForTest(t, seed)
	choose := PolicyFor(StyleReasonable)

	for i := 0; i < 10; i++ {
		_, err := a.PlayMonth(choose)
		require.NoError(t, err)
	}

	save, err := a.Save(seed)
	require.NoError(t, err)

	bal := config.Realistic()
	catalog, err := content.NewCatalog(bal)
	require.NoError(t, err)
	b, err := Resume(Options{Balance: bal, Catalog: catalog}, save)
	require.NoError(t, err)

	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, a.Firings(), b.Firings())

	// The resumed run replays the same selections as the uninterrupted one.
	for i := 0; i < 8; i++ {
		resA, err := a.PlayMonth(choose)
		require.NoError(t, err)
		resB, err := b.PlayMonth(choose)
		require.NoError(t, err)
		assert.Equal(t, resA.EventID, resB.EventID, "month %d", resA.Month)
		assert.Equal(t, resA.Choice, resB.Choice)
	}
	assert.Equal(t, a.State(), b.State())
}

func TestSaveResume_VersionGuard(t *testing.T) {
	e := newEngineForTest(t, 1)
	save, err := e.Save(1)
	require.NoError(t, err)
	save.Version = 99

	bal := config.Realistic()
	catalog, err := content.NewCatalog(bal)
	require.NoError(t, err)
	_, err = Resume(Options{Balance: bal, Catalog: catalog}, save)
	assert.Error(t, err)
}

func TestGrindOutEarnsFamilyFirstAtTheDeadline(t *testing.T) {
	bal := config.Realistic()
	catalog, err := content.NewCatalog(bal)
	require.NoError(t, err)

	run := func(style Playstyle) RunReport {
		e, err := New(Options{Balance: bal, Catalog: catalog, Seed: 11})
		require.NoError(t, err)
		report, err := e.RunUntil("", bal.BuildingDeadlineMonth, PolicyFor(style))
		require.NoError(t, err)
		return report
	}

	grind := run(StyleGrind)
	family := run(StyleFamilyFirst)

	assert.Greater(t, grind.BankAtDeadline, family.BankAtDeadline,
		"the building fund rewards the grind and punishes balance")
}

func TestPolicy_TiesGoToEarliestChoice(t *testing.T) {
	choices := []event.Choice{
		{Label: "first"},
		{Label: "second"},
	}
	idx := Weights{}.Policy()(nil, choices, state.State{})
	assert.Equal(t, 0, idx)
}
