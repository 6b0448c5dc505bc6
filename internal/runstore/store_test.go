package runstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fromagerie/internal/sim"
	"fromagerie/internal/state"
)

func newStoreForTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(bank int) sim.RunReport {
	return sim.RunReport{
		Final:          state.State{Bank: bank, MonthsPlayed: 42, OwnsBuilding: bank > 80000, BurnoutCount: 1},
		Outcome:        sim.OutcomeCompleted,
		MonthsPlayed:   42,
		BankAtDeadline: bank,
	}
}

func TestSaveAndListRuns(t *testing.T) {
	store := newStoreForTest(t)
	ctx := context.Background()

	id, err := store.SaveRun(ctx, sim.StyleGrind, 7, sampleReport(90000))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = store.SaveRun(ctx, sim.StyleFamilyFirst, 7, sampleReport(30000))
	require.NoError(t, err)

	runs, err := store.ListRuns(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, sim.StyleFamilyFirst, runs[0].Playstyle)
	assert.Equal(t, sim.StyleGrind, runs[1].Playstyle)
	assert.Equal(t, 90000, runs[1].FinalBank)
	assert.Equal(t, 90000, runs[1].BankAtDeadline)
	assert.True(t, runs[1].OwnsBuilding)
	assert.Equal(t, int64(7), runs[1].Seed)
	assert.Equal(t, sim.OutcomeCompleted, runs[1].Outcome)
	assert.False(t, runs[0].PlayedAt.IsZero())
}

func TestListRuns_FilterAndLimit(t *testing.T) {
	store := newStoreForTest(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(ctx, sim.StyleGrind, int64(i), sampleReport(50000+i))
		require.NoError(t, err)
	}
	_, err := store.SaveRun(ctx, sim.StyleNeutral, 99, sampleReport(40000))
	require.NoError(t, err)

	grind, err := store.ListRuns(ctx, sim.StyleGrind, 3)
	require.NoError(t, err)
	assert.Len(t, grind, 3)
	for _, r := range grind {
		assert.Equal(t, sim.StyleGrind, r.Playstyle)
	}

	all, err := store.ListRuns(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 6, "zero limit falls back to the default page size")
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
