package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakewell/cashrake/campaign"
	"github.com/rakewell/cashrake/sim"
	"github.com/rakewell/cashrake/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func run(t *testing.T, model campaign.GrowthModel, months int) *sim.Result {
	t.Helper()
	cfg := campaign.Default()
	cfg.Months = months
	res, err := sim.Run(cfg, model)
	require.NoError(t, err)
	return res
}

// =============================================================================
// PERSISTENCE TESTS
// =============================================================================

func TestSaveRun_PersistsAllThreeTables(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	res := run(t, campaign.GrowthRetainedPlusNew, 12)

	require.NoError(t, store.SaveRun(ctx, res))

	monthly, weekly, daily, err := store.CountRecords(ctx, res.RunID)
	require.NoError(t, err)
	assert.Equal(t, len(res.Monthly), monthly)
	assert.Equal(t, len(res.Weekly), weekly)
	assert.Equal(t, len(res.Daily), daily)
}

func TestSaveRun_DuplicateRunID_Rejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	res := run(t, campaign.GrowthSimple, 2)

	require.NoError(t, store.SaveRun(ctx, res))
	assert.Error(t, store.SaveRun(ctx, res), "run IDs are primary keys")
}

func TestSaveRun_FailureLeavesNoPartialRows(t *testing.T) {
	// GIVEN: A run already persisted
	// WHEN: Saving it again (which fails on the runs insert)
	// THEN: The record tables keep exactly one run's worth of rows
	ctx := context.Background()
	store := newTestStore(t)
	res := run(t, campaign.GrowthSimple, 2)

	require.NoError(t, store.SaveRun(ctx, res))
	require.Error(t, store.SaveRun(ctx, res))

	monthly, _, _, err := store.CountRecords(ctx, res.RunID)
	require.NoError(t, err)
	assert.Equal(t, len(res.Monthly), monthly)
}

func TestListRuns_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a := run(t, campaign.GrowthRetainedPlusNew, 2)
	b := run(t, campaign.GrowthSimple, 3)
	require.NoError(t, store.SaveRun(ctx, a))
	require.NoError(t, store.SaveRun(ctx, b))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, a.RunID)
	assert.Contains(t, ids, b.RunID)
	assert.Equal(t, "simple_growth", mustFind(runs, b.RunID).GrowthModel)
	assert.Equal(t, 3, mustFind(runs, b.RunID).Months)
}

func mustFind(runs []sqlite.RunSummary, id string) sqlite.RunSummary {
	for _, r := range runs {
		if r.ID == id {
			return r
		}
	}
	return sqlite.RunSummary{}
}
