package campaign_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakewell/cashrake/campaign"
)

// =============================================================================
// GROWTH MODEL SELECTOR TESTS
// =============================================================================

func TestParseGrowthModel_KnownModels(t *testing.T) {
	model, err := campaign.ParseGrowthModel("retained_plus_new")
	require.NoError(t, err)
	assert.Equal(t, campaign.GrowthRetainedPlusNew, model)

	model, err = campaign.ParseGrowthModel("simple_growth")
	require.NoError(t, err)
	assert.Equal(t, campaign.GrowthSimple, model)
}

func TestParseGrowthModel_UnknownModel_Rejected(t *testing.T) {
	for _, bad := range []string{"", "exponential", "RETAINED_PLUS_NEW", "retained plus new"} {
		_, err := campaign.ParseGrowthModel(bad)
		require.Error(t, err, "selector %q should be rejected", bad)
		assert.ErrorIs(t, err, campaign.ErrUnknownGrowthModel)
	}
}

func TestParseGrowthModel_ErrorNamesTheValue(t *testing.T) {
	_, err := campaign.ParseGrowthModel("linear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linear")
}

// =============================================================================
// GROWTH SCHEDULE TESTS
// =============================================================================

func TestGrowthSchedule_ExactIndicesWin(t *testing.T) {
	gs := campaign.Default().Growth

	assert.True(t, gs.RateFor(1).Equal(decimal.NewFromFloat(3.0)))
	assert.True(t, gs.RateFor(2).Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, gs.RateFor(3).Equal(decimal.NewFromFloat(0.5)))
}

func TestGrowthSchedule_BeyondLookup_UsesDefault(t *testing.T) {
	// GIVEN: The default schedule covers indices 1-3
	// WHEN: Resolving index 4 and beyond
	// THEN: Every such index gets the default 0.35
	gs := campaign.Default().Growth

	for _, idx := range []int{4, 5, 12, 100} {
		assert.True(t, gs.RateFor(idx).Equal(decimal.NewFromFloat(0.35)),
			"index %d should use the default rate", idx)
	}
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestDefault_ReferenceCampaign(t *testing.T) {
	cfg := campaign.Default()

	assert.Equal(t, time.Date(2025, time.November, 23, 0, 0, 0, 0, time.UTC), cfg.StartDate)
	assert.Equal(t, 12, cfg.Months)
	assert.True(t, cfg.StartingPlayers.Equal(decimal.NewFromInt(1000)))
	assert.True(t, cfg.RetentionRate.Equal(decimal.NewFromFloat(0.60)))
	require.NoError(t, cfg.Validate())
}

func TestConfig_PerWagerFractions(t *testing.T) {
	cfg := campaign.Default()

	// house edge 4%, rakeback 20%, cashback 3%
	assert.True(t, cfg.RakebackPerWager().Equal(decimal.NewFromFloat(0.008)))
	assert.True(t, cfg.CashbackPerWager().Equal(decimal.NewFromFloat(0.0012)))
}

func TestValidate_RejectsEmptyWindow(t *testing.T) {
	cfg := campaign.Default()
	cfg.Months = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, campaign.ErrInvalidConfig)
}

func TestValidate_RejectsZeroStartDate(t *testing.T) {
	cfg := campaign.Default()
	cfg.StartDate = time.Time{}

	assert.ErrorIs(t, cfg.Validate(), campaign.ErrInvalidConfig)
}

// =============================================================================
// YAML FILE TESTS
// =============================================================================

func writeParamFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_AppliesOnlyPresentKeys(t *testing.T) {
	path := writeParamFile(t, `
months: 24
avg_deposit: 120
retention_rate: 0.55
`)

	cfg, err := campaign.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Months)
	assert.True(t, cfg.AvgDeposit.Equal(decimal.NewFromInt(120)))
	assert.True(t, cfg.RetentionRate.Equal(decimal.NewFromFloat(0.55)))

	// Untouched keys keep their defaults.
	assert.True(t, cfg.AvgBet.Equal(decimal.NewFromFloat(5.0)))
	assert.True(t, cfg.CapRate.Equal(decimal.NewFromFloat(0.33)))
}

func TestLoadFile_GrowthScheduleOverride(t *testing.T) {
	path := writeParamFile(t, `
growth_rates:
  1: 2.0
  2: 1.0
default_growth: 0.25
`)

	cfg, err := campaign.LoadFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Growth.RateFor(1).Equal(decimal.NewFromFloat(2.0)))
	assert.True(t, cfg.Growth.RateFor(2).Equal(decimal.NewFromFloat(1.0)))
	// The override replaces the whole map: index 3 now falls through.
	assert.True(t, cfg.Growth.RateFor(3).Equal(decimal.NewFromFloat(0.25)))
}

func TestLoadFile_StartDate(t *testing.T) {
	path := writeParamFile(t, "start_date: 2026-01-15\n")

	cfg, err := campaign.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), cfg.StartDate)
}

func TestLoadFile_BadDate_Rejected(t *testing.T) {
	path := writeParamFile(t, "start_date: 15/01/2026\n")

	_, err := campaign.LoadFile(path)
	assert.ErrorIs(t, err, campaign.ErrInvalidConfig)
}

func TestLoadFile_MissingFile_Errors(t *testing.T) {
	_, err := campaign.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFile_InvalidMonths_Rejected(t *testing.T) {
	path := writeParamFile(t, "months: -3\n")

	_, err := campaign.LoadFile(path)
	assert.ErrorIs(t, err, campaign.ErrInvalidConfig)
}
