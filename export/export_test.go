package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rakewell/cashrake/campaign"
	"github.com/rakewell/cashrake/export"
	"github.com/rakewell/cashrake/sim"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func smallRun(t *testing.T) *sim.Result {
	t.Helper()
	cfg := campaign.Default()
	cfg.Months = 3
	res, err := sim.Run(cfg, campaign.GrowthRetainedPlusNew)
	require.NoError(t, err)
	return res
}

// =============================================================================
// WORKBOOK TESTS
// =============================================================================

func TestWriteWorkbook_ThreeSheetsInOrder(t *testing.T) {
	res := smallRun(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, export.WriteWorkbook(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"monthly", "weekly", "daily"}, f.GetSheetList())
}

func TestWriteWorkbook_MonthlySheetContent(t *testing.T) {
	res := smallRun(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, export.WriteWorkbook(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("monthly")
	require.NoError(t, err)
	require.Len(t, rows, len(res.Monthly)+1, "header plus one row per month")

	header := rows[0]
	assert.Equal(t, "month_index", header[0])
	assert.Equal(t, "month_start", header[1])
	assert.Equal(t, "net_profit", header[len(header)-1])

	// First data row: month 1 of the reference campaign.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2025-11-01", rows[1][1])
	assert.Equal(t, "retained_plus_new", rows[1][3])
}

func TestWriteWorkbook_DailyAndWeeklyRowCounts(t *testing.T) {
	res := smallRun(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, export.WriteWorkbook(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	daily, err := f.GetRows("daily")
	require.NoError(t, err)
	assert.Len(t, daily, len(res.Daily)+1)

	weekly, err := f.GetRows("weekly")
	require.NoError(t, err)
	assert.Len(t, weekly, len(res.Weekly)+1)
	assert.Equal(t, "week_start", weekly[0][0])
}

func TestRenderWorkbook_StreamsToWriter(t *testing.T) {
	res := smallRun(t)

	var buf bytes.Buffer
	require.NoError(t, export.RenderWorkbook(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"monthly", "weekly", "daily"}, f.GetSheetList())
}

// =============================================================================
// PREVIEW TESTS
// =============================================================================

func TestPreviewMonthly_FormatsNumbers(t *testing.T) {
	res := smallRun(t)

	var buf bytes.Buffer
	export.PreviewMonthly(&buf, res)
	out := buf.String()

	// Month 1: 3600 players, 360,000 deposits, comma-grouped two-decimal.
	assert.Contains(t, out, "3,600.00")
	assert.Contains(t, out, "360,000.00")
	assert.Contains(t, out, "2,520,000.00")
	assert.Contains(t, out, "Net Profit")
}

func TestPreviewMonthly_OneLinePerMonth(t *testing.T) {
	res := smallRun(t)

	var buf bytes.Buffer
	export.PreviewMonthly(&buf, res)

	assert.Contains(t, buf.String(), "2025-11-01")
	assert.Contains(t, buf.String(), "2026-01-01")
}

// =============================================================================
// CHART TESTS
// =============================================================================

func TestWriteCharts_ProducesBothFiles(t *testing.T) {
	res := smallRun(t)
	dir := filepath.Join(t.TempDir(), "charts")

	require.NoError(t, export.WriteCharts(dir, res))

	for _, name := range export.ChartFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
