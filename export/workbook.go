/*
Package export turns a simulation Result into its output artifacts: an
Excel workbook, a formatted console preview, and optional HTML charts.

PURPOSE:
  The simulator produces plain record slices; this package owns every
  presentation concern. Column order on each sheet is the field order of
  the record structs, one row per record, in record order.

SHEETS:
  monthly:  Every MonthRecord field
  weekly:   Every WeeklyRecord field
  daily:    Every DailyRecord field

SEE ALSO:
  - preview.go: Console table of selected monthly columns
  - charts.go: Optional time-series line charts
*/
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rakewell/cashrake/sim"
)

const dateLayout = "2006-01-02"

// =============================================================================
// SHEET HEADERS - Column names match record fields, in field order
// =============================================================================

var monthlyHeader = []string{
	"month_index", "month_start", "growth_param", "growth_model",
	"retained_players", "new_players", "total_players",
	"deposits", "lifetime_deposits",
	"lifetime_cap", "remaining_cap_before",
	"expected_cashback", "expected_rakeback", "expected_total_cashrake",
	"actual_cashrake_paid", "lifetime_cap_used", "remaining_cap_after",
	"total_wagering", "gross_revenue", "acquisition_cost", "net_profit",
}

var weeklyHeader = []string{
	"week_start", "days",
	"players", "deposits", "total_wagering", "gross_revenue",
	"expected_cashback", "expected_rakeback", "expected_total_cashrake",
	"actual_cashrake_paid", "acquisition_cost", "net_profit",
}

var dailyHeader = []string{
	"date", "month_index",
	"players", "deposits", "total_wagering", "gross_revenue",
	"expected_cashback", "expected_rakeback", "expected_total_cashrake",
	"actual_cashrake_paid", "acquisition_cost", "net_profit",
}

// =============================================================================
// WORKBOOK WRITER
// =============================================================================

// WriteWorkbook writes the three result tables to an xlsx file at path.
func WriteWorkbook(path string, res *sim.Result) error {
	f, err := buildWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// RenderWorkbook streams the workbook to w (used by the HTTP API and tests).
func RenderWorkbook(w io.Writer, res *sim.Result) error {
	f, err := buildWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(res *sim.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	// The default sheet becomes "monthly"; the others are appended.
	if err := f.SetSheetName("Sheet1", "monthly"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{"weekly", "daily"} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeSheet(f, "monthly", monthlyHeader, monthlyRows(res.Monthly)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "weekly", weeklyHeader, weeklyRows(res.Weekly)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "daily", dailyHeader, dailyRows(res.Daily)); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// =============================================================================
// ROW BUILDERS
// =============================================================================

func cell(d decimal.Decimal) interface{} { return d.InexactFloat64() }

func monthlyRows(records []sim.MonthRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, m := range records {
		rows = append(rows, []interface{}{
			m.MonthIndex, m.MonthStart.Format(dateLayout), cell(m.GrowthParam), string(m.GrowthModel),
			cell(m.RetainedPlayers), cell(m.NewPlayers), cell(m.TotalPlayers),
			cell(m.Deposits), cell(m.LifetimeDeposits),
			cell(m.LifetimeCap), cell(m.RemainingCapBefore),
			cell(m.ExpectedCashback), cell(m.ExpectedRakeback), cell(m.ExpectedTotalCashrake),
			cell(m.ActualCashrakePaid), cell(m.LifetimeCapUsed), cell(m.RemainingCapAfter),
			cell(m.TotalWagering), cell(m.GrossRevenue), cell(m.AcquisitionCost), cell(m.NetProfit),
		})
	}
	return rows
}

func weeklyRows(records []sim.WeeklyRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, w := range records {
		rows = append(rows, []interface{}{
			w.WeekStart.Format(dateLayout), w.Days,
			cell(w.Players), cell(w.Deposits), cell(w.TotalWagering), cell(w.GrossRevenue),
			cell(w.ExpectedCashback), cell(w.ExpectedRakeback), cell(w.ExpectedTotalCashrake),
			cell(w.ActualCashrakePaid), cell(w.AcquisitionCost), cell(w.NetProfit),
		})
	}
	return rows
}

func dailyRows(records []sim.DailyRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, d := range records {
		rows = append(rows, []interface{}{
			d.Date.Format(dateLayout), d.MonthIndex,
			cell(d.Players), cell(d.Deposits), cell(d.TotalWagering), cell(d.GrossRevenue),
			cell(d.ExpectedCashback), cell(d.ExpectedRakeback), cell(d.ExpectedTotalCashrake),
			cell(d.ActualCashrakePaid), cell(d.AcquisitionCost), cell(d.NetProfit),
		})
	}
	return rows
}
