/*
charts.go - Optional time-series charts

PURPOSE:
  Renders two monthly line charts as standalone HTML files:
    players.html:  retained / new / total player counts
    revenue.html:  gross revenue, cashrake paid, net profit

  Chart output is off by default; a run produces no image artifacts
  unless the caller opts in.
*/
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rakewell/cashrake/sim"
)

// ChartFiles are the artifacts WriteCharts produces under its directory.
var ChartFiles = []string{"players.html", "revenue.html"}

// WriteCharts renders both monthly charts into dir.
func WriteCharts(dir string, res *sim.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}

	months := make([]string, 0, len(res.Monthly))
	for _, m := range res.Monthly {
		months = append(months, m.MonthStart.Format(dateLayout))
	}

	players := charts.NewLine()
	players.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Monthly Players"}))
	players.SetXAxis(months).
		AddSeries("Retained", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.RetainedPlayers.InexactFloat64() })).
		AddSeries("New", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.NewPlayers.InexactFloat64() })).
		AddSeries("Total", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.TotalPlayers.InexactFloat64() }))

	revenue := charts.NewLine()
	revenue.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Monthly Revenue, CashRake Paid, Net Profit"}))
	revenue.SetXAxis(months).
		AddSeries("Gross Revenue", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.GrossRevenue.InexactFloat64() })).
		AddSeries("CashRake Paid", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.ActualCashrakePaid.InexactFloat64() })).
		AddSeries("Net Profit", lineData(res.Monthly, func(m sim.MonthRecord) float64 { return m.NetProfit.InexactFloat64() }))

	for name, chart := range map[string]*charts.Line{
		"players.html": players,
		"revenue.html": revenue,
	} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("create chart %s: %w", name, err)
		}
		if err := chart.Render(f); err != nil {
			f.Close()
			return fmt.Errorf("render chart %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func lineData(records []sim.MonthRecord, pick func(sim.MonthRecord) float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(records))
	for _, m := range records {
		data = append(data, opts.LineData{Value: pick(m)})
	}
	return data
}
