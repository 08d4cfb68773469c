/*
preview.go - Console summary of the monthly table

PURPOSE:
  Prints the columns an operator actually scans after a run: players,
  deposits, wagering, revenue, cashrake paid, acquisition cost, profit.
  Numbers are comma-grouped with two decimals.
*/
package export

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/rakewell/cashrake/sim"
)

// PreviewMonthly renders the monthly summary table to w.
func PreviewMonthly(w io.Writer, res *sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Month", "Start", "Players", "Deposits", "Wagering",
		"Gross Rev", "Cashrake Paid", "Acq Cost", "Net Profit",
	})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)

	for _, m := range res.Monthly {
		table.Append([]string{
			humanize.Comma(int64(m.MonthIndex)),
			m.MonthStart.Format(dateLayout),
			money(m.TotalPlayers),
			money(m.Deposits),
			money(m.TotalWagering),
			money(m.GrossRevenue),
			money(m.ActualCashrakePaid),
			money(m.AcquisitionCost),
			money(m.NetProfit),
		})
	}
	table.Render()
}

// money formats a decimal with comma grouping and exactly two decimals.
func money(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}
