/*
Package sim implements the CashRake campaign simulator.

PURPOSE:
  Projects a campaign month by month — player growth, deposits, wagering,
  gross revenue, and capped cashback+rakeback payouts — then derives a
  daily table by even intra-month distribution and a weekly table by
  calendar-week summation.

KEY CONCEPTS IN THIS FILE (records.go):
  - MonthRecord: One simulated month, every computed metric
  - DailyRecord: A month's flows split evenly over its calendar days
  - WeeklyRecord: Daily records summed by Monday-start week
  - Result: The three tables of one run, immutable once built

DESIGN PRINCIPLES:
  1. Immutability: Records are snapshots; nothing mutates them after the
     generation pass. The only mutable state during generation is the two
     lifetime accumulators inside the loop.
  2. Precision: decimal.Decimal throughout; the cap arithmetic must hold
     exactly (paid never exceeds the remaining cap).
  3. Plain records: Ordered slices of structs with explicit fields, not a
     generic tabular container. Sheet columns are the struct fields.

SEE ALSO:
  - simulator.go: The monthly recurrence producing MonthRecords
  - daily.go: Month-to-day disaggregation
  - weekly.go: Day-to-week aggregation
*/
package sim

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rakewell/cashrake/campaign"
)

// =============================================================================
// MONTH RECORD - One row of the monthly table
// =============================================================================

// MonthRecord captures every metric of one simulated month.
//
// Invariants maintained by the generator:
//   - ActualCashrakePaid = min(ExpectedTotalCashrake, RemainingCapBefore)
//   - LifetimeCapUsed is non-decreasing across months
//   - LifetimeCapUsed never exceeds LifetimeCap
type MonthRecord struct {
	MonthIndex  int
	MonthStart  time.Time
	GrowthParam decimal.Decimal
	GrowthModel campaign.GrowthModel

	RetainedPlayers decimal.Decimal
	NewPlayers      decimal.Decimal
	TotalPlayers    decimal.Decimal

	Deposits         decimal.Decimal
	LifetimeDeposits decimal.Decimal

	LifetimeCap        decimal.Decimal
	RemainingCapBefore decimal.Decimal

	ExpectedCashback      decimal.Decimal
	ExpectedRakeback      decimal.Decimal
	ExpectedTotalCashrake decimal.Decimal
	ActualCashrakePaid    decimal.Decimal
	LifetimeCapUsed       decimal.Decimal
	RemainingCapAfter     decimal.Decimal

	TotalWagering   decimal.Decimal
	GrossRevenue    decimal.Decimal
	AcquisitionCost decimal.Decimal
	NetProfit       decimal.Decimal
}

// =============================================================================
// DAILY RECORD - One calendar day, an even fraction of its month
// =============================================================================

// DailyRecord is a month's flows divided by its day count. TotalPlayers
// gets the same even split even though it is a stock, not a flow; the
// daily table is a distribution convenience, not a cohort model.
type DailyRecord struct {
	Date       time.Time
	MonthIndex int

	Players               decimal.Decimal
	Deposits              decimal.Decimal
	TotalWagering         decimal.Decimal
	GrossRevenue          decimal.Decimal
	ExpectedCashback      decimal.Decimal
	ExpectedRakeback      decimal.Decimal
	ExpectedTotalCashrake decimal.Decimal
	ActualCashrakePaid    decimal.Decimal
	AcquisitionCost       decimal.Decimal
	NetProfit             decimal.Decimal
}

// =============================================================================
// WEEKLY RECORD - Daily records summed by week
// =============================================================================

// WeeklyRecord sums the numeric fields of every DailyRecord whose date
// falls in the week starting at WeekStart (Monday). The month-index tag
// is an identity, not a flow, so it is not carried into weekly rows.
type WeeklyRecord struct {
	WeekStart time.Time
	Days      int

	Players               decimal.Decimal
	Deposits              decimal.Decimal
	TotalWagering         decimal.Decimal
	GrossRevenue          decimal.Decimal
	ExpectedCashback      decimal.Decimal
	ExpectedRakeback      decimal.Decimal
	ExpectedTotalCashrake decimal.Decimal
	ActualCashrakePaid    decimal.Decimal
	AcquisitionCost       decimal.Decimal
	NetProfit             decimal.Decimal
}

// =============================================================================
// RESULT - The three tables of one run
// =============================================================================

// Result is an immutable snapshot of one simulation run.
type Result struct {
	RunID  string
	Model  campaign.GrowthModel
	Config campaign.Config

	Monthly []MonthRecord
	Daily   []DailyRecord
	Weekly  []WeeklyRecord
}
