/*
simulator.go - The monthly recurrence generator

PURPOSE:
  Runs the month-by-month CashRake recurrence. Each month depends on the
  previous month's ending player count and the two lifetime accumulators
  (cumulative deposits, cumulative cap spend), so generation is strictly
  sequential.

PER-MONTH SEQUENCE:
  1. Resolve the growth parameter for the month index (schedule + default)
  2. Compute retained/new/total players per the selected growth model
  3. Deposits = total players x avg deposit; accumulate lifetime deposits
  4. Lifetime cap = lifetime deposits x cap rate; remaining cap before
  5. Wagering = deposits x multiplier; gross revenue = wagering x edge
  6. Expected cashback/rakeback = wagering x per-wager fractions
  7. Paid = min(expected total, remaining cap); accumulate cap used
  8. Acquisition cost = new players x per-player cost; net profit
  9. Carry total players into the next month

CAP SEMANTICS:
  The cap is a lifetime ceiling proportional to cumulative deposits. It
  grows every month, so a campaign that exhausts the cap early can resume
  paying once new deposits raise the ceiling.

SEE ALSO:
  - campaign/config.go: Inputs and growth models
  - daily.go, weekly.go: Derived tables
*/
package sim

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rakewell/cashrake/campaign"
)

// Run simulates the campaign under the given growth model and returns
// the monthly table plus its daily and weekly projections. The model is
// validated first; an unknown selector aborts before any table exists.
func Run(cfg campaign.Config, model campaign.GrowthModel) (*Result, error) {
	if _, err := campaign.ParseGrowthModel(string(model)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	monthly := generateMonthly(cfg, model)
	daily := disaggregateDaily(monthly)
	weekly := aggregateWeekly(daily)

	return &Result{
		RunID:   uuid.NewString(),
		Model:   model,
		Config:  cfg,
		Monthly: monthly,
		Daily:   daily,
		Weekly:  weekly,
	}, nil
}

func generateMonthly(cfg campaign.Config, model campaign.GrowthModel) []MonthRecord {
	starts := MonthStarts(cfg.StartDate, cfg.Months)
	records := make([]MonthRecord, 0, cfg.Months)

	one := decimal.NewFromInt(1)
	currentPlayers := cfg.StartingPlayers
	lifetimeDeposits := decimal.Zero
	lifetimeCapUsed := decimal.Zero

	for i, monthStart := range starts {
		monthIndex := i + 1
		growth := cfg.Growth.RateFor(monthIndex)

		var retained, newPlayers, totalPlayers decimal.Decimal
		switch model {
		case campaign.GrowthRetainedPlusNew:
			retained = currentPlayers.Mul(cfg.RetentionRate)
			newPlayers = currentPlayers.Mul(growth)
			totalPlayers = retained.Add(newPlayers)
		case campaign.GrowthSimple:
			totalPlayers = currentPlayers.Mul(one.Add(growth))
			retained = currentPlayers.Mul(cfg.RetentionRate)
			newPlayers = decimal.Max(totalPlayers.Sub(retained), decimal.Zero)
		}

		deposits := totalPlayers.Mul(cfg.AvgDeposit)
		lifetimeDeposits = lifetimeDeposits.Add(deposits)
		lifetimeCap := lifetimeDeposits.Mul(cfg.CapRate)
		remainingBefore := decimal.Max(lifetimeCap.Sub(lifetimeCapUsed), decimal.Zero)

		wagering := deposits.Mul(cfg.WagerMultiplier)
		grossRevenue := wagering.Mul(cfg.HouseEdge)

		expectedCashback := wagering.Mul(cfg.CashbackPerWager())
		expectedRakeback := wagering.Mul(cfg.RakebackPerWager())
		expectedTotal := expectedCashback.Add(expectedRakeback)

		paid := decimal.Min(expectedTotal, remainingBefore)
		lifetimeCapUsed = lifetimeCapUsed.Add(paid)
		remainingAfter := decimal.Max(lifetimeCap.Sub(lifetimeCapUsed), decimal.Zero)

		acqCost := newPlayers.Mul(cfg.AcqCostPerPlayer)
		netProfit := grossRevenue.Sub(paid).Sub(acqCost)

		records = append(records, MonthRecord{
			MonthIndex:            monthIndex,
			MonthStart:            monthStart,
			GrowthParam:           growth,
			GrowthModel:           model,
			RetainedPlayers:       retained,
			NewPlayers:            newPlayers,
			TotalPlayers:          totalPlayers,
			Deposits:              deposits,
			LifetimeDeposits:      lifetimeDeposits,
			LifetimeCap:           lifetimeCap,
			RemainingCapBefore:    remainingBefore,
			ExpectedCashback:      expectedCashback,
			ExpectedRakeback:      expectedRakeback,
			ExpectedTotalCashrake: expectedTotal,
			ActualCashrakePaid:    paid,
			LifetimeCapUsed:       lifetimeCapUsed,
			RemainingCapAfter:     remainingAfter,
			TotalWagering:         wagering,
			GrossRevenue:          grossRevenue,
			AcquisitionCost:       acqCost,
			NetProfit:             netProfit,
		})

		currentPlayers = totalPlayers
	}

	return records
}
