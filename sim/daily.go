/*
daily.go - Month-to-day disaggregation

PURPOSE:
  Splits each month's flow fields evenly across that month's actual
  calendar day count. February in a leap year gets 29 slices. Player
  count uses the same split: the daily table is a smoothing of the
  monthly one, not a per-day cohort model.
*/
package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

func disaggregateDaily(monthly []MonthRecord) []DailyRecord {
	var daily []DailyRecord

	for _, m := range monthly {
		days := DaysInMonth(m.MonthStart)
		nd := decimal.NewFromInt(int64(days))

		for d := 1; d <= days; d++ {
			date := time.Date(m.MonthStart.Year(), m.MonthStart.Month(), d, 0, 0, 0, 0, time.UTC)
			daily = append(daily, DailyRecord{
				Date:                  date,
				MonthIndex:            m.MonthIndex,
				Players:               m.TotalPlayers.Div(nd),
				Deposits:              m.Deposits.Div(nd),
				TotalWagering:         m.TotalWagering.Div(nd),
				GrossRevenue:          m.GrossRevenue.Div(nd),
				ExpectedCashback:      m.ExpectedCashback.Div(nd),
				ExpectedRakeback:      m.ExpectedRakeback.Div(nd),
				ExpectedTotalCashrake: m.ExpectedTotalCashrake.Div(nd),
				ActualCashrakePaid:    m.ActualCashrakePaid.Div(nd),
				AcquisitionCost:       m.AcquisitionCost.Div(nd),
				NetProfit:             m.NetProfit.Div(nd),
			})
		}
	}

	return daily
}
