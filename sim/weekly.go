/*
weekly.go - Day-to-week aggregation

PURPOSE:
  Groups daily records by the Monday-start calendar week containing each
  date and sums every numeric field. A grouped fold over an explicit key
  function (date -> week start), output in chronological order.

  Edge weeks at the start and end of the window cover fewer than seven
  days; Days records how many actually contributed.
*/
package sim

import "time"

func aggregateWeekly(daily []DailyRecord) []WeeklyRecord {
	byWeek := make(map[time.Time]*WeeklyRecord)
	var order []time.Time

	// Daily records arrive in date order, so weeks are first seen in
	// chronological order and the output needs no sort.
	for _, d := range daily {
		ws := WeekStart(d.Date)
		w, ok := byWeek[ws]
		if !ok {
			w = &WeeklyRecord{WeekStart: ws}
			byWeek[ws] = w
			order = append(order, ws)
		}
		w.Days++
		w.Players = w.Players.Add(d.Players)
		w.Deposits = w.Deposits.Add(d.Deposits)
		w.TotalWagering = w.TotalWagering.Add(d.TotalWagering)
		w.GrossRevenue = w.GrossRevenue.Add(d.GrossRevenue)
		w.ExpectedCashback = w.ExpectedCashback.Add(d.ExpectedCashback)
		w.ExpectedRakeback = w.ExpectedRakeback.Add(d.ExpectedRakeback)
		w.ExpectedTotalCashrake = w.ExpectedTotalCashrake.Add(d.ExpectedTotalCashrake)
		w.ActualCashrakePaid = w.ActualCashrakePaid.Add(d.ActualCashrakePaid)
		w.AcquisitionCost = w.AcquisitionCost.Add(d.AcquisitionCost)
		w.NetProfit = w.NetProfit.Add(d.NetProfit)
	}

	weekly := make([]WeeklyRecord, 0, len(order))
	for _, ws := range order {
		weekly = append(weekly, *byWeek[ws])
	}
	return weekly
}
