/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the simulation API. These decouple the internal
  record types (decimal.Decimal, time.Time) from the wire contract
  (float64 amounts, YYYY-MM-DD dates).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Done in handlers, not in DTOs. DTOs are pure data carriers.
*/
package api

import (
	"github.com/rakewell/cashrake/campaign"
	"github.com/rakewell/cashrake/sim"
)

const dateLayout = "2006-01-02"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SimulateRequest configures one simulation run. Every field is optional;
// zero values fall back to the default campaign. Overrides carries the
// economic constants by name, same keys as the YAML parameter file.
type SimulateRequest struct {
	GrowthModel string             `json:"growth_model,omitempty"`
	StartDate   string             `json:"start_date,omitempty"`
	Months      int                `json:"months,omitempty"`
	Overrides   map[string]float64 `json:"overrides,omitempty"`
	Persist     bool               `json:"persist,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SimulateResponse carries the three tables of a run.
type SimulateResponse struct {
	RunID       string     `json:"run_id"`
	GrowthModel string     `json:"growth_model"`
	StartDate   string     `json:"start_date"`
	Months      int        `json:"months"`
	Persisted   bool       `json:"persisted"`
	Monthly     []MonthDTO `json:"monthly"`
	Weekly      []WeekDTO  `json:"weekly"`
	Daily       []DayDTO   `json:"daily"`
}

// MonthDTO is one monthly record on the wire.
type MonthDTO struct {
	MonthIndex  int     `json:"month_index"`
	MonthStart  string  `json:"month_start"`
	GrowthParam float64 `json:"growth_param"`
	GrowthModel string  `json:"growth_model"`

	RetainedPlayers float64 `json:"retained_players"`
	NewPlayers      float64 `json:"new_players"`
	TotalPlayers    float64 `json:"total_players"`

	Deposits         float64 `json:"deposits"`
	LifetimeDeposits float64 `json:"lifetime_deposits"`

	LifetimeCap        float64 `json:"lifetime_cap"`
	RemainingCapBefore float64 `json:"remaining_cap_before"`

	ExpectedCashback      float64 `json:"expected_cashback"`
	ExpectedRakeback      float64 `json:"expected_rakeback"`
	ExpectedTotalCashrake float64 `json:"expected_total_cashrake"`
	ActualCashrakePaid    float64 `json:"actual_cashrake_paid"`
	LifetimeCapUsed       float64 `json:"lifetime_cap_used"`
	RemainingCapAfter     float64 `json:"remaining_cap_after"`

	TotalWagering   float64 `json:"total_wagering"`
	GrossRevenue    float64 `json:"gross_revenue"`
	AcquisitionCost float64 `json:"acquisition_cost"`
	NetProfit       float64 `json:"net_profit"`
}

// WeekDTO is one weekly record on the wire.
type WeekDTO struct {
	WeekStart string `json:"week_start"`
	Days      int    `json:"days"`

	Players               float64 `json:"players"`
	Deposits              float64 `json:"deposits"`
	TotalWagering         float64 `json:"total_wagering"`
	GrossRevenue          float64 `json:"gross_revenue"`
	ExpectedCashback      float64 `json:"expected_cashback"`
	ExpectedRakeback      float64 `json:"expected_rakeback"`
	ExpectedTotalCashrake float64 `json:"expected_total_cashrake"`
	ActualCashrakePaid    float64 `json:"actual_cashrake_paid"`
	AcquisitionCost       float64 `json:"acquisition_cost"`
	NetProfit             float64 `json:"net_profit"`
}

// DayDTO is one daily record on the wire.
type DayDTO struct {
	Date       string `json:"date"`
	MonthIndex int    `json:"month_index"`

	Players               float64 `json:"players"`
	Deposits              float64 `json:"deposits"`
	TotalWagering         float64 `json:"total_wagering"`
	GrossRevenue          float64 `json:"gross_revenue"`
	ExpectedCashback      float64 `json:"expected_cashback"`
	ExpectedRakeback      float64 `json:"expected_rakeback"`
	ExpectedTotalCashrake float64 `json:"expected_total_cashrake"`
	ActualCashrakePaid    float64 `json:"actual_cashrake_paid"`
	AcquisitionCost       float64 `json:"acquisition_cost"`
	NetProfit             float64 `json:"net_profit"`
}

// ModelDTO describes one growth model for discovery endpoints.
type ModelDTO struct {
	ID      string `json:"id"`
	Default bool   `json:"default"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toSimulateResponse(res *sim.Result, persisted bool) SimulateResponse {
	out := SimulateResponse{
		RunID:       res.RunID,
		GrowthModel: string(res.Model),
		StartDate:   res.Config.StartDate.Format(dateLayout),
		Months:      res.Config.Months,
		Persisted:   persisted,
		Monthly:     make([]MonthDTO, 0, len(res.Monthly)),
		Weekly:      make([]WeekDTO, 0, len(res.Weekly)),
		Daily:       make([]DayDTO, 0, len(res.Daily)),
	}
	for _, m := range res.Monthly {
		out.Monthly = append(out.Monthly, toMonthDTO(m))
	}
	for _, w := range res.Weekly {
		out.Weekly = append(out.Weekly, toWeekDTO(w))
	}
	for _, d := range res.Daily {
		out.Daily = append(out.Daily, toDayDTO(d))
	}
	return out
}

func toMonthDTO(m sim.MonthRecord) MonthDTO {
	return MonthDTO{
		MonthIndex:            m.MonthIndex,
		MonthStart:            m.MonthStart.Format(dateLayout),
		GrowthParam:           m.GrowthParam.InexactFloat64(),
		GrowthModel:           string(m.GrowthModel),
		RetainedPlayers:       m.RetainedPlayers.InexactFloat64(),
		NewPlayers:            m.NewPlayers.InexactFloat64(),
		TotalPlayers:          m.TotalPlayers.InexactFloat64(),
		Deposits:              m.Deposits.InexactFloat64(),
		LifetimeDeposits:      m.LifetimeDeposits.InexactFloat64(),
		LifetimeCap:           m.LifetimeCap.InexactFloat64(),
		RemainingCapBefore:    m.RemainingCapBefore.InexactFloat64(),
		ExpectedCashback:      m.ExpectedCashback.InexactFloat64(),
		ExpectedRakeback:      m.ExpectedRakeback.InexactFloat64(),
		ExpectedTotalCashrake: m.ExpectedTotalCashrake.InexactFloat64(),
		ActualCashrakePaid:    m.ActualCashrakePaid.InexactFloat64(),
		LifetimeCapUsed:       m.LifetimeCapUsed.InexactFloat64(),
		RemainingCapAfter:     m.RemainingCapAfter.InexactFloat64(),
		TotalWagering:         m.TotalWagering.InexactFloat64(),
		GrossRevenue:          m.GrossRevenue.InexactFloat64(),
		AcquisitionCost:       m.AcquisitionCost.InexactFloat64(),
		NetProfit:             m.NetProfit.InexactFloat64(),
	}
}

func toWeekDTO(w sim.WeeklyRecord) WeekDTO {
	return WeekDTO{
		WeekStart:             w.WeekStart.Format(dateLayout),
		Days:                  w.Days,
		Players:               w.Players.InexactFloat64(),
		Deposits:              w.Deposits.InexactFloat64(),
		TotalWagering:         w.TotalWagering.InexactFloat64(),
		GrossRevenue:          w.GrossRevenue.InexactFloat64(),
		ExpectedCashback:      w.ExpectedCashback.InexactFloat64(),
		ExpectedRakeback:      w.ExpectedRakeback.InexactFloat64(),
		ExpectedTotalCashrake: w.ExpectedTotalCashrake.InexactFloat64(),
		ActualCashrakePaid:    w.ActualCashrakePaid.InexactFloat64(),
		AcquisitionCost:       w.AcquisitionCost.InexactFloat64(),
		NetProfit:             w.NetProfit.InexactFloat64(),
	}
}

func toDayDTO(d sim.DailyRecord) DayDTO {
	return DayDTO{
		Date:                  d.Date.Format(dateLayout),
		MonthIndex:            d.MonthIndex,
		Players:               d.Players.InexactFloat64(),
		Deposits:              d.Deposits.InexactFloat64(),
		TotalWagering:         d.TotalWagering.InexactFloat64(),
		GrossRevenue:          d.GrossRevenue.InexactFloat64(),
		ExpectedCashback:      d.ExpectedCashback.InexactFloat64(),
		ExpectedRakeback:      d.ExpectedRakeback.InexactFloat64(),
		ExpectedTotalCashrake: d.ExpectedTotalCashrake.InexactFloat64(),
		ActualCashrakePaid:    d.ActualCashrakePaid.InexactFloat64(),
		AcquisitionCost:       d.AcquisitionCost.InexactFloat64(),
		NetProfit:             d.NetProfit.InexactFloat64(),
	}
}

func toModelDTOs() []ModelDTO {
	models := campaign.Models()
	out := make([]ModelDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ModelDTO{ID: string(m), Default: m == campaign.GrowthRetainedPlusNew})
	}
	return out
}
