/*
Package campaign defines the configuration for a CashRake campaign run.

PURPOSE:
  A CashRake campaign pays players a combined cashback + rakeback bonus on
  their wagering, funded out of the house edge and limited by a lifetime
  cap proportional to cumulative deposits. This package holds everything
  the simulator needs to know about a campaign: economic constants, the
  player growth model, and the month-by-month growth schedule.

KEY CONCEPTS IN THIS FILE (config.go):
  - Config: Immutable run parameters (one value per run, never mutated)
  - GrowthModel: How next month's player count derives from this month's
  - GrowthSchedule: Explicit per-month growth lookup with a default rate

DESIGN PRINCIPLES:
  1. Immutability: Config is passed by value into the simulator; multiple
     parameterized runs share no state.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     money arithmetic.
  3. Explicit boundaries: The growth schedule is a documented map plus a
     documented default, not an implicit fallback.

USAGE:
  cfg := campaign.Default()
  cfg.Months = 24
  if err := cfg.Validate(); err != nil { ... }

SEE ALSO:
  - file.go: YAML overrides for the economic constants
  - errors.go: Sentinel errors for invalid configuration
  - sim/: The recurrence generator consuming this config
*/
package campaign

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// GROWTH MODEL - How monthly player counts evolve
// =============================================================================

// GrowthModel selects the player-count recurrence.
type GrowthModel string

const (
	// GrowthRetainedPlusNew: total = current*retention + current*growth.
	// Retained and newly acquired cohorts are computed independently.
	GrowthRetainedPlusNew GrowthModel = "retained_plus_new"

	// GrowthSimple: total = current*(1+growth).
	// New players are whatever exceeds the retained cohort, floored at zero.
	GrowthSimple GrowthModel = "simple_growth"
)

// Models lists every valid growth model, in CLI/API display order.
func Models() []GrowthModel {
	return []GrowthModel{GrowthRetainedPlusNew, GrowthSimple}
}

// ParseGrowthModel validates a selector string. Any value other than the
// two known models is rejected before a simulation can start.
func ParseGrowthModel(s string) (GrowthModel, error) {
	switch GrowthModel(s) {
	case GrowthRetainedPlusNew:
		return GrowthRetainedPlusNew, nil
	case GrowthSimple:
		return GrowthSimple, nil
	default:
		return "", &UnknownGrowthModelError{Value: s}
	}
}

// =============================================================================
// GROWTH SCHEDULE - Per-month growth rate lookup with default
// =============================================================================

// GrowthSchedule maps a 1-based month index to its growth parameter.
// Indices absent from Rates use Default. The boundary is explicit: an
// index present in Rates always wins, everything else gets Default.
type GrowthSchedule struct {
	Rates   map[int]decimal.Decimal
	Default decimal.Decimal
}

// RateFor resolves the growth parameter for a month index.
func (gs GrowthSchedule) RateFor(monthIndex int) decimal.Decimal {
	if rate, ok := gs.Rates[monthIndex]; ok {
		return rate
	}
	return gs.Default
}

// =============================================================================
// CONFIG - Immutable campaign parameters
// =============================================================================

// Config holds every parameter of a simulation run. Treat as immutable:
// the simulator never writes to it, so one Config can back many runs.
type Config struct {
	// Calendar window. StartDate may fall mid-month; the simulated months
	// begin on the first of StartDate's month.
	StartDate time.Time
	Months    int

	// Player base and economics.
	StartingPlayers  decimal.Decimal
	AvgDeposit       decimal.Decimal
	AvgBet           decimal.Decimal
	WagerMultiplier  decimal.Decimal
	HouseEdge        decimal.Decimal
	CashbackRate     decimal.Decimal
	RakebackRate     decimal.Decimal
	CapRate          decimal.Decimal
	AcqCostPerPlayer decimal.Decimal
	RetentionRate    decimal.Decimal

	Growth GrowthSchedule
}

// Default returns the reference campaign: the 12-month CashRake launch
// scenario starting 2025-11-23 with 1000 players.
func Default() Config {
	return Config{
		StartDate:        time.Date(2025, time.November, 23, 0, 0, 0, 0, time.UTC),
		Months:           12,
		StartingPlayers:  decimal.NewFromInt(1000),
		AvgDeposit:       decimal.NewFromFloat(100.0),
		AvgBet:           decimal.NewFromFloat(5.0),
		WagerMultiplier:  decimal.NewFromFloat(7.0),
		HouseEdge:        decimal.NewFromFloat(0.04),
		CashbackRate:     decimal.NewFromFloat(0.03),
		RakebackRate:     decimal.NewFromFloat(0.20),
		CapRate:          decimal.NewFromFloat(0.33),
		AcqCostPerPlayer: decimal.NewFromFloat(40.0),
		RetentionRate:    decimal.NewFromFloat(0.60),
		Growth: GrowthSchedule{
			Rates: map[int]decimal.Decimal{
				1: decimal.NewFromFloat(3.0),
				2: decimal.NewFromFloat(1.5),
				3: decimal.NewFromFloat(0.5),
			},
			Default: decimal.NewFromFloat(0.35),
		},
	}
}

// Validate checks the structural parameters. The economic constants are
// unconstrained (a zero house edge is a legal, if unprofitable, campaign)
// but the calendar window must be non-empty.
func (c Config) Validate() error {
	if c.Months <= 0 {
		return &InvalidConfigError{Field: "months", Reason: "must be positive"}
	}
	if c.StartDate.IsZero() {
		return &InvalidConfigError{Field: "start_date", Reason: "must be set"}
	}
	if c.StartingPlayers.IsNegative() {
		return &InvalidConfigError{Field: "starting_players", Reason: "must not be negative"}
	}
	return nil
}

// =============================================================================
// DERIVED FRACTIONS - Per-wager bonus fractions
// =============================================================================

// RakebackPerWager is the fraction of wagered volume refunded as rakeback
// (house edge times rakeback rate).
func (c Config) RakebackPerWager() decimal.Decimal {
	return c.HouseEdge.Mul(c.RakebackRate)
}

// CashbackPerWager is the fraction of wagered volume refunded as cashback.
func (c Config) CashbackPerWager() decimal.Decimal {
	return c.HouseEdge.Mul(c.CashbackRate)
}
