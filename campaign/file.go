/*
file.go - YAML overrides for campaign parameters

PURPOSE:
  Lets a run override the default economic constants from a YAML file
  without recompiling. Only keys present in the file are applied; absent
  keys keep their Default() values, so a file can tweak a single rate.

EXAMPLE FILE:
  start_date: 2026-01-01
  months: 24
  avg_deposit: 120
  retention_rate: 0.55
  growth_rates:
    1: 2.0
    2: 1.0
  default_growth: 0.25

SEE ALSO:
  - config.go: The Config the overrides are applied to
*/
package campaign

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with optional fields. Pointers distinguish
// "absent" from "explicitly zero".
type fileConfig struct {
	StartDate        string          `yaml:"start_date"`
	Months           *int            `yaml:"months"`
	StartingPlayers  *float64        `yaml:"starting_players"`
	AvgDeposit       *float64        `yaml:"avg_deposit"`
	AvgBet           *float64        `yaml:"avg_bet"`
	WagerMultiplier  *float64        `yaml:"wager_multiplier"`
	HouseEdge        *float64        `yaml:"house_edge"`
	CashbackRate     *float64        `yaml:"cashback_rate"`
	RakebackRate     *float64        `yaml:"rakeback_rate"`
	CapRate          *float64        `yaml:"cap_rate"`
	AcqCostPerPlayer *float64        `yaml:"acq_cost_per_player"`
	RetentionRate    *float64        `yaml:"retention_rate"`
	GrowthRates      map[int]float64 `yaml:"growth_rates"`
	DefaultGrowth    *float64        `yaml:"default_growth"`
}

// LoadFile reads a YAML parameter file and applies it over Default().
// A missing file is an error: an explicitly requested override that
// silently falls back to defaults would be worse than failing.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read campaign config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse campaign config: %w", err)
	}

	cfg := Default()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.StartDate != "" {
		t, err := time.Parse("2006-01-02", fc.StartDate)
		if err != nil {
			return &InvalidConfigError{Field: "start_date", Reason: "must be YYYY-MM-DD"}
		}
		cfg.StartDate = t
	}
	if fc.Months != nil {
		cfg.Months = *fc.Months
	}

	setDec := func(dst *decimal.Decimal, src *float64) {
		if src != nil {
			*dst = decimal.NewFromFloat(*src)
		}
	}
	setDec(&cfg.StartingPlayers, fc.StartingPlayers)
	setDec(&cfg.AvgDeposit, fc.AvgDeposit)
	setDec(&cfg.AvgBet, fc.AvgBet)
	setDec(&cfg.WagerMultiplier, fc.WagerMultiplier)
	setDec(&cfg.HouseEdge, fc.HouseEdge)
	setDec(&cfg.CashbackRate, fc.CashbackRate)
	setDec(&cfg.RakebackRate, fc.RakebackRate)
	setDec(&cfg.CapRate, fc.CapRate)
	setDec(&cfg.AcqCostPerPlayer, fc.AcqCostPerPlayer)
	setDec(&cfg.RetentionRate, fc.RetentionRate)

	if fc.GrowthRates != nil {
		rates := make(map[int]decimal.Decimal, len(fc.GrowthRates))
		for idx, rate := range fc.GrowthRates {
			rates[idx] = decimal.NewFromFloat(rate)
		}
		cfg.Growth.Rates = rates
	}
	setDec(&cfg.Growth.Default, fc.DefaultGrowth)
	return nil
}
