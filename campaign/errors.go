/*
errors.go - Centralized error types for campaign configuration

PURPOSE:
  All configuration errors in one place for consistency and
  discoverability. Callers match with errors.Is(); the structured types
  carry the offending value for error messages.

ERROR CATEGORIES:
  1. Selector errors - Unknown growth model (the only way a run aborts)
  2. Config errors   - Structurally invalid parameters

USAGE:
  if errors.Is(err, campaign.ErrUnknownGrowthModel) {
      // reject before running the simulation
  }
*/
package campaign

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownGrowthModel is returned when the growth-model selector is
	// not one of the enumerated models. Surfaced before any table is built.
	ErrUnknownGrowthModel = errors.New("unknown growth model")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid campaign config")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownGrowthModelError reports the rejected selector value.
type UnknownGrowthModelError struct {
	Value string
}

func (e *UnknownGrowthModelError) Error() string {
	return fmt.Sprintf("unknown growth model %q (valid: %s, %s)",
		e.Value, GrowthRetainedPlusNew, GrowthSimple)
}

func (e *UnknownGrowthModelError) Unwrap() error {
	return ErrUnknownGrowthModel
}

// InvalidConfigError reports which field failed validation and why.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid campaign config: %s %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}
