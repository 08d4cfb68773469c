/*
handlers.go - HTTP handlers for the simulation API

PURPOSE:
  Exposes simulation runs over REST. Handles HTTP request/response and
  JSON serialization, delegating the actual computation to sim.Run.

ENDPOINTS:
  GET  /api/health           Liveness check
  GET  /api/models           List valid growth models
  POST /api/simulate         Run a simulation, return the three tables
  GET  /api/runs             List persisted runs (requires results db)
  POST /api/simulate/workbook Run and stream the xlsx workbook

REQUEST FLOW:
  1. Parse and validate the request body
  2. Build the campaign config (defaults + overrides)
  3. Run the simulation
  4. Optionally persist to the results database
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Unknown growth model, malformed body, invalid config
  - 500: Persistence or serialization failures

SEE ALSO:
  - dto.go: Request/response structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rakewell/cashrake/campaign"
	"github.com/rakewell/cashrake/export"
	"github.com/rakewell/cashrake/sim"
	"github.com/rakewell/cashrake/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the handler dependencies. Store may be nil, in which case
// persistence endpoints report that no results database is configured.
type Handler struct {
	Store *sqlite.Store
	Base  campaign.Config
}

// NewHandler builds a Handler around the default campaign.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store, Base: campaign.Default()}
}

// =============================================================================
// HANDLERS
// =============================================================================

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListModels returns the valid growth-model selectors.
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toModelDTOs())
}

// Simulate runs one simulation and returns the three tables as JSON.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	res, persist, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	persisted := false
	if persist {
		if h.Store == nil {
			writeError(w, http.StatusBadRequest, "No results database configured", nil)
			return
		}
		if err := h.Store.SaveRun(r.Context(), res); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to persist run", err)
			return
		}
		persisted = true
	}

	writeJSON(w, http.StatusOK, toSimulateResponse(res, persisted))
}

// SimulateWorkbook runs one simulation and streams the xlsx workbook.
func (h *Handler) SimulateWorkbook(w http.ResponseWriter, r *http.Request) {
	res, _, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "cashrake_"+res.RunID+".xlsx"))
	if err := export.RenderWorkbook(w, res); err != nil {
		// Headers are gone; nothing useful left to send.
		return
	}
}

// ListRuns returns persisted run summaries.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusBadRequest, "No results database configured", nil)
		return
	}
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list runs", err)
		return
	}
	if runs == nil {
		runs = []sqlite.RunSummary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// =============================================================================
// REQUEST ASSEMBLY
// =============================================================================

// runFromRequest parses the body, builds the config, and runs the
// simulation, writing the error response itself on failure.
func (h *Handler) runFromRequest(w http.ResponseWriter, r *http.Request) (*sim.Result, bool, bool) {
	var req SimulateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return nil, false, false
		}
	}

	model := campaign.GrowthRetainedPlusNew
	if req.GrowthModel != "" {
		parsed, err := campaign.ParseGrowthModel(req.GrowthModel)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown growth model", err)
			return nil, false, false
		}
		model = parsed
	}

	cfg := h.Base
	if req.StartDate != "" {
		t, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
			return nil, false, false
		}
		cfg.StartDate = t
	}
	if req.Months != 0 {
		cfg.Months = req.Months
	}
	if err := applyOverrides(&cfg, req.Overrides); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid override", err)
		return nil, false, false
	}

	res, err := sim.Run(cfg, model)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, campaign.ErrUnknownGrowthModel) || errors.Is(err, campaign.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Simulation failed", err)
		return nil, false, false
	}
	return res, req.Persist, true
}

// applyOverrides maps override keys (same names as the YAML parameter
// file) onto config fields.
func applyOverrides(cfg *campaign.Config, overrides map[string]float64) error {
	for key, v := range overrides {
		d := decimal.NewFromFloat(v)
		switch key {
		case "starting_players":
			cfg.StartingPlayers = d
		case "avg_deposit":
			cfg.AvgDeposit = d
		case "avg_bet":
			cfg.AvgBet = d
		case "wager_multiplier":
			cfg.WagerMultiplier = d
		case "house_edge":
			cfg.HouseEdge = d
		case "cashback_rate":
			cfg.CashbackRate = d
		case "rakeback_rate":
			cfg.RakebackRate = d
		case "cap_rate":
			cfg.CapRate = d
		case "acq_cost_per_player":
			cfg.AcqCostPerPlayer = d
		case "retention_rate":
			cfg.RetentionRate = d
		case "default_growth":
			cfg.Growth.Default = d
		default:
			return fmt.Errorf("unknown override key %q", key)
		}
	}
	return nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
