/*
main.go - CashRake simulator entry point

PURPOSE:
  Runs a CashRake campaign simulation and writes its artifacts, or starts
  the HTTP API in serve mode.

COMMAND-LINE FLAGS:
  -growth-model  retained_plus_new (default) or simple_growth.
                 Anything else is rejected before the simulation runs
                 and the process exits non-zero.
  -months        Number of months to simulate (default 12)
  -start         Start date, YYYY-MM-DD (default 2025-11-23)
  -config        Optional YAML file overriding the economic constants
  -out           Workbook output path (default cashrake_output.xlsx)
  -sqlite        Optional results database path; empty = no database
  -charts        Also render the two HTML line charts (default off)
  -charts-dir    Directory for chart files (default charts)
  -serve         Start the HTTP API instead of a one-shot run
  -port          HTTP port in serve mode (default 8080)

EXAMPLES:
  # One-shot run with defaults
  ./cashrake

  # Alternative growth model, two-year horizon
  ./cashrake -growth-model=simple_growth -months=24

  # Keep a queryable copy of the results
  ./cashrake -sqlite=./results.db

  # Serve simulations over HTTP
  ./cashrake -serve -port=3000

SEE ALSO:
  - campaign/config.go: Parameters and growth models
  - sim/simulator.go: The recurrence itself
  - api/server.go: Serve-mode router
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rakewell/cashrake/api"
	"github.com/rakewell/cashrake/campaign"
	"github.com/rakewell/cashrake/export"
	"github.com/rakewell/cashrake/sim"
	"github.com/rakewell/cashrake/store/sqlite"
)

func main() {
	growthModel := flag.String("growth-model", string(campaign.GrowthRetainedPlusNew),
		"Growth model for monthly player calculation (retained_plus_new or simple_growth)")
	months := flag.Int("months", 0, "Number of months to simulate (0 = campaign default)")
	start := flag.String("start", "", "Start date YYYY-MM-DD (empty = campaign default)")
	configPath := flag.String("config", "", "YAML parameter file overriding the default constants")
	outPath := flag.String("out", "cashrake_output.xlsx", "Workbook output path")
	dbPath := flag.String("sqlite", "", "Results database path (empty = no database)")
	chartsOn := flag.Bool("charts", false, "Render HTML line charts")
	chartsDir := flag.String("charts-dir", "charts", "Directory for chart files")
	serve := flag.Bool("serve", false, "Serve simulations over HTTP instead of a one-shot run")
	port := flag.Int("port", 8080, "HTTP server port (serve mode)")
	flag.Parse()

	// Validate the selector before anything else; an unknown model must
	// fail the run with no partial output.
	model, err := campaign.ParseGrowthModel(*growthModel)
	if err != nil {
		log.Fatalf("Invalid --growth-model: %v", err)
	}

	cfg := campaign.Default()
	if *configPath != "" {
		cfg, err = campaign.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *months > 0 {
		cfg.Months = *months
	}
	if *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("Invalid -start (use YYYY-MM-DD): %v", err)
		}
		cfg.StartDate = t
	}

	var store *sqlite.Store
	if *dbPath != "" {
		store, err = sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open results database: %v", err)
		}
		defer store.Close()
	}

	if *serve {
		runServer(store, *port)
		return
	}

	res, err := sim.Run(cfg, model)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Println("\n--- Monthly summary (preview) ---")
	export.PreviewMonthly(os.Stdout, res)

	if err := export.WriteWorkbook(*outPath, res); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}
	log.Printf("Workbook saved to %s", *outPath)

	if store != nil {
		if err := store.SaveRun(context.Background(), res); err != nil {
			log.Fatalf("Failed to save run: %v", err)
		}
		log.Printf("Run %s saved to %s", res.RunID, *dbPath)
	}

	if *chartsOn {
		if err := export.WriteCharts(*chartsDir, res); err != nil {
			log.Fatalf("Failed to render charts: %v", err)
		}
		log.Printf("Charts saved to %s", *chartsDir)
	}
}

func runServer(store *sqlite.Store, port int) {
	handler := api.NewHandler(store)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Simulation API listening on http://localhost:%d/api", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}
