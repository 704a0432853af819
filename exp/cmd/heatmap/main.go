package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"exp/internal/config"
	"exp/internal/db"
	"exp/internal/logging"

	"github.com/rs/zerolog/log"
)

// This tool renders HTML charts from recorded runs: one value x position
// heatmap per run, plus a chi-square chart across all runs. A uniform shuffle
// shows an even field; a biased one shows hot and cold diagonals.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logging.Init("heatmap", cfg.Debug)

	dbPath := flag.String("db", cfg.DB.Path, "path to the results database")
	runID := flag.String("run", "", "run to render, empty means every run")
	outDir := flag.String("out", "./tmp/charts", "output directory")
	serve := flag.Bool("serve", false, "serve the output directory after rendering")
	addr := flag.String("addr", "localhost:8080", "listen address for -serve")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to open database")
	}
	defer database.Close()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("failed to create output directory")
	}

	runs, err := selectRuns(database, *runID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load runs")
	}
	if len(runs) == 0 {
		log.Fatal().Str("path", *dbPath).Msg("no runs recorded")
	}

	for _, run := range runs {
		path := filepath.Join(*outDir, fmt.Sprintf("heatmap_%s_%s.html", run.Algorithm, run.ID))
		if err := renderHeatmap(database, run, path); err != nil {
			log.Fatal().Err(err).Str("run_id", run.ID).Msg("failed to render heatmap")
		}
		log.Info().Str("path", path).Str("run_id", run.ID).Msg("heatmap written")
	}

	chartPath := filepath.Join(*outDir, "chi_square.html")
	if err := renderChiSquareChart(database, chartPath); err != nil {
		log.Fatal().Err(err).Msg("failed to render chi-square chart")
	}
	log.Info().Str("path", chartPath).Msg("chi-square chart written")

	if *serve {
		if err := serveCharts(*outDir, *addr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}
}

func selectRuns(database *db.DB, runID string) ([]*db.Run, error) {
	if runID == "" {
		return database.ListRuns()
	}
	run, err := database.GetRun(runID)
	if err != nil {
		return nil, err
	}
	return []*db.Run{run}, nil
}
