package main

import (
	"flag"

	"exp/internal/config"
	"exp/internal/db"
	"exp/internal/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logging.Init("trials", cfg.Debug)

	algo := flag.String("algo", "all", "algorithm to run: all, random_sort, naive_swap, fisher_yates")
	size := flag.Int("size", cfg.Trials.DeckSize, "deck size")
	trials := flag.Int("trials", cfg.Trials.Count, "shuffles per run")
	seed := flag.Int64("seed", cfg.Trials.Seed, "generator seed, 0 means clock seed")
	samples := flag.Int("samples", cfg.Trials.Samples, "packed permutations to keep per run")
	dbPath := flag.String("db", cfg.DB.Path, "path to the results database")
	flag.Parse()

	selected, err := selectAlgorithms(*algo)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown algorithm")
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to open database")
	}
	defer database.Close()

	for _, a := range selected {
		result, err := runTrials(a, *size, *trials, *seed, *samples)
		if err != nil {
			log.Fatal().Err(err).Str("algorithm", a.name).Msg("run failed")
		}
		if err := record(database, result); err != nil {
			log.Fatal().Err(err).Str("algorithm", a.name).Msg("failed to record run")
		}
		log.Info().
			Str("run_id", result.runID).
			Str("algorithm", a.name).
			Int("deck_size", *size).
			Int("trials", *trials).
			Float64("chi_square", result.chiSquare).
			Float64("p_value", result.pValue).
			Msg("run recorded")
	}
}
