package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"exp/internal/config"
	"exp/internal/db"

	"github.com/yyyoichi/shuffle_bias/permpack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := flag.String("db", cfg.DB.Path, "Path to database file")
	queryType := flag.String("query", "stats", "Query type: stats, algorithms, deck-sizes, timings, runs, detailed, samples, raw")
	algo := flag.String("algo", "fisher_yates", "Algorithm for the detailed query")
	runID := flag.String("run", "", "Run ID for the samples query")
	minChi := flag.Float64("min-chi", 0, "Minimum chi-square for the runs query")
	rawSQL := flag.String("sql", "", "Raw SQL query to execute")

	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	switch *queryType {
	case "stats":
		count, err := database.CountRuns()
		if err != nil {
			log.Fatalf("Failed to count runs: %v", err)
		}
		fmt.Printf("Total runs: %d\n", count)

	case "algorithms":
		stats, err := database.GetAlgorithmStats()
		if err != nil {
			log.Fatalf("Failed to get algorithm stats: %v", err)
		}
		printJSON(stats)

	case "deck-sizes":
		stats, err := database.GetDeckSizeStats()
		if err != nil {
			log.Fatalf("Failed to get deck size stats: %v", err)
		}
		printJSON(stats)

	case "timings":
		stats, err := database.GetTimingStats()
		if err != nil {
			log.Fatalf("Failed to get timing stats: %v", err)
		}
		printJSON(stats)

	case "runs":
		runs, err := database.GetRunsOverChiSquare(*minChi)
		if err != nil {
			log.Fatalf("Failed to get runs: %v", err)
		}
		printJSON(runs)

	case "detailed":
		details, err := database.GetRunsByAlgorithm(*algo)
		if err != nil {
			log.Fatalf("Failed to get detailed runs: %v", err)
		}
		printJSON(details)

	case "samples":
		if *runID == "" {
			log.Fatal("Please provide a run id with -run flag")
		}
		stored, err := database.ListSamples(*runID)
		if err != nil {
			log.Fatalf("Failed to list samples: %v", err)
		}
		type sample struct {
			Trial int
			Perm  []int
		}
		decoded := make([]sample, 0, len(stored))
		for _, s := range stored {
			perm, err := permpack.Unpack(s.Packed)
			if err != nil {
				log.Fatalf("Failed to unpack sample %d: %v", s.Trial, err)
			}
			decoded = append(decoded, sample{Trial: s.Trial, Perm: perm})
		}
		printJSON(decoded)

	case "raw":
		if *rawSQL == "" {
			log.Fatal("Please provide SQL query with -sql flag")
		}
		rows, err := database.ExecuteRawQuery(*rawSQL)
		if err != nil {
			log.Fatalf("Failed to execute query: %v", err)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			log.Fatalf("Failed to get columns: %v", err)
		}

		fmt.Println("Columns:", cols)
		for rows.Next() {
			values := make([]any, len(cols))
			valuePtrs := make([]any, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				log.Fatalf("Failed to scan row: %v", err)
			}

			for i, col := range cols {
				fmt.Printf("%s: %v\n", col, values[i])
			}
			fmt.Println("---")
		}

	default:
		log.Fatalf("Unknown query type: %s", *queryType)
	}
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatalf("Failed to encode JSON: %v", err)
	}
}
