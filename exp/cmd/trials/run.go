package main

import (
	"database/sql"
	"fmt"
	"time"

	"exp/internal/db"

	"github.com/google/uuid"
	shuffle "github.com/yyyoichi/shuffle_bias"
	"github.com/yyyoichi/shuffle_bias/chisq"
	"github.com/yyyoichi/shuffle_bias/permpack"
)

type algorithm struct {
	name string
	fn   func(*shuffle.Shuffler, []int)
}

var algorithms = []algorithm{
	{"random_sort", (*shuffle.Shuffler).RandomSort},
	{"naive_swap", (*shuffle.Shuffler).NaiveSwap},
	{"fisher_yates", (*shuffle.Shuffler).FisherYates},
}

// selectAlgorithms resolves the -algo flag
func selectAlgorithms(name string) ([]algorithm, error) {
	if name == "all" {
		return algorithms, nil
	}
	for _, a := range algorithms {
		if a.name == name {
			return []algorithm{a}, nil
		}
	}
	return nil, fmt.Errorf("no algorithm named %q", name)
}

// runResult carries everything one run writes to the database.
type runResult struct {
	runID     string
	algorithm string
	deckSize  int
	trials    int
	seed      sql.NullInt64
	table     *chisq.Table
	chiSquare float64
	pValue    float64
	totalNS   int64
	samples   [][]byte
}

// runTrials shuffles one deck size with one algorithm and tabulates where
// every value lands. Each trial shuffles the identity deck, not the previous
// result, and only the shuffle call counts toward the timing.
func runTrials(a algorithm, size, trials int, seed int64, samples int) (*runResult, error) {
	if size < 0 {
		return nil, fmt.Errorf("deck size %d is negative", size)
	}
	var opts []shuffle.Option
	var nullSeed sql.NullInt64
	if seed != 0 {
		opts = append(opts, shuffle.WithSeed(seed))
		nullSeed = sql.NullInt64{Int64: seed, Valid: true}
	}
	s, err := shuffle.New(opts...)
	if err != nil {
		return nil, err
	}

	result := &runResult{
		runID:     uuid.NewString(),
		algorithm: a.name,
		deckSize:  size,
		trials:    trials,
		seed:      nullSeed,
		table:     chisq.NewTable(size),
	}

	deck := make([]int, size)
	var total time.Duration
	for trial := range trials {
		for i := range deck {
			deck[i] = i
		}

		start := time.Now()
		a.fn(s, deck)
		total += time.Since(start)

		if err := result.table.Observe(deck); err != nil {
			return nil, err
		}
		if trial < samples {
			packed, err := permpack.Pack(deck)
			if err != nil {
				return nil, err
			}
			result.samples = append(result.samples, packed)
		}
	}

	result.chiSquare = result.table.ChiSquare()
	result.pValue = result.table.PValue()
	result.totalNS = total.Nanoseconds()
	return result, nil
}

// record writes a finished run, its frequency table, timing and samples.
func record(database *db.DB, r *runResult) error {
	if err := database.InsertRun(&db.Run{
		ID:        r.runID,
		Algorithm: r.algorithm,
		DeckSize:  r.deckSize,
		Trials:    r.trials,
		Seed:      r.seed,
		ChiSquare: r.chiSquare,
		PValue:    r.pValue,
	}); err != nil {
		return err
	}

	counts := make([]*db.PositionCount, 0, r.deckSize*r.deckSize)
	for value := range r.deckSize {
		for position := range r.deckSize {
			counts = append(counts, &db.PositionCount{
				RunID:    r.runID,
				Value:    value,
				Position: position,
				Count:    int64(r.table.Count(value, position)),
			})
		}
	}
	if err := database.InsertPositionCounts(counts); err != nil {
		return err
	}

	perShuffle := 0.0
	if r.trials > 0 {
		perShuffle = float64(r.totalNS) / float64(r.trials)
	}
	if err := database.InsertTiming(&db.Timing{
		RunID:        r.runID,
		TotalNS:      r.totalNS,
		PerShuffleNS: perShuffle,
	}); err != nil {
		return err
	}

	for trial, packed := range r.samples {
		if _, err := database.InsertSample(&db.Sample{
			RunID:  r.runID,
			Trial:  trial,
			Packed: packed,
		}); err != nil {
			return err
		}
	}
	return nil
}
