package db

import "database/sql"

type (
	// Run represents one recorded experiment: a single algorithm shuffling
	// one deck size for a number of trials.
	Run struct {
		ID        string
		Algorithm string
		DeckSize  int
		Trials    int
		Seed      sql.NullInt64 // NULL when the run used a clock seed
		ChiSquare float64
		PValue    float64
		CreatedAt string
	}

	// PositionCount is one cell of the value x position frequency table:
	// how often Value landed at Position across the run's trials.
	PositionCount struct {
		RunID    string
		Value    int
		Position int
		Count    int64
	}

	// Timing holds the accumulated shuffle cost of a run. Only the shuffle
	// calls are timed, not the bookkeeping around them.
	Timing struct {
		RunID        string
		TotalNS      int64
		PerShuffleNS float64
	}

	// Sample is one shuffled permutation kept from a run, bit-packed.
	Sample struct {
		ID     int64
		RunID  string
		Trial  int
		Packed []byte
	}
)
