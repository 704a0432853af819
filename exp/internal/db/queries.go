package db

import (
	"database/sql"
	"fmt"
)

// RunDetail is one row of the runs_detailed view.
type RunDetail struct {
	ID        string
	Algorithm string
	DeckSize  int
	Trials    int
	Seed      sql.NullInt64

	// Uniformity verdict
	ChiSquare        float64
	PValue           float64
	DegreesOfFreedom int
	Uniform          bool

	// Timing, absent when the run recorded none
	TotalNS      sql.NullInt64
	PerShuffleNS sql.NullFloat64

	CreatedAt string
}

// QueryDetailed executes a query on the runs_detailed view
func (d *DB) QueryDetailed(query string, args ...any) ([]*RunDetail, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var details []*RunDetail
	for rows.Next() {
		var r RunDetail
		err := rows.Scan(
			&r.ID,
			&r.Algorithm,
			&r.DeckSize,
			&r.Trials,
			&r.Seed,
			&r.ChiSquare,
			&r.PValue,
			&r.DegreesOfFreedom,
			&r.Uniform,
			&r.TotalNS,
			&r.PerShuffleNS,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		details = append(details, &r)
	}
	return details, rows.Err()
}

// GetRunsByAlgorithm returns detailed rows for one algorithm, newest first
func (d *DB) GetRunsByAlgorithm(algorithm string) ([]*RunDetail, error) {
	return d.QueryDetailed(`
		SELECT * FROM runs_detailed
		WHERE algorithm = ?
		ORDER BY created_at DESC, id
	`, algorithm)
}

// GetRunsOverChiSquare returns runs whose statistic reached the threshold
func (d *DB) GetRunsOverChiSquare(minChiSquare float64) ([]*RunDetail, error) {
	return d.QueryDetailed(`
		SELECT * FROM runs_detailed
		WHERE chi_square >= ?
		ORDER BY chi_square DESC
	`, minChiSquare)
}

// AlgorithmStats holds aggregate statistics for one algorithm
type AlgorithmStats struct {
	Algorithm    string
	Runs         int
	AvgChiSquare float64
	MinChiSquare float64
	MaxChiSquare float64
	AvgPValue    float64
	UniformRate  float64
}

// GetAlgorithmStats returns statistics grouped by algorithm
func (d *DB) GetAlgorithmStats() ([]*AlgorithmStats, error) {
	rows, err := d.db.Query(`
		SELECT
			algorithm,
			COUNT(*) as runs,
			AVG(chi_square) as avg_chi_square,
			MIN(chi_square) as min_chi_square,
			MAX(chi_square) as max_chi_square,
			AVG(p_value) as avg_p_value,
			AVG(CASE WHEN uniform THEN 1.0 ELSE 0.0 END) as uniform_rate
		FROM runs_detailed
		GROUP BY algorithm
		ORDER BY algorithm
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query algorithm stats: %w", err)
	}
	defer rows.Close()

	var stats []*AlgorithmStats
	for rows.Next() {
		var s AlgorithmStats
		err := rows.Scan(
			&s.Algorithm, &s.Runs,
			&s.AvgChiSquare, &s.MinChiSquare, &s.MaxChiSquare,
			&s.AvgPValue, &s.UniformRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

// DeckSizeStats holds aggregate statistics for one deck size
type DeckSizeStats struct {
	DeckSize     int
	Runs         int
	AvgChiSquare float64
	AvgPValue    float64
	UniformRate  float64
}

// GetDeckSizeStats returns statistics grouped by deck size
func (d *DB) GetDeckSizeStats() ([]*DeckSizeStats, error) {
	rows, err := d.db.Query(`
		SELECT
			deck_size,
			COUNT(*) as runs,
			AVG(chi_square) as avg_chi_square,
			AVG(p_value) as avg_p_value,
			AVG(CASE WHEN uniform THEN 1.0 ELSE 0.0 END) as uniform_rate
		FROM runs_detailed
		GROUP BY deck_size
		ORDER BY deck_size
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deck size stats: %w", err)
	}
	defer rows.Close()

	var stats []*DeckSizeStats
	for rows.Next() {
		var s DeckSizeStats
		err := rows.Scan(
			&s.DeckSize, &s.Runs,
			&s.AvgChiSquare, &s.AvgPValue, &s.UniformRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

// TimingStats holds the average cost per shuffle for an algorithm at one size
type TimingStats struct {
	Algorithm       string
	DeckSize        int
	Runs            int
	AvgPerShuffleNS float64
}

// GetTimingStats returns per-shuffle cost grouped by algorithm and deck size
func (d *DB) GetTimingStats() ([]*TimingStats, error) {
	rows, err := d.db.Query(`
		SELECT
			algorithm,
			deck_size,
			COUNT(*) as runs,
			AVG(per_shuffle_ns) as avg_per_shuffle_ns
		FROM runs_detailed
		WHERE per_shuffle_ns IS NOT NULL
		GROUP BY algorithm, deck_size
		ORDER BY deck_size, algorithm
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timing stats: %w", err)
	}
	defer rows.Close()

	var stats []*TimingStats
	for rows.Next() {
		var s TimingStats
		err := rows.Scan(&s.Algorithm, &s.DeckSize, &s.Runs, &s.AvgPerShuffleNS)
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

// ExecuteRawQuery executes a raw SQL query and returns rows
func (d *DB) ExecuteRawQuery(query string, args ...any) (*sql.Rows, error) {
	return d.db.Query(query, args...)
}
