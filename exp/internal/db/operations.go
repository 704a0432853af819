package db

import (
	"fmt"
)

// InsertRun records a completed run
func (d *DB) InsertRun(run *Run) error {
	_, err := d.db.Exec(
		"INSERT INTO runs (id, algorithm, deck_size, trials, seed, chi_square, p_value) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Algorithm, run.DeckSize, run.Trials, run.Seed, run.ChiSquare, run.PValue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// InsertPositionCounts stores every cell of a run's frequency table in a
// single transaction. A 52-card deck writes 2704 rows.
func (d *DB) InsertPositionCounts(counts []*PositionCount) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		"INSERT INTO position_counts (run_id, value, position, count) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range counts {
		if _, err := stmt.Exec(c.RunID, c.Value, c.Position, c.Count); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert position count: %w", err)
		}
	}
	return tx.Commit()
}

// InsertTiming records the shuffle cost of a run
func (d *DB) InsertTiming(timing *Timing) error {
	_, err := d.db.Exec(
		"INSERT INTO timings (run_id, total_ns, per_shuffle_ns) VALUES (?, ?, ?)",
		timing.RunID, timing.TotalNS, timing.PerShuffleNS,
	)
	if err != nil {
		return fmt.Errorf("failed to insert timing: %w", err)
	}
	return nil
}

// InsertSample keeps one packed permutation from a run
func (d *DB) InsertSample(sample *Sample) (int64, error) {
	result, err := d.db.Exec(
		"INSERT INTO samples (run_id, trial, packed) VALUES (?, ?, ?)",
		sample.RunID, sample.Trial, sample.Packed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sample: %w", err)
	}
	return result.LastInsertId()
}

// GetRun retrieves a run by ID
func (d *DB) GetRun(id string) (*Run, error) {
	var run Run
	err := d.db.QueryRow(
		"SELECT id, algorithm, deck_size, trials, seed, chi_square, p_value, created_at FROM runs WHERE id = ?",
		id,
	).Scan(
		&run.ID, &run.Algorithm, &run.DeckSize, &run.Trials,
		&run.Seed, &run.ChiSquare, &run.PValue, &run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves all runs, newest first
func (d *DB) ListRuns() ([]*Run, error) {
	rows, err := d.db.Query(`
		SELECT id, algorithm, deck_size, trials, seed, chi_square, p_value, created_at
		FROM runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		err := rows.Scan(
			&r.ID, &r.Algorithm, &r.DeckSize, &r.Trials,
			&r.Seed, &r.ChiSquare, &r.PValue, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// LoadCounts retrieves a run's full frequency table ordered by cell
func (d *DB) LoadCounts(runID string) ([]*PositionCount, error) {
	rows, err := d.db.Query(`
		SELECT run_id, value, position, count
		FROM position_counts
		WHERE run_id = ?
		ORDER BY value, position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query position counts: %w", err)
	}
	defer rows.Close()

	var counts []*PositionCount
	for rows.Next() {
		var c PositionCount
		if err := rows.Scan(&c.RunID, &c.Value, &c.Position, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan position count: %w", err)
		}
		counts = append(counts, &c)
	}
	return counts, rows.Err()
}

// ListSamples retrieves a run's packed permutations ordered by trial
func (d *DB) ListSamples(runID string) ([]*Sample, error) {
	rows, err := d.db.Query(
		"SELECT id, run_id, trial, packed FROM samples WHERE run_id = ? ORDER BY trial",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []*Sample
	for rows.Next() {
		var s Sample
		if err := rows.Scan(&s.ID, &s.RunID, &s.Trial, &s.Packed); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, &s)
	}
	return samples, rows.Err()
}

// CountRuns counts total recorded runs
func (d *DB) CountRuns() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}
