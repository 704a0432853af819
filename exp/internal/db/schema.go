package db

const schema = `
-- Runs table: one row per recorded experiment
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    algorithm TEXT NOT NULL,
    deck_size INTEGER NOT NULL,
    trials INTEGER NOT NULL,
    seed INTEGER,
    chi_square REAL NOT NULL,
    p_value REAL NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Position counts table: one cell of the value x position frequency table
CREATE TABLE IF NOT EXISTS position_counts (
    run_id TEXT NOT NULL,
    value INTEGER NOT NULL,
    position INTEGER NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (run_id, value, position),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

-- Timings table: accumulated shuffle cost per run
CREATE TABLE IF NOT EXISTS timings (
    run_id TEXT NOT NULL UNIQUE,
    total_ns INTEGER NOT NULL,
    per_shuffle_ns REAL NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

-- Samples table: packed permutations kept for spot checks
CREATE TABLE IF NOT EXISTS samples (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    trial INTEGER NOT NULL,
    packed BLOB NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
    UNIQUE(run_id, trial)
);

-- Indexes for performance
CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
CREATE INDEX IF NOT EXISTS idx_runs_deck_size ON runs(deck_size);
CREATE INDEX IF NOT EXISTS idx_runs_chi_square ON runs(chi_square);
CREATE INDEX IF NOT EXISTS idx_position_counts_run ON position_counts(run_id);
CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);

-- View joining runs with timings and the uniformity verdict
CREATE VIEW IF NOT EXISTS runs_detailed AS
SELECT
    r.id,
    r.algorithm,
    r.deck_size,
    r.trials,
    r.seed,
    r.chi_square,
    r.p_value,
    r.deck_size * r.deck_size - 1 AS degrees_of_freedom,
    r.chi_square < 2.0 * (r.deck_size * r.deck_size - 1) AS uniform,
    t.total_ns,
    t.per_shuffle_ns,
    r.created_at
FROM runs r
LEFT JOIN timings t ON t.run_id = r.id;
`
