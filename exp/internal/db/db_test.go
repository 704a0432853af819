package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/shuffle_bias/permpack"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func insertTestRun(t *testing.T, d *DB, id, algorithm string) {
	t.Helper()
	err := d.InsertRun(&Run{
		ID:        id,
		Algorithm: algorithm,
		DeckSize:  4,
		Trials:    100,
		Seed:      sql.NullInt64{Int64: 42, Valid: true},
		ChiSquare: 12.5,
		PValue:    0.68,
	})
	require.NoError(t, err)
}

func TestDB_Runs(t *testing.T) {
	d := openTestDB(t)
	insertTestRun(t, d, "run-1", "fisher_yates")

	got, err := d.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "fisher_yates", got.Algorithm)
	assert.Equal(t, 4, got.DeckSize)
	assert.Equal(t, 100, got.Trials)
	assert.Equal(t, int64(42), got.Seed.Int64)
	assert.NotEmpty(t, got.CreatedAt)

	insertTestRun(t, d, "run-2", "naive_swap")

	runs, err := d.ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	count, err := d.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDB_PositionCounts(t *testing.T) {
	d := openTestDB(t)
	insertTestRun(t, d, "run-1", "fisher_yates")

	counts := make([]*PositionCount, 0, 4)
	for value := range 2 {
		for position := range 2 {
			counts = append(counts, &PositionCount{
				RunID:    "run-1",
				Value:    value,
				Position: position,
				Count:    int64(25 * (value*2 + position + 1)),
			})
		}
	}
	require.NoError(t, d.InsertPositionCounts(counts))

	got, err := d.LoadCounts("run-1")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, int64(25), got[0].Count)
	assert.Equal(t, int64(100), got[3].Count)
}

func TestDB_PositionCounts_UnknownRun(t *testing.T) {
	d := openTestDB(t)

	err := d.InsertPositionCounts([]*PositionCount{
		{RunID: "missing", Value: 0, Position: 0, Count: 1},
	})
	assert.Error(t, err)
}

func TestDB_TimingAndSamples(t *testing.T) {
	d := openTestDB(t)
	insertTestRun(t, d, "run-1", "fisher_yates")

	err := d.InsertTiming(&Timing{RunID: "run-1", TotalNS: 5_000_000, PerShuffleNS: 50_000})
	require.NoError(t, err)

	perms := [][]int{{2, 0, 1, 3}, {3, 1, 0, 2}}
	for trial, perm := range perms {
		packed, err := permpack.Pack(perm)
		require.NoError(t, err)
		id, err := d.InsertSample(&Sample{RunID: "run-1", Trial: trial, Packed: packed})
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	samples, err := d.ListSamples("run-1")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	for i, s := range samples {
		assert.Equal(t, i, s.Trial)
		perm, err := permpack.Unpack(s.Packed)
		require.NoError(t, err)
		assert.Equal(t, perms[i], perm)
	}
}

func TestDB_RunsDetailedView(t *testing.T) {
	d := openTestDB(t)

	// deck 4 has 15 degrees of freedom, so 12.5 passes and 45.0 does not
	insertTestRun(t, d, "run-1", "fisher_yates")
	err := d.InsertTiming(&Timing{RunID: "run-1", TotalNS: 100_000, PerShuffleNS: 1000})
	require.NoError(t, err)

	err = d.InsertRun(&Run{
		ID:        "run-2",
		Algorithm: "naive_swap",
		DeckSize:  4,
		Trials:    100,
		ChiSquare: 45.0,
		PValue:    0.0001,
	})
	require.NoError(t, err)

	details, err := d.QueryDetailed("SELECT * FROM runs_detailed ORDER BY id")
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, 15, details[0].DegreesOfFreedom)
	assert.True(t, details[0].Uniform)
	assert.True(t, details[0].TotalNS.Valid)
	assert.EqualValues(t, 100_000, details[0].TotalNS.Int64)

	assert.False(t, details[1].Uniform)
	assert.False(t, details[1].Seed.Valid)
	assert.False(t, details[1].TotalNS.Valid)

	stats, err := d.GetAlgorithmStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "fisher_yates", stats[0].Algorithm)
	assert.Equal(t, 1, stats[0].Runs)
	assert.InDelta(t, 1.0, stats[0].UniformRate, 1e-12)
	assert.InDelta(t, 0.0, stats[1].UniformRate, 1e-12)
}
