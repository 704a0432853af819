package chisq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Observe(t *testing.T) {
	test := []struct {
		name   string
		n      int
		perms  [][]int
		expErr error
	}{
		{"identity", 3, [][]int{{0, 1, 2}}, nil},
		{"reversed then identity", 3, [][]int{{2, 1, 0}, {0, 1, 2}}, nil},
		{"wrong length", 3, [][]int{{0, 1}}, ErrSizeMismatch},
		{"value too large", 3, [][]int{{0, 1, 3}}, ErrValueRange},
		{"negative value", 3, [][]int{{0, -1, 2}}, ErrValueRange},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.n)
			var err error
			for _, p := range tt.perms {
				err = table.Observe(p)
			}
			if tt.expErr != nil {
				assert.ErrorIs(t, err, tt.expErr)
				// a rejected deck must not leave partial counts behind
				assert.Zero(t, table.Trials())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.perms), table.Trials())
		})
	}
}

func TestTable_Counts(t *testing.T) {
	table := NewTable(2)
	require.NoError(t, table.Observe([]int{0, 1}))
	require.NoError(t, table.Observe([]int{0, 1}))
	require.NoError(t, table.Observe([]int{1, 0}))

	assert.Equal(t, 2, table.Count(0, 0))
	assert.Equal(t, 1, table.Count(0, 1))
	assert.Equal(t, 1, table.Count(1, 0))
	assert.Equal(t, 2, table.Count(1, 1))
	assert.Equal(t, 2, table.Size())
	assert.Panics(t, func() { table.Count(2, 0) })
	assert.Panics(t, func() { table.Count(0, -1) })
}

func TestTable_ChiSquare(t *testing.T) {
	t.Run("balanced counts score zero", func(t *testing.T) {
		table := NewTable(2)
		for range 2 {
			require.NoError(t, table.Observe([]int{0, 1}))
			require.NoError(t, table.Observe([]int{1, 0}))
		}
		assert.Zero(t, table.ChiSquare())
		assert.Equal(t, 1.0, table.PValue())
	})

	t.Run("small imbalance", func(t *testing.T) {
		table := NewTable(2)
		require.NoError(t, table.Observe([]int{0, 1}))
		require.NoError(t, table.Observe([]int{0, 1}))
		require.NoError(t, table.Observe([]int{1, 0}))

		// counts 2,1,1,2 against an expectation of 1.5 per cell
		assert.InDelta(t, 2.0/3.0, table.ChiSquare(), 1e-12)
		assert.Equal(t, 3, table.DegreesOfFreedom())
		p := table.PValue()
		assert.Greater(t, p, 0.5)
		assert.Less(t, p, 1.0)
	})

	t.Run("empty table", func(t *testing.T) {
		table := NewTable(0)
		assert.NoError(t, table.Observe(nil))
		assert.Zero(t, table.ChiSquare())
		assert.Equal(t, 1.0, table.PValue())
		assert.Zero(t, table.DegreesOfFreedom())
	})

	t.Run("single value deck", func(t *testing.T) {
		// one value has one permutation, so the table has no degrees of
		// freedom and the statistic carries no information
		table := NewTable(1)
		for range 10 {
			require.NoError(t, table.Observe([]int{0}))
		}
		assert.Equal(t, 10, table.Count(0, 0))
		assert.Zero(t, table.DegreesOfFreedom())
		assert.Zero(t, table.ChiSquare())
		assert.Equal(t, 1.0, table.PValue())
	})
}
