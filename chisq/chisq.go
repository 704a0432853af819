package chisq

import (
	"errors"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrSizeMismatch = errors.New("permutation length does not match table size")
	ErrValueRange   = errors.New("permutation value out of range")
)

// Table accumulates how often each value lands on each final position across
// repeated shuffles of a 0..n-1 deck. Under a uniform shuffle every
// (value, position) cell is expected to hold trials/n observations.
type Table struct {
	n      int
	trials int
	counts []float64
}

// NewTable returns an empty table for decks of n values.
func NewTable(n int) *Table {
	if n < 0 {
		n = 0
	}
	return &Table{n: n, counts: make([]float64, n*n)}
}

// Observe records one shuffled deck. The deck must have exactly n values,
// each within [0, n); nothing is recorded otherwise.
func (t *Table) Observe(perm []int) error {
	if len(perm) != t.n {
		return ErrSizeMismatch
	}
	for _, v := range perm {
		if v < 0 || v >= t.n {
			return ErrValueRange
		}
	}
	for pos, v := range perm {
		t.counts[v*t.n+pos]++
	}
	t.trials++
	return nil
}

// Size returns the deck size n.
func (t *Table) Size() int {
	return t.n
}

// Trials returns the number of decks observed so far.
func (t *Table) Trials() int {
	return t.trials
}

// Count returns how often value landed on position. It panics if value or
// position is outside [0, n).
func (t *Table) Count(value, position int) int {
	if value < 0 || value >= t.n || position < 0 || position >= t.n {
		panic("cell out of range")
	}
	return int(t.counts[value*t.n+position])
}

// ChiSquare returns the goodness-of-fit statistic of the observed counts
// against the uniform expectation of trials/n per cell.
func (t *Table) ChiSquare() float64 {
	if t.n == 0 {
		return 0
	}
	expected := make([]float64, len(t.counts))
	e := float64(t.trials) / float64(t.n)
	for i := range expected {
		expected[i] = e
	}
	return stat.ChiSquare(t.counts, expected)
}

// DegreesOfFreedom returns n*n-1, the cell count minus one. The comparison
// harness accepts a shuffle as uniform when ChiSquare stays below twice this
// value.
func (t *Table) DegreesOfFreedom() int {
	if t.n == 0 {
		return 0
	}
	return t.n*t.n - 1
}

// PValue returns the probability of a statistic at least as large as
// ChiSquare under the uniform hypothesis. A table with no degrees of
// freedom has a single possible outcome and always returns 1.
func (t *Table) PValue() float64 {
	if t.DegreesOfFreedom() == 0 {
		return 1
	}
	dist := distuv.ChiSquared{K: float64(t.DegreesOfFreedom())}
	return dist.Survival(t.ChiSquare())
}
