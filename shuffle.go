package shuffle

import (
	"errors"

	"github.com/yyyoichi/shuffle_bias/internal/prng"
)

var (
	ErrNilSource = errors.New("random source must not be nil")
)

// RandomSort shuffles arr in place by rejection sampling: indexes of the
// original slice are drawn uniformly at random and accepted only if unused,
// and accepted elements fill the output left to right. It is the slowest of
// the three algorithms and serves as a comparison baseline. Expected work is
// superlinear in len(arr) with no fixed upper bound on retries.
// This is a convenience function that draws from the shared process-wide
// source; it is not safe for concurrent use.
func RandomSort(arr []int) {
	randomSort(prng.Default(), arr)
}

// NaiveSwap shuffles arr in place by swapping each position with an index
// drawn uniformly from the whole slice. This is the classic biased shuffle:
// it does not produce all permutations with equal probability, and is kept
// as a comparison case against FisherYates.
// This is a convenience function that draws from the shared process-wide
// source; it is not safe for concurrent use.
func NaiveSwap(arr []int) {
	naiveSwap(prng.Default(), arr)
}

// FisherYates shuffles arr in place with the canonical unbiased algorithm,
// swapping each position with an index drawn uniformly from the unprocessed
// prefix. Every permutation of arr is equally likely.
// This is a convenience function that draws from the shared process-wide
// source; it is not safe for concurrent use.
func FisherYates(arr []int) {
	fisherYates(prng.Default(), arr)
}

type Shuffler struct {
	src Source
}

// New initializes a shuffler. The random source can be optionally specified;
// without options the shuffler draws from the shared process-wide source, so
// a zero-option Shuffler behaves exactly like the package-level functions.
// Use WithSeed for reproducible shuffles in tests.
func New(opts ...Option) (*Shuffler, error) {
	s := new(Shuffler)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// RandomSort shuffles arr in place via rejection-sampling index draws.
//
// Process:
//  1. Draw a uniformly random index of arr from the shuffler's source.
//  2. Reject the draw if that index was accepted before.
//  3. Append the element at each accepted index to a result buffer.
//  4. Once every index has been accepted, copy the buffer back into arr.
//
// Empty input returns immediately with no draws.
func (s *Shuffler) RandomSort(arr []int) {
	randomSort(s.src, arr)
}

// NaiveSwap shuffles arr in place, swapping position i with a uniformly
// drawn index of the whole slice for each i in order. The full-range draw
// makes the permutation distribution non-uniform.
func (s *Shuffler) NaiveSwap(arr []int) {
	naiveSwap(s.src, arr)
}

// FisherYates shuffles arr in place, swapping position i with a uniformly
// drawn index in [0, i] for i from the last position down to 1.
func (s *Shuffler) FisherYates(arr []int) {
	fisherYates(s.src, arr)
}

func (s *Shuffler) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.src == nil {
		s.src = prng.Default()
	}
	return nil
}
