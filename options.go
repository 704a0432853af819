package shuffle

import "math/rand"

type Option func(*Shuffler) error

// WithSeed derives the shuffler's random source from the given seed.
// Two shufflers built from the same seed produce identical shuffle sequences,
// which makes test outcomes reproducible.
func WithSeed(seed int64) Option {
	return func(s *Shuffler) error {
		s.src = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithSource draws every random index from src instead of the shared
// process-wide source. The shuffler performs no synchronization around src.
func WithSource(src Source) Option {
	return func(s *Shuffler) error {
		if src == nil {
			return ErrNilSource
		}
		s.src = src
		return nil
	}
}
