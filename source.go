package shuffle

// Source yields uniformly distributed random indexes for the shuffle
// algorithms. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n). It panics if n <= 0.
	Intn(n int) int
}
