package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"time"

	shuffle "github.com/yyyoichi/shuffle_bias"
	"github.com/yyyoichi/shuffle_bias/chisq"
)

type algorithm struct {
	name    string
	uniform bool
	fn      func(*shuffle.Shuffler, []int)
}

var algorithms = []algorithm{
	{"random_sort", false, (*shuffle.Shuffler).RandomSort},
	{"naive_swap", false, (*shuffle.Shuffler).NaiveSwap},
	{"fisher_yates", true, (*shuffle.Shuffler).FisherYates},
}

type checker struct {
	passed int
	failed int
}

func (c *checker) ok(format string, args ...any) {
	c.passed++
	log.Printf("[OK] "+format+"\n", args...)
}

func (c *checker) fail(format string, args ...any) {
	c.failed++
	log.Printf("[FAIL] "+format+"\n", args...)
}

func main() {
	trials := flag.Int("trials", 1000, "shuffles per statistical check")
	size := flag.Int("size", 52, "deck size for the statistical checks")
	seed := flag.Int64("seed", 0, "generator seed, 0 means clock seed")
	perfWork := flag.Int("perf-work", 100_000, "total elements shuffled per timing measurement")
	flag.Parse()
	if *size < 0 {
		log.Fatalf("Invalid deck size %d: must not be negative", *size)
	}

	log.Printf("Starting shuffle quality checks: size=%d trials=%d\n", *size, *trials)

	var c checker
	for _, a := range algorithms {
		checkPreservation(&c, a, *seed)
		checkEdgeCases(&c, a, *seed)
		checkReordering(&c, a, *seed)
		checkUniformity(&c, a, *size, *trials, *seed)
	}
	checkTwoElement(&c, *trials, *seed)
	checkRelativeSpeed(&c, *perfWork, *seed)

	log.Printf("\n=== Results ===\n")
	log.Printf("Passed: %d\n", c.passed)
	log.Printf("Failed: %d\n", c.failed)
	if c.failed > 0 {
		os.Exit(1)
	}
}

func newShuffler(seed int64) *shuffle.Shuffler {
	var opts []shuffle.Option
	if seed != 0 {
		opts = append(opts, shuffle.WithSeed(seed))
	}
	s, err := shuffle.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create shuffler: %v", err)
	}
	return s
}

func checkPreservation(c *checker, a algorithm, seed int64) {
	s := newShuffler(seed)
	for _, n := range []int{1, 2, 13, 52, 100} {
		deck := make([]int, n)
		for i := range deck {
			deck[i] = i * i
		}
		want := slices.Clone(deck)
		a.fn(s, deck)
		slices.Sort(deck)
		if slices.Equal(deck, want) {
			c.ok("%s preserves %d elements", a.name, n)
		} else {
			c.fail("%s lost or duplicated elements at size %d", a.name, n)
		}
	}
}

func checkEdgeCases(c *checker, a algorithm, seed int64) {
	s := newShuffler(seed)
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.fail("%s panicked on the empty deck: %v", a.name, r)
			} else {
				c.ok("%s leaves the empty deck alone", a.name)
			}
		}()
		a.fn(s, nil)
		a.fn(s, []int{})
	}()

	single := []int{42}
	a.fn(s, single)
	if single[0] == 42 {
		c.ok("%s keeps a single element in place", a.name)
	} else {
		c.fail("%s moved a single element: %v", a.name, single)
	}
}

func checkReordering(c *checker, a algorithm, seed int64) {
	s := newShuffler(seed)
	deck := make([]int, 100)
	ordered := make([]int, 100)
	for i := range deck {
		deck[i] = i
		ordered[i] = i
	}
	for trial := range 10 {
		a.fn(s, deck)
		if !slices.Equal(deck, ordered) {
			c.ok("%s reordered 100 elements within %d shuffles", a.name, trial+1)
			return
		}
	}
	c.fail("%s left 100 elements in order after 10 shuffles", a.name)
}

// checkUniformity tabulates value x position counts over the trials and
// compares the chi-square statistic against twice the degrees of freedom.
// The biased algorithms are reported but only the uniform one is gated.
func checkUniformity(c *checker, a algorithm, size, trials int, seed int64) {
	s := newShuffler(seed)
	table := chisq.NewTable(size)
	deck := make([]int, size)
	for range trials {
		for i := range deck {
			deck[i] = i
		}
		a.fn(s, deck)
		if err := table.Observe(deck); err != nil {
			c.fail("%s produced a non-permutation: %v", a.name, err)
			return
		}
	}

	chi := table.ChiSquare()
	limit := 2.0 * float64(table.DegreesOfFreedom())
	if !a.uniform {
		log.Printf("[INFO] %s chi2=%.1f limit=%.1f p=%.6f (bias is expected)\n",
			a.name, chi, limit, table.PValue())
		return
	}
	if table.DegreesOfFreedom() == 0 {
		c.ok("%s is trivially uniform at size %d", a.name, size)
		return
	}
	if chi < limit {
		c.ok("%s chi2=%.1f stays under limit=%.1f p=%.4f", a.name, chi, limit, table.PValue())
	} else {
		c.fail("%s chi2=%.1f reached limit=%.1f p=%.6f", a.name, chi, limit, table.PValue())
	}
}

func checkTwoElement(c *checker, trials int, seed int64) {
	s := newShuffler(seed)
	stays := 0
	for range trials {
		pair := []int{1, 2}
		s.FisherYates(pair)
		if pair[0] == 1 {
			stays++
		}
	}
	ratio := float64(stays) / float64(trials)
	if 0.4 < ratio && ratio < 0.6 {
		c.ok("fisher_yates keeps the first of two elements %.1f%% of the time", ratio*100)
	} else {
		c.fail("fisher_yates two-element ratio %.3f outside (0.4, 0.6)", ratio)
	}
}

// checkRelativeSpeed shuffles perfWork total elements per algorithm at each
// deck size. NaiveSwap does the same per-element work plus one wider draw,
// so fisher_yates gets headroom rather than a strict win.
func checkRelativeSpeed(c *checker, perfWork int, seed int64) {
	measure := func(fn func(*shuffle.Shuffler, []int), size int) time.Duration {
		s := newShuffler(seed)
		deck := make([]int, size)
		for i := range deck {
			deck[i] = i
		}
		iters := perfWork / size
		if iters < 1 {
			iters = 1
		}
		start := time.Now()
		for range iters {
			fn(s, deck)
		}
		return time.Since(start)
	}

	for _, size := range []int{10, 100, 1000, 10000} {
		randomSort := measure((*shuffle.Shuffler).RandomSort, size)
		naiveSwap := measure((*shuffle.Shuffler).NaiveSwap, size)
		fisherYates := measure((*shuffle.Shuffler).FisherYates, size)
		log.Printf("[INFO] size=%d random_sort=%v naive_swap=%v fisher_yates=%v\n",
			size, randomSort, naiveSwap, fisherYates)

		if fisherYates < randomSort {
			c.ok("fisher_yates beats random_sort at size %d (%v < %v)", size, fisherYates, randomSort)
		} else {
			c.fail("fisher_yates is not faster than random_sort at size %d (%v >= %v)", size, fisherYates, randomSort)
		}
		if fisherYates <= naiveSwap*5/4 {
			c.ok("fisher_yates stays close to naive_swap at size %d (%v vs %v)", size, fisherYates, naiveSwap)
		} else {
			c.fail("fisher_yates drifted past naive_swap at size %d (%v vs %v)", size, fisherYates, naiveSwap)
		}
	}
}
