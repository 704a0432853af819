package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/shuffle_bias/internal/prng"
)

func TestPRNG_Default(t *testing.T) {
	first := prng.Default()
	assert.NotNil(t, first)
	// repeated calls hand back the same generator, never a reseeded one
	assert.Same(t, first, prng.Default())

	for range 100 {
		v := first.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}
