package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mldwidth/builder"
)

// TestProbabilityFns checks ranges, nil-rng fallbacks and panics.
func TestProbabilityFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultProbability, builder.DefaultProbabilityFn(nil))
	assert.Equal(t, 0.25, builder.ConstantProbabilityFn(0.25)(nil))

	rng := rand.New(rand.NewSource(5))
	uni := builder.UniformProbabilityFn(0.01, 0.02)
	logUni := builder.LogUniformProbabilityFn(1e-5, 1e-2)
	for i := 0; i < 1000; i++ {
		p := uni(rng)
		assert.True(t, p >= 0.01 && p < 0.02, "uniform %g", p)
		q := logUni(rng)
		assert.True(t, q >= 1e-5 && q <= 1e-2, "log-uniform %g", q)
	}
	assert.Equal(t, 0.01, uni(nil))
	assert.Equal(t, 1e-5, logUni(nil))
	assert.Equal(t, 0.5, builder.UniformProbabilityFn(0.5, 0.5)(rng))

	assert.Panics(t, func() { builder.ConstantProbabilityFn(2) })
	assert.Panics(t, func() { builder.ConstantProbabilityFn(math.NaN()) })
	assert.Panics(t, func() { builder.UniformProbabilityFn(0.3, 0.2) })
	assert.Panics(t, func() { builder.UniformProbabilityFn(-1, 0.2) })
	assert.Panics(t, func() { builder.LogUniformProbabilityFn(0, 0.1) })
}
