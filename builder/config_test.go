// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/scheme"
)

// TestDefaultConfig verifies the deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "default rng must be nil")
	require.NotNil(t, cfg.sharpnessFn)
	assert.Equal(t, scheme.SharpnessInfinite, cfg.sharpness(0))
	assert.Equal(t, float32(2), cfg.sharpness(2), "positive sharpness is kept")
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	require.NotNil(t, b.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed, same stream")

	r := rand.New(rand.NewSource(7))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)

	assert.Panics(t, func() { WithRand(nil) })
}

// TestSharpnessOptions verifies ordering: later options override earlier ones.
func TestSharpnessOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithDefaultSharpness(3))
	assert.Equal(t, float32(3), cfg.sharpness(0))
	assert.Equal(t, float32(1.5), cfg.sharpness(1.5))

	cfg = newBuilderConfig(WithDefaultSharpness(3), WithDefaultSharpness(1))
	assert.Equal(t, float32(1), cfg.sharpness(-1))

	cfg = newBuilderConfig(WithSeed(1), WithUniformSharpness(1, 2))
	for i := 0; i < 16; i++ {
		s := cfg.sharpness(0)
		assert.GreaterOrEqual(t, s, float32(1))
		assert.Less(t, s, float32(2))
	}

	assert.Panics(t, func() { WithSharpnessFn(nil) })
	assert.Panics(t, func() { WithDefaultSharpness(0) })
	assert.Panics(t, func() { WithDefaultSharpness(scheme.SharpnessInfinite + 1) })
	assert.Panics(t, func() { WithUniformSharpness(2, 1) })
}
