package rng_test

import (
	"testing"

	"github.com/gosimula/desim/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeeds(t *testing.T) {
	s1, s2, s3 := rng.DefaultSeeds()
	assert.Equal(t, uint16(1), s1)
	assert.Equal(t, uint16(10000), s2)
	assert.Equal(t, uint16(3000), s3)
}

func TestStreamReproducibility(t *testing.T) {
	rng.ResetCache()
	a := rng.NewStream()
	b := rng.NewStream()

	const n = 1000
	for i := 0; i < n; i++ {
		av := a.Next()
		bv := b.Next()
		require.Equal(t, av, bv, "draw %d diverged", i)
		require.GreaterOrEqual(t, av, 0.0)
		require.Less(t, av, 1.0)
	}
}

func TestStreamResetReplaysSequence(t *testing.T) {
	s := rng.NewStream(rng.WithSeeds(1, 10000, 3000))
	first := make([]float64, 50)
	for i := range first {
		first[i] = s.Next()
	}
	// Reset restores the process-wide cache, not the explicit seeds; the
	// cache holds the default triple (1, 10000, 3000), the same seeds s
	// was built with, so s replays its sequence.
	s.Reset()
	for i := 0; i < 50; i++ {
		assert.Equal(t, first[i], s.Next())
	}
}

func TestExponentialMean(t *testing.T) {
	s := rng.NewStream(rng.WithSeeds(1, 10000, 3000))
	draw := rng.Must(rng.NewExponential(s, 5.0))

	const n = 10000
	var sum float64
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = draw()
		sum += samples[i]
	}
	mean := sum / n
	assert.InDelta(t, 5.0, mean, 0.5)

	// repeat with a fresh identically-seeded stream: bit-for-bit identical
	s2 := rng.NewStream(rng.WithSeeds(1, 10000, 3000))
	draw2 := rng.Must(rng.NewExponential(s2, 5.0))
	for i := 0; i < n; i++ {
		require.Equal(t, samples[i], draw2())
	}
}

func TestUniformRange(t *testing.T) {
	s := rng.NewStream()
	draw := rng.Must(rng.NewUniform(s, 2, 5))
	for i := 0; i < 1000; i++ {
		v := draw()
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestUniformRejectsBadRange(t *testing.T) {
	s := rng.NewStream()
	_, err := rng.NewUniform(s, 5, 2)
	assert.Error(t, err)
}

func TestNormalCachesPairedSample(t *testing.T) {
	s := rng.NewStream()
	draw := rng.Must(rng.NewNormal(s, 0, 1))
	// The first draw consumes a pair of uniforms; the second is served
	// from the cached partner sample and leaves the stream untouched.
	draw()
	b1, b2, b3 := s.Seeds()
	draw()
	a1, a2, a3 := s.Seeds()
	assert.Equal(t, []uint16{b1, b2, b3}, []uint16{a1, a2, a3})
	for i := 0; i < 2000; i++ {
		v := draw()
		assert.False(t, v != v) // not NaN
	}
}

func TestErlangRejectsBadParameters(t *testing.T) {
	s := rng.NewStream()
	_, err := rng.NewErlang(s, 5, 0)
	assert.Error(t, err)
	_, err = rng.NewErlang(s, 5, 10)
	assert.Error(t, err)

	draw, err := rng.NewErlang(s, 5, 2)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, draw(), 0.0)
	}
}

func TestHyperExponentialRejectsLowCV(t *testing.T) {
	s := rng.NewStream()
	_, err := rng.NewHyperExponential(s, 5, 5)
	assert.Error(t, err)

	draw, err := rng.NewHyperExponential(s, 5, 10)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, draw(), 0.0)
	}
}

func TestTriangularRange(t *testing.T) {
	s := rng.NewStream()
	draw := rng.Must(rng.NewTriangular(s, 0, 10, 3))
	for i := 0; i < 1000; i++ {
		v := draw()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}

func TestDrawProbability(t *testing.T) {
	s := rng.NewStream()
	draw := rng.Must(rng.NewDraw(s, 0.3))
	var trueCount int
	const n = 10000
	for i := 0; i < n; i++ {
		if draw() {
			trueCount++
		}
	}
	assert.InDelta(t, 0.3, float64(trueCount)/n, 0.05)
}

func TestMustPanicsOnInvalidParameter(t *testing.T) {
	s := rng.NewStream()
	assert.Panics(t, func() {
		rng.Must(rng.NewUniform(s, 5, 2))
	})
}
