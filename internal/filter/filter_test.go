package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Bessel and Kaiser window
// =============================================================================

func TestBesselI0_KnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{1, 1.2660658777520082},
		{2.5, 3.2898391440501231},
		{5, 27.239871823604442},
		{10, 2815.7166284662544},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.want, BesselI0(tt.x), 1e-12, "x=%v", tt.x)
		assert.InEpsilon(t, tt.want, BesselI0(-tt.x), 1e-12, "even in x")
	}
}

func TestKaiserBeta(t *testing.T) {
	assert.Zero(t, KaiserBeta(20))
	assert.InDelta(t, 0.1102*(96-8.7), KaiserBeta(96), 1e-12)
	assert.InDelta(t, 0.5842*math.Pow(9, 0.4)+0.07886*9, KaiserBeta(30), 1e-12)
}

func TestKaiserWindow(t *testing.T) {
	w := KaiserWindow(33, 8)
	require.Len(t, w, 33)
	assert.InDelta(t, 1, w[16], 1e-15, "peak at center")
	for i := range 16 {
		assert.InDelta(t, w[i], w[32-i], 1e-15, "symmetric at %d", i)
		assert.Less(t, w[i], w[i+1], "rises towards center at %d", i)
	}

	assert.Empty(t, KaiserWindow(0, 8))
	assert.Equal(t, []float64{1}, KaiserWindow(1, 8))

	// β = 0 is rectangular.
	for _, v := range KaiserWindow(9, 0) {
		assert.InDelta(t, 1, v, 1e-15)
	}
}

// =============================================================================
// Kernel
// =============================================================================

func TestKernel_ZeroCrossings(t *testing.T) {
	k := MustKernel(DefaultHalfWidth, DefaultPhases, DefaultAttenuation)

	assert.Equal(t, 1.0, k.At(0))
	for n := 1; n < DefaultHalfWidth; n++ {
		assert.Equal(t, 0.0, k.At(float64(n)), "t=%d", n)
		assert.Equal(t, 0.0, k.At(-float64(n)), "t=-%d", n)
	}
}

func TestKernel_Support(t *testing.T) {
	k := MustKernel(8, 64, 80)
	assert.Zero(t, k.At(8))
	assert.Zero(t, k.At(-8))
	assert.Zero(t, k.At(100))
	assert.Zero(t, k.At(math.NaN()))
	assert.NotZero(t, k.At(7.5))
	assert.Equal(t, 8, k.Reach(1))
	assert.Equal(t, 16, k.Reach(0.5))
}

func TestKernel_SymmetricAndInterpolated(t *testing.T) {
	k := MustKernel(DefaultHalfWidth, DefaultPhases, DefaultAttenuation)
	for _, tt := range []float64{0.25, 0.5, 1.3, 3.77, 10.01} {
		assert.InDelta(t, k.At(tt), k.At(-tt), 1e-12, "t=%v", tt)
	}
	// Table points are exact: half a sample from center is sinc(0.5) = 2/π times the window.
	want := 2 / math.Pi * kaiser(0.5/DefaultHalfWidth, k.Beta, BesselI0(k.Beta))
	assert.InDelta(t, want, k.At(0.5), 1e-15)
}

func TestKernel_PartitionOfUnity(t *testing.T) {
	// Shifted copies sum to ~1 at any fractional offset.
	k := MustKernel(DefaultHalfWidth, DefaultPhases, DefaultAttenuation)
	for _, frac := range []float64{0, 0.1, 0.37, 0.5, 0.93} {
		sum := 0.0
		for n := -DefaultHalfWidth; n <= DefaultHalfWidth; n++ {
			sum += k.At(frac - float64(n))
		}
		assert.InDelta(t, 1, sum, 1e-3, "frac=%v", frac)
	}
}

func TestNewKernel_Invalid(t *testing.T) {
	_, err := NewKernel(1, 64, 80)
	assert.Error(t, err)
	_, err = NewKernel(16, 0, 80)
	assert.Error(t, err)
	_, err = NewKernel(16, 64, math.NaN())
	assert.Error(t, err)
	assert.Panics(t, func() { MustKernel(0, 0, -1) })
}
