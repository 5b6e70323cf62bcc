package engine

import (
	"math"
	"sync"

	"github.com/tphakala/go-wave-fx/internal/filter"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pcm"
)

// Interpolation selects how Resample reads between source samples.
type Interpolation int

const (
	// InterpNearest takes the nearest previous source sample. No filtering.
	InterpNearest Interpolation = iota

	// InterpCubic uses 4-point Hermite interpolation around the read position.
	InterpCubic

	// InterpSinc uses a Kaiser-windowed sinc kernel. When speeding up, the
	// kernel is widened to low-pass the input below the new Nyquist frequency.
	InterpSinc
)

// sincKernel is built on first use and shared by all calls.
var sincKernel = sync.OnceValue(func() *filter.Kernel {
	return filter.MustKernel(filter.DefaultHalfWidth, filter.DefaultPhases, filter.DefaultAttenuation)
})

// String returns the preset name of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "nearest"
	case InterpCubic:
		return "cubic"
	case InterpSinc:
		return "sinc"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m Interpolation) Valid() bool {
	return m >= InterpNearest && m <= InterpSinc
}

// Resample changes playback speed by factor: 2 plays twice as fast and halves
// the length, 0.5 doubles it. Output sample j is read at source position
// j*factor. Returns the new buffer and the header byte delta.
func Resample(b pcm.Buffer, factor float64, mode Interpolation) (pcm.Buffer, int64, error) {
	if !positive(factor) {
		return nil, 0, fxerr.Param(fxerr.KindInvalidSpeed, "factor", factor)
	}
	if !mode.Valid() {
		return nil, 0, fxerr.Param(fxerr.KindInvalidSpeed, "interpolation", float64(mode))
	}

	n := len(b)
	size := math.Floor(float64(n) / factor)
	if err := checkLength(size); err != nil {
		return nil, 0, err
	}

	out := make(pcm.Buffer, int(size))
	switch mode {
	case InterpCubic:
		resampleCubic(out, b, factor)
	case InterpSinc:
		resampleSinc(out, b, factor, sincKernel())
	default:
		resampleNearest(out, b, factor)
	}

	return out, byteDelta(len(out) - n), nil
}

func resampleNearest(out, src pcm.Buffer, factor float64) {
	last := len(src) - 1
	for j := range out {
		// j*factor < n mathematically; guard against float rounding at the end.
		idx := min(int(float64(j)*factor), last)
		out[j] = src[idx]
	}
}

func resampleCubic(out, src pcm.Buffer, factor float64) {
	last := len(src) - 1
	at := func(i int) float64 {
		return float64(src[min(max(i, 0), last)])
	}

	for j := range out {
		pos := float64(j) * factor
		i := min(int(pos), last)
		x := pos - float64(i)
		out[j] = pcm.Clamp(hermite(at(i-1), at(i), at(i+1), at(i+2), x))
	}
}

// resampleSinc convolves the source with the kernel centered on each read
// position. Edge samples are replicated and the weights are normalized so a
// constant signal passes unchanged.
func resampleSinc(out, src pcm.Buffer, factor float64, k *filter.Kernel) {
	if len(out) == 0 {
		return
	}

	cutoff := min(1, 1/factor)
	reach := k.Reach(cutoff)
	last := len(src) - 1

	for j := range out {
		pos := float64(j) * factor
		base := int(pos)

		var acc, norm float64
		for idx := base - reach + 1; idx <= base+reach; idx++ {
			w := k.At((pos - float64(idx)) * cutoff)
			if w == 0 {
				continue
			}
			acc += w * float64(src[min(max(idx, 0), last)])
			norm += w
		}
		if norm != 0 {
			acc /= norm
		}
		out[j] = pcm.Clamp(acc)
	}
}

// hermite interpolates between y1 and y2 at fractional position x in [0, 1).
func hermite(y0, y1, y2, y3, x float64) float64 {
	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*x+coefB)*x+coefC)*x + coefD
}
