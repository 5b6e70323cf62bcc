// Package engine implements the sample-buffer transforms: reverse, volume,
// fades, speed change and echo.
//
// Every transform works on a single channel. Length-preserving transforms
// modify the buffer in place; length-changing transforms return a new buffer
// together with the byte delta the caller must apply to the header. A
// transform that fails leaves its input untouched.
package engine

import (
	"math"

	"github.com/tphakala/go-wave-fx/internal/fxerr"
)

// positive reports whether v is a usable parameter: strictly positive and finite.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// sampleSpan converts a duration in seconds to a sample count at rate,
// rounding to nearest.
func sampleSpan(rate int, seconds float64) int {
	span := math.Round(float64(rate) * seconds)
	if span > maxSampleSpan {
		span = maxSampleSpan
	}
	return int(span)
}

// byteDelta converts a per-channel length change into a data-chunk byte delta.
func byteDelta(samples int) int64 {
	return int64(samples) * FrameBytes
}

// checkLength rejects output lengths that the header cannot describe.
func checkLength(n float64) error {
	if n > MaxSamples {
		return &fxerr.Error{Kind: fxerr.KindOutOfMemory, Field: "samples", Value: n}
	}
	return nil
}
