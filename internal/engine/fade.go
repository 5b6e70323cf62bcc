package engine

import (
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pcm"
)

// FadeIn ramps the first seconds of b up from silence along a quadratic curve.
// Sample i is scaled by (i/fadeCount)^2, so the first sample always becomes zero.
func FadeIn(b pcm.Buffer, sampleRate int, seconds float64) error {
	if !positive(seconds) {
		return fxerr.Param(fxerr.KindInvalidTime, "seconds", seconds)
	}

	count := sampleSpan(sampleRate, seconds)
	if count == 0 {
		return nil
	}

	fc := float64(count)
	for i := range min(count, len(b)) {
		f := float64(i) / fc
		b[i] = pcm.Clamp(float64(b[i]) * f * f)
	}

	return nil
}

// FadeOut ramps the last seconds of b down towards silence along a quadratic curve.
// When the fade is longer than b, only its tail end is applied.
func FadeOut(b pcm.Buffer, sampleRate int, seconds float64) error {
	if !positive(seconds) {
		return fxerr.Param(fxerr.KindInvalidTime, "seconds", seconds)
	}

	count := sampleSpan(sampleRate, seconds)
	if count == 0 {
		return nil
	}

	n := len(b)
	origin := n - count // negative when the fade is longer than the clip
	start := max(origin, 0)

	fc := float64(count)
	for i := start; i < n; i++ {
		f := 1 - float64(i-origin)/fc
		b[i] = pcm.Clamp(float64(b[i]) * f * f)
	}

	return nil
}
