package engine

import (
	"math"

	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pcm"
)

// Echo mixes a copy of b, delayed by delay seconds and scaled by volume, back
// into the signal. The buffer grows by the delay so the echo tail is kept.
// Returns the new buffer and the header byte delta.
func Echo(b pcm.Buffer, sampleRate int, delay, volume float64) (pcm.Buffer, int64, error) {
	if !positive(delay) {
		return nil, 0, fxerr.Param(fxerr.KindInvalidEcho, "delay", delay)
	}
	if !positive(volume) {
		return nil, 0, fxerr.Param(fxerr.KindInvalidEcho, "volume", volume)
	}

	n := len(b)
	offset := math.Round(float64(sampleRate) * delay)
	if err := checkLength(float64(n) + offset); err != nil {
		return nil, 0, err
	}

	d := int(offset)
	out := make(pcm.Buffer, n+d)
	copy(out, b)

	for i := d; i < len(out); i++ {
		out[i] = pcm.Clamp(float64(out[i]) + float64(b[i-d])*volume)
	}

	return out, byteDelta(d), nil
}
