package engine

import (
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pcm"
	"github.com/tphakala/go-wave-fx/internal/simdops"
)

// Volume scales every sample of b by factor, saturating at the int16 limits.
func Volume(b pcm.Buffer, factor float64) error {
	if !positive(factor) {
		return fxerr.Param(fxerr.KindInvalidVolume, "factor", factor)
	}

	ops := simdops.Float64Ops()
	work := make([]float64, min(len(b), volumeChunk))

	for start := 0; start < len(b); start += volumeChunk {
		chunk := b[start:min(start+volumeChunk, len(b))]
		w := chunk.Float64(work)
		ops.Scale(w, w, factor)
		for i, v := range w {
			chunk[i] = pcm.Clamp(v)
		}
	}

	return nil
}
