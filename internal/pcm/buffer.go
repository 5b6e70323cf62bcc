// Package pcm holds per-channel 16-bit sample buffers and the stereo codec
// that moves them to and from the interleaved little-endian byte stream.
package pcm

import "math"

// Buffer is an owned, contiguous run of signed 16-bit samples for one channel.
type Buffer []int16

// Len returns the number of samples.
func (b Buffer) Len() int { return len(b) }

// At returns the sample at index i.
func (b Buffer) At(i int) int16 { return b[i] }

// Set stores v at index i.
func (b Buffer) Set(i int, v int16) { b[i] = v }

// Clone returns an independent copy of b.
func (b Buffer) Clone() Buffer {
	if b == nil {
		return nil
	}
	out := make(Buffer, len(b))
	copy(out, b)
	return out
}

// Float64 widens the samples into dst, growing it if needed, and returns it.
func (b Buffer) Float64(dst []float64) []float64 {
	if cap(dst) < len(b) {
		dst = make([]float64, len(b))
	}
	dst = dst[:len(b)]
	for i, s := range b {
		dst[i] = float64(s)
	}
	return dst
}

// Clamp narrows v to a sample. Values outside the int16 range saturate,
// in-range values truncate toward zero and NaN maps to silence.
func Clamp(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
