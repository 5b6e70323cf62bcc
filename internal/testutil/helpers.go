// Package testutil provides reusable fixtures and assertions for the effects tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wave-fx/internal/header"
	"github.com/tphakala/go-wave-fx/internal/pcm"
)

// RandomBuffer returns n samples drawn uniformly from the full int16 range.
func RandomBuffer(rng *rand.Rand, n int) pcm.Buffer {
	b := make(pcm.Buffer, n)
	for i := range b {
		b[i] = int16(rng.Intn(math.MaxUint16+1) + math.MinInt16)
	}
	return b
}

// SineBuffer returns n samples of a sine at freq Hz and the given peak amplitude.
func SineBuffer(n int, freq, amplitude float64) pcm.Buffer {
	b := make(pcm.Buffer, n)
	omega := 2 * math.Pi * freq / header.SampleRate
	for i := range b {
		b[i] = pcm.Clamp(amplitude * math.Sin(omega*float64(i)))
	}
	return b
}

// WAV encodes a canonical stereo file from equal-length channels.
func WAV(t *testing.T, left, right pcm.Buffer) []byte {
	t.Helper()
	require.Equal(t, len(left), len(right), "fixture channels must match")

	h := header.New(len(left))
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	return append(b, pcm.Interleave(left, right)...)
}

// WAVWithHeader encodes h followed by the interleaved channels, without
// reconciling h against the channel lengths.
func WAVWithHeader(t *testing.T, h *header.Header, left, right pcm.Buffer) []byte {
	t.Helper()
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	return append(b, pcm.Interleave(left, right)...)
}

// SplitWAV decodes a canonical file produced by the processor.
func SplitWAV(t *testing.T, data []byte) (*header.Header, pcm.Buffer, pcm.Buffer) {
	t.Helper()
	h, err := header.Parse(data)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	left, right, err := pcm.DeinterleaveBytes(data[header.Length:], h.SampleCount())
	require.NoError(t, err)
	return h, left, right
}

// AssertNoSignFlip verifies that no sample changed sign between before and
// after. Integer wraparound on overflow shows up as a sign flip; saturation does not.
func AssertNoSignFlip(t *testing.T, before, after pcm.Buffer) bool {
	t.Helper()
	if !assert.Len(t, after, len(before)) {
		return false
	}
	for i := range before {
		if (before[i] > 0 && after[i] < 0) || (before[i] < 0 && after[i] > 0) {
			return assert.Fail(t, "sample changed sign",
				"before[%d]=%d after[%d]=%d", i, before[i], i, after[i])
		}
	}
	return true
}

// AssertAttenuated verifies |after[i]| <= |before[i]| for every sample.
func AssertAttenuated(t *testing.T, before, after pcm.Buffer) bool {
	t.Helper()
	if !assert.Len(t, after, len(before)) {
		return false
	}
	for i := range before {
		if abs(int(after[i])) > abs(int(before[i])) {
			return assert.Fail(t, "sample amplified",
				"before[%d]=%d after[%d]=%d", i, before[i], i, after[i])
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AssertHeaderConsistent verifies both size fields describe n samples per channel.
func AssertHeaderConsistent(t *testing.T, h *header.Header, n int, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.Equal(t, uint32(n*header.Channels*header.BytesPerSample), h.DataSize, msgAndArgs...)
	ok = assert.Equal(t, h.DataSize+header.Overhead, h.Size, msgAndArgs...) && ok
	return ok
}
