package wavefx

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wave-fx/internal/header"
	"github.com/tphakala/go-wave-fx/internal/pcm"
	"github.com/tphakala/go-wave-fx/internal/testutil"
)

// countingReader records how many bytes were consumed.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

var (
	scenarioLeft  = pcm.Buffer{100, 200, 300, 400}
	scenarioRight = pcm.Buffer{10, 20, 30, 40}
)

// =============================================================================
// End-to-end scenarios
// =============================================================================

func TestProcess_Reverse(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	var out bytes.Buffer

	require.NoError(t, Process(bytes.NewReader(in), &out, []Step{Reverse()}))

	h, left, right := testutil.SplitWAV(t, out.Bytes())
	assert.Equal(t, pcm.Buffer{400, 300, 200, 100}, left)
	assert.Equal(t, pcm.Buffer{40, 30, 20, 10}, right)
	assert.Equal(t, uint32(16), h.DataSize)
	assert.Equal(t, uint32(52), h.Size)
	assert.Len(t, out.Bytes(), len(in))
}

func TestProcess_Volume(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	var out bytes.Buffer

	require.NoError(t, Process(bytes.NewReader(in), &out, []Step{Volume(2)}))

	_, left, right := testutil.SplitWAV(t, out.Bytes())
	assert.Equal(t, pcm.Buffer{200, 400, 600, 800}, left)
	assert.Equal(t, pcm.Buffer{20, 40, 60, 80}, right)
}

func TestProcess_NoSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := testutil.WAV(t, testutil.RandomBuffer(rng, 257), testutil.RandomBuffer(rng, 257))
	var out bytes.Buffer

	require.NoError(t, Process(bytes.NewReader(in), &out, nil))
	assert.Equal(t, in, out.Bytes())
}

func TestProcess_DropsTrailingBytes(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	in = append(in, []byte("LIST\x04\x00\x00\x00junk")...)
	var out bytes.Buffer

	require.NoError(t, Process(bytes.NewReader(in), &out, nil))
	assert.Len(t, out.Bytes(), header.Length+16)
}

func TestProcess_SpeedAndEchoUpdateSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	in := testutil.WAV(t, testutil.RandomBuffer(rng, 1000), testutil.RandomBuffer(rng, 1000))
	var out bytes.Buffer

	steps := []Step{Speed(2), Echo(100.0/SampleRate, 0.5), Flip(), FadeOut(0.001)}
	require.NoError(t, Process(bytes.NewReader(in), &out, steps))

	h, left, right := testutil.SplitWAV(t, out.Bytes())
	assert.Len(t, left, 600)
	assert.Len(t, right, 600)
	testutil.AssertHeaderConsistent(t, h, 600)
	assert.Len(t, out.Bytes(), header.Length+600*4)
}

func TestProcess_PreservesNonCanonicalOuterSize(t *testing.T) {
	h := header.New(4)
	h.Size += 10 // extra chunks the processor does not carry over
	in := testutil.WAVWithHeader(t, h, scenarioLeft, scenarioRight)
	var out bytes.Buffer

	require.NoError(t, Process(bytes.NewReader(in), &out, []Step{Echo(2.0/SampleRate, 0.5)}))

	got, _, _ := testutil.SplitWAV(t, out.Bytes())
	assert.Equal(t, uint32(24), got.DataSize)
	assert.Equal(t, h.Size+8, got.Size, "outer size moves by the same delta")
}

// =============================================================================
// Errors
// =============================================================================

func TestDecode_RejectsRIFXBeforeSamples(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	copy(in, "RIFX")
	r := &countingReader{r: bytes.NewReader(in)}

	_, err := Decode(r)
	require.ErrorIs(t, err, ErrNotRIFF)
	assert.Equal(t, HeaderSize, r.n, "no sample bytes may be read")
}

func TestDecode_HeaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *header.Header)
		want   ErrorKind
	}{
		{"mono", func(h *header.Header) { h.NumChannels = 1 }, ErrNotStereo},
		{"48k", func(h *header.Header) { h.SampleRate = 48000 }, ErrInvalidSampleRate},
		{"24 bit", func(h *header.Header) { h.BitsPerSample = 24 }, ErrInvalidSampleSize},
		{"float", func(h *header.Header) { h.AudioFormat = 3 }, ErrBadFormatChunk},
		{"no data tag", func(h *header.Header) { copy(h.DataChunkID[:], "LIST") }, ErrBadDataChunk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := header.New(4)
			tt.mutate(h)
			_, err := DecodeBytes(testutil.WAVWithHeader(t, h, scenarioLeft, scenarioRight))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)

	_, err := DecodeBytes(in[:header.Length+9])
	require.ErrorIs(t, err, ErrTruncatedInput)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Index)

	_, err = DecodeBytes(in[:20])
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestProcess_HeaderErrorWinsOverParameterError(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	copy(in, "RIFX")

	err := Process(bytes.NewReader(in), io.Discard, []Step{Volume(-1)})
	assert.ErrorIs(t, err, ErrNotRIFF)
}

func TestProcess_InvalidParameterWritesNothing(t *testing.T) {
	in := testutil.WAV(t, scenarioLeft, scenarioRight)
	var out bytes.Buffer

	err := Process(bytes.NewReader(in), &out, []Step{Reverse(), Speed(0)})
	require.ErrorIs(t, err, ErrInvalidSpeed)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestClip_WriteToError(t *testing.T) {
	clip, err := NewClip(scenarioLeft, scenarioRight)
	require.NoError(t, err)

	_, err = clip.WriteTo(failingWriter{})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

// =============================================================================
// Clip
// =============================================================================

func TestNewClip(t *testing.T) {
	left := []int16{1, 2, 3}
	clip, err := NewClip(left, []int16{4, 5, 6})
	require.NoError(t, err)

	left[0] = 99
	assert.Equal(t, []int16{1, 2, 3}, clip.Left(), "samples are copied")
	assert.Equal(t, 3, clip.Frames())
	assert.Equal(t, uint32(12), clip.DataSize())
	assert.Equal(t, uint32(48), clip.FileSize())

	_, err = NewClip([]int16{1}, nil)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestClip_ApplyAndBytes(t *testing.T) {
	clip, err := NewClip(scenarioLeft, scenarioRight)
	require.NoError(t, err)

	require.NoError(t, clip.Apply([]Step{Flip(), SpeedCubic(0.5)}))
	assert.Equal(t, 8, clip.Frames())
	assert.Equal(t, int16(10), clip.Left()[0])
	assert.Equal(t, int16(100), clip.Right()[0])

	b, err := clip.Bytes()
	require.NoError(t, err)
	h, _, _ := testutil.SplitWAV(t, b)
	testutil.AssertHeaderConsistent(t, h, 8)
}

func TestClip_Duration(t *testing.T) {
	clip, err := NewClip(make([]int16, SampleRate/2), make([]int16, SampleRate/2))
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, clip.Duration())
}

func TestClip_IntBufferAndAnalyze(t *testing.T) {
	clip, err := NewClip([]int16{math.MaxInt16, -5}, []int16{0, math.MinInt16})
	require.NoError(t, err)

	buf := clip.IntBuffer()
	assert.Equal(t, []int{math.MaxInt16, 0, -5, math.MinInt16}, buf.Data)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, SampleRate, buf.Format.SampleRate)
	assert.Equal(t, BitDepth, buf.SourceBitDepth)

	report, err := clip.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Frames)
	assert.Equal(t, 1, report.Left.Clipped)
	assert.Equal(t, 1, report.Right.Clipped)
}
