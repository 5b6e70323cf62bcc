package wavefx

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wave-fx/internal/testutil"
)

// encodeWithGoAudio writes an interleaved stereo fixture with go-audio/wav.
func encodeWithGoAudio(t *testing.T, data []int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, SampleRate, BitDepth, Channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: Channels, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: BitDepth,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestInterop_DecodesGoAudioOutput(t *testing.T) {
	data := []int{100, 10, 200, 20, 300, 30, 400, 40}
	in := encodeWithGoAudio(t, data)

	clip, err := DecodeBytes(in)
	require.NoError(t, err)
	assert.Equal(t, []int16{100, 200, 300, 400}, clip.Left())
	assert.Equal(t, []int16{10, 20, 30, 40}, clip.Right())
	assert.Equal(t, data, clip.IntBuffer().Data)
}

func TestInterop_GoAudioDecodesOutput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	left := testutil.RandomBuffer(rng, 2000)
	right := testutil.RandomBuffer(rng, 2000)
	in := testutil.WAV(t, left, right)

	var out bytes.Buffer
	require.NoError(t, Process(bytes.NewReader(in), &out, []Step{Echo(0.01, 0.3), Speed(1.5)}))

	dec := wav.NewDecoder(bytes.NewReader(out.Bytes()))
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, Channels, buf.Format.NumChannels)
	assert.Equal(t, SampleRate, buf.Format.SampleRate)

	clip, err := DecodeBytes(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, clip.IntBuffer().Data, buf.Data)
}
