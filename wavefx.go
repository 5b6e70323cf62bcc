package wavefx

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"

	"github.com/tphakala/go-wave-fx/internal/analysis"
	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/header"
	"github.com/tphakala/go-wave-fx/internal/pcm"
	"github.com/tphakala/go-wave-fx/internal/pipeline"
)

// Report holds level statistics for a clip.
type Report = analysis.Report

// ChannelStats holds level statistics for one channel.
type ChannelStats = analysis.ChannelStats

// Clip is a decoded stereo file held in memory.
type Clip struct {
	c pipeline.Clip
}

// Decode reads a complete file from r. The header is validated before any
// sample data is read; bytes after the data chunk are left unread.
func Decode(r io.Reader) (*Clip, error) {
	h, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	left, right, err := pcm.Deinterleave(r, h.SampleCount())
	if err != nil {
		return nil, err
	}

	return &Clip{c: pipeline.Clip{Header: h, Left: left, Right: right}}, nil
}

// DecodeBytes decodes a file held in memory.
func DecodeBytes(b []byte) (*Clip, error) {
	return Decode(bytes.NewReader(b))
}

// NewClip builds a clip from two equal-length channels. The samples are copied.
func NewClip(left, right []int16) (*Clip, error) {
	if len(left) != len(right) {
		return nil, fxerr.Param(fxerr.KindUsage, "channels", float64(len(right)-len(left)))
	}
	if len(left) > engine.MaxSamples {
		return nil, fxerr.Param(fxerr.KindOutOfMemory, "samples", float64(len(left)))
	}

	return &Clip{c: pipeline.Clip{
		Header: header.New(len(left)),
		Left:   pcm.Buffer(left).Clone(),
		Right:  pcm.Buffer(right).Clone(),
	}}, nil
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int { return c.c.Len() }

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	return time.Duration(c.Frames()) * time.Second / SampleRate
}

// Left returns the left channel. The slice is shared with the clip and is
// replaced by steps that change the length.
func (c *Clip) Left() []int16 { return c.c.Left }

// Right returns the right channel. See Left.
func (c *Clip) Right() []int16 { return c.c.Right }

// DataSize returns the data chunk size recorded in the header.
func (c *Clip) DataSize() uint32 { return c.c.Header.DataSize }

// FileSize returns the RIFF size field recorded in the header.
func (c *Clip) FileSize() uint32 { return c.c.Header.Size }

// Apply runs steps against the clip in order.
func (c *Clip) Apply(steps []Step, opts ...Option) error {
	return pipeline.Run(&c.c, steps, opts...)
}

// Bytes encodes the clip as a complete file.
func (c *Clip) Bytes() ([]byte, error) {
	if err := c.c.Check(); err != nil {
		return nil, err
	}
	hdr, err := c.c.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, pcm.Interleave(c.c.Left, c.c.Right)...), nil
}

// WriteTo encodes the clip and writes it to w in one call, so nothing is
// written if encoding fails.
func (c *Clip) WriteTo(w io.Writer) (int64, error) {
	b, err := c.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write output: %w", err)
	}
	return int64(n), nil
}

// IntBuffer returns the clip as an interleaved go-audio buffer.
func (c *Clip) IntBuffer() *audio.IntBuffer {
	n := c.Frames()
	data := make([]int, 2*n)
	for i := range n {
		data[2*i] = int(c.c.Left[i])
		data[2*i+1] = int(c.c.Right[i])
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(c.c.Header.NumChannels),
			SampleRate:  int(c.c.Header.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(c.c.Header.BitsPerSample),
	}
}

// Analyze measures peak and RMS levels of both channels.
func (c *Clip) Analyze() (*Report, error) {
	return analysis.Analyze(c.IntBuffer())
}

// Process decodes a file from r, applies steps and writes the result to w.
// Header errors are reported before parameter errors. Nothing is written to w
// unless every step succeeds.
func Process(r io.Reader, w io.Writer, steps []Step, opts ...Option) error {
	clip, err := Decode(r)
	if err != nil {
		return err
	}
	if err := clip.Apply(steps, opts...); err != nil {
		return err
	}
	_, err = clip.WriteTo(w)
	return err
}
