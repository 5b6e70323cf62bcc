// Package pipeline applies an ordered list of transforms to a stereo clip and
// keeps the header consistent with the channel buffers after every step.
package pipeline

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/header"
	"github.com/tphakala/go-wave-fx/internal/pcm"
)

// Clip is a decoded file: its header and one buffer per channel.
// The pipeline owns the buffers while it runs.
type Clip struct {
	Header *header.Header
	Left   pcm.Buffer
	Right  pcm.Buffer
}

// Len returns the per-channel sample count.
func (c *Clip) Len() int { return len(c.Left) }

// Check verifies both channels match each other and the header.
func (c *Clip) Check() error {
	want := c.Header.SampleCount()
	if len(c.Left) != want || len(c.Right) != want {
		return &fxerr.Error{Kind: fxerr.KindInternal, Field: "channel_length", Value: float64(want)}
	}
	return nil
}

// Pipeline is a validated, ordered list of steps.
type Pipeline struct {
	steps []Step
	log   logrus.FieldLogger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for per-step debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New validates every step up front so that a bad parameter anywhere in the
// list fails before any audio is processed.
func New(steps []Step, opts ...Option) (*Pipeline, error) {
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		steps: append(make([]Step, 0, len(steps)), steps...),
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run validates steps and applies them to clip.
func Run(clip *Clip, steps []Step, opts ...Option) error {
	p, err := New(steps, opts...)
	if err != nil {
		return err
	}
	return p.Run(clip)
}

// Steps returns a copy of the step list.
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Run applies the steps to clip in order. Both channels receive the same step
// before the next one starts, and size changes are written to the header
// immediately so each step sees a header that matches the buffers.
func (p *Pipeline) Run(clip *Clip) error {
	if err := clip.Check(); err != nil {
		return err
	}

	for i, s := range p.steps {
		if err := p.apply(clip, s); err != nil {
			return err
		}
		if err := clip.Check(); err != nil {
			return err
		}
		p.log.WithFields(s.Fields()).WithFields(logrus.Fields{
			"step":    i,
			"samples": clip.Len(),
		}).Debug("step applied")
	}

	return nil
}

func (p *Pipeline) apply(clip *Clip, s Step) error {
	rate := int(clip.Header.SampleRate)

	switch s.Op {
	case OpReverse:
		engine.Reverse(clip.Left)
		engine.Reverse(clip.Right)

	case OpFlip:
		clip.Left, clip.Right = clip.Right, clip.Left

	case OpVolume:
		return both(clip, func(b pcm.Buffer) error { return engine.Volume(b, s.Factor) })

	case OpFadeIn:
		return both(clip, func(b pcm.Buffer) error { return engine.FadeIn(b, rate, s.Seconds) })

	case OpFadeOut:
		return both(clip, func(b pcm.Buffer) error { return engine.FadeOut(b, rate, s.Seconds) })

	case OpSpeed:
		return resize(clip, func(b pcm.Buffer) (pcm.Buffer, int64, error) {
			return engine.Resample(b, s.Factor, s.Interpolation)
		})

	case OpEcho:
		return resize(clip, func(b pcm.Buffer) (pcm.Buffer, int64, error) {
			return engine.Echo(b, rate, s.Delay, s.Volume)
		})

	default:
		return fxerr.Param(fxerr.KindUsage, "op", float64(s.Op))
	}

	return nil
}

// both runs an in-place transform on each channel.
func both(clip *Clip, fn func(pcm.Buffer) error) error {
	if err := fn(clip.Left); err != nil {
		return err
	}
	return fn(clip.Right)
}

// resize runs a length-changing transform on both channels and only swaps the
// new buffers in, and updates the header, once both have succeeded.
func resize(clip *Clip, fn func(pcm.Buffer) (pcm.Buffer, int64, error)) error {
	left, delta, err := fn(clip.Left)
	if err != nil {
		return err
	}
	right, rightDelta, err := fn(clip.Right)
	if err != nil {
		return err
	}
	if delta != rightDelta {
		return &fxerr.Error{Kind: fxerr.KindInternal, Field: "byte_delta", Value: float64(rightDelta - delta)}
	}

	if err := clip.Header.AddDataBytes(delta); err != nil {
		return err
	}
	clip.Left, clip.Right = left, right
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
