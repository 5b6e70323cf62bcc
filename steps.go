package wavefx

import (
	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/pipeline"
)

// Step is one effect in a chain.
type Step = pipeline.Step

// Op identifies the effect a Step applies.
type Op = pipeline.Op

// Effect operations.
const (
	OpReverse = pipeline.OpReverse
	OpSpeed   = pipeline.OpSpeed
	OpFlip    = pipeline.OpFlip
	OpFadeOut = pipeline.OpFadeOut
	OpFadeIn  = pipeline.OpFadeIn
	OpVolume  = pipeline.OpVolume
	OpEcho    = pipeline.OpEcho
)

// Interpolation selects how speed changes read between samples.
type Interpolation = engine.Interpolation

// Interpolation modes.
const (
	// InterpNearest repeats or drops samples. Fast, aliases.
	InterpNearest = engine.InterpNearest

	// InterpCubic uses 4-point Hermite interpolation.
	InterpCubic = engine.InterpCubic

	// InterpSinc uses a windowed-sinc kernel that also band-limits speed-ups.
	InterpSinc = engine.InterpSinc
)

// Option configures processing.
type Option = pipeline.Option

// WithLogger logs each applied step at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return pipeline.WithLogger(l)
}

// Reverse plays the clip backwards.
func Reverse() Step { return pipeline.Reverse() }

// Speed changes playback speed: 2 is twice as fast and half as long.
// Pitch changes with speed.
func Speed(factor float64) Step { return pipeline.Speed(factor) }

// SpeedCubic is Speed with cubic interpolation.
func SpeedCubic(factor float64) Step { return SpeedWith(factor, InterpCubic) }

// SpeedWith is Speed with an explicit interpolation mode.
func SpeedWith(factor float64, mode Interpolation) Step {
	s := pipeline.Speed(factor)
	s.Interpolation = mode
	return s
}

// Flip swaps the left and right channels.
func Flip() Step { return pipeline.Flip() }

// FadeIn fades in from silence over the first seconds of the clip.
func FadeIn(seconds float64) Step { return pipeline.FadeIn(seconds) }

// FadeOut fades to silence over the last seconds of the clip.
func FadeOut(seconds float64) Step { return pipeline.FadeOut(seconds) }

// Volume scales amplitude by factor, saturating at full scale.
func Volume(factor float64) Step { return pipeline.Volume(factor) }

// Echo mixes in a copy delayed by delay seconds and scaled by volume.
// The clip grows by the delay.
func Echo(delay, volume float64) Step { return pipeline.Echo(delay, volume) }
