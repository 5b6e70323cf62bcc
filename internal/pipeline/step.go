package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
)

// Op identifies the transform a step applies.
type Op int

const (
	// OpReverse plays the clip backwards.
	OpReverse Op = iota

	// OpSpeed changes playback speed by Factor.
	OpSpeed

	// OpFlip swaps the left and right channels.
	OpFlip

	// OpFadeOut fades the last Seconds to silence.
	OpFadeOut

	// OpFadeIn fades the first Seconds in from silence.
	OpFadeIn

	// OpVolume scales amplitude by Factor.
	OpVolume

	// OpEcho adds a copy delayed by Delay seconds at Volume.
	OpEcho
)

var opNames = map[Op]string{
	OpReverse: "reverse",
	OpSpeed:   "speed",
	OpFlip:    "flip",
	OpFadeOut: "fade_out",
	OpFadeIn:  "fade_in",
	OpVolume:  "volume",
	OpEcho:    "echo",
}

// String returns the preset name of the op.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOp maps a preset name back to its Op.
func ParseOp(name string) (Op, bool) {
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// Step is one transform with its parameters. Only the fields relevant to Op are read.
type Step struct {
	Op            Op
	Factor        float64 // OpSpeed, OpVolume
	Seconds       float64 // OpFadeIn, OpFadeOut
	Delay         float64 // OpEcho
	Volume        float64 // OpEcho
	Interpolation engine.Interpolation
}

// Reverse returns a step that reverses both channels.
func Reverse() Step { return Step{Op: OpReverse} }

// Speed returns a step that changes playback speed by factor.
func Speed(factor float64) Step { return Step{Op: OpSpeed, Factor: factor} }

// Flip returns a step that swaps the channels.
func Flip() Step { return Step{Op: OpFlip} }

// FadeOut returns a step that fades out over the last seconds.
func FadeOut(seconds float64) Step { return Step{Op: OpFadeOut, Seconds: seconds} }

// FadeIn returns a step that fades in over the first seconds.
func FadeIn(seconds float64) Step { return Step{Op: OpFadeIn, Seconds: seconds} }

// Volume returns a step that scales amplitude by factor.
func Volume(factor float64) Step { return Step{Op: OpVolume, Factor: factor} }

// Echo returns a step that adds an echo after delay seconds at volume.
func Echo(delay, volume float64) Step { return Step{Op: OpEcho, Delay: delay, Volume: volume} }

// Validate checks the step's parameters without touching any audio.
func (s Step) Validate() error {
	switch s.Op {
	case OpReverse, OpFlip:
		return nil
	case OpSpeed:
		if !positive(s.Factor) {
			return fxerr.Param(fxerr.KindInvalidSpeed, "factor", s.Factor)
		}
		if !s.Interpolation.Valid() {
			return fxerr.Param(fxerr.KindInvalidSpeed, "interpolation", float64(s.Interpolation))
		}
	case OpFadeIn, OpFadeOut:
		if !positive(s.Seconds) {
			return fxerr.Param(fxerr.KindInvalidTime, "seconds", s.Seconds)
		}
	case OpVolume:
		if !positive(s.Factor) {
			return fxerr.Param(fxerr.KindInvalidVolume, "factor", s.Factor)
		}
	case OpEcho:
		if !positive(s.Delay) {
			return fxerr.Param(fxerr.KindInvalidEcho, "delay", s.Delay)
		}
		if !positive(s.Volume) {
			return fxerr.Param(fxerr.KindInvalidEcho, "volume", s.Volume)
		}
	default:
		return fxerr.Param(fxerr.KindUsage, "op", float64(s.Op))
	}
	return nil
}

// Fields returns the step as structured log fields.
func (s Step) Fields() logrus.Fields {
	f := logrus.Fields{"op": s.Op.String()}
	switch s.Op {
	case OpSpeed:
		f["factor"] = s.Factor
		f["interpolation"] = s.Interpolation.String()
	case OpVolume:
		f["factor"] = s.Factor
	case OpFadeIn, OpFadeOut:
		f["seconds"] = s.Seconds
	case OpEcho:
		f["delay"] = s.Delay
		f["volume"] = s.Volume
	}
	return f
}
