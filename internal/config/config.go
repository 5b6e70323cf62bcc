// Package config loads effect presets from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pipeline"
)

// DefaultLogLevel is used when neither a preset nor the command line sets one.
const DefaultLogLevel = "warn"

// Preset is a reusable effect chain.
type Preset struct {
	LogLevel string       `yaml:"log_level"`
	Steps    []StepConfig `yaml:"steps"`
}

// StepConfig is one step as written in a preset file. Unused parameters are ignored.
type StepConfig struct {
	Op            string  `yaml:"op"`
	Factor        float64 `yaml:"factor,omitempty"`
	Seconds       float64 `yaml:"seconds,omitempty"`
	Delay         float64 `yaml:"delay,omitempty"`
	Volume        float64 `yaml:"volume,omitempty"`
	Interpolation string  `yaml:"interpolation,omitempty"` // "nearest" (default), "cubic" or "sinc"
}

// NewPreset parses a preset document. An empty document is an empty preset.
func NewPreset(data []byte) (*Preset, error) {
	p := &Preset{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, &fxerr.Error{Kind: fxerr.KindUsage, Field: "preset", Err: err}
		}
	}
	return p, nil
}

// Load reads and parses the preset at path.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &fxerr.Error{Kind: fxerr.KindUsage, Field: "preset", Err: err}
	}
	return NewPreset(data)
}

// Level returns the preset's log level, or DefaultLogLevel if unset.
func (p *Preset) Level() (logrus.Level, error) {
	name := p.LogLevel
	if name == "" {
		name = DefaultLogLevel
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, &fxerr.Error{Kind: fxerr.KindUsage, Field: "log_level", Err: err}
	}
	return lvl, nil
}

// PipelineSteps converts the preset steps. Parameter ranges are checked later
// by the pipeline so that presets and command-line steps fail the same way.
func (p *Preset) PipelineSteps() ([]pipeline.Step, error) {
	steps := make([]pipeline.Step, 0, len(p.Steps))
	for i, sc := range p.Steps {
		s, err := sc.Step()
		if err != nil {
			return nil, fmt.Errorf("preset step %d: %w", i, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Step converts a single entry.
func (sc StepConfig) Step() (pipeline.Step, error) {
	op, ok := pipeline.ParseOp(sc.Op)
	if !ok {
		return pipeline.Step{}, fxerr.New(fxerr.KindUsage, "op")
	}

	mode, err := ParseInterpolation(sc.Interpolation)
	if err != nil {
		return pipeline.Step{}, err
	}

	return pipeline.Step{
		Op:            op,
		Factor:        sc.Factor,
		Seconds:       sc.Seconds,
		Delay:         sc.Delay,
		Volume:        sc.Volume,
		Interpolation: mode,
	}, nil
}

// ParseInterpolation maps a preset name to a resampling mode. Empty means nearest.
func ParseInterpolation(name string) (engine.Interpolation, error) {
	switch name {
	case "", engine.InterpNearest.String():
		return engine.InterpNearest, nil
	case engine.InterpCubic.String():
		return engine.InterpCubic, nil
	case engine.InterpSinc.String():
		return engine.InterpSinc, nil
	default:
		return 0, fxerr.New(fxerr.KindUsage, "interpolation")
	}
}
