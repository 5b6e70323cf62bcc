package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wave-fx/internal/engine"
	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/pipeline"
)

const samplePreset = `
log_level: debug
steps:
  - op: fade_in
    seconds: 0.5
  - op: speed
    factor: 1.25
    interpolation: cubic
  - op: echo
    delay: 0.2
    volume: 0.4
  - op: flip
  - op: reverse
`

func TestNewPreset(t *testing.T) {
	p, err := NewPreset([]byte(samplePreset))
	require.NoError(t, err)

	lvl, err := p.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)

	steps, err := p.PipelineSteps()
	require.NoError(t, err)
	assert.Equal(t, []pipeline.Step{
		pipeline.FadeIn(0.5),
		{Op: pipeline.OpSpeed, Factor: 1.25, Interpolation: engine.InterpCubic},
		pipeline.Echo(0.2, 0.4),
		pipeline.Flip(),
		pipeline.Reverse(),
	}, steps)
}

func TestNewPreset_Empty(t *testing.T) {
	p, err := NewPreset(nil)
	require.NoError(t, err)

	lvl, err := p.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lvl)

	steps, err := p.PipelineSteps()
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestNewPreset_Malformed(t *testing.T) {
	_, err := NewPreset([]byte("steps: [op: ["))
	assert.ErrorIs(t, err, fxerr.KindUsage)
}

func TestPreset_UnknownOp(t *testing.T) {
	p, err := NewPreset([]byte("steps:\n  - op: chorus\n"))
	require.NoError(t, err)

	_, err = p.PipelineSteps()
	require.ErrorIs(t, err, fxerr.KindUsage)
	assert.Contains(t, err.Error(), "preset step 0")
}

func TestPreset_UnknownInterpolation(t *testing.T) {
	p, err := NewPreset([]byte("steps:\n  - op: speed\n    factor: 2\n    interpolation: sinc\n"))
	require.NoError(t, err)

	_, err = p.PipelineSteps()
	assert.ErrorIs(t, err, fxerr.KindUsage)
}

func TestPreset_BadLevel(t *testing.T) {
	p := &Preset{LogLevel: "loud"}
	_, err := p.Level()
	assert.ErrorIs(t, err, fxerr.KindUsage)
}

func TestPreset_ParamsCheckedByPipeline(t *testing.T) {
	p, err := NewPreset([]byte("steps:\n  - op: volume\n"))
	require.NoError(t, err)

	steps, err := p.PipelineSteps()
	require.NoError(t, err, "missing parameters are not a parse error")
	assert.ErrorIs(t, steps[0].Validate(), fxerr.KindInvalidVolume)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePreset), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Steps, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fxerr.KindUsage)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		name string
		want engine.Interpolation
	}{
		{"", engine.InterpNearest},
		{"nearest", engine.InterpNearest},
		{"cubic", engine.InterpCubic},
		{"sinc", engine.InterpSinc},
	}
	for _, tt := range tests {
		got, err := ParseInterpolation(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
