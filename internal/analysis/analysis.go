// Package analysis computes level statistics for a stereo clip.
package analysis

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/go-audio/audio"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-wave-fx/internal/fxerr"
	"github.com/tphakala/go-wave-fx/internal/simdops"
)

// Full-scale reference for 16-bit samples.
const (
	fullScale    = math.MaxInt16
	negFullScale = math.MinInt16
)

// Spectrum estimate
const (
	spectrumFrame    = 8192 // FFT length, taken from the middle of the clip
	minSpectrumFrame = 64   // shorter clips report no dominant frequency
)

// ChannelStats summarizes one channel.
type ChannelStats struct {
	Min     float64 // most negative sample
	Max     float64 // most positive sample
	Mean    float64 // DC offset
	RMS     float64
	PeakDB  float64 // peak relative to full scale, -Inf for silence
	RMSDB   float64
	Clipped int // samples sitting at either rail

	// DominantHz is the strongest non-DC frequency, 0 if unknown.
	DominantHz float64
}

// Report is the analysis of a whole clip.
type Report struct {
	Frames     int
	SampleRate int
	Left       ChannelStats
	Right      ChannelStats
}

// Duration returns the clip length.
func (r *Report) Duration() time.Duration {
	if r.SampleRate == 0 {
		return 0
	}
	return time.Duration(r.Frames) * time.Second / time.Duration(r.SampleRate)
}

// Fields flattens the report for structured logging.
func (r *Report) Fields() logrus.Fields {
	return logrus.Fields{
		"frames":        r.Frames,
		"duration":      r.Duration().String(),
		"left_peak_db":  round2(r.Left.PeakDB),
		"left_rms_db":   round2(r.Left.RMSDB),
		"left_clipped":  r.Left.Clipped,
		"left_freq_hz":  math.Round(r.Left.DominantHz),
		"right_peak_db": round2(r.Right.PeakDB),
		"right_rms_db":  round2(r.Right.RMSDB),
		"right_clipped": r.Right.Clipped,
		"right_freq_hz": math.Round(r.Right.DominantHz),
	}
}

// Analyze computes statistics for an interleaved stereo buffer.
func Analyze(buf *audio.IntBuffer) (*Report, error) {
	if buf == nil || buf.Format == nil {
		return nil, fxerr.New(fxerr.KindInternal, "format")
	}
	if buf.Format.NumChannels != 2 {
		return nil, fxerr.Param(fxerr.KindNotStereo, "channels", float64(buf.Format.NumChannels))
	}

	interleaved := buf.AsFloatBuffer().Data
	frames := len(interleaved) / 2
	left := make([]float64, frames)
	right := make([]float64, frames)
	for i := range frames {
		left[i] = interleaved[2*i]
		right[i] = interleaved[2*i+1]
	}

	return &Report{
		Frames:     frames,
		SampleRate: buf.Format.SampleRate,
		Left:       channelStats(left, buf.Format.SampleRate),
		Right:      channelStats(right, buf.Format.SampleRate),
	}, nil
}

func channelStats(x []float64, sampleRate int) ChannelStats {
	if len(x) == 0 {
		return ChannelStats{PeakDB: math.Inf(-1), RMSDB: math.Inf(-1)}
	}

	n := float64(len(x))
	ops := simdops.Float64Ops()
	s := ChannelStats{
		Min:  floats.Min(x),
		Max:  floats.Max(x),
		Mean: ops.Sum(x) / n,
		RMS:  math.Sqrt(simdops.Energy(x) / n),
	}

	for _, v := range x {
		if v >= fullScale || v <= negFullScale {
			s.Clipped++
		}
	}

	peak := math.Max(s.Max, -s.Min)
	s.PeakDB = toDB(peak)
	s.RMSDB = toDB(s.RMS)
	s.DominantHz = dominantFrequency(x, sampleRate)
	return s
}

// dominantFrequency returns the frequency of the largest FFT bin above DC in a
// Hann-windowed frame from the middle of x.
func dominantFrequency(x []float64, sampleRate int) float64 {
	frame := hannFrame(x, spectrumFrame)
	if len(frame) < minSpectrumFrame || sampleRate <= 0 {
		return 0
	}

	fft := fourier.NewFFT(len(frame))
	coeffs := fft.Coefficients(nil, frame)

	best, bestMag := 0, 0.0
	for i := 1; i < len(coeffs); i++ {
		if m := cmplx.Abs(coeffs[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	if best == 0 {
		return 0
	}
	return fft.Freq(best) * float64(sampleRate)
}

// hannFrame copies up to n samples centered in x and applies a Hann window.
func hannFrame(x []float64, n int) []float64 {
	n = min(n, len(x))
	if n < 2 {
		return nil
	}
	start := (len(x) - n) / 2
	frame := make([]float64, n)
	for i := range frame {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		frame[i] = x[start+i] * w
	}
	return frame
}

// toDB converts an amplitude to dB relative to full scale.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v/fullScale)
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
