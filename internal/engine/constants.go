package engine

import "math"

// Stereo 16-bit frame geometry used to turn sample-count changes into byte deltas.
const (
	channels       = 2
	bytesPerSample = 2

	// FrameBytes is the number of data bytes one sample index occupies
	// across both channels.
	FrameBytes = channels * bytesPerSample
)

// Size limits
const (
	// riffOverhead is the part of the RIFF size field that is not sample data.
	riffOverhead = 36

	// MaxSamples is the largest per-channel length whose data chunk and RIFF
	// size both still fit their 32-bit header fields.
	MaxSamples = (math.MaxUint32 - riffOverhead) / FrameBytes

	// maxSampleSpan caps sample counts derived from float parameters before
	// integer conversion.
	maxSampleSpan = 1 << 53
)

// Hermite (Catmull-Rom) interpolation coefficients.
// Formula: y = ((a*x + b)*x + c)*x + d
const (
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)

// volumeChunk is the number of samples widened per Scale call.
const volumeChunk = 4096
