package wavefx

import "github.com/tphakala/go-wave-fx/internal/header"

// Fixed stream format.
const (
	// SampleRate is the only accepted sample rate in Hz.
	SampleRate = header.SampleRate

	// Channels is the only accepted channel count.
	Channels = header.Channels

	// BitDepth is the only accepted sample size in bits.
	BitDepth = header.BitsPerSample

	// HeaderSize is the length of the canonical header in bytes.
	HeaderSize = header.Length
)
