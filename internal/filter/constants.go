package filter

// Kernel geometry
const (
	// DefaultHalfWidth is the number of zero crossings on each side of the
	// kernel center at full cutoff.
	DefaultHalfWidth = 16

	// DefaultPhases is the number of table entries per unit of time.
	// A power of two keeps integer offsets exact in the table.
	DefaultPhases = 512

	// DefaultAttenuation is the stopband attenuation targeted by the window, in dB.
	DefaultAttenuation = 96.0

	minHalfWidth = 2
	maxHalfWidth = 256
	minPhases    = 1
	maxPhases    = 1 << 14
)

// Kaiser β estimation (Kaiser & Schafer, 1980)
const (
	kaiserHighAttenuation   = 50.0
	kaiserMediumAttenuation = 21.0
	kaiserHighSlope         = 0.1102
	kaiserHighOffset        = 8.7
	kaiserMediumScale       = 0.5842
	kaiserMediumPower       = 0.4
	kaiserMediumSlope       = 0.07886
)

// Bessel series evaluation
const (
	besselEpsilon  = 1e-21 // relative size of the last term kept
	besselMaxTerms = 500
)
