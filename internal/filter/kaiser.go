// Package filter designs the Kaiser-windowed sinc kernel used for band-limited
// speed changes.
package filter

import "math"

// BesselI0 returns the zeroth-order modified Bessel function of the first kind,
// summed from its power series until the terms stop contributing.
func BesselI0(x float64) float64 {
	half := x / 2
	sum, term := 1.0, 1.0
	for k := 1; k < besselMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*besselEpsilon {
			break
		}
	}
	return sum
}

// KaiserBeta returns the window shape parameter that reaches the given
// stopband attenuation in dB.
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserHighAttenuation:
		return kaiserHighSlope * (attenuation - kaiserHighOffset)
	case attenuation >= kaiserMediumAttenuation:
		d := attenuation - kaiserMediumAttenuation
		return kaiserMediumScale*math.Pow(d, kaiserMediumPower) + kaiserMediumSlope*d
	default:
		return 0
	}
}

// KaiserWindow returns length samples of a Kaiser window. The window is
// symmetric and peaks at 1.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	w := make([]float64, length)
	if length == 1 {
		w[0] = 1
		return w
	}

	alpha := float64(length-1) / 2
	norm := BesselI0(beta)
	for n := range w {
		w[n] = kaiser((float64(n)-alpha)/alpha, beta, norm)
	}
	return w
}

// kaiser evaluates the window at u in [-1, 1]; norm is BesselI0(beta).
func kaiser(u, beta, norm float64) float64 {
	r := 1 - u*u
	if r <= 0 {
		return 1 / norm
	}
	return BesselI0(beta*math.Sqrt(r)) / norm
}
