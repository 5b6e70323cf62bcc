package filter

import (
	"fmt"
	"math"
)

// Kernel is a tabulated Kaiser-windowed sinc with its cutoff at the input
// Nyquist frequency. It is zero at every nonzero integer offset, so sampling it
// at whole-sample positions reproduces the input exactly.
//
// Lower cutoffs are obtained by stretching the time axis at lookup; see At.
type Kernel struct {
	// HalfWidth is the support on each side of the center, in samples.
	HalfWidth int

	// Phases is the table resolution per sample.
	Phases int

	// Beta is the Kaiser window parameter used.
	Beta float64

	// table[i] holds the kernel at t = i/Phases - HalfWidth.
	table []float64
}

// NewKernel tabulates a kernel with the given support, resolution and
// stopband attenuation.
func NewKernel(halfWidth, phases int, attenuation float64) (*Kernel, error) {
	if halfWidth < minHalfWidth || halfWidth > maxHalfWidth {
		return nil, fmt.Errorf("half width %d out of range [%d, %d]", halfWidth, minHalfWidth, maxHalfWidth)
	}
	if phases < minPhases || phases > maxPhases {
		return nil, fmt.Errorf("phases %d out of range [%d, %d]", phases, minPhases, maxPhases)
	}
	if attenuation < 0 || math.IsNaN(attenuation) || math.IsInf(attenuation, 0) {
		return nil, fmt.Errorf("invalid attenuation: %f dB", attenuation)
	}

	k := &Kernel{
		HalfWidth: halfWidth,
		Phases:    phases,
		Beta:      KaiserBeta(attenuation),
		table:     make([]float64, 2*halfWidth*phases+1),
	}

	norm := BesselI0(k.Beta)
	center := halfWidth * phases
	for i := range k.table {
		offset := i - center
		switch {
		case offset == 0:
			k.table[i] = 1
		case offset%phases == 0:
			// Exact zero crossing.
			k.table[i] = 0
		default:
			t := float64(offset) / float64(phases)
			k.table[i] = sinc(t) * kaiser(t/float64(halfWidth), k.Beta, norm)
		}
	}
	return k, nil
}

// MustKernel is NewKernel for parameters known to be valid.
func MustKernel(halfWidth, phases int, attenuation float64) *Kernel {
	k, err := NewKernel(halfWidth, phases, attenuation)
	if err != nil {
		panic(err)
	}
	return k
}

// At returns the kernel value at offset t samples, interpolating linearly
// between table entries. It is zero outside (-HalfWidth, HalfWidth).
func (k *Kernel) At(t float64) float64 {
	hw := float64(k.HalfWidth)
	if !(t > -hw && t < hw) {
		return 0
	}
	x := (t + hw) * float64(k.Phases)
	i := int(x)
	frac := x - float64(i)
	if frac == 0 {
		return k.table[i]
	}
	return k.table[i] + frac*(k.table[i+1]-k.table[i])
}

// Reach returns how many input samples on each side of the read position the
// kernel covers when stretched for cutoff in (0, 1].
func (k *Kernel) Reach(cutoff float64) int {
	return int(math.Ceil(float64(k.HalfWidth) / cutoff))
}

// sinc is the normalized sinc function sin(πt)/(πt).
func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	x := math.Pi * t
	return math.Sin(x) / x
}
