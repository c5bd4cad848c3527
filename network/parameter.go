// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/cmplx"
)

// degPerRad converts radians to degrees (and its inverse, degrees to
// radians, via division).
const degPerRad = 180.0 / math.Pi

// dbFactor is the magnitude→dB scale for wave amplitude ratios:
// dB = 20·log10(|x|).
const dbFactor = 20.0

// Parameter is a single complex network-parameter value: one cell of a
// Matrix. It is an immutable value type; every accessor derives from
// the underlying complex128 and no method mutates the receiver.
type Parameter complex128

// NewParameter builds a Parameter from rectangular (real, imaginary)
// components.
func NewParameter(re, im float64) Parameter {
	return Parameter(complex(re, im))
}

// FromPolar builds a Parameter from a magnitude and a phase in radians.
func FromPolar(magnitude, radians float64) Parameter {
	return Parameter(cmplx.Rect(magnitude, radians))
}

// FromPolarDeg builds a Parameter from a magnitude and a phase in
// degrees (the Touchstone MA data format).
func FromPolarDeg(magnitude, degrees float64) Parameter {
	return FromPolar(magnitude, degrees/degPerRad)
}

// FromMagnitudeDB builds a Parameter from a magnitude in dB
// (20·log10 scale) and a phase in degrees (the Touchstone DB data
// format).
func FromMagnitudeDB(db, degrees float64) Parameter {
	return FromPolar(math.Pow(10, db/dbFactor), degrees/degPerRad)
}

// Real returns the real component.
func (p Parameter) Real() float64 { return real(complex128(p)) }

// Imag returns the imaginary component.
func (p Parameter) Imag() float64 { return imag(complex128(p)) }

// Complex returns the value as a complex128.
func (p Parameter) Complex() complex128 { return complex128(p) }

// Magnitude returns |p|.
func (p Parameter) Magnitude() float64 { return cmplx.Abs(complex128(p)) }

// MagnitudeDB returns 20·log10(|p|). A zero parameter yields -Inf.
func (p Parameter) MagnitudeDB() float64 {
	return dbFactor * math.Log10(p.Magnitude())
}

// Phase returns the argument of p in radians, in (-π, π].
func (p Parameter) Phase() float64 { return cmplx.Phase(complex128(p)) }

// PhaseDeg returns the argument of p in degrees, in (-180, 180].
func (p Parameter) PhaseDeg() float64 { return p.Phase() * degPerRad }

// String renders the parameter in rectangular form, e.g. "0.5-0.25i".
func (p Parameter) String() string {
	return fmt.Sprintf("%g", complex128(p))
}
