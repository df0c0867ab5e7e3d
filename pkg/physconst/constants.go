// Package physconst collects the physical constants and unit
// conversion factors shared across the reconstruction code.
//
// The standard units are GeV for energy, ns for time and cm for space.
package physconst

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Recombination factor coefficients (NIM model,
// Nucl.Instrum.Meth.A523:275-286,2004): R = A / (1 + (dE/dx)*k/E),
// with the electric field E in kV/cm. RecombK needs to be scaled with
// the electric field.
const (
	RecombA = 0.800  // A constant
	RecombK = 0.0486 // k constant, in g/(MeV cm^2)*kV/cm
)

// Recombination factor coefficients for the modified box model
// (ArgoNeuT JINST). ModBoxB needs to be scaled with the electric field.
const (
	ModBoxA = 0.930 // modified box alpha
	ModBoxB = 0.212 // modified box beta, in g/(MeV cm^2)*kV/cm
)

// GeVToElectrons converts energy deposited in GeV to the number of
// ionization electrons produced: 23.6 eV per ion pair, 1e9 eV/GeV.
const GeVToElectrons = 4.237e7

// C is the speed of light in vacuum, in cm/ns.
const C = 29.9792458

// Metric and energy conversion factors.
const (
	MeterToCentimeter = 1e2 // 1 m = 100 cm
	CentimeterToMeter = 1 / MeterToCentimeter
	MeterToKilometer  = 1e-3 // 1000 m = 1 km
	KilometerToMeter  = 1 / MeterToKilometer

	EVToMeV = 1e-6 // 1e6 eV = 1 MeV
	MeVToEV = 1 / EVToMeV
)

// Obviously bogus values, for marking quantities that were never set.
const (
	BogusD = -999.          // obviously bogus double value
	BogusI = -999           // obviously bogus integer value
	BogusF = float32(-999.) // obviously bogus float value
)

// DegreesToRadians converts the argument angle from degrees into
// radians.
func DegreesToRadians[T constraints.Float](angle T) T {
	return angle / 180 * math.Pi
}

// RadiansToDegrees converts the argument angle from radians into
// degrees.
func RadiansToDegrees[T constraints.Float](angle T) T {
	return angle / math.Pi * 180
}
