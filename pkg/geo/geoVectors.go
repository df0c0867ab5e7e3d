package geo

import "gonum.org/v1/gonum/spatial/r3"

// Vector data types for the geometry. Linear coordinates are measured
// in centimeters.
//
// Points and vectors of the global (world) frame and those local to an
// optical detector are distinct types on purpose: two world vectors are
// always compatible, while optical-local ones are compatible only when
// they belong to the same detector, and mixing the frames silently is a
// bug. Conversions between frames are explicit and belong to the
// geometry service, not to this package.

// Length is the type used for coordinates and distances, in centimeters.
type Length = float64

// Point is a position in the global coordinate system.
type Point r3.Vec

// Vector is a displacement in the global coordinate system.
type Vector r3.Vec

// Rotation is a rotation of 3D space.
type Rotation = r3.Rotation

// OpticalPoint is a position in an optical detector local frame.
type OpticalPoint r3.Vec

// OpticalVector is a displacement in an optical detector local frame.
type OpticalVector r3.Vec

// Origin returns the origin of the global coordinate system.
func Origin() Point { return Point{} }

// MakePoint returns the global point with the given coordinates.
func MakePoint(x, y, z Length) Point { return Point{X: x, Y: y, Z: z} }

// MakeVector returns the global displacement with the given components.
func MakeVector(x, y, z Length) Vector { return Vector{X: x, Y: y, Z: z} }

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Sub returns the displacement leading from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// Add returns the sum of the two displacements.
func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Add(r3.Vec(v), r3.Vec(other)))
}

// Scale returns the displacement scaled by f.
func (v Vector) Scale(f Length) Vector {
	return Vector(r3.Scale(f, r3.Vec(v)))
}

// MiddlePoint returns the point half way between a and b.
func MiddlePoint(a, b Point) Point {
	return Point(r3.Scale(0.5, r3.Add(r3.Vec(a), r3.Vec(b))))
}
