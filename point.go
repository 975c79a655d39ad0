package curve3d

import "fmt"

// === Point Data Type =======================================================

// Point3D is an immutable point (or vector) in 3D space.
type Point3D struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0,0).
var Origin = P3(0, 0, 0)

// P3 is a quick notation for constructing a point from floats.
func P3(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Pretty Stringer for points.
func (p Point3D) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// F is a quick notation for getting float values from a point.
func (p Point3D) F() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// Zap rounds all three coordinates to Epsilon.
func (p Point3D) Zap() Point3D {
	return P3(Zap(p.X), Zap(p.Y), Zap(p.Z))
}

// Equal compares two points coordinatewise with Epsilon tolerance.
func (p Point3D) Equal(q Point3D) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// IsOrigin is a predicate: is this point the origin?
func (p Point3D) IsOrigin() bool {
	return p.Equal(Origin)
}

// Scaled returns a new point scaled by factor a.
func (p Point3D) Scaled(a float64) Point3D {
	return P3(p.X*a, p.Y*a, p.Z*a)
}

// Sub returns the componentwise difference p − q.
func (p Point3D) Sub(q Point3D) Point3D {
	return P3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// HypotXY2 is the squared distance from the z-axis, i.e. x² + y².
func (p Point3D) HypotXY2() float64 {
	return p.X*p.X + p.Y*p.Y
}
