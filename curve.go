package curve3d

import (
	"errors"
	"fmt"
	"math"
)

// === Curves ================================================================

var (
	// ErrInvalidParameter indicates a non-positive (or non-finite) shape parameter.
	ErrInvalidParameter = errors.New("shape parameter must be positive")
)

// Kind is the variant tag of a curve. The set of curve variants is closed:
// clients select on the tag (or type-switch) instead of down-casting.
type Kind int8

// Curve variants.
const (
	KindCircle Kind = iota
	KindEllipse
	KindHelix
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindHelix:
		return "helix"
	}
	return "<unknown curve>"
}

// Curve is the contract every curve variant fulfills: evaluate the position
// and the tangent vector at a curve parameter t. The parameter is an angle
// in radians with unrestricted domain. Both operations are pure.
type Curve interface {
	fmt.Stringer
	// Kind returns the variant tag.
	Kind() Kind
	// Point returns the position on the curve at parameter t.
	Point(t float64) Point3D
	// Derivative returns the tangent vector at parameter t, i.e. the
	// componentwise first derivative of Point with respect to t.
	Derivative(t float64) Point3D
}

// --- Circle ----------------------------------------------------------------

// Circle is a planar circle of a given radius, centered at the origin of
// the xy-plane. The zero value is not usable; construct with NewCircle.
type Circle struct {
	Radius float64
}

// NewCircle creates a circle. The radius must be positive.
func NewCircle(radius float64) (Circle, error) {
	if !isPositive(radius) {
		tracer().Errorf("rejected circle with radius = %g", radius)
		return Circle{}, fmt.Errorf("circle: %w: radius = %g", ErrInvalidParameter, radius)
	}
	return Circle{Radius: radius}, nil
}

// Kind returns KindCircle.
func (c Circle) Kind() Kind {
	return KindCircle
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(r=%g)", c.Radius)
}

// Point returns (r·cos t, r·sin t, 0).
func (c Circle) Point(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(c.Radius*cos, c.Radius*sin, 0)
}

// Derivative returns (−r·sin t, r·cos t, 0).
func (c Circle) Derivative(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(-c.Radius*sin, c.Radius*cos, 0)
}

// --- Ellipse ---------------------------------------------------------------

// Ellipse is a planar ellipse with semi-axes RadiusX and RadiusY, centered
// at the origin of the xy-plane. The zero value is not usable; construct
// with NewEllipse.
type Ellipse struct {
	RadiusX, RadiusY float64
}

// NewEllipse creates an ellipse. Both semi-axes must be positive.
func NewEllipse(radiusX, radiusY float64) (Ellipse, error) {
	if !isPositive(radiusX) || !isPositive(radiusY) {
		tracer().Errorf("rejected ellipse with semi-axes = (%g,%g)", radiusX, radiusY)
		return Ellipse{}, fmt.Errorf("ellipse: %w: semi-axes = (%g,%g)",
			ErrInvalidParameter, radiusX, radiusY)
	}
	return Ellipse{RadiusX: radiusX, RadiusY: radiusY}, nil
}

// Kind returns KindEllipse.
func (e Ellipse) Kind() Kind {
	return KindEllipse
}

func (e Ellipse) String() string {
	return fmt.Sprintf("ellipse(rx=%g,ry=%g)", e.RadiusX, e.RadiusY)
}

// Point returns (rx·cos t, ry·sin t, 0).
func (e Ellipse) Point(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(e.RadiusX*cos, e.RadiusY*sin, 0)
}

// Derivative returns (−rx·sin t, ry·cos t, 0).
func (e Ellipse) Derivative(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(-e.RadiusX*sin, e.RadiusY*cos, 0)
}

// --- Helix -----------------------------------------------------------------

// Helix is a circular helix around the z-axis. Step is the z-advance per
// full turn of the parameter. The zero value is not usable; construct with
// NewHelix.
type Helix struct {
	Radius, Step float64
}

// NewHelix creates a helix. Radius and step must be positive.
func NewHelix(radius, step float64) (Helix, error) {
	if !isPositive(radius) || !isPositive(step) {
		tracer().Errorf("rejected helix with radius = %g, step = %g", radius, step)
		return Helix{}, fmt.Errorf("helix: %w: radius = %g, step = %g",
			ErrInvalidParameter, radius, step)
	}
	return Helix{Radius: radius, Step: step}, nil
}

// Kind returns KindHelix.
func (h Helix) Kind() Kind {
	return KindHelix
}

func (h Helix) String() string {
	return fmt.Sprintf("helix(r=%g,step=%g)", h.Radius, h.Step)
}

// Point returns (r·cos t, r·sin t, step·t/2π).
func (h Helix) Point(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(h.Radius*cos, h.Radius*sin, h.Step*t/TwoPi)
}

// Derivative returns (−r·sin t, r·cos t, step/2π). The z-component is
// constant: the helix climbs at a fixed rate.
func (h Helix) Derivative(t float64) Point3D {
	sin, cos := math.Sincos(t)
	return P3(-h.Radius*sin, h.Radius*cos, h.Step/TwoPi)
}
