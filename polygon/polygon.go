/*
Package polygon approximates the planar closed curves of package curve3d
(circles and ellipses) by polygons in the xy-plane, called footprints.
Footprints are polyclip polygons, so clients can combine them with the
usual boolean operations (union, intersection).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curve3d"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'curve3d.polygon'
func L() tracing.Trace {
	return tracing.Select("curve3d.polygon")
}

// DefaultSegments is the polygon vertex count used when clients pass n ≤ 0.
const DefaultSegments = 64

var (
	// ErrNotPlanar indicates a curve without a closed planar footprint (a helix).
	ErrNotPlanar = errors.New("curve has no planar closed footprint")
	// ErrTooFewSegments indicates a vertex count below 3.
	ErrTooFewSegments = errors.New("footprint needs at least 3 segments")
)

// Contour flattens a closed planar curve into a polygon contour with n
// vertices, sampled at uniform curve parameters over one period. Helixes
// are not planar and yield ErrNotPlanar.
func Contour(c curve3d.Curve, n int) (polyclip.Contour, error) {
	switch c.Kind() {
	case curve3d.KindCircle, curve3d.KindEllipse:
		// planar and closed with period 2π
	default:
		return nil, fmt.Errorf("%v: %w", c, ErrNotPlanar)
	}
	if n <= 0 {
		n = DefaultSegments
	} else if n < 3 {
		return nil, fmt.Errorf("%v: %w: n = %d", c, ErrTooFewSegments, n)
	}
	contour := make(polyclip.Contour, 0, n)
	for i := 0; i < n; i++ {
		t := curve3d.TwoPi * float64(i) / float64(n)
		p := c.Point(t)
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	L().Debugf("flattened %v into a %d-gon", c, n)
	return contour, nil
}

// Footprint returns the curve's xy-plane footprint as a single-contour
// polygon with n vertices (DefaultSegments if n ≤ 0).
func Footprint(c curve3d.Curve, n int) (polyclip.Polygon, error) {
	contour, err := Contour(c, n)
	if err != nil {
		return nil, err
	}
	return polyclip.Polygon{contour}, nil
}

// Area returns the unsigned area of a polygon. Contour orientation does
// not matter for single contours; for multi-contour results of boolean
// operations, holes carry opposite orientation and are subtracted.
func Area(pg polyclip.Polygon) float64 {
	var total float64
	for _, contour := range pg {
		total += signedArea(contour)
	}
	if total < 0 {
		total = -total
	}
	return total
}

// signedArea is the shoelace formula over one contour.
func signedArea(contour polyclip.Contour) float64 {
	var a float64
	n := len(contour)
	for i := 0; i < n; i++ {
		p, q := contour[i], contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Overlap returns the intersection of the footprints of two planar curves.
func Overlap(a, b curve3d.Curve, n int) (polyclip.Polygon, error) {
	return construct(polyclip.INTERSECTION, a, b, n)
}

// Union returns the union of the footprints of two planar curves.
func Union(a, b curve3d.Curve, n int) (polyclip.Polygon, error) {
	return construct(polyclip.UNION, a, b, n)
}

func construct(op polyclip.Op, a, b curve3d.Curve, n int) (polyclip.Polygon, error) {
	pga, err := Footprint(a, n)
	if err != nil {
		return nil, err
	}
	pgb, err := Footprint(b, n)
	if err != nil {
		return nil, err
	}
	return pga.Construct(op, pgb), nil
}
