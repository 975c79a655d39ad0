package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/curve3d"
)

// parseCurve turns a descriptor argument into a curve. Descriptors are
// "circle:RADIUS", "ellipse:RADIUSX:RADIUSY" and "helix:RADIUS:STEP".
func parseCurve(arg string) (curve3d.Curve, error) {
	fields := strings.Split(arg, ":")
	params := make([]float64, 0, 2)
	for _, field := range fields[1:] {
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("curve %q: not a number: %q", arg, field)
		}
		params = append(params, x)
	}
	switch fields[0] {
	case "circle":
		if len(params) != 1 {
			return nil, fmt.Errorf("curve %q: want circle:RADIUS", arg)
		}
		c, err := curve3d.NewCircle(params[0])
		if err != nil {
			return nil, err
		}
		return c, nil
	case "ellipse":
		if len(params) != 2 {
			return nil, fmt.Errorf("curve %q: want ellipse:RADIUSX:RADIUSY", arg)
		}
		e, err := curve3d.NewEllipse(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return e, nil
	case "helix":
		if len(params) != 2 {
			return nil, fmt.Errorf("curve %q: want helix:RADIUS:STEP", arg)
		}
		h, err := curve3d.NewHelix(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, fmt.Errorf("curve %q: unknown curve kind %q", arg, fields[0])
}
