package curve3d

import (
	"fmt"
	"io"
	"math"
)

// === Reporting =============================================================

// Defaults for the evaluation pipeline.
const (
	// DefaultT is the curve parameter the pipeline evaluates at.
	DefaultT float64 = math.Pi / 4
	// DefaultCount is the number of curves a random pipeline run generates.
	DefaultCount int = 15
)

// ptstring formats a point for report output.
func ptstring(p Point3D) string {
	p = p.Zap()
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

// WriteEvaluation writes one line per curve, in set order: the curve's
// description together with its point and derivative at parameter t.
// The set is not mutated.
func (s *Set) WriteEvaluation(w io.Writer, t float64) error {
	tracer().Debugf("evaluating %d curves at t = %g", s.N(), t)
	for _, c := range s.curves {
		point := c.Point(t)
		deriv := c.Derivative(t)
		_, err := fmt.Fprintf(w, "%-22s point=%s derivative=%s\n",
			c, ptstring(point), ptstring(deriv))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the sorted radii of the set's circles and their
// total: one line with the radii in ascending order, one line with the
// total rounded to two decimal digits.
func (s *Set) WriteSummary(w io.Writer) error {
	circles := s.Circles()
	if _, err := fmt.Fprint(w, "Sorted circle radii:"); err != nil {
		return err
	}
	for _, r := range circles.Radii() {
		if _, err := fmt.Fprintf(w, " %g", r); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total radius of circles: %.2f\n", circles.TotalRadius())
	return err
}
