package curve3d

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// === Curve Collections =====================================================

// Set is an ordered collection of curves. The set exclusively owns its
// curves; derived views (see CircleView) hold indices into the set and
// must not outlive it. Build a set by chaining Append calls:
//
//	s := NewSet().Append(c1).Append(c2)
//
// or generate one with Random. A set is not safe for concurrent use.
type Set struct {
	curves []Curve
}

// NewSet creates an empty curve set.
func NewSet() *Set {
	return &Set{}
}

// Append adds a curve at the end of the set.
// Part of builder functionality.
func (s *Set) Append(c Curve) *Set {
	s.curves = append(s.curves, c)
	return s
}

// N returns the number of curves in the set.
func (s *Set) N() int {
	return len(s.curves)
}

// At returns curve number i (0-based, in insertion order).
func (s *Set) At(i int) Curve {
	return s.curves[i]
}

// Random generates a set of n curves from factory f.
func Random(n int, f *Factory) *Set {
	s := NewSet()
	for i := 0; i < n; i++ {
		s.Append(f.New())
	}
	tracer().Debugf("generated a set of %d curves", s.N())
	return s
}

// --- Circle view -----------------------------------------------------------

// CircleView is a read-only view onto the circles of a set, ordered by
// radius (ascending). Circles with equal radius keep their relative order
// from the set. The view holds indices into the parent set and does not
// own any curve; it must not outlive the set.
type CircleView struct {
	set      *Set
	byRadius *treemap.Map // radius -> []int, set indices in insertion order
	count    int
}

// Circles filters the set down to its circles, without mutating the set.
// The selection is a match on the closed variant set, not a cast.
func (s *Set) Circles() *CircleView {
	v := &CircleView{
		set:      s,
		byRadius: treemap.NewWith(utils.Float64Comparator),
	}
	for i, c := range s.curves {
		circle, ok := c.(Circle)
		if !ok {
			continue
		}
		var indices []int
		if known, found := v.byRadius.Get(circle.Radius); found {
			indices = known.([]int)
		}
		v.byRadius.Put(circle.Radius, append(indices, i))
		v.count++
	}
	tracer().Debugf("selected %d circles out of %d curves", v.count, s.N())
	return v
}

// N returns the number of circles in the view.
func (v *CircleView) N() int {
	return v.count
}

// Each calls f for every circle in radius order, passing the circle's
// index within the parent set.
func (v *CircleView) Each(f func(i int, c Circle)) {
	v.byRadius.Each(func(key interface{}, value interface{}) {
		for _, i := range value.([]int) {
			f(i, v.set.At(i).(Circle))
		}
	})
}

// Indices returns the parent-set positions of the circles, ordered by
// ascending radius.
func (v *CircleView) Indices() []int {
	indices := make([]int, 0, v.count)
	v.Each(func(i int, c Circle) {
		indices = append(indices, i)
	})
	return indices
}

// Radii returns the circles' radii in ascending order.
func (v *CircleView) Radii() []float64 {
	radii := make([]float64, 0, v.count)
	v.Each(func(i int, c Circle) {
		radii = append(radii, c.Radius)
	})
	return radii
}

// TotalRadius sums the radii of all circles in the view.
func (v *CircleView) TotalRadius() float64 {
	var total float64
	v.Each(func(i int, c Circle) {
		total += c.Radius
	})
	return total
}
