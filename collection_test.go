package curve3d

import (
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func mixedSet(t *testing.T) *Set {
	t.Helper()
	return NewSet().
		Append(mustCircle(t, 3)).
		Append(mustHelix(t, 2, 4)).
		Append(mustCircle(t, 1)).
		Append(mustEllipse(t, 1, 2)).
		Append(mustCircle(t, 2))
}

func TestCircleFilter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	set := mixedSet(t)
	circles := set.Circles()
	if circles.N() != 3 {
		t.Fatalf("Expected 3 circles in the view, got %d", circles.N())
	}
	// every index in the view names a circle of the set, exactly once
	seen := make(map[int]bool)
	for _, i := range circles.Indices() {
		if set.At(i).Kind() != KindCircle {
			t.Errorf("view index %d names a %v", i, set.At(i).Kind())
		}
		if seen[i] {
			t.Errorf("view index %d appears twice", i)
		}
		seen[i] = true
	}
	// and no circle of the set is missing
	for i := 0; i < set.N(); i++ {
		if set.At(i).Kind() == KindCircle && !seen[i] {
			t.Errorf("circle at set index %d missing from the view", i)
		}
	}
	// the set itself is untouched
	if set.N() != 5 {
		t.Errorf("Expected the set to keep 5 curves, has %d", set.N())
	}
}

func TestRadiiSorted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	radii := mixedSet(t).Circles().Radii()
	assert.Equal(t, []float64{1, 2, 3}, radii)
	if !sort.Float64sAreSorted(radii) {
		t.Errorf("Expected radii to be sorted, are %v", radii)
	}
}

func TestEqualRadiiKeepInputOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	set := NewSet().
		Append(mustCircle(t, 2)).
		Append(mustCircle(t, 1)).
		Append(mustCircle(t, 2))
	assert.Equal(t, []int{1, 0, 2}, set.Circles().Indices())
}

func TestTotalRadiusOrderIndependent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	set := mixedSet(t)
	var unsorted float64
	for i := 0; i < set.N(); i++ {
		if c, ok := set.At(i).(Circle); ok {
			unsorted += c.Radius
		}
	}
	assert.InDelta(t, unsorted, set.Circles().TotalRadius(), 1e-12)
}

func TestSummarySnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	set := NewSet().
		Append(mustCircle(t, 3)).
		Append(mustCircle(t, 1)).
		Append(mustCircle(t, 2))
	var sb strings.Builder
	if err := set.WriteSummary(&sb); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	want := "Sorted circle radii: 1 2 3\nTotal radius of circles: 6.00\n"
	if got := sb.String(); got != want {
		t.Fatalf("summary mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestEvaluationReport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	set := NewSet().
		Append(mustCircle(t, 2)).
		Append(mustHelix(t, 2, 4))
	var sb strings.Builder
	if err := set.WriteEvaluation(&sb, DefaultT); err != nil {
		t.Fatalf("WriteEvaluation failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected one line per curve, got %d lines", len(lines))
	}
	assert.Contains(t, lines[0], "circle(r=2)")
	assert.Contains(t, lines[0], "point=(1.4142, 1.4142, 0.0000)")
	assert.Contains(t, lines[0], "derivative=(-1.4142, 1.4142, 0.0000)")
	assert.Contains(t, lines[1], "helix(r=2,step=4)")
	assert.Contains(t, lines[1], "point=(1.4142, 1.4142, 0.5000)")
	assert.Contains(t, lines[1], "derivative=(-1.4142, 1.4142, 0.6366)")
}

func TestFactoryIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Random(50, NewFactory(42))
	b := Random(50, NewFactory(42))
	if a.N() != b.N() {
		t.Fatalf("set sizes differ: %d vs %d", a.N(), b.N())
	}
	for i := 0; i < a.N(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("curve %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestFactoryStaysInRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFactory(7)
	inRange := func(x float64) bool { return x >= ParamMin && x <= ParamMax }
	for i := 0; i < 200; i++ {
		switch c := f.New().(type) {
		case Circle:
			assert.True(t, inRange(c.Radius), "circle radius %g out of range", c.Radius)
		case Ellipse:
			assert.True(t, inRange(c.RadiusX) && inRange(c.RadiusY),
				"ellipse semi-axes (%g,%g) out of range", c.RadiusX, c.RadiusY)
		case Helix:
			assert.True(t, inRange(c.Radius) && inRange(c.Step),
				"helix parameters (%g,%g) out of range", c.Radius, c.Step)
		default:
			t.Fatalf("factory produced unknown curve %v", c)
		}
	}
}
