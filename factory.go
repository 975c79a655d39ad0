package curve3d

import "math/rand"

// === Random Curve Generation ===============================================

// Shape parameters of randomly generated curves are drawn uniformly from
// [ParamMin, ParamMax]. The range lies strictly inside the valid domain,
// so generated curves always pass construction validation.
const (
	ParamMin float64 = 0.1
	ParamMax float64 = 10.0
)

// Factory generates random curves from an explicitly seeded random source.
// There is no global random state: two factories with the same seed produce
// the same sequence of curves.
type Factory struct {
	rnd *rand.Rand
}

// NewFactory creates a factory seeded with seed.
func NewFactory(seed int64) *Factory {
	return &Factory{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// param draws a shape parameter from [ParamMin, ParamMax].
func (f *Factory) param() float64 {
	return ParamMin + f.rnd.Float64()*(ParamMax-ParamMin)
}

// New generates one curve. The variant is drawn uniformly from the three
// curve kinds, each shape parameter uniformly from [ParamMin, ParamMax].
func (f *Factory) New() Curve {
	var c Curve
	var err error
	switch Kind(f.rnd.Intn(3)) {
	case KindCircle:
		c, err = NewCircle(f.param())
	case KindEllipse:
		c, err = NewEllipse(f.param(), f.param())
	case KindHelix:
		c, err = NewHelix(f.param(), f.param())
	}
	if err != nil { // unreachable: the generation range is valid
		panic(err)
	}
	tracer().Debugf("generated %v", c)
	return c
}
