package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestEndpointsAnchored(t *testing.T) {
	for _, name := range Names() {
		fn := catalog[name]
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, fn(0), epsilon, "f(0)")
			assert.InDelta(t, 1.0, fn(1), epsilon, "f(1)")
		})
	}
}

func TestSpecialCasedEndpointsExact(t *testing.T) {
	tests := []struct {
		name   string
		fn     Func
		amount float64
		want   float64
	}{
		{"exponentialIn at 0", ExponentialIn, 0, 0},
		{"exponentialOut at 1", ExponentialOut, 1, 1},
		{"exponentialInOut at 0", ExponentialInOut, 0, 0},
		{"exponentialInOut at 1", ExponentialInOut, 1, 1},
		{"elasticIn at 0", ElasticIn, 0, 0},
		{"elasticIn at 1", ElasticIn, 1, 1},
		{"elasticOut at 0", ElasticOut, 0, 0},
		{"elasticOut at 1", ElasticOut, 1, 1},
		{"elasticInOut at 0", ElasticInOut, 0, 0},
		{"elasticInOut at 1", ElasticInOut, 1, 1},
		{"backIn at 1", BackIn, 1, 1},
		{"backOut at 0", BackOut, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.amount))
		})
	}
}

func TestInOutContinuousAtMidpoint(t *testing.T) {
	const h = 1e-9
	for name, fn := range catalog {
		t.Run(name, func(t *testing.T) {
			below := fn(0.5 - h)
			above := fn(0.5 + h)
			// circularInOut has a vertical tangent at the split, so the gap
			// grows with sqrt(h) rather than h.
			tol := 4 * math.Sqrt(h)
			assert.InDelta(t, below, above, tol)
			assert.InDelta(t, fn(0.5), above, tol)
		})
	}
}

func TestInOutMidpointIsHalf(t *testing.T) {
	fns := map[string]Func{
		"quadratic":   QuadraticInOut,
		"cubic":       CubicInOut,
		"quartic":     QuarticInOut,
		"quintic":     QuinticInOut,
		"sinusoidal":  SinusoidalInOut,
		"exponential": ExponentialInOut,
		"circular":    CircularInOut,
		"elastic":     ElasticInOut,
		"back":        BackInOut,
		"bounce":      BounceInOut,
	}
	for name, fn := range fns {
		assert.InDelta(t, 0.5, fn(0.5), epsilon, name)
	}
}

func TestMonotonicFamilies(t *testing.T) {
	fns := map[string]Func{
		"linear":       Linear,
		"quadraticIn":  QuadraticIn,
		"quadraticOut": QuadraticOut,
		"cubicIn":      CubicIn,
		"cubicOut":     CubicOut,
		"quarticIn":    QuarticIn,
		"quarticOut":   QuarticOut,
		"quinticIn":    QuinticIn,
		"quinticOut":   QuinticOut,
	}
	const steps = 1000
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			prev := fn(0)
			for i := 1; i <= steps; i++ {
				cur := fn(float64(i) / steps)
				require.GreaterOrEqual(t, cur, prev-1e-15, "step %d", i)
				prev = cur
			}
		})
	}
}

func sampleRange(fn Func, steps int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i <= steps; i++ {
		v := fn(float64(i) / float64(steps))
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func TestOvershootFamilies(t *testing.T) {
	lo, _ := sampleRange(BackIn, 200)
	assert.Less(t, lo, 0.0, "backIn dips below 0")

	_, hi := sampleRange(BackOut, 200)
	assert.Greater(t, hi, 1.0, "backOut overshoots 1")

	lo, hi = sampleRange(BackInOut, 200)
	assert.Less(t, lo, 0.0)
	assert.Greater(t, hi, 1.0)

	lo, _ = sampleRange(ElasticIn, 200)
	assert.Less(t, lo, 0.0, "elasticIn dips below 0")

	_, hi = sampleRange(ElasticOut, 200)
	assert.Greater(t, hi, 1.0, "elasticOut overshoots 1")
}

func TestBounceIsNotMonotonic(t *testing.T) {
	// first bounce lands at 1/2.75, then rises off the floor again
	assert.InDelta(t, 1.0, BounceOut(1/2.75), epsilon)
	assert.Less(t, BounceOut(0.5), BounceOut(1/2.75))
	assert.Less(t, BounceOut(0.5), BounceOut(2/2.75))

	assert.InDelta(t, 1-BounceOut(0.7), BounceIn(0.3), epsilon)
}

func TestMatchesPennerFormulas(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		want func(a float64) float64
	}{
		{"quadraticIn", QuadraticIn, func(a float64) float64 { return a * a }},
		{"quadraticOut", QuadraticOut, func(a float64) float64 { return a * (2 - a) }},
		{"cubicIn", CubicIn, func(a float64) float64 { return a * a * a }},
		{"cubicOut", CubicOut, func(a float64) float64 { return 1 - math.Pow(1-a, 3) }},
		{"quarticIn", QuarticIn, func(a float64) float64 { return math.Pow(a, 4) }},
		{"quarticOut", QuarticOut, func(a float64) float64 { return 1 - math.Pow(1-a, 4) }},
		{"quinticIn", QuinticIn, func(a float64) float64 { return math.Pow(a, 5) }},
		{"quinticOut", QuinticOut, func(a float64) float64 { return 1 - math.Pow(1-a, 5) }},
		{"sinusoidalIn", SinusoidalIn, func(a float64) float64 { return 1 - math.Sin((1-a)*math.Pi/2) }},
		{"sinusoidalOut", SinusoidalOut, func(a float64) float64 { return math.Sin(a * math.Pi / 2) }},
		{"sinusoidalInOut", SinusoidalInOut, func(a float64) float64 { return 0.5 * (1 - math.Sin(math.Pi*(0.5-a))) }},
		{"cubicInOut", CubicInOut, func(a float64) float64 {
			if a < 0.5 {
				return 4 * a * a * a
			}
			return 1 - math.Pow(-2*a+2, 3)/2
		}},
		{"quadraticInOut", QuadraticInOut, func(a float64) float64 {
			if a < 0.5 {
				return 2 * a * a
			}
			return 1 - math.Pow(-2*a+2, 2)/2
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				a := float64(i) / 20
				assert.InDelta(t, tt.want(a), tt.fn(a), 1e-12, "a=%v", a)
			}
		})
	}
}

func TestCircularArcs(t *testing.T) {
	assert.InDelta(t, 1-math.Sqrt(1-0.36), CircularIn(0.6), epsilon)
	assert.InDelta(t, math.Sqrt(1-0.16), CircularOut(0.6), epsilon)
}

func TestTotalOutsideUnitInterval(t *testing.T) {
	for name, fn := range catalog {
		t.Run(name, func(t *testing.T) {
			for _, a := range []float64{-1, -0.25, 1.25, 2} {
				v := fn(a)
				assert.False(t, math.IsNaN(v), "f(%v) is NaN", a)
				assert.False(t, math.IsInf(v, 0), "f(%v) is Inf", a)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	fn, err := Lookup("bounceOut")
	require.NoError(t, err)
	assert.Equal(t, BounceOut(0.3), fn(0.3))

	fn, err = Lookup("QUADRATICINOUT")
	require.NoError(t, err)
	assert.Equal(t, QuadraticInOut(0.7), fn(0.7))

	fn, err = Lookup("")
	require.NoError(t, err)
	assert.Equal(t, 0.42, fn(0.42))

	_, err = Lookup("wobble")
	assert.ErrorIs(t, err, ErrUnknownEasing)
	assert.Contains(t, err.Error(), "wobble")
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(catalog))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "elasticInOut")
}
