package util

import (
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/ledtween/easing"
)

// RandomRange picks a value uniformly from [min, max).
func RandomRange(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateLut builds a table that rises through fn over the first half and
// mirrors it back down over the second. A nil fn uses ease.InOutQuad.
func GenerateLut(length int, fn easing.Func) []float64 {
	if fn == nil {
		fn = ease.InOutQuad
	}
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}
	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := fn(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

// SampleCurve evaluates fn at samples+1 evenly spaced points across [0,1].
func SampleCurve(samples int, fn easing.Func) []float64 {
	if samples < 1 {
		samples = 1
	}
	out := make([]float64, samples+1)
	for i := range out {
		out[i] = fn(float64(i) / float64(samples))
	}
	return out
}
