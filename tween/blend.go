package tween

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Blend interpolates between two values and writes the result to a target.
// Mix must be free of side effects; Apply is the only place a target changes.
type Blend[T, V any] interface {
	Mix(from, to V, p float64) V
	Apply(target T, value V)
}

// BlendFuncs adapts a pair of closures to a Blend.
type BlendFuncs[T, V any] struct {
	MixFunc   func(from, to V, p float64) V
	ApplyFunc func(target T, value V)
}

func (b BlendFuncs[T, V]) Mix(from, to V, p float64) V { return b.MixFunc(from, to, p) }
func (b BlendFuncs[T, V]) Apply(target T, value V)     { b.ApplyFunc(target, value) }

// LerpFloat64 blends component-wise as f*(1-p) + t*p.
func LerpFloat64(f, t, p float64) float64 {
	return f*(1-p) + t*p
}

func LerpFloat32(f, t float32, p float64) float32 {
	return f*float32(1-p) + t*float32(p)
}

// LerpInt truncates toward zero.
func LerpInt(f, t int, p float64) int {
	return int(float64(f)*(1-p) + float64(t)*p)
}

func LerpInt64(f, t int64, p float64) int64 {
	return int64(float64(f)*(1-p) + float64(t)*p)
}

// LerpColor blends the RGB components linearly.
func LerpColor(f, t colorful.Color, p float64) colorful.Color {
	return f.BlendRgb(t, p)
}

// LerpColorHcl blends through the HCL space, which keeps the perceived
// brightness steady across hue changes.
func LerpColorHcl(f, t colorful.Color, p float64) colorful.Color {
	return f.BlendHcl(t, p).Clamped()
}
