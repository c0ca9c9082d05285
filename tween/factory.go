package tween

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Setter writes a blended value to a target.
type Setter[T, V any] func(target T, value V)

func lerpBlend[T, V any](mix func(f, t V, p float64) V, set Setter[T, V]) Blend[T, V] {
	if set == nil {
		return nil
	}
	return BlendFuncs[T, V]{MixFunc: mix, ApplyFunc: set}
}

// Create is New with the blend given as a mix and set closure pair.
func Create[T, V any](r *Registry, target T, from, to V, duration float64,
	mix func(f, t V, p float64) V, set Setter[T, V]) (*Animation[T, V], error) {

	if mix == nil {
		return New[T, V](r, target, from, to, duration, nil)
	}
	return New(r, target, from, to, duration, lerpBlend(mix, set))
}

func Float64[T any](r *Registry, target T, from, to, duration float64, set Setter[T, float64]) (*Animation[T, float64], error) {
	return New(r, target, from, to, duration, lerpBlend(LerpFloat64, set))
}

func Float32[T any](r *Registry, target T, from, to float32, duration float64, set Setter[T, float32]) (*Animation[T, float32], error) {
	return New(r, target, from, to, duration, lerpBlend(LerpFloat32, set))
}

func Int[T any](r *Registry, target T, from, to int, duration float64, set Setter[T, int]) (*Animation[T, int], error) {
	return New(r, target, from, to, duration, lerpBlend(LerpInt, set))
}

func Int64[T any](r *Registry, target T, from, to int64, duration float64, set Setter[T, int64]) (*Animation[T, int64], error) {
	return New(r, target, from, to, duration, lerpBlend(LerpInt64, set))
}

func Vector2[T any](r *Registry, target T, from, to Vec2, duration float64, set Setter[T, Vec2]) (*Animation[T, Vec2], error) {
	return New(r, target, from, to, duration, lerpBlend(Vec2.Lerp, set))
}

func Vector3[T any](r *Registry, target T, from, to Vec3, duration float64, set Setter[T, Vec3]) (*Animation[T, Vec3], error) {
	return New(r, target, from, to, duration, lerpBlend(Vec3.Lerp, set))
}

func Vector4[T any](r *Registry, target T, from, to Vec4, duration float64, set Setter[T, Vec4]) (*Animation[T, Vec4], error) {
	return New(r, target, from, to, duration, lerpBlend(Vec4.Lerp, set))
}

// Color tweens an RGB colour component-wise.
func Color[T any](r *Registry, target T, from, to colorful.Color, duration float64, set Setter[T, colorful.Color]) (*Animation[T, colorful.Color], error) {
	return New(r, target, from, to, duration, lerpBlend(LerpColor, set))
}
