package tween

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/matt-g-everett/ledtween/easing"
)

var (
	// ErrInvalidDuration is returned when a duration is not a positive finite number of seconds.
	ErrInvalidDuration = errors.New("duration must be positive and finite")
	ErrNilBlend        = errors.New("blend is nil")
	ErrNilRegistry     = errors.New("registry is nil")
)

// An Animation interpolates a value on a target over a duration in seconds.
// It is idle until started, then advances once per registry tick until it
// completes or is stopped.
type Animation[T, V any] struct {
	id       string
	registry *Registry
	target   T
	from     V
	to       V
	duration float64
	progress float64
	easing   easing.Func
	loop     bool
	blend    Blend[T, V]

	onComplete []func()
}

// New creates an idle Animation. The target is borrowed; the Animation never
// manages its lifecycle.
func New[T, V any](registry *Registry, target T, from, to V, duration float64, blend Blend[T, V]) (*Animation[T, V], error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if blend == nil {
		return nil, ErrNilBlend
	}
	if b, ok := any(blend).(BlendFuncs[T, V]); ok && (b.MixFunc == nil || b.ApplyFunc == nil) {
		return nil, fmt.Errorf("%w: missing mix or apply func", ErrNilBlend)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	a := new(Animation[T, V])
	a.id = uuid.NewString()
	a.registry = registry
	a.target = target
	a.from = from
	a.to = to
	a.duration = duration
	a.easing = easing.Linear
	a.blend = blend

	return a, nil
}

// Start registers the Animation so that it advances on every tick. Starting
// an active Animation does nothing.
func (a *Animation[T, V]) Start() *Animation[T, V] {
	if a.registry.Add(a) {
		a.registry.logger.Printf("tween %s started (%.3fs)", a.id, a.duration)
	}
	return a
}

// Stop deregisters the Animation without firing completion handlers.
func (a *Animation[T, V]) Stop() *Animation[T, V] {
	if a.registry.Remove(a) {
		a.registry.logger.Printf("tween %s stopped", a.id)
	}
	return a
}

// SetEasing replaces the easing function from the next advance on. A nil
// function selects easing.Linear.
func (a *Animation[T, V]) SetEasing(fn easing.Func) *Animation[T, V] {
	if fn == nil {
		fn = easing.Linear
	}
	a.easing = fn
	return a
}

// SetLoop makes the Animation restart from the beginning instead of completing.
func (a *Animation[T, V]) SetLoop(loop bool) *Animation[T, V] {
	a.loop = loop
	return a
}

// OnComplete registers fn to run once each time the Animation finishes
// naturally. Handlers run after the Animation has left the registry, so they
// may start it or other animations again.
func (a *Animation[T, V]) OnComplete(fn func()) *Animation[T, V] {
	if fn != nil {
		a.onComplete = append(a.onComplete, fn)
	}
	return a
}

// Advance moves the Animation forward by dt seconds and applies the blended
// value to the target. Completion handlers only fire for an Animation that is
// registered when it reaches the end.
func (a *Animation[T, V]) Advance(dt float64) {
	p := a.progress + dt/a.duration
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 1
	}
	a.progress = clamp(p)

	shaped := a.easing(a.progress)
	if math.IsNaN(shaped) || math.IsInf(shaped, 0) {
		shaped = 1
		a.progress = 1
	}

	value := a.blend.Mix(a.from, a.to, shaped)
	a.blend.Apply(a.target, value)

	if a.progress >= 1 {
		a.end()
	}
}

func (a *Animation[T, V]) end() {
	a.progress = 0
	if a.loop {
		return
	}

	if !a.registry.Remove(a) {
		return
	}
	a.registry.logger.Printf("tween %s complete", a.id)
	for _, fn := range a.onComplete {
		fn()
	}
}

// ID identifies the Animation in logs.
func (a *Animation[T, V]) ID() string { return a.id }

// Target returns the target the Animation writes to.
func (a *Animation[T, V]) Target() any { return a.target }

// Progress is the normalized elapsed fraction in [0,1].
func (a *Animation[T, V]) Progress() float64 { return a.progress }

// Value blends from and to at the current progress without touching the target.
func (a *Animation[T, V]) Value() V {
	return a.blend.Mix(a.from, a.to, a.easing(a.progress))
}

// Active reports whether the Animation is registered.
func (a *Animation[T, V]) Active() bool { return a.registry.Contains(a) }

func (a *Animation[T, V]) Looping() bool     { return a.loop }
func (a *Animation[T, V]) Duration() float64 { return a.duration }

func clamp(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
