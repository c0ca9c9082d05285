package tween

import (
	"io"
	"log"
	"math"
	"reflect"
	"slices"
)

// A Ticker is advanced by a Registry once per tick.
type Ticker interface {
	Advance(dt float64)
	Target() any
}

// Registry holds the set of active animations and drives them forward. It is
// not safe for concurrent use; all calls must come from the goroutine that
// delivers ticks.
type Registry struct {
	members map[Ticker]struct{}
	order   []Ticker
	buf     []Ticker
	ticking bool
	ticks   uint64
	logger  *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sends registry diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := new(Registry)
	r.members = make(map[Ticker]struct{})
	r.logger = log.New(io.Discard, "", 0)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add inserts t, reporting false if it was already present.
func (r *Registry) Add(t Ticker) bool {
	if _, ok := r.members[t]; ok {
		return false
	}
	r.members[t] = struct{}{}
	r.order = append(r.order, t)
	return true
}

// Remove deletes t, reporting false if it was absent.
func (r *Registry) Remove(t Ticker) bool {
	if _, ok := r.members[t]; !ok {
		return false
	}
	delete(r.members, t)
	if i := slices.Index(r.order, t); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// RemoveAllForTarget deletes every member bound to target without firing
// completion handlers and returns how many were removed.
func (r *Registry) RemoveAllForTarget(target any) int {
	removed := 0
	kept := r.order[:0]
	for _, m := range r.order {
		if sameTarget(m.Target(), target) {
			delete(r.members, m)
			removed++
			continue
		}
		kept = append(kept, m)
	}
	clear(r.order[len(kept):])
	r.order = kept
	if removed > 0 {
		r.logger.Printf("removed %d tweens for target %v", removed, target)
	}
	return removed
}

// StopAllAnimationsFor cancels every animation on target in r.
func StopAllAnimationsFor(r *Registry, target any) int {
	return r.RemoveAllForTarget(target)
}

func (r *Registry) Contains(t Ticker) bool {
	_, ok := r.members[t]
	return ok
}

func (r *Registry) Len() int { return len(r.order) }

// Ticks is the number of ticks delivered so far.
func (r *Registry) Ticks() uint64 { return r.ticks }

// Tick advances every member by dt seconds. Membership is captured before the
// first member advances: members added during the tick wait for the next one,
// and members removed during the tick are skipped. A snapshot member that is
// removed and added again before its turn is still advanced in this tick.
func (r *Registry) Tick(dt float64) {
	if math.IsNaN(dt) || dt < 0 {
		r.logger.Printf("ignoring invalid tick delta %v", dt)
		dt = 0
	}
	r.ticks++

	var snapshot []Ticker
	if r.ticking {
		snapshot = append([]Ticker(nil), r.order...)
	} else {
		r.buf = append(r.buf[:0], r.order...)
		snapshot = r.buf
		r.ticking = true
		defer func() {
			clear(r.buf)
			r.ticking = false
		}()
	}

	for _, t := range snapshot {
		if _, ok := r.members[t]; !ok {
			continue
		}
		t.Advance(dt)
	}
}

// sameTarget compares targets with ==, treating values of non-comparable
// types as never equal.
func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
