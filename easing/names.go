package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEasing is returned by Lookup for names outside the catalog.
var ErrUnknownEasing = errors.New("unknown easing")

var catalog = map[string]Func{
	"linear":           Linear,
	"quadraticIn":      QuadraticIn,
	"quadraticOut":     QuadraticOut,
	"quadraticInOut":   QuadraticInOut,
	"cubicIn":          CubicIn,
	"cubicOut":         CubicOut,
	"cubicInOut":       CubicInOut,
	"quarticIn":        QuarticIn,
	"quarticOut":       QuarticOut,
	"quarticInOut":     QuarticInOut,
	"quinticIn":        QuinticIn,
	"quinticOut":       QuinticOut,
	"quinticInOut":     QuinticInOut,
	"sinusoidalIn":     SinusoidalIn,
	"sinusoidalOut":    SinusoidalOut,
	"sinusoidalInOut":  SinusoidalInOut,
	"exponentialIn":    ExponentialIn,
	"exponentialOut":   ExponentialOut,
	"exponentialInOut": ExponentialInOut,
	"circularIn":       CircularIn,
	"circularOut":      CircularOut,
	"circularInOut":    CircularInOut,
	"elasticIn":        ElasticIn,
	"elasticOut":       ElasticOut,
	"elasticInOut":     ElasticInOut,
	"backIn":           BackIn,
	"backOut":          BackOut,
	"backInOut":        BackInOut,
	"bounceIn":         BounceIn,
	"bounceOut":        BounceOut,
	"bounceInOut":      BounceInOut,
}

// folded indexes the catalog by lower-cased name.
var folded = func() map[string]Func {
	m := make(map[string]Func, len(catalog))
	for name, fn := range catalog {
		m[strings.ToLower(name)] = fn
	}
	return m
}()

// Lookup finds an easing function by name, ignoring case. An empty name
// selects Linear.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := folded[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
