// Package easing provides the shaping functions that remap normalized progress
// in [0,1] to shaped progress. Every function is pure and defined for any real
// input; callers may overshoot the unit interval.
package easing

import (
	"math"

	"github.com/fogleman/ease"
)

// Func maps normalized progress to shaped progress.
type Func func(amount float64) float64

const (
	backOvershoot      = 1.70158
	backOvershootInOut = backOvershoot * 1.525
)

// Linear returns amount unchanged.
func Linear(amount float64) float64 { return amount }

func QuadraticIn(amount float64) float64    { return ease.InQuad(amount) }
func QuadraticOut(amount float64) float64   { return ease.OutQuad(amount) }
func QuadraticInOut(amount float64) float64 { return ease.InOutQuad(amount) }

func CubicIn(amount float64) float64    { return ease.InCubic(amount) }
func CubicOut(amount float64) float64   { return ease.OutCubic(amount) }
func CubicInOut(amount float64) float64 { return ease.InOutCubic(amount) }

func QuarticIn(amount float64) float64    { return ease.InQuart(amount) }
func QuarticOut(amount float64) float64   { return ease.OutQuart(amount) }
func QuarticInOut(amount float64) float64 { return ease.InOutQuart(amount) }

func QuinticIn(amount float64) float64    { return ease.InQuint(amount) }
func QuinticOut(amount float64) float64   { return ease.OutQuint(amount) }
func QuinticInOut(amount float64) float64 { return ease.InOutQuint(amount) }

func SinusoidalIn(amount float64) float64    { return ease.InSine(amount) }
func SinusoidalOut(amount float64) float64   { return ease.OutSine(amount) }
func SinusoidalInOut(amount float64) float64 { return ease.InOutSine(amount) }

// ExponentialIn grows as 1024^(a-1) and is pinned to 0 at a == 0.
func ExponentialIn(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return math.Pow(1024, amount-1)
}

// ExponentialOut is pinned to 1 at a == 1.
func ExponentialOut(amount float64) float64 {
	if amount == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*amount)
}

func ExponentialInOut(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	if amount == 1 {
		return 1
	}
	amount *= 2
	if amount < 1 {
		return 0.5 * math.Pow(1024, amount-1)
	}
	return 0.5 * (2 - math.Pow(2, -10*(amount-1)))
}

// sqrt0 saturates negative radicands so the circular arcs stay finite when
// progress overshoots the unit interval.
func sqrt0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(x)
}

func CircularIn(amount float64) float64 {
	return 1 - sqrt0(1-amount*amount)
}

func CircularOut(amount float64) float64 {
	amount--
	return sqrt0(1 - amount*amount)
}

func CircularInOut(amount float64) float64 {
	amount *= 2
	if amount < 1 {
		return -0.5 * (sqrt0(1-amount*amount) - 1)
	}
	amount -= 2
	return 0.5 * (sqrt0(1-amount*amount) + 1)
}

// ElasticIn oscillates below zero with a 2^(10(a-1)) envelope before snapping to 1.
func ElasticIn(amount float64) float64 {
	switch amount {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*(amount-1)) * math.Sin((amount-1.1)*5*math.Pi)
}

func ElasticOut(amount float64) float64 {
	switch amount {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*amount)*math.Sin((amount-0.1)*5*math.Pi) + 1
}

func ElasticInOut(amount float64) float64 {
	switch amount {
	case 0:
		return 0
	case 1:
		return 1
	}
	amount *= 2
	if amount < 1 {
		return -0.5 * math.Pow(2, 10*(amount-1)) * math.Sin((amount-1.1)*5*math.Pi)
	}
	return 0.5*math.Pow(2, -10*(amount-1))*math.Sin((amount-1.1)*5*math.Pi) + 1
}

// BackIn pulls below zero before accelerating to 1.
func BackIn(amount float64) float64 {
	if amount == 1 {
		return 1
	}
	return amount * amount * ((backOvershoot+1)*amount - backOvershoot)
}

// BackOut overshoots past 1 before settling.
func BackOut(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	amount--
	return amount*amount*((backOvershoot+1)*amount+backOvershoot) + 1
}

func BackInOut(amount float64) float64 {
	amount *= 2
	if amount < 1 {
		return 0.5 * (amount * amount * ((backOvershootInOut+1)*amount - backOvershootInOut))
	}
	amount -= 2
	return 0.5 * (amount*amount*((backOvershootInOut+1)*amount+backOvershootInOut) + 2)
}

func BounceIn(amount float64) float64 {
	return 1 - BounceOut(1-amount)
}

// BounceOut lands four decaying parabolic bounces, the last ending at 1.
func BounceOut(amount float64) float64 {
	switch {
	case amount < 1/2.75:
		return 7.5625 * amount * amount
	case amount < 2/2.75:
		amount -= 1.5 / 2.75
		return 7.5625*amount*amount + 0.75
	case amount < 2.5/2.75:
		amount -= 2.25 / 2.75
		return 7.5625*amount*amount + 0.9375
	default:
		amount -= 2.625 / 2.75
		return 7.5625*amount*amount + 0.984375
	}
}

func BounceInOut(amount float64) float64 {
	if amount < 0.5 {
		return BounceIn(amount*2) * 0.5
	}
	return BounceOut(amount*2-1)*0.5 + 0.5
}
