package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// RainbowGradient wraps pink through the spectrum and back to pink.
var RainbowGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, 1.0, 0.05)
}

// A GradientBlend tweens an offset along a gradient and paints it as a trail
// repeating every TrailLength pixels of a Segment.
type GradientBlend struct {
	Gradient    GradientTable
	TrailLength int
	Saturation  float64
	Luminance   float64
}

var _ tween.Blend[*Segment, float64] = GradientBlend{}

// NewGradientBlend creates a GradientBlend with the trail defaults.
func NewGradientBlend(gradient GradientTable, trailLength int) GradientBlend {
	if trailLength <= 0 {
		trailLength = 1
	}
	return GradientBlend{
		Gradient:    gradient,
		TrailLength: trailLength,
		Saturation:  1.0,
		Luminance:   0.05,
	}
}

func (g GradientBlend) Mix(from, to, p float64) float64 {
	return tween.LerpFloat64(from, to, p)
}

// Apply paints the segment with the gradient shifted by offset trails.
func (g GradientBlend) Apply(s *Segment, offset float64) {
	trail := float64(g.TrailLength)
	for i := 0; i < s.Len(); i++ {
		t := math.Mod(float64(i)/trail+offset, 1)
		if t < 0 {
			t++
		}
		s.frame.pixels[s.start+i] = g.Gradient.GetColor(t, g.Saturation, g.Luminance).Clamped()
	}
}
