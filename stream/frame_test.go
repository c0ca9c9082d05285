package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinary(t *testing.T) {
	f := NewFrame(3)
	f.Set(0, colorful.Color{R: 1})
	f.Set(1, colorful.Color{G: 1})
	f.Set(2, colorful.Color{B: 2}) // clamped
	f.Set(3, colorful.Color{R: 1}) // ignored

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2+3*3)
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{255, 0, 0, 0, 255, 0, 0, 0, 255}, data[2:])
}

func TestInterpolateFrame(t *testing.T) {
	black := NewFrame(4)
	white := NewFrame(4)
	white.Fill(colorful.Color{R: 1, G: 1, B: 1})

	assert.True(t, black.InterpolateFrame(white, 0).Pixel(2).AlmostEqualRgb(colorful.Color{}))
	assert.True(t, black.InterpolateFrame(white, 1).Pixel(2).AlmostEqualRgb(white.Pixel(2)))
}

func TestSegment(t *testing.T) {
	f := NewFrame(10)
	red := colorful.Color{R: 1}

	seg, err := NewSegment(f, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, seg.Len())
	assert.Equal(t, "segment[2:5]", seg.String())

	seg.SetColor(red)
	for i := 0; i < f.Len(); i++ {
		if i >= 2 && i < 5 {
			assert.Equal(t, red, f.Pixel(i), "pixel %d", i)
		} else {
			assert.Equal(t, colorful.Color{}, f.Pixel(i), "pixel %d", i)
		}
	}

	for _, r := range [][2]int{{-1, 2}, {5, 5}, {8, 11}, {6, 3}} {
		_, err := NewSegment(f, r[0], r[1])
		assert.Error(t, err, "range %v", r)
	}
}

func TestGradientBlendPaintsTrail(t *testing.T) {
	f := NewFrame(8)
	seg, err := NewSegment(f, 0, 8)
	require.NoError(t, err)

	g := NewGradientBlend(RainbowGradient, 4)
	assert.Equal(t, 2.5, g.Mix(0, 5, 0.5))

	g.Apply(seg, 0)
	assert.Equal(t, f.Pixel(0), f.Pixel(4), "trail repeats every 4 pixels")
	assert.Equal(t, f.Pixel(1), f.Pixel(5))
	assert.NotEqual(t, f.Pixel(0), f.Pixel(1))

	before := f.Pixel(1)
	g.Apply(seg, 0.25)
	assert.Equal(t, before, f.Pixel(0), "a quarter trail offset shifts by one pixel")
}

func TestGradientGetColorPastEnd(t *testing.T) {
	c := RainbowGradient.GetColor(1.5, 1, 0.5)
	assert.True(t, c.AlmostEqualRgb(colorful.Hcl(360, 1.0, 0.05)))
}
