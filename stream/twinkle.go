package stream

import (
	"log"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

// A Twinkle fades random pixels up to a highlight and back down, picking a
// new pixel each time a particle settles.
type Twinkle struct {
	registry   *tween.Registry
	frame      *Frame
	rng        *rand.Rand
	foreColour colorful.Color
	backColour colorful.Color
	minSecs    float64
	maxSecs    float64

	particles map[*Segment]bool
	stopped   bool
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(registry *tween.Registry, frame *Frame, rng *rand.Rand, foreColour, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.registry = registry
	t.frame = frame
	t.rng = rng
	t.foreColour = foreColour
	t.backColour = backColour
	t.minSecs = 0.5
	t.maxSecs = 2.0
	t.particles = make(map[*Segment]bool)
	return t
}

// Start launches numParticles particles.
func (t *Twinkle) Start(numParticles int) {
	t.stopped = false
	for i := 0; i < numParticles; i++ {
		t.spawn()
	}
}

// Stop cancels every particle and leaves its pixel as it was.
func (t *Twinkle) Stop() {
	t.stopped = true
	for seg := range t.particles {
		t.registry.RemoveAllForTarget(seg)
		delete(t.particles, seg)
	}
}

// Particles is the number of pixels currently twinkling.
func (t *Twinkle) Particles() int { return len(t.particles) }

func (t *Twinkle) spawn() {
	if t.stopped || t.frame.Len() == 0 {
		return
	}

	pixel := t.rng.Intn(t.frame.Len())
	seg, _ := NewSegment(t.frame, pixel, pixel+1)
	t.particles[seg] = true

	h, c, l := t.foreColour.Hcl()
	peak := colorful.Hcl(h, c*util.RandomRange(t.rng, 0.5, 1.0), l)
	secs := util.RandomRange(t.rng, t.minSecs, t.maxSecs)

	fadeDown, err := tween.Color(t.registry, seg, peak, t.backColour, secs, (*Segment).SetColor)
	if err != nil {
		log.Printf("Error creating twinkle on pixel %d: %v", pixel, err)
		delete(t.particles, seg)
		return
	}
	fadeDown.SetEasing(easing.SinusoidalIn).OnComplete(func() {
		delete(t.particles, seg)
		t.spawn()
	})

	fadeUp, err := tween.Color(t.registry, seg, t.backColour, peak, secs, (*Segment).SetColor)
	if err != nil {
		log.Printf("Error creating twinkle on pixel %d: %v", pixel, err)
		delete(t.particles, seg)
		return
	}
	fadeUp.SetEasing(easing.SinusoidalOut).OnComplete(func() {
		fadeDown.Start()
	}).Start()
}
