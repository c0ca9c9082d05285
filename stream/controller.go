package stream

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// ErrUnknownPreset is returned for preset names missing from the config.
var ErrUnknownPreset = errors.New("unknown preset")

// Controller that manages animations. It is driven from a single goroutine.
type Controller struct {
	registry *tween.Registry
	frame    *Frame
	presets  map[string]*Preset
	segments map[string]*Segment
	twinkle  *Twinkle
	logger   *log.Logger
}

// NewController creates an instance of a Controller from a validated config.
func NewController(config Config, rng *rand.Rand, logger *log.Logger) (*Controller, error) {
	c := new(Controller)
	c.logger = logger
	c.registry = tween.NewRegistry(tween.WithLogger(logger))
	c.frame = NewFrame(config.Stream.Pixels)
	c.presets = make(map[string]*Preset, len(config.Presets))
	c.segments = make(map[string]*Segment, len(config.Presets))

	backColour, err := colorful.Hex(config.Stream.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	c.frame.Fill(backColour)

	for i := range config.Presets {
		p := config.Presets[i]
		seg, err := NewSegment(c.frame, p.Start, p.End)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		c.presets[p.Name] = &p
		c.segments[p.Name] = seg
	}

	tw := config.Stream.Twinkle
	if tw.Particles > 0 {
		foreColour, err := colorful.Hex(tw.Colour)
		if err != nil {
			return nil, fmt.Errorf("twinkle colour: %w", err)
		}
		c.twinkle = NewTwinkle(c.registry, c.frame, rng, foreColour, backColour)
		c.twinkle.minSecs = tw.MinSecs
		c.twinkle.maxSecs = tw.MaxSecs
		c.twinkle.Start(tw.Particles)
	}

	return c, nil
}

// Play starts the named preset, chaining to its next preset on completion.
func (c *Controller) Play(name string) error {
	p, ok := c.presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	var done func()
	if p.Next != "" {
		next := p.Next
		done = func() {
			if err := c.Play(next); err != nil {
				c.logger.Printf("chain %s -> %s: %v", name, next, err)
			}
		}
	}

	if err := p.Play(c.registry, c.segments[name], done); err != nil {
		return err
	}
	c.logger.Printf("playing preset %s", name)
	return nil
}

// Stop cancels the tweens bound to the named preset's segment. Other presets
// painting the same pixels keep running, and chained presets are not started.
func (c *Controller) Stop(name string) (int, error) {
	seg, ok := c.segments[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return tween.StopAllAnimationsFor(c.registry, seg), nil
}

// Step advances all tweens by dt seconds and returns the painted frame.
func (c *Controller) Step(dt float64) *Frame {
	c.registry.Tick(dt)
	return c.frame
}

func (c *Controller) Registry() *tween.Registry { return c.registry }
func (c *Controller) Frame() *Frame             { return c.frame }
func (c *Controller) Twinkle() *Twinkle         { return c.twinkle }

// PresetNames lists the configured presets in sorted order.
func (c *Controller) PresetNames() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
