package stream

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

// Preset modes.
const (
	ModeColour   = "colour"
	ModeGradient = "gradient"
)

// A Preset describes a tween over a range of pixels.
type Preset struct {
	Name     string  `yaml:"name"`
	Mode     string  `yaml:"mode"`
	Easing   string  `yaml:"easing"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Start    int     `yaml:"start"`
	End      int     `yaml:"end"`
	Trail    int     `yaml:"trail"`
	Next     string  `yaml:"next"`
}

func (p *Preset) validate(numPixels int) error {
	if p.Name == "" {
		return errors.New("missing name")
	}
	if p.Mode == "" {
		p.Mode = ModeColour
	}
	if p.End == 0 {
		p.End = numPixels
	}
	if p.Start < 0 || p.End > numPixels || p.Start >= p.End {
		return fmt.Errorf("pixels [%d, %d) outside strip of %d", p.Start, p.End, numPixels)
	}
	if !(p.Duration > 0) {
		return fmt.Errorf("%s: %w", p.Name, tween.ErrInvalidDuration)
	}
	if _, err := easing.Lookup(p.Easing); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	switch p.Mode {
	case ModeColour:
		if _, err := colorful.Hex(p.From); err != nil {
			return fmt.Errorf("%s: from: %w", p.Name, err)
		}
		if _, err := colorful.Hex(p.To); err != nil {
			return fmt.Errorf("%s: to: %w", p.Name, err)
		}
	case ModeGradient:
		if p.Trail < 0 {
			return fmt.Errorf("%s: negative trail", p.Name)
		}
	default:
		return fmt.Errorf("%s: unknown mode %q", p.Name, p.Mode)
	}
	return nil
}

// Play builds the tween described by p on seg, starts it on r and arranges
// for done to run when it completes.
func (p *Preset) Play(r *tween.Registry, seg *Segment, done func()) error {
	fn, err := easing.Lookup(p.Easing)
	if err != nil {
		return err
	}

	switch p.Mode {
	case ModeGradient:
		trail := p.Trail
		if trail == 0 {
			trail = seg.Len()
		}
		a, err := tween.New[*Segment, float64](r, seg, 0, 1, p.Duration, NewGradientBlend(RainbowGradient, trail))
		if err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
		a.SetEasing(fn).SetLoop(p.Loop).OnComplete(done).Start()
	default:
		from, _ := colorful.Hex(p.From)
		to, _ := colorful.Hex(p.To)
		a, err := tween.Create(r, seg, from, to, p.Duration, tween.LerpColorHcl, (*Segment).SetColor)
		if err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
		a.SetEasing(fn).SetLoop(p.Loop).OnComplete(done).Start()
	}
	return nil
}
