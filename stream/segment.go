package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Segment is a run of pixels on a Frame that a tween writes to.
type Segment struct {
	frame *Frame
	start int
	end   int
}

// NewSegment creates a Segment covering pixels [start, end).
func NewSegment(frame *Frame, start, end int) (*Segment, error) {
	if start < 0 || end > frame.Len() || start >= end {
		return nil, fmt.Errorf("segment [%d, %d) outside frame of %d pixels", start, end, frame.Len())
	}
	s := new(Segment)
	s.frame = frame
	s.start = start
	s.end = end
	return s, nil
}

func (s *Segment) Len() int { return s.end - s.start }

// SetColor paints the whole segment.
func (s *Segment) SetColor(c colorful.Color) {
	c = c.Clamped()
	for i := s.start; i < s.end; i++ {
		s.frame.pixels[i] = c
	}
}

func (s *Segment) String() string {
	return fmt.Sprintf("segment[%d:%d]", s.start, s.end)
}
