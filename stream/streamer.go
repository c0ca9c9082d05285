package stream

import (
	"context"
	"fmt"
	"log"
	"time"
)

type command struct {
	fn   func(*Controller) error
	done chan error
}

// Streamer that streams RGB data frames to an ledrx device. The Controller is
// only touched from the goroutine running Run.
type Streamer struct {
	controller *Controller
	publisher  Publisher
	topic      string
	interval   time.Duration
	commands   chan command
	logger     *log.Logger
}

// NewStreamer creates an instance of a Streamer publishing frameRate frames a second.
func NewStreamer(controller *Controller, publisher Publisher, topic string, frameRate float64, logger *log.Logger) *Streamer {
	s := new(Streamer)
	s.controller = controller
	s.publisher = publisher
	s.topic = topic
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.commands = make(chan command)
	s.logger = logger
	return s
}

// Step advances the animations by dt seconds and sends the resulting frame.
func (s *Streamer) Step(dt float64) error {
	f := s.controller.Step(dt)
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	return s.publisher.Publish(s.topic, b)
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-publishTimer.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := s.Step(dt); err != nil {
				s.logger.Printf("send frame: %v", err)
			}
		case cmd := <-s.commands:
			cmd.done <- cmd.fn(s.controller)
		}
	}
}

// Exec runs fn on the streaming goroutine between frames and returns its error.
func (s *Streamer) Exec(ctx context.Context, fn func(*Controller) error) error {
	cmd := command{fn: fn, done: make(chan error, 1)}
	select {
	case s.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
