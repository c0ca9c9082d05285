package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	frames [][]byte
	err    error
}

func (p *recordingPublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.frames = append(p.frames, payload)
	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

func TestStreamerStepPublishesFrame(t *testing.T) {
	c := newTestController(t, chainConfig)
	pub := &recordingPublisher{}
	s := NewStreamer(c, pub, "leds", 30, discard)

	require.NoError(t, c.Play("up"))
	require.NoError(t, s.Step(1))

	require.Equal(t, 1, pub.count())
	assert.Equal(t, "leds", pub.topics[0])
	frame := pub.frames[0]
	require.Len(t, frame, 2+10*3)
	assert.Equal(t, []byte{255, 255, 255}, frame[2:5])
	assert.Equal(t, []byte{0, 0, 0}, frame[2+5*3:2+6*3])

	pub.err = errors.New("broker gone")
	assert.EqualError(t, s.Step(0.1), "broker gone")
}

func TestStreamerRunExecutesCommandsBetweenFrames(t *testing.T) {
	c := newTestController(t, chainConfig)
	pub := &recordingPublisher{}
	s := NewStreamer(c, pub, "leds", 200, discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.NoError(t, s.Exec(ctx, func(c *Controller) error { return c.Play("tail") }))

	var active int
	require.NoError(t, s.Exec(ctx, func(c *Controller) error {
		active = c.Registry().Len()
		return nil
	}))
	assert.Equal(t, 1, active)

	err := s.Exec(ctx, func(c *Controller) error { return c.Play("missing") })
	assert.ErrorIs(t, err, ErrUnknownPreset)

	assert.Eventually(t, func() bool { return pub.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.ErrorIs(t, s.Exec(ctx, func(*Controller) error { return nil }), context.Canceled)
}
