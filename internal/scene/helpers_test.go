package scene_test

import (
	"context"
	"errors"
	"time"
)

var errBoom = errors.New("boom")

type fakeSink struct {
	frames   []string
	messages []string
	clears   int
	err      error
}

func (s *fakeSink) Clear() error {
	s.clears++
	return nil
}

func (s *fakeSink) Present(frame string) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, frame)
	return nil
}

func (s *fakeSink) Message(text string) error {
	s.messages = append(s.messages, text)
	return nil
}

// fakeClock advances virtual time on every Sleep instead of blocking.
type fakeClock struct {
	now     time.Time
	sleeps  []time.Duration
	onSleep func(n int)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	if c.onSleep != nil {
		c.onSleep(len(c.sleeps))
	}
	return ctx.Err() == nil
}
