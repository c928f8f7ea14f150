package record

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/discoball/internal/scene"
)

// Replay presents frames on sink with delay between them. An interrupt ends
// the replay without error.
func Replay(ctx context.Context, sink scene.Sink, frames []string, delay time.Duration, pacer scene.Pacer) error {
	if pacer == nil {
		pacer = scene.WallClock()
	}
	if ctx.Err() != nil {
		return nil
	}
	if err := sink.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	for i, f := range frames {
		if err := sink.Present(f); err != nil {
			return fmt.Errorf("present frame %d: %w", i, err)
		}
		if !pacer.Sleep(ctx, delay) {
			scene.Logger().Info("replay interrupted", "frame", i)
			return nil
		}
	}
	return nil
}

// ReplayRun loads a stored recording and replays it at its recorded pace,
// then repeats its messages.
func (s *Store) ReplayRun(ctx context.Context, id string, sink scene.Sink, pacer scene.Pacer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(id)
	if err != nil {
		return err
	}
	if err := Replay(ctx, sink, frames, meta.Delay(), pacer); err != nil {
		return err
	}
	for _, m := range meta.Messages {
		if err := sink.Message(m); err != nil {
			return fmt.Errorf("message: %w", err)
		}
	}
	return nil
}
