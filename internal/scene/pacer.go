package scene

import (
	"context"
	"time"
)

// Pacer supplies the clock and the inter-frame wait.
type Pacer interface {
	Now() time.Time
	// Sleep waits for d and reports false when ctx ended the wait early.
	Sleep(ctx context.Context, d time.Duration) bool
}

type wallClock struct{}

// WallClock paces frames in real time.
func WallClock() Pacer { return wallClock{} }

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
