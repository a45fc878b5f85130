package timeutil

import (
	"context"
	"time"
)

// Sleeper abstracts cooperative waiting. The resolver and the mock search
// path apply a fixed artificial latency through a Sleeper so the UI timing
// stays smooth in production while tests complete instantly.
type Sleeper interface {
	// Sleep waits for the given duration or until the context is done,
	// whichever comes first.
	Sleep(ctx context.Context, d time.Duration)
}

// RealSleeper waits on the wall clock.
type RealSleeper struct{}

// NewRealSleeper creates a new RealSleeper instance.
func NewRealSleeper() *RealSleeper {
	return &RealSleeper{}
}

// Sleep waits for d or context cancellation.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// MockSleeper records requested sleeps without waiting.
type MockSleeper struct {
	// Slept accumulates every duration passed to Sleep, in order.
	Slept []time.Duration
}

// NewMockSleeper creates a new MockSleeper instance.
func NewMockSleeper() *MockSleeper {
	return &MockSleeper{}
}

// Sleep records the duration and returns immediately.
func (m *MockSleeper) Sleep(_ context.Context, d time.Duration) {
	m.Slept = append(m.Slept, d)
}

// TotalSlept returns the sum of all recorded sleeps.
func (m *MockSleeper) TotalSlept() time.Duration {
	var total time.Duration
	for _, d := range m.Slept {
		total += d
	}
	return total
}

// Ensure interfaces are implemented.
var (
	_ Sleeper = (*RealSleeper)(nil)
	_ Sleeper = (*MockSleeper)(nil)
)
