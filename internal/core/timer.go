package core

import (
	"context"
	"time"
)

// FixedStep throttles a loop to a steady ticks-per-second rate. The delay is
// measured from the previous tick boundary, not from the work done.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Remaining reports how long to wait before the next tick is due.
func (f *FixedStep) Remaining() time.Duration {
	if f.last.IsZero() {
		return 0
	}
	d := f.step - f.now().Sub(f.last)
	if d < 0 {
		return 0
	}
	return d
}

// Wait blocks until the next tick is due or ctx is done.
func (f *FixedStep) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d := f.Remaining(); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	f.last = f.now()
	return nil
}
