package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrDeadlineExceeded is returned by every search entry point once the clock
// runs below the abort threshold. It must only be handled by the top-level
// caller; intermediate frames return it unchanged.
var ErrDeadlineExceeded = errors.New("search deadline exceeded")

// Clock reports how much time is left before the caller forfeits. The caller
// owns and advances it; the search only reads it.
type Clock func() time.Duration

// Countdown returns a clock that starts running now and reaches zero after
// budget.
func Countdown(budget time.Duration) Clock {
	return Until(time.Now().Add(budget))
}

// Until returns a clock that reaches zero at t.
func Until(t time.Time) Clock {
	return func() time.Duration {
		return time.Until(t)
	}
}

// Unlimited is a clock that never runs out.
func Unlimited() Clock {
	return func() time.Duration {
		return time.Duration(math.MaxInt64)
	}
}

// Deadline pairs a clock with the minimum time that must remain to start
// another recursive step.
type Deadline struct {
	clock     Clock
	threshold time.Duration
}

func NewDeadline(clock Clock, threshold time.Duration) Deadline {
	if clock == nil {
		clock = Unlimited()
	}
	return Deadline{clock: clock, threshold: threshold}
}

// Remaining is the advisory reading used by the driver loop.
func (d Deadline) Remaining() time.Duration {
	return d.clock()
}

// Check returns ErrDeadlineExceeded if less than the threshold remains or if
// ctx is done.
func (d Deadline) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeadlineExceeded, err)
	}
	if d.clock() < d.threshold {
		return ErrDeadlineExceeded
	}
	return nil
}
