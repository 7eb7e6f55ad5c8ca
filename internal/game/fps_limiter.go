package game

import (
	"time"

	"bullseye/internal/config"
)

// spinWindow is how early the limiter stops sleeping and starts polling.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the loop to config.GetFPSLimit frames per second.
// A limit of zero disables pacing.
type FPSLimiter struct {
	next time.Time

	limit func() int
	now   func() time.Time
	sleep func(time.Duration)
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit, now: time.Now, sleep: time.Sleep}
}

// Wait blocks until the next frame is due and returns how long it waited.
// After a hitch longer than one frame the schedule restarts from now
// instead of rushing to catch up.
func (f *FPSLimiter) Wait() time.Duration {
	fps := f.limit()
	if fps <= 0 {
		f.next = time.Time{}
		return 0
	}
	frame := time.Second / time.Duration(fps)

	start := f.now()
	if f.next.IsZero() {
		f.next = start.Add(frame)
	} else {
		f.next = f.next.Add(frame)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
	}

	end := f.now()
	if end.Sub(f.next) > frame {
		f.next = end.Add(frame)
	}
	return end.Sub(start)
}
