package main

import "time"

// fpsLimiter paces the loop with a hybrid sleep/spin wait, which holds the
// cap far more precisely than a plain time.Sleep at high frame rates.
type fpsLimiter struct {
	limit int
	next time.Time
}

func newFPSLimiter(limit int) *fpsLimiter {
	return &fpsLimiter{limit: limit}
}

// Wait blocks until the next frame slot.
func (f *fpsLimiter) Wait() {
	if f.limit <= 0 {
		return
	}

	target := time.Second / time.Duration(f.limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch to avoid accumulating drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
