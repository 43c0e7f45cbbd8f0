package clock

import "time"

var start = time.Now()

// monotonicNanos returns nanoseconds elapsed since process start, sourced
// from time.Since, which Go guarantees is backed by the monotonic clock
// reading carried in time.Time since Go 1.9.
func monotonicNanos() int64 {
	return int64(time.Since(start))
}
