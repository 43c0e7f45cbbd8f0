// Package clock provides the monotonic time value used throughout the
// reactor: absolute/elapsed time arithmetic and calendar expansion.
package clock

import "time"

// Time is a monotonic (seconds, nanoseconds) pair, mirroring the source's
// TimeValue. It is comparable and safe to use as a map key or struct field.
type Time struct {
	Seconds     int64
	Nanoseconds int32
}

const nsPerSecond = int64(time.Second)

// Now returns the current monotonic time.
func Now() Time {
	return FromDuration(time.Duration(nowMonotonicNanos()))
}

// nowMonotonicNanos is split out so tests can fake the clock without
// touching the reactor's production path.
var nowMonotonicNanos = func() int64 {
	return monotonicNanos()
}

// FromDuration builds a Time from a duration measured since an arbitrary
// epoch (used for both wall time and test fixtures).
func FromDuration(d time.Duration) Time {
	n := int64(d)
	return Time{
		Seconds:     n / nsPerSecond,
		Nanoseconds: int32(n % nsPerSecond),
	}
}

// Duration converts back to a time.Duration since the same epoch.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Seconds*nsPerSecond + int64(t.Nanoseconds))
}

// Add returns t advanced by d.
func (t Time) Add(d time.Duration) Time {
	return FromDuration(t.Duration() + d)
}

// Sub returns the elapsed duration from earlier to t. Negative if t precedes
// earlier.
func (t Time) Sub(earlier Time) time.Duration {
	return t.Duration() - earlier.Duration()
}

// Before reports whether t is strictly earlier than other.
func (t Time) Before(other Time) bool {
	return t.Duration() < other.Duration()
}

// After reports whether t is strictly later than other.
func (t Time) After(other Time) bool {
	return t.Duration() > other.Duration()
}

// IsZero reports whether t is the zero Time.
func (t Time) IsZero() bool {
	return t.Seconds == 0 && t.Nanoseconds == 0
}

// Calendar is the expanded year/month/day/hour/minute/second/millisecond
// decomposition of a Time, computed on demand — it is never carried on the
// hot path of the reactor.
type Calendar struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Millisecond          int
}

// Expand decomposes t (interpreted as a Unix-epoch monotonic value) into its
// calendar components in UTC.
func (t Time) Expand() Calendar {
	wall := time.Unix(t.Seconds, int64(t.Nanoseconds)).UTC()
	return Calendar{
		Year:        wall.Year(),
		Month:       int(wall.Month()),
		Day:         wall.Day(),
		Hour:        wall.Hour(),
		Minute:      wall.Minute(),
		Second:      wall.Second(),
		Millisecond: wall.Nanosecond() / 1e6,
	}
}

// MillisecondsUntil returns the non-negative number of milliseconds from t
// until deadline, or 0 if deadline is not after t.
func MillisecondsUntil(deadline, t Time) int {
	d := deadline.Sub(t)
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(int(^uint(0)>>1)) {
		return int(^uint(0) >> 1)
	}
	return int(ms)
}
