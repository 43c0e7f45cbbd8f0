// Package iomon implements the I/O Monitor abstraction: a uniform,
// four-call interface over OS readiness primitives, so the reactor never
// has to know whether it is running atop poll(2) or a degenerate
// timer-only backend.
package iomon

// Interest is a bitmask of the readiness conditions a caller cares about.
type Interest uint8

const (
	InterestRead Interest = 1 << iota
	InterestWrite
	InterestException
)

// Slot is an opaque per-tick registration handle returned by Initialize
// and consumed by Test.
type Slot int

// Backend is the four-call interface every OS primitive implements. This
// package provides two: the poll(2) backend (NewPoll) and the degenerate
// timer-only stand-in (NewTimerOnly). The caller picks one when it builds
// the reactor; nothing is selected at build time.
type Backend interface {
	// Prepare resets per-iteration registration state. Must be called once
	// at the start of each reactor tick before any Initialize call.
	Prepare()

	// Initialize registers interest in fd's readiness and returns the slot
	// that Test will later consult. Called once per live function entry
	// per tick.
	Initialize(fd int, interest Interest) Slot

	// Await blocks until some registered slot is ready or timeoutMS
	// elapses (negative means wait forever). Returns whether anything
	// became ready.
	Await(timeoutMS int) (ready bool, err error)

	// Test reports whether slot's fd was ready after the most recent
	// Await call.
	Test(slot Slot) bool
}
