// Package lifecycle implements interrupt and termination handling from
// spec §4.10: brlttyWait's multi-condition sleep, and the repeated-signal
// debounce counter that escalates graceful shutdown into an immediate
// abort.
package lifecycle

import (
	"time"

	"github.com/garaekz/brld/internal/reactor"
	"github.com/garaekz/brld/internal/routing"
)

// Kind classifies the outcome of a Wait call.
type Kind int

const (
	Continue Kind = iota
	Stop
	Interrupted
)

// Result is what Wait returns.
type Result struct {
	Kind    Kind
	Payload any
}

// Interrupter lets any goroutine wake a blocked Wait with a payload,
// delivered through the reactor's cross-thread event surface (§5) rather
// than a raw condition variable.
type Interrupter struct {
	ev      *reactor.Event
	pending *any
}

// NewInterrupter registers the interrupt event on react.
func NewInterrupter(react *reactor.Reactor) *Interrupter {
	i := &Interrupter{}
	i.ev = react.NewEvent(func(payload any) {
		i.pending = &payload
	})
	return i
}

// Interrupt posts payload, to be observed by the next Wait call.
func (i *Interrupter) Interrupt(payload any) {
	i.ev.Signal(payload)
}

func (i *Interrupter) take() (any, bool) {
	if i.pending == nil {
		return nil, false
	}
	v := *i.pending
	i.pending = nil
	return v, true
}

// TerminationTracker counts termination signals arriving within a reset
// window; crossing threshold aborts immediately instead of waiting for
// graceful shutdown to be observed.
type TerminationTracker struct {
	count       int
	lastAt      time.Time
	resetWindow time.Duration
	threshold   int
	requested   bool
	abort       func()
}

// NewTerminationTracker returns a tracker that aborts via abort once more
// than threshold signals arrive within resetWindow of each other.
func NewTerminationTracker(resetWindow time.Duration, threshold int, abort func()) *TerminationTracker {
	return &TerminationTracker{resetWindow: resetWindow, threshold: threshold, abort: abort}
}

// Signal records one termination signal. Must be called on the reactor
// goroutine (route raw OS signal delivery through a reactor Event, the
// same self-pipe-style handoff used everywhere else in §5).
func (t *TerminationTracker) Signal(now time.Time) {
	if t.lastAt.IsZero() || now.Sub(t.lastAt) > t.resetWindow {
		t.count = 1
	} else {
		t.count++
	}
	t.lastAt = now
	t.requested = true

	if t.count > t.threshold {
		if t.abort != nil {
			t.abort()
		}
	}
}

// Requested reports whether graceful termination has been asked for.
func (t *TerminationTracker) Requested() bool { return t.requested }

// Conditions bundles the predicates brlttyWait polls each tick.
type Conditions struct {
	Termination *TerminationTracker
	// RoutingStatus reports the latest completed route, if any is
	// pending observation. OnRoutingDone must consume it (routing.
	// Supervisor.Reset) so the next tick does not re-observe the same
	// completion forever.
	RoutingStatus  func() (routing.Status, bool)
	OnRoutingDone  func(routing.Status)
	DriverFailed   func() bool
	OnDriverFailed func()
}

// Wait runs brlttyWait(duration): it pumps the reactor until an interrupt
// arrives, termination is requested, a routing status becomes available
// (handled in place, does not return to caller), a braille driver reports
// failure (restarted in place), or duration elapses.
func Wait(react *reactor.Reactor, interrupter *Interrupter, duration time.Duration, cond Conditions) Result {
	deadline := time.Now().Add(duration)
	for {
		if payload, ok := interrupter.take(); ok {
			return Result{Kind: Interrupted, Payload: payload}
		}
		if cond.Termination != nil && cond.Termination.Requested() {
			return Result{Kind: Stop}
		}
		if cond.RoutingStatus != nil {
			if status, ready := cond.RoutingStatus(); ready {
				if cond.OnRoutingDone != nil {
					cond.OnRoutingDone(status)
				}
				continue
			}
		}
		if cond.DriverFailed != nil && cond.DriverFailed() {
			if cond.OnDriverFailed != nil {
				cond.OnDriverFailed()
			}
			continue
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Result{Kind: Continue}
		}
		react.HandleOperation(int(remaining.Milliseconds()))
	}
}
