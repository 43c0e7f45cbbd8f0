// Package routing implements the routing supervisor of spec §4.9: driving
// a cursor-routing request to completion and surfacing a tri-state
// outcome (none / succeeded / failed), ordered by increasing severity.
package routing

import (
	"github.com/garaekz/brld/internal/reactor"
)

// Status is the routing outcome, ordered NONE < DONE < WRONG_COLUMN <
// WRONG_ROW < WRONG_SCREEN < FAILED. Values above DONE are failures of
// successively greater severity.
type Status int

const (
	None Status = iota
	Done
	WrongColumn
	WrongRow
	WrongScreen
	Failed
)

func (s Status) String() string {
	switch s {
	case None:
		return "none"
	case Done:
		return "done"
	case WrongColumn:
		return "wrong-column"
	case WrongRow:
		return "wrong-row"
	case WrongScreen:
		return "wrong-screen"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsFailure reports whether s is strictly more severe than Done.
func (s Status) IsFailure() bool { return s > Done }

// ScreenPosition is the subset of the screen driver's description needed to
// judge whether a route landed where it was aimed.
type ScreenPosition struct {
	Number   int
	PosX     int
	PosY     int
}

// Synthesizer moves the system cursor toward (x, y) on the given screen,
// the way the out-of-scope transport would (spec §1's "synthesizing input
// events"); it is the seam a concrete driver plugs into.
type Synthesizer func(x, y, screenNumber int) error

// Supervisor drives one route at a time on the reactor goroutine. A new
// RouteScreenCursor call supersedes any in-flight route, matching the
// source's single outstanding routing attempt.
type Supervisor struct {
	react       *reactor.Reactor
	synth       Synthesizer
	describe    func() ScreenPosition
	status      Status
	doneCh      chan struct{}
	alarm       *reactor.Alarm
	onCompleted func(Status)
}

// New returns a supervisor that synthesizes routes with synth and judges
// completion against describe (typically the screen driver's
// DescribeScreen). onCompleted, if non-nil, is called on the reactor
// goroutine once a route settles — the daemon passes a hook that plays
// the routing success/failure alert.
func New(react *reactor.Reactor, synth Synthesizer, describe func() ScreenPosition, onCompleted func(Status)) *Supervisor {
	return &Supervisor{react: react, synth: synth, describe: describe, onCompleted: onCompleted}
}

// RouteScreenCursor starts routing toward (x, y) on screenNumber. Routing
// completes asynchronously (one reactor alarm tick later, to give the
// synthesized input a chance to land) with a status derived by comparing
// the screen's reported position against the target afterward.
func (s *Supervisor) RouteScreenCursor(x, y, screenNumber int) bool {
	if s.alarm != nil {
		s.alarm.Cancel()
	}
	s.status = None
	s.doneCh = make(chan struct{})

	if s.synth != nil {
		if err := s.synth(x, y, screenNumber); err != nil {
			s.finish(Failed)
			return false
		}
	}

	s.alarm = s.react.NewRelativeAlarm(1, func() bool {
		s.finish(s.judge(x, y, screenNumber))
		return false
	})
	return true
}

func (s *Supervisor) judge(x, y, screenNumber int) Status {
	if s.describe == nil {
		return Done
	}
	pos := s.describe()
	switch {
	case pos.Number != screenNumber:
		return WrongScreen
	case pos.PosY != y:
		return WrongRow
	case pos.PosX != x:
		return WrongColumn
	default:
		return Done
	}
}

func (s *Supervisor) finish(status Status) {
	s.status = status
	if s.doneCh != nil {
		close(s.doneCh)
		s.doneCh = nil
	}
	if s.onCompleted != nil {
		s.onCompleted(status)
	}
}

// Reset clears the latest status back to None. lifecycle.Wait's
// OnRoutingDone hook calls this after acting on a completed route so that
// the next Wait tick does not re-observe the same completion forever.
func (s *Supervisor) Reset() {
	s.status = None
}

// GetRoutingStatus reports the latest known status. If wait is true and a
// route is in flight, it blocks on the route's completion channel until
// that route settles (the channel is closed on the reactor goroutine, so
// a wait made on that goroutine does not return); if false, it returns None
// immediately for a still-running route, matching "NONE if still running".
func (s *Supervisor) GetRoutingStatus(wait bool) Status {
	if !wait || s.doneCh == nil {
		return s.status
	}
	<-s.doneCh
	return s.status
}
