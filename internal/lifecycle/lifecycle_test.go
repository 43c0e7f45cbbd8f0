package lifecycle

import (
	"testing"
	"time"

	"github.com/garaekz/brld/internal/iomon"
	"github.com/garaekz/brld/internal/reactor"
	"github.com/garaekz/brld/internal/routing"
)

func TestWaitContinuesAfterDuration(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	interrupter := NewInterrupter(react)

	start := time.Now()
	result := Wait(react, interrupter, 30*time.Millisecond, Conditions{})
	if result.Kind != Continue {
		t.Fatalf("Kind = %v, want Continue", result.Kind)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("returned too early: %v", time.Since(start))
	}
}

func TestWaitReturnsOnInterrupt(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	interrupter := NewInterrupter(react)

	go interrupter.Interrupt(123)

	result := Wait(react, interrupter, 2*time.Second, Conditions{})
	if result.Kind != Interrupted {
		t.Fatalf("Kind = %v, want Interrupted", result.Kind)
	}
	if result.Payload.(int) != 123 {
		t.Fatalf("Payload = %v, want 123", result.Payload)
	}
}

func TestWaitReturnsStopOnTermination(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	interrupter := NewInterrupter(react)
	tracker := NewTerminationTracker(2*time.Second, 3, nil)
	tracker.Signal(time.Now())

	result := Wait(react, interrupter, 2*time.Second, Conditions{Termination: tracker})
	if result.Kind != Stop {
		t.Fatalf("Kind = %v, want Stop", result.Kind)
	}
}

// TestTerminationDebouncing is scenario 6 from spec.md §8.
func TestTerminationDebouncing(t *testing.T) {
	aborted := 0
	tracker := NewTerminationTracker(2*time.Second, 3, func() { aborted++ })

	base := time.Now()
	tracker.Signal(base)
	if tracker.count != 1 {
		t.Fatalf("count = %d, want 1", tracker.count)
	}

	tracker.Signal(base.Add(1 * time.Second))
	if tracker.count != 2 {
		t.Fatalf("count = %d, want 2 (within reset window)", tracker.count)
	}
	if aborted != 0 {
		t.Fatalf("should not abort before crossing threshold")
	}

	tracker.Signal(base.Add(1500 * time.Millisecond))
	if tracker.count != 3 {
		t.Fatalf("count = %d, want 3", tracker.count)
	}

	tracker.Signal(base.Add(1700 * time.Millisecond))
	if aborted != 1 {
		t.Fatalf("aborted = %d, want 1 after crossing threshold", aborted)
	}

	// A signal after the reset window resets the count to 1.
	tracker.Signal(base.Add(5 * time.Second))
	if tracker.count != 1 {
		t.Fatalf("count = %d, want 1 after reset window elapsed", tracker.count)
	}
}

func TestWaitHandlesRoutingDoneInPlace(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	interrupter := NewInterrupter(react)

	sup := routing.New(react, nil, func() routing.ScreenPosition { return routing.ScreenPosition{} }, nil)
	sup.RouteScreenCursor(0, 0, 0)

	var observed routing.Status
	handled := false

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && !handled {
		Wait(react, interrupter, 20*time.Millisecond, Conditions{
			RoutingStatus: func() (routing.Status, bool) {
				s := sup.GetRoutingStatus(false)
				return s, s != routing.None
			},
			OnRoutingDone: func(s routing.Status) {
				observed = s
				handled = true
				sup.Reset()
			},
		})
	}

	if !handled {
		t.Fatalf("routing completion never observed")
	}
	if observed != routing.Done {
		t.Fatalf("observed = %v, want Done", observed)
	}
}
