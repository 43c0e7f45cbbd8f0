package handler

import "testing"

func TestDispatchInnermostHandlerWinsReversePushOrder(t *testing.T) {
	s := NewStack(nil)
	s.PushEnvironment("top", nil, nil)

	var order []string
	s.PushHandler("first", "", func(cmd Code, flags Flags, data any) bool {
		order = append(order, "first")
		return false
	}, nil)
	s.PushHandler("second", "", func(cmd Code, flags Flags, data any) bool {
		order = append(order, "second")
		return true
	}, nil)

	handled := s.Dispatch(1, 0, nil)
	if !handled {
		t.Fatalf("expected command to be handled")
	}
	if len(order) != 1 || order[0] != "second" {
		t.Fatalf("dispatch order = %v, want only [second] (most recently pushed first)", order)
	}
}

func TestUnhandledCommandFallsThrough(t *testing.T) {
	s := NewStack(nil)
	s.PushEnvironment("top", nil, nil)
	s.PushHandler("never", "", func(cmd Code, flags Flags, data any) bool { return false }, nil)

	if s.Dispatch(1, 0, nil) {
		t.Fatalf("expected unhandled command")
	}
}

// TestPushPopRoundTrip is the §8 round-trip law: push env, push handler,
// pop handler, pop env ⇒ dispatch state unchanged (empty stack → no
// handling possible, same as before the push).
func TestPushPopRoundTrip(t *testing.T) {
	s := NewStack(nil)
	before := s.Dispatch(1, 0, nil)

	s.PushEnvironment("e", nil, nil)
	s.PushHandler("h", "", func(cmd Code, flags Flags, data any) bool { return true }, nil)
	s.PopHandler()
	s.PopEnvironment()

	after := s.Dispatch(1, 0, nil)
	if before != after {
		t.Fatalf("dispatch state changed across push/pop round trip: before=%v after=%v", before, after)
	}
	if s.Depth() != 0 {
		t.Fatalf("Depth = %d, want 0 after round trip", s.Depth())
	}
}

func TestPreAndPostHooksRun(t *testing.T) {
	s := NewStack(nil)
	var preRan, postRan bool
	var postHandled bool

	s.PushEnvironment("e",
		func() any { preRan = true; return "snapshot" },
		func(state any, cmd Code, flags Flags, handled bool) {
			postRan = true
			postHandled = handled
			if state != "snapshot" {
				t.Fatalf("post-hook got state %v, want snapshot", state)
			}
		},
	)
	s.PushHandler("h", "", func(cmd Code, flags Flags, data any) bool { return true }, nil)

	s.Dispatch(5, 0, nil)

	if !preRan || !postRan {
		t.Fatalf("pre/post not both invoked: pre=%v post=%v", preRan, postRan)
	}
	if !postHandled {
		t.Fatalf("post-hook saw handled=false, want true")
	}
}
