package cursor

import (
	"testing"
	"time"

	"github.com/garaekz/brld/internal/iomon"
	"github.com/garaekz/brld/internal/reactor"
	"github.com/garaekz/brld/internal/session"
)

// TestDelayedTrackingArmsAndFires is scenario 4 from spec.md §8.
func TestDelayedTrackingArmsAndFires(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	updated := make(chan struct{}, 1)
	tr := New(react, func() { updated <- struct{}{} })

	g := session.Geometry{Cols: 80, Rows: 25, TextCount: 8, TextRows: 1}
	e := session.NewEntry(1)
	e.TrkX, e.TrkY = 5, 5
	e.WinX, e.WinY = 0, 0

	cfg := Config{CursorTrackingDelay: 2}

	// Cursor jumps to (40, 0), outside the window covering cols 0-7.
	handled := tr.Track(e, g, cfg, 40, 0, true, false)
	if !handled {
		t.Fatalf("expected Track to return true while delay pending")
	}
	if e.DctX != 5 || e.DctY != 5 {
		t.Fatalf("delayed point = (%d,%d), want (5,5)", e.DctX, e.DctY)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		react.HandleOperation(20)
		select {
		case <-updated:
			if e.TrkX != 5 || e.TrkY != 5 {
				t.Fatalf("after alarm fires TrkX/TrkY = (%d,%d), want (5,5)", e.TrkX, e.TrkY)
			}
			if e.DctX != -1 || e.DctY != -1 {
				t.Fatalf("delayed point not cleared: (%d,%d)", e.DctX, e.DctY)
			}
			return
		default:
		}
	}
	t.Fatalf("delayed-tracking alarm never fired")
}

func TestDelayedTrackingCancelsWhenCursorReturns(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	tr := New(react, nil)

	g := session.Geometry{Cols: 80, Rows: 25, TextCount: 8, TextRows: 1}
	e := session.NewEntry(1)
	e.TrkX, e.TrkY = 5, 5
	e.WinX, e.WinY = 0, 0

	cfg := Config{CursorTrackingDelay: 2}

	tr.Track(e, g, cfg, 40, 0, true, false)
	if e.DctX != 5 {
		t.Fatalf("delay not armed")
	}

	tr.Track(e, g, cfg, 5, 5, true, false)
	if e.DctX != -1 || e.DctY != -1 {
		t.Fatalf("delay not canceled on return to origin: (%d,%d)", e.DctX, e.DctY)
	}
}

func TestHiddenCursorNeverTracks(t *testing.T) {
	react := reactor.New(iomon.NewPoll())
	tr := New(react, nil)
	g := session.Geometry{Cols: 80, Rows: 25, TextCount: 40, TextRows: 1}
	e := session.NewEntry(1)

	if tr.Track(e, g, Config{}, 10, 10, false, true) {
		t.Fatalf("Track must return false when cursor is not visible")
	}
}
