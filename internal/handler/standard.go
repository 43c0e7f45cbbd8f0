package handler

import (
	"github.com/garaekz/brld/internal/alert"
	"github.com/garaekz/brld/internal/routing"
	"github.com/garaekz/brld/internal/session"
)

// WindowSnapshot is what the standard pre-hook captures and the standard
// post-hook compares against to detect motion.
type WindowSnapshot struct {
	WinX, WinY int
}

// StandardEnvironment bundles the dependencies the default pre/post hook
// pair of spec §4.8 needs: the session entry it watches, a way to resume
// paused updates, a way to report motion, speech-tracking state, and an
// optional router to initiate MOTION_ROUTE commands.
type StandardEnvironment struct {
	Entry           *session.Entry
	Geometry        func() session.Geometry
	ResumeUpdates   func()
	ReportMotion    func(winx, winy int)
	SpeechTracking  func() bool
	DisableSpeechTracking func()
	Router          *routing.Supervisor
	ScreenCursor    func() (x, y int, visible bool)
	AlertSink       alert.Sink
}

// Pre returns the standard PreHook: a snapshot of winx/winy.
func (se *StandardEnvironment) Pre() any {
	return WindowSnapshot{WinX: se.Entry.WinX, WinY: se.Entry.WinY}
}

// Post returns the standard PostHook described in spec §4.8: resume
// updates; report motion and suppress one tick of contracted rendering if
// the window moved; unlink speech tracking if it was active; and initiate
// routing for MOTION_ROUTE commands that left the cursor outside the
// window.
func (se *StandardEnvironment) Post(state any, cmd Code, flags Flags, handled bool) {
	if se.ResumeUpdates != nil {
		se.ResumeUpdates()
	}

	snap, ok := state.(WindowSnapshot)
	moved := ok && (snap.WinX != se.Entry.WinX || snap.WinY != se.Entry.WinY)

	if moved {
		se.Entry.MotX, se.Entry.MotY = se.Entry.WinX, se.Entry.WinY
		se.Entry.Contracting = false
		if se.ReportMotion != nil {
			se.ReportMotion(se.Entry.WinX, se.Entry.WinY)
		}
		if se.SpeechTracking != nil && se.SpeechTracking() {
			if se.DisableSpeechTracking != nil {
				se.DisableSpeechTracking()
			}
			alert.Play(se.AlertSink, alert.CursorUnlinked)
		}
	}

	if flags&MotionRoute == 0 || se.Router == nil || se.ScreenCursor == nil {
		return
	}
	x, y, visible := se.ScreenCursor()
	if !visible {
		return
	}
	g := session.Geometry{}
	if se.Geometry != nil {
		g = se.Geometry()
	}
	if x >= se.Entry.WinX && x < se.Entry.WinX+g.TextCount && y == se.Entry.WinY {
		return
	}
	tx := clamp(x, se.Entry.WinX, se.Entry.WinX+g.TextCount-1)
	ty := se.Entry.WinY
	se.Router.RouteScreenCursor(tx, ty, se.Entry.Number)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
