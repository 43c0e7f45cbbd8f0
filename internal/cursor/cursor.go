// Package cursor implements the cursor tracker of spec §4.7: moving the
// braille window to follow the system cursor, with optional delayed
// tracking to suppress spurious jitter.
package cursor

import (
	"github.com/garaekz/brld/internal/reactor"
	"github.com/garaekz/brld/internal/session"
	"github.com/garaekz/brld/internal/window"
)

// Config bundles the tracking preferences consulted on every Track call.
type Config struct {
	CursorTrackingDelay       int // 0-7; 0 disables delayed tracking
	SlidingBrailleWindow      bool
	EagerSlidingBrailleWindow bool
	WordWrapLength            int // 0 disables word-wrap adjustment
	ContractedTracking        bool
	Length                    window.ContractedLength
}

// Tracker arms the delayed-tracking alarm via a reactor and calls onUpdate
// when the alarm fires and the window needs a redraw.
type Tracker struct {
	react    *reactor.Reactor
	onUpdate func()
	alarms   map[int]*reactor.Alarm // keyed by session number
}

// New returns a tracker driving its delayed-tracking alarms through react.
// onUpdate is called whenever a delayed alarm fires and finally applies the
// tracked position.
func New(react *reactor.Reactor, onUpdate func()) *Tracker {
	return &Tracker{react: react, onUpdate: onUpdate, alarms: make(map[int]*reactor.Alarm)}
}

// Track implements the §4.7 algorithm. posx/posy is the current screen
// cursor; cursorVisible mirrors scr.cursor; place is set when the caller
// explicitly requested "jump to cursor now" (e.g. after a routing
// command) rather than this being the steady-state per-update call.
func (t *Tracker) Track(e *session.Entry, g session.Geometry, cfg Config, posx, posy int, cursorVisible, place bool) bool {
	if !cursorVisible {
		return false
	}

	if place {
		t.cancelDelay(e)
	} else if e.DctX >= 0 {
		if posx == e.DctX && posy == e.DctY {
			t.cancelDelay(e)
			return true
		}
		return true
	}

	if cfg.CursorTrackingDelay > 0 && e.DctX < 0 && outsideWindow(e, g, e.TrkX, e.TrkY) {
		e.DctX, e.DctY = e.TrkX, e.TrkY
		ms := 250 << (cfg.CursorTrackingDelay - 1)
		sessionNumber := e.Number
		t.alarms[sessionNumber] = t.react.NewRelativeAlarm(ms, func() bool {
			e.TrkX, e.TrkY = e.DctX, e.DctY
			e.DctX, e.DctY = -1, -1
			delete(t.alarms, sessionNumber)
			if t.onUpdate != nil {
				t.onUpdate()
			}
			return false
		})
		return true
	}

	e.TrkX, e.TrkY = posx, posy

	if cfg.ContractedTracking {
		e.WinY = posy
		if posx < e.WinX {
			scanBackToWordBoundary(e, g, posx)
		}
	} else {
		if place && outsideWindow(e, g, posx, posy) {
			window.PlaceHorizontally(e, g, posx, cfg.SlidingBrailleWindow)
		}

		if cfg.SlidingBrailleWindow {
			trigger := 0
			if cfg.EagerSlidingBrailleWindow {
				trigger = g.TextCount * 3 / 20
			}
			reset := g.TextCount * 3 / 10
			if posx < e.WinX+trigger {
				e.WinX = max0(posx - reset)
			} else if posx >= e.WinX+g.TextCount-trigger {
				e.WinX = max0(min(posx+reset+1, g.Cols) - g.TextCount)
			}
		} else if g.TextCount > 0 {
			for posx < e.WinX {
				e.WinX -= g.TextCount
			}
			for posx >= e.WinX+g.TextCount {
				e.WinX += g.TextCount
			}
			if e.WinX < 0 {
				e.WinX = 0
			}
		}

		if cfg.WordWrapLength > 0 && posx >= e.WinX+cfg.WordWrapLength {
			e.WinX += ((posx - e.WinX) / cfg.WordWrapLength) * cfg.WordWrapLength
		}
	}

	window.SlideVertically(e, g, posy)
	return true
}

func (t *Tracker) cancelDelay(e *session.Entry) {
	if a, ok := t.alarms[e.Number]; ok {
		a.Cancel()
		delete(t.alarms, e.Number)
	}
	e.DctX, e.DctY = -1, -1
}

func outsideWindow(e *session.Entry, g session.Geometry, x, y int) bool {
	return x < e.WinX || x >= e.WinX+g.TextCount || y != e.WinY
}

func scanBackToWordBoundary(e *session.Entry, g session.Geometry, x int) {
	if g.TextCount <= 0 {
		return
	}
	e.WinX = (x / g.TextCount) * g.TextCount
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
