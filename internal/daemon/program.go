package daemon

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/garaekz/brld/internal/alert"
	"github.com/garaekz/brld/internal/condrv"
	"github.com/garaekz/brld/internal/corelog"
	"github.com/garaekz/brld/internal/cursor"
	"github.com/garaekz/brld/internal/display"
	"github.com/garaekz/brld/internal/handler"
	"github.com/garaekz/brld/internal/iomon"
	"github.com/garaekz/brld/internal/lifecycle"
	"github.com/garaekz/brld/internal/prefs"
	"github.com/garaekz/brld/internal/reactor"
	"github.com/garaekz/brld/internal/routing"
	"github.com/garaekz/brld/internal/session"
	"github.com/garaekz/brld/internal/supervise"
	"github.com/garaekz/brld/internal/window"
)

// Config bundles the inputs main needs to build a Program.
type Config struct {
	Input       *os.File // usually os.Stdin
	Output      *os.File // usually os.Stdout
	Preferences prefs.Preferences
}

// Program owns every piece core.c's main loop threads through: the
// reactor, the one active session's window/cursor/handler state, the
// routing supervisor, the driver-restart supervisor, and the
// interrupt/termination plumbing of §4.10.
type Program struct {
	react       *reactor.Reactor
	driver      *condrv.Driver
	brl         *display.BrailleDisplay
	sessions    *session.Table
	entry       *session.Entry
	geometry    session.Geometry
	handlers    *handler.Stack
	cursorTrack *cursor.Tracker
	router      *routing.Supervisor
	supervisor  *supervise.Supervisor
	interrupter *lifecycle.Interrupter
	termination *lifecycle.TerminationTracker

	// prefs is read by anything that needs a user-tunable knob (cursor
	// delay, autorepeat, word wrap). The bundled console driver has no
	// speech synthesizer or braille firmness hardware to apply the
	// volume/rate/firmness fields to; a concrete driver would.
	prefs prefs.Preferences
}

// cursorConfig derives a cursor.Config from the current preferences, for
// callers driving cursor.Tracker.Track from a screen-content poll loop
// (out of scope here — no concrete screen transport is wired — but the
// derivation itself belongs with the rest of the preference wiring).
func (p *Program) cursorConfig() cursor.Config {
	wrapLength := 0
	if p.prefs.WordWrap {
		wrapLength = p.geometry.TextCount
	}
	return cursor.Config{
		CursorTrackingDelay:       int(p.prefs.CursorTrackingDelay),
		SlidingBrailleWindow:      p.prefs.SlidingBrailleWindow,
		EagerSlidingBrailleWindow: p.prefs.EagerSlidingBrailleWindow,
		WordWrapLength:            wrapLength,
		ContractedTracking:        p.prefs.ContractedBraille,
		Length:                    window.Identity,
	}
}

// New wires a Program from cfg. It does not open the driver or pump the
// reactor; call Open, then Run, for that.
func New(cfg Config) *Program {
	react := reactor.New(iomon.NewPoll())
	driver := condrv.NewDriver(cfg.Output, cfg.Input)
	brl := &display.BrailleDisplay{TextColumns: 40, StatusColumns: 0, TextRows: 1}

	sessions := session.NewTable()
	entry := sessions.Get(0)
	geometry := session.Geometry{
		Cols: 80, Rows: 25,
		TextColumns: brl.TextColumns, TextRows: brl.TextRows,
		TextCount: brl.TextCount(), StatusCount: brl.StatusColumns,
	}

	handlers := handler.NewStack(driver)

	p := &Program{
		react:    react,
		driver:   driver,
		brl:      brl,
		sessions: sessions,
		entry:    entry,
		geometry: geometry,
		handlers: handlers,
		prefs:    cfg.Preferences,
	}

	p.router = routing.New(react, p.routeSynthesizer, p.screenPosition, p.onRoutingDone)
	p.cursorTrack = cursor.New(react, p.onCursorUpdate)
	p.supervisor = supervise.New(driver, brl, nil)
	p.interrupter = lifecycle.NewInterrupter(react)
	p.termination = lifecycle.NewTerminationTracker(2*time.Second, 2, p.abort)

	se := &handler.StandardEnvironment{
		Entry:    entry,
		Geometry: func() session.Geometry { return p.geometry },
		ReportMotion: func(winx, winy int) {
			corelog.Debug("window moved to (%d,%d)", winx, winy)
		},
		SpeechTracking:        func() bool { return false },
		DisableSpeechTracking: func() {},
		Router:                p.router,
		ScreenCursor: func() (int, int, bool) {
			desc, err := p.driver.DescribeScreen()
			if err != nil {
				return 0, 0, false
			}
			return desc.PosX, desc.PosY, desc.CursorShown
		},
		AlertSink: driver,
	}
	p.handlers.PushEnvironment("standard", se.Pre, se.Post)
	p.handlers.PushHandler("core-commands", "default", p.dispatchCommand, nil)

	return p
}

// dispatchCommand implements the handful of core navigation commands the
// bundled console driver can produce: pan/line motion moves the window
// directly (spec §4.7), MOTION_ROUTE routes the screen cursor to the
// window's current column (handled by the standard post-hook, which runs
// after this handler regardless of whether it reports handled), and
// toggle-freeze flips whether the tracked cursor drives the window.
func (p *Program) dispatchCommand(cmd handler.Code, flags handler.Flags, data any) bool {
	switch cmd {
	case condrv.CmdPanLeft:
		window.MoveLeft(p.entry, p.geometry, p.geometry.TextCount)
		return true
	case condrv.CmdPanRight:
		window.MoveRight(p.entry, p.geometry, p.geometry.TextCount)
		return true
	case condrv.CmdLineUp:
		window.SlideVertically(p.entry, p.geometry, p.entry.WinY-1)
		return true
	case condrv.CmdLineDown:
		window.SlideVertically(p.entry, p.geometry, p.entry.WinY+1)
		return true
	case condrv.CmdToggleFreeze:
		p.entry.TrackScreenCursor = !p.entry.TrackScreenCursor
		return true
	case condrv.CmdRouteCursor:
		// Routing itself is initiated by the standard environment's
		// post-hook when it sees the MotionRoute flag; this handler
		// only needs to claim the command as handled.
		return flags&handler.MotionRoute != 0
	default:
		return false
	}
}

// routeSynthesizer stands in for the out-of-scope input-event transport
// (spec §1): it moves the bundled driver's reported cursor position
// directly rather than synthesizing a keyboard/mouse event.
func (p *Program) routeSynthesizer(x, y, screenNumber int) error {
	p.driver.SetContent(nil, x, y, true)
	return nil
}

func (p *Program) screenPosition() routing.ScreenPosition {
	desc, err := p.driver.DescribeScreen()
	if err != nil {
		return routing.ScreenPosition{}
	}
	return routing.ScreenPosition{Number: desc.Number, PosX: desc.PosX, PosY: desc.PosY}
}

func (p *Program) onRoutingDone(status routing.Status) {
	if status.IsFailure() {
		alert.Play(p.driver, alert.RoutingFailed)
	} else {
		alert.Play(p.driver, alert.RoutingSucceeded)
	}
	p.router.Reset()
}

func (p *Program) onCursorUpdate() {
	if err := p.driver.WriteWindow(p.brl, p.driver.RowText(p.entry.WinY, p.brl.TextCount())); err != nil {
		corelog.Error("write window failed: %v", err)
	}
}

func (p *Program) abort() {
	corelog.Warn("termination threshold exceeded, aborting")
	p.react.Stop()
}

// Open starts the driver and arms the console input monitor that feeds
// the handler stack.
func (p *Program) Open() error {
	if err := p.driver.Open(nil); err != nil {
		return fmt.Errorf("daemon: open driver: %w", err)
	}

	p.react.AsyncMonitorFileInput(p.driver.InputFile(), func() bool {
		cmd, flags, ok := p.driver.ReadCommandWithFlags()
		if !ok {
			return true
		}
		if cmd == condrv.CmdQuit {
			p.termination.Signal(time.Now())
			return true
		}
		p.handlers.Dispatch(cmd, flags, nil)
		return true
	})

	return nil
}

// Run pumps the reactor via lifecycle.Wait until termination is
// requested, mapping the outcome to an ExitCode.
func (p *Program) Run() ExitCode {
	cond := lifecycle.Conditions{
		Termination: p.termination,
		RoutingStatus: func() (routing.Status, bool) {
			s := p.router.GetRoutingStatus(false)
			if s == routing.None {
				return s, false
			}
			return s, true
		},
		OnRoutingDone: p.onRoutingDone,
		DriverFailed:  func() bool { return p.brl.HasFailed },
		OnDriverFailed: func() {
			ctx := context.Background()
			if err := p.supervisor.Restart(ctx, []supervise.Candidate{{Label: "default", Parameters: nil}}); err != nil {
				corelog.Error("driver restart failed: %v", err)
			}
		},
	}

	for {
		result := lifecycle.Wait(p.react, p.interrupter, 5*time.Second, cond)
		switch result.Kind {
		case lifecycle.Stop:
			return ProgExitSuccess
		case lifecycle.Interrupted:
			corelog.Info("interrupted: %v", result.Payload)
		case lifecycle.Continue:
			// idle tick, loop again
		}
		if p.termination.Requested() {
			return ProgExitSuccess
		}
	}
}

// Close releases the driver.
func (p *Program) Close() error {
	return p.driver.Close()
}
