// Package condrv is the bundled reference console driver: not a concrete
// hardware braille driver (still out of scope per spec §1) but an
// in-process implementation of the exact display.BrailleDriver and
// display.ScreenDriver contracts, so the reactor/window/cursor/handler
// stack can be exercised end-to-end without real hardware.
package condrv

import "github.com/garaekz/brld/internal/handler"

// Command codes the console driver's key decoder can produce. A real
// driver would load these from a key-table file (out of scope per §1);
// the bundled driver hardcodes one fixed layout.
const (
	CmdNone handler.Code = iota
	CmdPanLeft
	CmdPanRight
	CmdLineUp
	CmdLineDown
	CmdRouteCursor
	CmdToggleFreeze
	CmdQuit
)
