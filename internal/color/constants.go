package color

import "github.com/garaekz/brld/internal/share"

// Re-export commonly used ANSI sequences for backward compatibility
var (
	Reset     = share.Reset
	Bold      = share.Bold
	Dim       = share.Dim
	Italic    = share.Italic
	Underline = share.Underline
	Blink     = share.Blink
	Reverse   = share.Reverse
	Strike    = share.Strike
)

// ANSISeq provides access to raw ANSI escape sequences
// Use this when you need direct terminal control
var ANSISeq = share.ANSISeq

// The old ANSI escape sequence color constants have been moved to
// share.ANSISeq. Example: share.ANSISeq.Blue() instead of Blue
//
// For the color API, use:
// - color.Material.Blue (for Material theme)