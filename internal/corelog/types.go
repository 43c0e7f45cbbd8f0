package corelog

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/garaekz/brld/internal/color"
	"github.com/garaekz/brld/internal/share"
)

// Level, Format, BadgeStyle, Fields, Entry, CallerInfo, Formatter, and
// Writer are aliased directly to internal/share's definitions. The console
// and file writers in internal/iowriter are built against share's types;
// aliasing here (rather than declaring a parallel set) is what lets
// logger.AddWriter take those writers without a conversion shim at the
// call site.
type (
	Level      = share.Level
	Format     = share.Format
	BadgeStyle = share.BadgeStyle
	Fields     = share.Fields
	Entry      = share.Entry
	CallerInfo = share.CallerInfo
	Formatter  = share.Formatter
	Writer     = share.Writer
)

const (
	LevelTrace   = share.LevelTrace
	LevelDebug   = share.LevelDebug
	LevelInfo    = share.LevelInfo
	LevelSuccess = share.LevelSuccess
	LevelWarn    = share.LevelWarn
	LevelError   = share.LevelError
	LevelFatal   = share.LevelFatal
	LevelPanic   = share.LevelPanic

	FormatBadge  = share.FormatBadge
	FormatJSON   = share.FormatJSON
	FormatText   = share.FormatText
	FormatCustom = share.FormatCustom

	BadgeStyleDefault  = share.BadgeStyleDefault
	BadgeStyleModern   = share.BadgeStyleModern
	BadgeStyleClassic  = share.BadgeStyleClassic
	BadgeStyleMinimal  = share.BadgeStyleMinimal
	BadgeStyleEmoji    = share.BadgeStyleEmoji
	BadgeStyleIcon     = share.BadgeStyleIcon
	BadgeStyleGradient = share.BadgeStyleGradient
	BadgeStyleNeon     = share.BadgeStyleNeon
)

// ParseLevel parses a level name case-insensitively, for a --log-level
// flag or config value.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "success":
		return LevelSuccess, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "fatal":
		return LevelFatal, true
	case "panic":
		return LevelPanic, true
	default:
		return 0, false
	}
}

// Hook can inspect or rewrite an entry before it reaches its writers.
type Hook func(entry *Entry) *Entry

// Options represents logger configuration
type Options struct {
	// Output settings
	Output     io.Writer
	Level      Level
	Format     Format
	Timestamp  bool
	TimeFormat string

	// Color settings
	ColorMode    color.Mode
	Theme        color.ColorTheme
	ForceColor   bool
	DisableColor bool

	// Badge settings
	BadgeWidth  int
	BadgeStyle  BadgeStyle
	ShowCaller  bool
	CallerDepth int

	// File output
	LogFile     string
	FileLevel   Level
	MaxFileSize int64
	MaxBackups  int
	MaxAge      int

	// Custom formatter
	CustomFormatter Formatter
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Level:       LevelInfo,
		Format:      FormatBadge,
		Timestamp:   false,
		TimeFormat:  "15:04:05",
		ColorMode:   color.ModeANSI,
		Theme:       color.DefaultTheme,
		BadgeWidth:  5,
		BadgeStyle:  BadgeStyleDefault,
		ShowCaller:  false,
		CallerDepth: 3,
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  3,
		MaxAge:      30, // days
	}
}

// Context represents a logging context with fields
type Context struct {
	logger *Logger
	fields map[string]interface{}
	ctx    context.Context
}

// Logger represents the main logger instance
type Logger struct {
	options Options
	writers []Writer
	hooks   []Hook
	mu      sync.RWMutex
	ctx     context.Context
}

// Progress represents a progress bar state
type Progress struct {
	current int
	total   int
	message string
	width   int
	style   ProgressStyle
}

// ProgressStyle represents different progress bar styles
type ProgressStyle int

const (
	ProgressStyleBar    ProgressStyle = iota // [████████░░░░] 75%
	ProgressStyleDots                        // ••••••••···· 75%
	ProgressStyleArrows                      // >>>>>>>>>--- 75%
	ProgressStyleCustom                      // User-defined
)

// Spinner represents a loading spinner state
type Spinner struct {
	message string
	frames  []string
	index   int
	running bool
	done    chan bool
}
