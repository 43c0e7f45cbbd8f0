package condrv

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/garaekz/brld/internal/alert"
	"github.com/garaekz/brld/internal/display"
	"github.com/garaekz/brld/internal/handler"
	"github.com/garaekz/brld/internal/iowriter"
	"github.com/garaekz/brld/internal/termio"
)

// Driver is the bundled console stand-in for both a braille and a screen
// driver: it renders the cell buffer as plain text to a terminal writer
// and feeds decoded key presses as command codes.
type Driver struct {
	term    *iowriter.TerminalWriter
	in      *os.File
	decoder *KeyDecoder

	cols, rows int
	posX, posY int
	cursor     bool
	content    [][]byte

	lastAlert string
}

// NewDriver builds a console driver writing to out (normally os.Stdout)
// and reading key presses from in (normally os.Stdin).
func NewDriver(out io.Writer, in *os.File) *Driver {
	return &Driver{
		term:    iowriter.NewTerminalWriter(out, iowriter.TerminalOptions{DoubleBuffer: true}),
		in:      in,
		decoder: NewKeyDecoder(bufio.NewReader(in)),
	}
}

// Open implements display.BrailleDriver. parameters is unused by the
// bundled driver (no concrete transport to configure).
func (d *Driver) Open(parameters map[string]string) error {
	if termio.IsTerminal(d.in) {
		if _, err := termio.MakeRaw(d.in.Fd()); err != nil {
			return fmt.Errorf("condrv: enable raw mode: %w", err)
		}
	}
	cols, rows, err := termio.GetSize()
	if err != nil {
		cols, rows = 80, 25
	}
	d.cols, d.rows = cols, rows
	return nil
}

// Close implements display.BrailleDriver.
func (d *Driver) Close() error {
	return nil
}

// ReadCommand implements display.BrailleDriver by decoding one key press.
func (d *Driver) ReadCommand() (int, bool) {
	cmd, _, ok := d.decoder.Next()
	return int(cmd), ok
}

// ReadCommandWithFlags is the richer form the handler stack needs (the
// display.BrailleDriver contract's ReadCommand only returns an int, per
// spec §6; the flag carried alongside MOTION_ROUTE commands is an
// extension condrv needs internally and callers outside the narrow
// contract may use directly).
func (d *Driver) ReadCommandWithFlags() (handler.Code, handler.Flags, bool) {
	return d.decoder.Next()
}

// WriteWindow implements display.BrailleDriver: render text as-is to the
// terminal at the text-cell region.
func (d *Driver) WriteWindow(brl *display.BrailleDisplay, text []byte) error {
	_, err := d.term.Write(append(text, '\n'))
	return err
}

// WriteStatus implements display.BrailleDriver: render status cells as a
// bracketed prefix.
func (d *Driver) WriteStatus(brl *display.BrailleDisplay, cells []byte) error {
	_, err := fmt.Fprintf(d.term, "[%s] ", string(cells))
	return err
}

// SetFirmness implements display.BrailleDriver as a no-op (no physical
// cells to tension).
func (d *Driver) SetFirmness(level int) error { return nil }

// Alert implements alert.Sink by printing the cue's message.
func (d *Driver) Alert(e alert.Entry) {
	d.lastAlert = e.Message
	fmt.Fprintf(d.term, "\a(%s)\n", e.Message)
}

// LastAlert returns the most recently played alert message, for tests.
func (d *Driver) LastAlert() string { return d.lastAlert }

// InputFile exposes the underlying input stream so a caller can register
// it with a reactor's monitor directly (the bundled driver has no
// asynchronous notification of its own to offer).
func (d *Driver) InputFile() *os.File { return d.in }

// SetContent feeds the screen content the console driver reports through
// DescribeScreen/ReadScreenRow — a stand-in for the out-of-scope screen
// transport (spec §1 non-goals).
func (d *Driver) SetContent(rows []string, cursorX, cursorY int, cursorVisible bool) {
	d.content = make([][]byte, len(rows))
	for i, r := range rows {
		d.content[i] = []byte(r)
	}
	if len(rows) > 0 {
		d.rows = len(rows)
	}
	d.posX, d.posY = cursorX, cursorY
	d.cursor = cursorVisible
}

// DescribeScreen implements display.ScreenDriver.
func (d *Driver) DescribeScreen() (display.ScreenDescription, error) {
	return display.ScreenDescription{
		Number:      0,
		Cols:        d.cols,
		Rows:        d.rows,
		PosX:        d.posX,
		PosY:        d.posY,
		CursorShown: d.cursor,
	}, nil
}

// ReadScreenRow implements display.ScreenDriver.
func (d *Driver) ReadScreenRow(y, length int) ([]display.ScreenCell, error) {
	if y < 0 || y >= len(d.content) {
		return make([]display.ScreenCell, length), nil
	}
	row := d.content[y]
	out := make([]display.ScreenCell, length)
	for i := range out {
		if i < len(row) {
			out[i] = display.ScreenCell{Char: rune(row[i])}
		} else {
			out[i] = display.ScreenCell{Char: ' '}
		}
	}
	return out, nil
}

// UserVirtualTerminal implements display.ScreenDriver: the bundled driver
// has exactly one virtual terminal.
func (d *Driver) UserVirtualTerminal() (int, error) { return 0, nil }

// RowText returns row y of the current content as a string, clamped to
// [0,length), for window placement/word-wrap callers.
func (d *Driver) RowText(y, length int) []byte {
	if y < 0 || y >= len(d.content) {
		return make([]byte, length)
	}
	row := d.content[y]
	if len(row) > length {
		return row[:length]
	}
	padded := make([]byte, length)
	copy(padded, row)
	for i := len(row); i < length; i++ {
		padded[i] = ' '
	}
	return padded
}
