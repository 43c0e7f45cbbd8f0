package condrv

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/garaekz/brld/internal/handler"
)

// KeyDecoder turns raw bytes read from the console driver's input stream
// into command codes, the way a hardware driver's readCommand would turn
// button presses into command codes. Adapted from a terminal key-event
// reader: arrow keys pan/scroll the braille window, Enter routes the
// cursor to the current column, 'f' toggles freeze, Ctrl+C/q quit.
type KeyDecoder struct {
	r *bufio.Reader
}

// NewKeyDecoder wraps r for command decoding.
func NewKeyDecoder(r *bufio.Reader) *KeyDecoder {
	return &KeyDecoder{r: r}
}

// Next blocks for one byte sequence and returns the command it decodes to,
// along with any MotionRoute-style flags. ok is false at EOF.
func (d *KeyDecoder) Next() (cmd handler.Code, flags handler.Flags, ok bool) {
	b, err := d.r.ReadByte()
	if err != nil {
		return CmdNone, 0, false
	}

	if b == 27 {
		next, err := d.r.Peek(1)
		if err != nil || len(next) == 0 {
			return CmdNone, 0, true
		}
		if next[0] == '[' {
			d.r.ReadByte()
			return d.decodeCSI()
		}
		return CmdNone, 0, true
	}

	switch b {
	case 3, 'q', 'Q':
		return CmdQuit, 0, true
	case '\r', '\n':
		return CmdRouteCursor, handler.MotionRoute, true
	case 'f', 'F':
		return CmdToggleFreeze, 0, true
	default:
		return CmdNone, 0, true
	}
}

func (d *KeyDecoder) decodeCSI() (handler.Code, handler.Flags, bool) {
	seq := []byte{}
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return CmdNone, 0, false
		}
		seq = append(seq, b)
		if (b >= 'A' && b <= 'Z') || b == '~' {
			break
		}
	}

	s := string(seq)
	switch s {
	case "D":
		return CmdPanLeft, 0, true
	case "C":
		return CmdPanRight, 0, true
	case "A":
		return CmdLineUp, 0, true
	case "B":
		return CmdLineDown, 0, true
	}

	if strings.Contains(s, ";") {
		parts := strings.Split(s, ";")
		if len(parts) == 2 && len(parts[1]) >= 1 {
			if _, err := strconv.Atoi(parts[1][:1]); err == nil {
				last := parts[1][len(parts[1])-1:]
				switch last {
				case "D":
					return CmdPanLeft, 0, true
				case "C":
					return CmdPanRight, 0, true
				case "A":
					return CmdLineUp, 0, true
				case "B":
					return CmdLineDown, 0, true
				}
			}
		}
	}

	return CmdNone, 0, true
}
