// Package window implements braille window placement (spec §4.6): deciding
// which rectangle of the screen maps onto the braille cells, sliding vs
// paging, word wrap, and right-edge placement for contracted braille.
package window

import "github.com/garaekz/brld/internal/session"

// ContractedLength reports how many screen columns the next contracted
// braille cell run covers starting at the window's left edge. The
// contraction-table engine itself is out of scope (spec §1 non-goals);
// callers without one wire in Identity, which treats every cell as
// one column (no compression), keeping right-edge placement and shifts
// well-defined even with contraction disabled.
type ContractedLength func(textCount int) int

// Identity is the degenerate ContractedLength used when contraction is
// unavailable: one screen column per cell.
func Identity(textCount int) int { return textCount }

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

func maxWinX(g session.Geometry) int {
	if g.Cols-1 < 0 {
		return 0
	}
	return g.Cols - 1
}

// PlaceHorizontally implements placeBrailleWindowHorizontally(x).
func PlaceHorizontally(e *session.Entry, g session.Geometry, x int, sliding bool) {
	if g.TextCount <= 0 {
		return
	}
	if sliding {
		e.WinX = clamp(x-g.TextCount/2, 0, maxWinX(g))
		return
	}
	e.WinX = clamp((x/g.TextCount)*g.TextCount, 0, maxWinX(g))
}

// PlaceRightEdge implements the right-edge placement rule used when a
// routing or boundary command targets a specific column: page-aligned
// when not contracting, cell-run-aligned when contracting.
func PlaceRightEdge(e *session.Entry, g session.Geometry, col int, contracting bool, length ContractedLength) {
	if g.TextCount <= 0 {
		return
	}
	if !contracting {
		e.WinX = clamp((col/g.TextCount)*g.TextCount, 0, maxWinX(g))
		return
	}
	if length == nil {
		length = Identity
	}
	winx := 0
	for {
		step := length(g.TextCount)
		if step <= 0 {
			break
		}
		next := winx + step
		if next > col || next == winx {
			break
		}
		winx = next
	}
	e.WinX = clamp(winx, 0, maxWinX(g))
}

// SlideVertically implements slideBrailleWindowVertically(y).
func SlideVertically(e *session.Entry, g session.Geometry, y int) {
	if y < e.WinY {
		e.WinY = y
	} else if y >= e.WinY+g.TextRows {
		e.WinY = y - (g.TextRows - 1)
	}
	if e.WinY < 0 {
		e.WinY = 0
	}
}

func isWordBreak(ch byte, cursorCol, col int) bool {
	return (ch == ' ' || ch == '\t') && col != cursorCol
}

// ShiftRight moves winx forward by one logical unit: a contracted cell run
// when contracting, a word-wrap-respecting span otherwise, else textCount
// raw columns. row is the screen row's characters for word-wrap scanning;
// cursorCol excludes the cursor's own column from being treated as a break.
func ShiftRight(e *session.Entry, g session.Geometry, row []byte, cursorCol int, contracting, wordWrap bool, length ContractedLength) {
	if g.TextCount <= 0 {
		return
	}
	switch {
	case contracting:
		if length == nil {
			length = Identity
		}
		e.WinX = clamp(e.WinX+length(g.TextCount), 0, maxWinX(g))
	case wordWrap:
		end := e.WinX + g.TextCount
		target := end
		if end < len(row) {
			// Back up from the window end to the last word break inside the
			// window, then consume the whitespace run that follows it. A
			// window holding no break shifts by the full textCount.
			i := end
			for i > e.WinX && !isWordBreak(row[i], cursorCol, i) {
				i--
			}
			if i > e.WinX {
				for i < len(row) && isWordBreak(row[i], cursorCol, i) {
					i++
				}
				target = i
			}
		}
		e.WinX = clamp(target, 0, maxWinX(g))
	default:
		e.WinX = clamp(e.WinX+g.TextCount, 0, maxWinX(g))
	}
}

// ShiftLeft is ShiftRight's mirror: back up to the previous word break then
// skip leading whitespace, when word wrap is enabled.
func ShiftLeft(e *session.Entry, g session.Geometry, row []byte, cursorCol int, contracting, wordWrap bool, length ContractedLength) {
	if g.TextCount <= 0 {
		return
	}
	switch {
	case contracting:
		if length == nil {
			length = Identity
		}
		e.WinX = clamp(e.WinX-length(g.TextCount), 0, maxWinX(g))
	case wordWrap:
		target := e.WinX - g.TextCount
		if target < 0 {
			target = 0
		}
		i := target
		for i > 0 && i-1 < len(row) && !isWordBreak(row[i-1], cursorCol, i-1) {
			i--
		}
		for i < len(row) && isWordBreak(row[i], cursorCol, i) {
			i++
		}
		e.WinX = clamp(i, 0, maxWinX(g))
	default:
		e.WinX = clamp(e.WinX-g.TextCount, 0, maxWinX(g))
	}
}

// MoveRight/MoveLeft adjust winx by a raw amount with bounds checks.
func MoveRight(e *session.Entry, g session.Geometry, amount int) {
	e.WinX = clamp(e.WinX+amount, 0, maxWinX(g))
}

func MoveLeft(e *session.Entry, g session.Geometry, amount int) {
	e.WinX = clamp(e.WinX-amount, 0, maxWinX(g))
}
