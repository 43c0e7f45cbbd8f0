// Package session implements the per-virtual-terminal session table of
// spec §3/§4.6: one entry per screen number, cached indefinitely, carrying
// the braille window's top-left corner, last motion position, speech/
// review cursor, and tracked-cursor coordinates (including the delayed-
// tracking point).
package session

// Geometry describes the screen and braille display dimensions a session's
// coordinates are clamped against.
type Geometry struct {
	Cols, Rows               int
	TextColumns, TextRows    int
	TextCount, StatusCount   int
}

// Entry is one session's persisted view state.
type Entry struct {
	Number int

	WinX, WinY int
	MotX, MotY int
	SpkX, SpkY int
	TrkX, TrkY int

	// DctX/DctY hold the delayed-tracking point; -1 means no delay is
	// pending (see cursor.Track).
	DctX, DctY int

	TrackScreenCursor bool
	HideScreenCursor  bool
	Contracting       bool
}

// NewEntry returns a freshly created session entry with delayed-tracking
// coordinates cleared and screen-cursor tracking on by default.
func NewEntry(number int) *Entry {
	return &Entry{
		Number:            number,
		DctX:              -1,
		DctY:              -1,
		TrackScreenCursor: true,
	}
}

// Table caches one Entry per screen number, created on first encounter.
type Table struct {
	entries map[int]*Entry
}

// NewTable returns an empty session table.
func NewTable() *Table {
	return &Table{entries: make(map[int]*Entry)}
}

// Get returns the entry for number, creating it if this is the first
// encounter of that screen.
func (t *Table) Get(number int) *Entry {
	if e, ok := t.entries[number]; ok {
		return e
	}
	e := NewEntry(number)
	t.entries[number] = e
	return e
}

// Len reports how many sessions are cached.
func (t *Table) Len() int { return len(t.entries) }

func clampMax(v, max int) int {
	if max < 0 {
		max = 0
	}
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// UpdateAttributes clamps e's window and motion coordinates to g's bounds,
// maintaining the invariants of spec §8: winx ∈ [0, max(cols-1,0)],
// winy ∈ [0, max(rows-textRows,0)], and likewise for motx/moty.
func UpdateAttributes(e *Entry, g Geometry) {
	e.WinX = clampMax(e.WinX, max0(g.Cols-1))
	e.WinY = clampMax(e.WinY, max0(g.Rows-g.TextRows))
	e.MotX = clampMax(e.MotX, max0(g.Cols-1))
	e.MotY = clampMax(e.MotY, max0(g.Rows-g.TextRows))
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
