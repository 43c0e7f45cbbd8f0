// Package display defines the narrow driver contracts of spec §6: the
// braille, speech, and screen driver interfaces the core calls through,
// plus the BrailleDisplay struct the core hands to a braille driver.
package display

// BrailleDisplay is the shared state a braille driver renders into and
// reports failure through.
type BrailleDisplay struct {
	TextColumns, TextRows     int
	StatusColumns, StatusRows int
	Cells                     []byte
	HasFailed                 bool
	IsSuspended               bool
	NoDisplay                 bool
}

// TextCount is how many of TextColumns are reserved for text rather than
// status cells.
func (b *BrailleDisplay) TextCount() int {
	return b.TextColumns - b.StatusColumns
}

// BrailleDriver is the contract a concrete hardware driver implements;
// the core only ever talks to this interface (spec §1 non-goals keep
// concrete drivers out of scope).
type BrailleDriver interface {
	Open(parameters map[string]string) error
	Close() error
	ReadCommand() (command int, ok bool)
	WriteWindow(brl *BrailleDisplay, text []byte) error
	WriteStatus(brl *BrailleDisplay, cells []byte) error
	SetFirmness(level int) error
}

// SpeechDriver is the contract a concrete speech synthesizer implements.
type SpeechDriver interface {
	Construct(parameters map[string]string) error
	Destruct() error
	Say(buffer []byte, count int, attributes []byte) error
	Mute() error
	SetVolume(level int) error
	SetRate(level int) error
}

// SpeechTracker is an optional capability a SpeechDriver may also provide:
// delivering the synthesizer's current position for speech-cursor
// tracking.
type SpeechTracker interface {
	Track() (speechLocation int, firstLine int, ok bool)
}

// ScreenDescription is what a screen driver reports about the active
// virtual terminal.
type ScreenDescription struct {
	Number      int
	Cols, Rows  int
	PosX, PosY  int
	CursorShown bool
}

// ScreenCell is one character cell: a rune plus its display attributes.
type ScreenCell struct {
	Char       rune
	Attributes byte
}

// ScreenDriver is the contract the out-of-scope screen-content transport
// implements.
type ScreenDriver interface {
	DescribeScreen() (ScreenDescription, error)
	ReadScreenRow(y, length int) ([]ScreenCell, error)
	UserVirtualTerminal() (int, error)
}
