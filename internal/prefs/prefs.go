// Package prefs implements the persisted preferences record: a binary,
// versioned blob under the writable state directory (spec §6 "Persisted
// state"). The layout mirrors BRLTTY's prefs.dat concept: a fixed-size
// struct, not a self-describing format, so encoding/binary is used
// rather than a markup library (see the module's DESIGN.md).
package prefs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// CurrentVersion is the schema version this package writes. Readers
// reject any other version rather than guess at a migration.
const CurrentVersion uint16 = 1

// Preferences is the full persisted preferences record.
type Preferences struct {
	Version uint16

	CursorTrackingDelay       uint8 // 0-7
	SlidingBrailleWindow      bool
	EagerSlidingBrailleWindow bool
	WordWrap                  bool
	Autorepeat                bool
	ContractedBraille         bool

	SpeechVolume uint8 // 0-100
	SpeechRate   uint8 // 0-100
	AlertVolume  uint8 // 0-100
}

// Default returns the preference set a fresh installation starts from,
// matching BRLTTY's documented defaults.
func Default() Preferences {
	return Preferences{
		Version:                   CurrentVersion,
		CursorTrackingDelay:       0,
		SlidingBrailleWindow:      true,
		EagerSlidingBrailleWindow: false,
		WordWrap:                  false,
		Autorepeat:                true,
		ContractedBraille:         false,
		SpeechVolume:              70,
		SpeechRate:                50,
		AlertVolume:               70,
	}
}

// wireLayout is the on-disk representation: fixed-width fields only, so
// its binary.Size is constant across platforms.
type wireLayout struct {
	Version uint16
	Flags   uint8 // bit0 sliding, bit1 eager sliding, bit2 wordwrap, bit3 autorepeat, bit4 contracted
	Delay   uint8
	Volume  uint8
	Rate    uint8
	Alert   uint8
}

const (
	flagSliding = 1 << iota
	flagEagerSliding
	flagWordWrap
	flagAutorepeat
	flagContracted
)

func (p Preferences) toWire() wireLayout {
	var flags uint8
	if p.SlidingBrailleWindow {
		flags |= flagSliding
	}
	if p.EagerSlidingBrailleWindow {
		flags |= flagEagerSliding
	}
	if p.WordWrap {
		flags |= flagWordWrap
	}
	if p.Autorepeat {
		flags |= flagAutorepeat
	}
	if p.ContractedBraille {
		flags |= flagContracted
	}
	return wireLayout{
		Version: p.Version,
		Flags:   flags,
		Delay:   p.CursorTrackingDelay,
		Volume:  p.SpeechVolume,
		Rate:    p.SpeechRate,
		Alert:   p.AlertVolume,
	}
}

func fromWire(w wireLayout) Preferences {
	return Preferences{
		Version:                   w.Version,
		SlidingBrailleWindow:      w.Flags&flagSliding != 0,
		EagerSlidingBrailleWindow: w.Flags&flagEagerSliding != 0,
		WordWrap:                  w.Flags&flagWordWrap != 0,
		Autorepeat:                w.Flags&flagAutorepeat != 0,
		ContractedBraille:         w.Flags&flagContracted != 0,
		CursorTrackingDelay:       w.Delay,
		SpeechVolume:              w.Volume,
		SpeechRate:                w.Rate,
		AlertVolume:               w.Alert,
	}
}

// Validate clamps out-of-range fields to their documented bounds rather
// than rejecting the whole record, matching BRLTTY's tolerant loader.
func (p *Preferences) Validate() {
	if p.CursorTrackingDelay > 7 {
		p.CursorTrackingDelay = 7
	}
	p.SpeechVolume = clamp100(p.SpeechVolume)
	p.SpeechRate = clamp100(p.SpeechRate)
	p.AlertVolume = clamp100(p.AlertVolume)
}

func clamp100(v uint8) uint8 {
	if v > 100 {
		return 100
	}
	return v
}

// Encode writes p's binary representation to w, big-endian, matching
// BRLTTY's on-disk byte order for its preferences blob.
func Encode(w io.Writer, p Preferences) error {
	return binary.Write(w, binary.BigEndian, p.toWire())
}

// Decode reads a preferences record from r. It rejects any schema
// version other than CurrentVersion rather than attempt a migration —
// migrations, if ever needed, get their own versioned codec.
func Decode(r io.Reader) (Preferences, error) {
	var w wireLayout
	if err := binary.Read(r, binary.BigEndian, &w); err != nil {
		return Preferences{}, fmt.Errorf("prefs: decode: %w", err)
	}
	if w.Version != CurrentVersion {
		return Preferences{}, fmt.Errorf("prefs: unsupported schema version %d (want %d)", w.Version, CurrentVersion)
	}
	p := fromWire(w)
	p.Validate()
	return p, nil
}

// Marshal and Unmarshal are convenience wrappers around Encode/Decode
// for callers holding the whole blob in memory (e.g. a state-directory
// file read in one shot).
func Marshal(p Preferences) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (Preferences, error) {
	return Decode(bytes.NewReader(data))
}
