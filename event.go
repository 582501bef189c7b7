package kittykey

// EventType is the kind of key event: press, repeat, or release. Exactly
// one of these holds for any KeyEvent.
type EventType int

// Event types, as distinct bits so they can be combined into a match mask.
// On the wire the Kitty protocol's action field carries them as 1, 2 and 3.
const (
	Press   EventType = 1
	Repeat  EventType = 2
	Release EventType = 4
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// ModMask is an 8-bit bitset of modifier keys, plus the reserved
// unknown-modifier sentinel bit used by the shortcut parser (spec.md
// §4.3/§7). It is always the ground truth for KeyEvent.Mods; the
// Shift/Alt/Ctrl/Super booleans on KeyEvent are derived from it.
type ModMask int

// Modifier bits, as carried over the wire (mods-1 encoding handled in
// decode.go/encode.go, not here).
const (
	Shift ModMask = 1 << iota
	Alt
	Ctrl
	Super

	// SuperUnknown is the deliberate, unreachable sentinel bit a
	// misconfigured shortcut modifier token maps to (spec.md §4.3, §7,
	// §9). It must never be produced by a real KeyEvent, so it is
	// placed well above the four real modifier bits.
	SuperUnknown = Super << 8
)

// Contains reports whether m has all the bits of mods set.
func (m ModMask) Contains(mods ModMask) bool {
	return m&mods == mods
}

// KeyEvent is a structured, canonical keyboard event: the in-process
// counterpart of a Kitty protocol CSI sequence.
type KeyEvent struct {
	Type EventType
	Mods ModMask

	// Key is the canonical key name: an upper-case functional name (e.g.
	// "ENTER", "F1") or a single character (e.g. "a", "#").
	Key string

	// Text is the UTF-8 text produced by the press, if any.
	Text string

	// ShiftedKey is the canonical name of the key produced when Shift is
	// applied, or empty.
	ShiftedKey string

	// AlternateKey is the canonical name of the key under the user's
	// alternate keyboard layout, or empty.
	AlternateKey string
}

// ShiftHeld, AltHeld, CtrlHeld, and SuperHeld report the corresponding bits of Mods.
// They mirror spec.md's convenience booleans; KeyEvent keeps Mods as the
// single source of truth (spec.md §9's "boolean <-> bitset duality" note)
// rather than storing four redundant fields that could drift out of sync.
func (e KeyEvent) ShiftHeld() bool { return e.Mods&Shift != 0 }
func (e KeyEvent) AltHeld() bool   { return e.Mods&Alt != 0 }
func (e KeyEvent) CtrlHeld() bool  { return e.Mods&Ctrl != 0 }
func (e KeyEvent) SuperHeld() bool { return e.Mods&Super != 0 }
