package kittykey

// Window-system action constants, mirroring the three KeyEvent event
// types for a GLFW-style windowing backend (spec.md §4.5/§6).
const (
	WindowSystemPress   = 1
	WindowSystemRepeat  = 2
	WindowSystemRelease = 3
)

// Window-system modifier bit constants. The codec only depends on the
// windowing layer for these four values and the three action constants
// above (spec.md §6) — everything else about the backend is external.
const (
	WindowSystemModShift = 1 << iota
	WindowSystemModAlt
	WindowSystemModControl
	WindowSystemModSuper
)

// WindowSystemKeyEvent is the windowing backend's view of a key event:
// key identities as numbers rather than canonical names, and a
// backend-specific mod bitset and action constant.
type WindowSystemKeyEvent struct {
	Key          int
	ShiftedKey   int
	AlternateKey int
	Mods         int
	Action       int
	Text         string
}

// keyAsNum converts a canonical key name to a number via FUNC_NAME_TO_FUNC_NUM,
// falling back to the Unicode code point; an empty name maps to 0
// (spec.md §4.5).
func keyAsNum(name string) int {
	if name == "" {
		return 0
	}
	if fn, ok := funcNumForName(name); ok {
		return fn
	}
	return int([]rune(name)[0])
}

// AsWindowSystemEvent converts e to the windowing backend's representation.
func AsWindowSystemEvent(e KeyEvent) WindowSystemKeyEvent {
	action := WindowSystemPress
	switch e.Type {
	case Repeat:
		action = WindowSystemRepeat
	case Release:
		action = WindowSystemRelease
	}

	var mods int
	if e.Mods != 0 {
		if e.ShiftHeld() {
			mods |= WindowSystemModShift
		}
		if e.AltHeld() {
			mods |= WindowSystemModAlt
		}
		if e.CtrlHeld() {
			mods |= WindowSystemModControl
		}
		if e.SuperHeld() {
			mods |= WindowSystemModSuper
		}
	}

	return WindowSystemKeyEvent{
		Key:          keyAsNum(e.Key),
		ShiftedKey:   keyAsNum(e.ShiftedKey),
		AlternateKey: keyAsNum(e.AlternateKey),
		Mods:         mods,
		Action:       action,
		Text:         e.Text,
	}
}

// DecodeKeyEventAsWindowSystemKey strips the leading "ESC [" and trailing
// trailer byte from esc, decodes the payload, and returns the
// window-system representation. It returns ok=false on any failure
// (malformed payload, too-short input) rather than propagating an error,
// per spec.md §4.5/§7.
func DecodeKeyEventAsWindowSystemKey(esc []byte) (WindowSystemKeyEvent, bool) {
	e, ok := DecodeSequence(esc)
	if !ok {
		return WindowSystemKeyEvent{}, false
	}
	return AsWindowSystemEvent(e), true
}
