package kittykey

// DefaultMatchTypes is the default event-type mask used by Matches when
// none is given: a shortcut fires on both initial press and key-repeat,
// but not on release.
const DefaultMatchTypes = Press | Repeat

// Matches reports whether e satisfies spec, which may be a raw shortcut
// string or an already-parsed ParsedShortcut. types is a bitmask of
// EventType values the event's Type must intersect; pass 0 to use
// DefaultMatchTypes.
//
// When e carries a ShiftedKey and Shift is held, the match is performed
// against the shifted variant: the Shift bit is stripped from the
// comparison mods and ShiftedKey stands in for Key. This lets a shortcut
// spec like "#" (no modifiers) match shift+3 on a US layout without the
// "shift+3" spec double-counting the Shift that produced the "#".
func Matches(e KeyEvent, spec any, types EventType) bool {
	if types == 0 {
		types = DefaultMatchTypes
	}
	if e.Type&types == 0 {
		return false
	}

	mods := e.Mods
	key := e.Key
	if e.ShiftedKey != "" && e.ShiftHeld() {
		mods &^= Shift
		key = e.ShiftedKey
	}

	var parsed ParsedShortcut
	switch s := spec.(type) {
	case ParsedShortcut:
		parsed = s
	case string:
		parsed = ParseShortcut(s)
	default:
		return false
	}

	if mods != parsed.Mods {
		return false
	}
	return key == parsed.KeyName
}
