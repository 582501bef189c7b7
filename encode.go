package kittykey

import (
	"strconv"
	"strings"
)

// Encode builds the "ESC [ payload trailer" byte sequence for e, per
// spec.md §4.2.
func Encode(e KeyEvent) []byte {
	key := csiNumberForName(e.Key)
	shiftedKey := csiNumberForName(e.ShiftedKey)
	alternateKey := csiNumberForName(e.AlternateKey)

	var trailer byte = 'u'
	letterTrailerUsed := false
	if e.Key == "ENTER" {
		trailer = 'u'
	} else if lt, ok := csiNumToLetterTrailer[key]; ok {
		trailer = lt
		letterTrailerUsed = true
	}

	mods := int(e.Mods)
	text := e.Text

	var b strings.Builder
	b.WriteString("\x1b[")

	emitKeynum := letterTrailerUsed || key != 1 || mods != 0 || shiftedKey != 0 || alternateKey != 0 || text != ""
	displayKey := key
	if letterTrailerUsed {
		displayKey = 1
	}
	if emitKeynum {
		b.WriteString(strconv.Itoa(displayKey))
	}

	if shiftedKey != 0 || alternateKey != 0 {
		b.WriteByte(':')
		if shiftedKey != 0 {
			b.WriteString(strconv.Itoa(shiftedKey))
		}
		if alternateKey != 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(alternateKey))
		}
	}

	action := 1
	switch e.Type {
	case Repeat:
		action = 2
	case Release:
		action = 3
	}

	if mods != 0 || action > 1 || text != "" {
		m := mods & int(Shift|Alt|Ctrl|Super)
		if action > 1 || m != 0 {
			b.WriteByte(';')
			b.WriteString(strconv.Itoa(m + 1))
			if action > 1 {
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(action))
			}
		} else if text != "" {
			b.WriteByte(';')
		}
	}

	if text != "" {
		b.WriteByte(';')
		codepoints := make([]string, 0, len(text))
		for _, r := range text {
			codepoints = append(codepoints, strconv.Itoa(int(r)))
		}
		b.WriteString(strings.Join(codepoints, ":"))
	}

	if fn, ok := funcNumForName(e.Key); ok {
		if _, tilde := TildeTrailers[fn]; tilde {
			trailer = '~'
		}
	}

	b.WriteByte(trailer)
	return []byte(b.String())
}
