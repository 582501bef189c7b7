package kittykey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel error kinds a DecodeError wraps, per spec.md §7.
var (
	ErrMalformedPayload = errors.New("kittykey: malformed CSI payload")
	ErrInvalidAction    = errors.New("kittykey: action out of range")
)

// DecodeError reports why Decode failed on a given payload.
type DecodeError struct {
	Payload string
	Trailer byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kittykey: decode %q (trailer %q): %v", e.Payload, e.Trailer, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// letterTrailers is the set of trailer bytes that override the payload's
// keynum outright (spec.md §4.1).
var letterTrailers = map[byte]bool{
	'A': true, 'B': true, 'C': true, 'D': true,
	'H': true, 'F': true, 'P': true, 'Q': true, 'R': true, 'S': true,
}

// subSection splits s on ':' into integers, substituting missing for any
// empty sub-field (including the implicit single field when s is empty).
func subSection(s string, missing int) ([]int, error) {
	parts := strings.Split(s, ":")
	out := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			out[i] = missing
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Decode parses the payload strictly between "ESC [" and the trailer,
// plus the trailer byte itself, into a KeyEvent (spec.md §4.1).
func Decode(csi string, trailer byte) (KeyEvent, error) {
	sections := strings.Split(csi, ";")

	first, err := subSection(sections[0], 0)
	if err != nil {
		return KeyEvent{}, &DecodeError{csi, trailer, fmt.Errorf("%w: first section: %v", ErrMalformedPayload, err)}
	}

	var second []int
	if len(sections) > 1 {
		second, err = subSection(sections[1], 1)
		if err != nil {
			return KeyEvent{}, &DecodeError{csi, trailer, fmt.Errorf("%w: second section: %v", ErrMalformedPayload, err)}
		}
	}

	var third []int
	if len(sections) > 2 {
		third, err = subSection(sections[2], 0)
		if err != nil {
			return KeyEvent{}, &DecodeError{csi, trailer, fmt.Errorf("%w: third section: %v", ErrMalformedPayload, err)}
		}
	}

	mods := 0
	if len(second) > 0 {
		mods = second[0] - 1
	}
	action := 1
	if len(second) > 1 {
		action = second[1]
	}
	var eventType EventType
	switch action {
	case 1:
		eventType = Press
	case 2:
		eventType = Repeat
	case 3:
		eventType = Release
	default:
		return KeyEvent{}, &DecodeError{csi, trailer, fmt.Errorf("%w: %d", ErrInvalidAction, action)}
	}

	keynum := first[0]
	if letterTrailers[trailer] {
		keynum = LetterTrailerToCsiNum[trailer]
	}

	shifted := 0
	if len(first) > 1 {
		shifted = first[1]
	}
	alternate := 0
	if len(first) > 2 {
		alternate = first[2]
	}

	var text strings.Builder
	for _, cp := range third {
		if cp != 0 {
			text.WriteRune(rune(cp))
		}
	}

	return KeyEvent{
		Type:         eventType,
		Mods:         ModMask(mods),
		Key:          keyName(keynum, trailer),
		ShiftedKey:   keyName(shifted, trailer),
		AlternateKey: keyName(alternate, trailer),
		Text:         text.String(),
	}, nil
}

// keyName implements name(num) from spec.md §4.1, including the CSI-13
// ENTER/F3 disambiguation by trailer.
func keyName(num int, trailer byte) string {
	if num == 0 {
		return ""
	}
	if num == 13 {
		if trailer == 'u' {
			return "ENTER"
		}
		return "F3"
	}
	if fn, ok := CsiNumToFuncNum[num]; ok {
		num = fn
	}
	if name, ok := FuncNumToName[num]; ok {
		return name
	}
	return string(rune(num))
}

// DecodeSequence is the convenience wrapper from spec.md §4.1: it accepts
// a full "ESC [ ... trailer" sequence and returns an absent result
// (ok=false) rather than an error on any failure.
func DecodeSequence(seq []byte) (KeyEvent, bool) {
	if len(seq) < 3 || seq[0] != 0x1b || seq[1] != '[' {
		return KeyEvent{}, false
	}
	trailer := seq[len(seq)-1]
	payload := string(seq[2 : len(seq)-1])
	e, err := Decode(payload, trailer)
	if err != nil {
		return KeyEvent{}, false
	}
	return e, true
}
