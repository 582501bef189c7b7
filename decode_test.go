package kittykey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeScenarios(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		trailer byte
		want    KeyEvent
	}{
		{"up arrow, letter trailer", "", 'A', KeyEvent{Key: "UP", Type: Press}},
		{"down arrow with shift", "1;2", 'B', KeyEvent{Key: "DOWN", Mods: Shift, Type: Press}},
		{"lowercase a with alt text", "97;;:65", 'u', KeyEvent{Key: "a", Text: "A", Type: Press}},
		{"escape", "27", 'u', KeyEvent{Key: "ESCAPE", Type: Press}},
		{"csi 13 as enter", "13", 'u', KeyEvent{Key: "ENTER", Type: Press}},
		{"csi 13 as f3", "13", '~', KeyEvent{Key: "F3", Type: Press}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.payload, tt.trailer)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeShiftHeldDerived(t *testing.T) {
	e, err := Decode("1;2", 'B')
	assert.NoError(t, err)
	assert.True(t, e.ShiftHeld())
	assert.False(t, e.CtrlHeld())
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, err := Decode("abc", 'u')
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)

	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "abc", de.Payload)
}

func TestDecodeInvalidAction(t *testing.T) {
	_, err := Decode("97;1:9", 'u')
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestDecodeSequenceRejectsShortOrMisframedInput(t *testing.T) {
	_, ok := DecodeSequence([]byte("x"))
	assert.False(t, ok)

	_, ok = DecodeSequence([]byte("ab97u"))
	assert.False(t, ok)

	e, ok := DecodeSequence([]byte("\x1b[27u"))
	assert.True(t, ok)
	assert.Equal(t, "ESCAPE", e.Key)
}

func TestDecodeSequenceAbsentOnError(t *testing.T) {
	_, ok := DecodeSequence([]byte("\x1b[abcu"))
	assert.False(t, ok)
}
