package kittykey

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShortcutScenarios(t *testing.T) {
	got := ParseShortcut("ctrl++")
	assert.Equal(t, ParsedShortcut{Mods: Ctrl, KeyName: "plus"}, got)

	got = ParseShortcut("cmd+shift+a")
	assert.Equal(t, ParsedShortcut{Mods: Super | Shift, KeyName: "a"}, got)
}

func TestParseShortcutFunctionalAlias(t *testing.T) {
	got := ParseShortcut("ctrl+pgup")
	assert.Equal(t, ParsedShortcut{Mods: Ctrl, KeyName: "PAGE_UP"}, got)

	got = ParseShortcut("return")
	assert.Equal(t, ParsedShortcut{Mods: 0, KeyName: "ENTER"}, got)
}

func TestParseShortcutUnknownModifier(t *testing.T) {
	got := ParseShortcut("hyper+a")
	assert.Equal(t, ParsedShortcut{Mods: SuperUnknown, KeyName: "a"}, got)
	assert.NotEqual(t, Super, got.Mods&Super)
}

func TestParseShortcutSpace(t *testing.T) {
	got := ParseShortcut("ctrl+space")
	assert.Equal(t, ParsedShortcut{Mods: Ctrl, KeyName: " "}, got)
}

func TestParseShortcutIsCached(t *testing.T) {
	a := ParseShortcut("alt+f4")
	b := ParseShortcut("alt+f4")
	assert.Equal(t, a, b)
}

func TestParseShortcutConcurrentCoalesces(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]ParsedShortcut, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ParseShortcut("ctrl+alt+delete")
		}(i)
	}
	wg.Wait()
	want := ParsedShortcut{Mods: Ctrl | Alt, KeyName: "DELETE"}
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParseShortcutWithCustomAliases(t *testing.T) {
	functional := AliasTable{"ENTR": "ENTER"}
	character := AliasTable{"BANG": "!"}
	got := ParseShortcutWith("ctrl+bang", functional, character)
	assert.Equal(t, ParsedShortcut{Mods: Ctrl, KeyName: "!"}, got)

	got = ParseShortcutWith("entr", functional, character)
	assert.Equal(t, ParsedShortcut{Mods: 0, KeyName: "ENTER"}, got)
}
