package kittykey

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// ParsedShortcut is the canonical (mods, key name) pair derived from a
// configured shortcut string such as "ctrl+shift+a". It is immutable
// once produced.
type ParsedShortcut struct {
	Mods    ModMask
	KeyName string
}

// AliasTable maps an upper-cased token to its canonical spelling. It is
// the collaborator contract described in spec.md §6: the shortcut parser
// never invents key names, it only resolves aliases supplied by the
// key-name layer.
type AliasTable map[string]string

// DefaultFunctionalKeyAliases covers the common alternate spellings of
// functional key names seen in terminal-emulator configuration files.
// Recovered from the original implementation's key-name layer (see
// SPEC_FULL.md "SUPPLEMENTED FEATURES"), since spec.md leaves concrete
// alias spellings to an externally supplied table.
var DefaultFunctionalKeyAliases = AliasTable{
	"RETURN":      "ENTER",
	"ESC":         "ESCAPE",
	"PGUP":        "PAGE_UP",
	"PAGEUP":      "PAGE_UP",
	"PGDN":        "PAGE_DOWN",
	"PGDOWN":      "PAGE_DOWN",
	"PAGEDOWN":    "PAGE_DOWN",
	"DEL":         "DELETE",
	"INS":         "INSERT",
	"CAPSLOCK":    "CAPS_LOCK",
	"NUMLOCK":     "NUM_LOCK",
	"SCRLK":       "SCROLL_LOCK",
	"SCROLLLOCK":  "SCROLL_LOCK",
	"PRTSC":       "PRINT_SCREEN",
	"PRINTSCREEN": "PRINT_SCREEN",
}

// DefaultCharacterKeyAliases covers spellings of character keys that
// can't be typed literally in a shortcut spec. Deliberately small: a
// token like "plus" is itself a valid canonical character-key name (see
// scenario 9 in spec.md §8 — "ctrl++" parses to key_name "plus", not
// "+"), so this table does not second-guess it.
var DefaultCharacterKeyAliases = AliasTable{
	"SPACE": " ",
}

// modifierTokens maps an upper-cased modifier token to its wire bit
// (spec.md §4.3). Tokens not present here resolve to SuperUnknown.
var modifierTokens = map[string]ModMask{
	"SHIFT":   Shift,
	"ALT":     Alt,
	"OPTION":  Alt,
	"⌥":       Alt,
	"CTRL":    Ctrl,
	"CONTROL": Ctrl,
	"SUPER":   Super,
	"CMD":     Super,
	"⌘":       Super,
}

var (
	shortcutCache *lru.Cache[string, ParsedShortcut]
	shortcutGroup singleflight.Group
	shortcutOnce  sync.Once
)

// shortcutCacheCapacity is the bounded LRU capacity from spec.md §9.
const shortcutCacheCapacity = 128

func initShortcutCache() {
	c, err := lru.New[string, ParsedShortcut](shortcutCacheCapacity)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// shortcutCacheCapacity never is.
		panic(err)
	}
	shortcutCache = c
}

// ParseShortcut parses a human-written shortcut spec (e.g. "ctrl+shift+a",
// "cmd+plus", "ctrl++") using the default alias tables. Results are
// cached in a bounded LRU (capacity 128); concurrent first-time parses of
// the same spec string are coalesced via singleflight so the parse body
// runs once for all of them. A string evicted from the cache is parsed
// again on its next use.
func ParseShortcut(spec string) ParsedShortcut {
	shortcutOnce.Do(initShortcutCache)

	if v, ok := shortcutCache.Get(spec); ok {
		return v
	}

	v, _, _ := shortcutGroup.Do(spec, func() (any, error) {
		if v, ok := shortcutCache.Get(spec); ok {
			return v, nil
		}
		parsed := ParseShortcutWith(spec, DefaultFunctionalKeyAliases, DefaultCharacterKeyAliases)
		shortcutCache.Add(spec, parsed)
		return parsed, nil
	})
	return v.(ParsedShortcut)
}

// ParseShortcutWith parses spec using the given alias tables, bypassing
// the shared cache. Use this when a caller supplies its own key-name
// layer (spec.md §6's collaborator contract) rather than the package
// defaults.
func ParseShortcutWith(spec string, functionalAliases, characterAliases AliasTable) ParsedShortcut {
	if strings.HasSuffix(spec, "+") {
		spec = spec[:len(spec)-1] + "plus"
	}

	parts := strings.Split(spec, "+")
	keyToken := parts[len(parts)-1]

	keyName := functionalAliases[strings.ToUpper(keyToken)]
	if keyName == "" {
		keyName = keyToken
	}
	if _, isFunctional := funcNumForName(strings.ToUpper(keyName)); isFunctional {
		keyName = strings.ToUpper(keyName)
	} else {
		if alias, ok := characterAliases[strings.ToUpper(keyName)]; ok {
			keyName = alias
		}
	}

	var mods ModMask
	for _, tok := range parts[:len(parts)-1] {
		if bit, ok := modifierTokens[strings.ToUpper(tok)]; ok {
			mods |= bit
		} else {
			mods |= SuperUnknown
		}
	}

	return ParsedShortcut{Mods: mods, KeyName: keyName}
}
