// Package kittykey implements the Kitty Keyboard Protocol codec: it
// encodes in-process key events into CSI escape sequences and decodes
// such sequences back into structured events. It also provides the
// human-readable shortcut-spec parser and event matcher used by
// configuration layers (e.g. "ctrl+shift+a").
//
// The package is pure and allocation-light: the static lookup tables are
// built once at init time and never mutated, and the only shared mutable
// state is the bounded shortcut-parse cache, which is safe for
// concurrent use.
//
// This package does not perform terminal I/O, own a screen buffer, or
// talk to a windowing/input backend — those are external collaborators.
// It only defines the wire format and the in-process types around it.
package kittykey
