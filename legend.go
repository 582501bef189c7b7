package kittykey

import (
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// LegendEntry pairs an already-parsed shortcut with the description shown
// next to it in a configuration cheat-sheet (spec.md §4.6).
type LegendEntry struct {
	Shortcut    ParsedShortcut
	Description string
}

// modifierOrder fixes the display order of modifier tokens: Shift, Alt,
// Ctrl, Super, matching the bit order in event.go.
var modifierOrder = []struct {
	bit   ModMask
	token string
}{
	{Shift, "shift"},
	{Alt, "alt"},
	{Ctrl, "ctrl"},
	{Super, "super"},
}

// renderSpec splits a ParsedShortcut into its modifier tokens (in fixed
// SHIFT/ALT/CTRL/SUPER order) and its key token, e.g. ["shift","ctrl"], "a".
func renderSpec(p ParsedShortcut) ([]string, string) {
	var mods []string
	for _, m := range modifierOrder {
		if p.Mods&m.bit != 0 {
			mods = append(mods, m.token)
		}
	}
	key := p.KeyName
	if _, isFunctional := funcNumForName(strings.ToUpper(key)); isFunctional {
		key = strings.ToLower(key)
	}
	return mods, key
}

// plainSpec joins renderSpec's parts back into the canonical unstyled
// spelling, e.g. "shift+ctrl+a".
func plainSpec(mods []string, key string) string {
	return strings.Join(append(append([]string{}, mods...), key), "+")
}

// dimColor and keyColor are the legend's fixed style, chosen via
// go-colorful so the palette lives in a real color space rather than
// raw ANSI-code juggling.
var (
	dimColor = colorful.Color{R: 0.55, G: 0.55, B: 0.55}
	keyColor = colorful.Color{R: 0.95, G: 0.95, B: 0.95}
)

// RenderLegend formats entries into an aligned, one-line-per-entry
// cheat-sheet. Column alignment uses display width (go-runewidth) rather
// than byte or rune count, so wide key glyphs still line up. Output is
// colorized via termenv when the target io.Writer's color profile
// supports it (modifiers dimmed, key name bold); on an ASCII profile
// (e.g. redirected to a file, or TERM=dumb) the plain, unstyled text is
// produced instead, byte-for-byte identical modulo the SGR wrapping.
func RenderLegend(w io.Writer, entries []LegendEntry) string {
	profile := termenv.NewOutput(w).ColorProfile()

	plains := make([]string, len(entries))
	width := 0
	for i, e := range entries {
		mods, key := renderSpec(e.Shortcut)
		plains[i] = plainSpec(mods, key)
		if w := runewidth.StringWidth(plains[i]); w > width {
			width = w
		}
	}

	var out strings.Builder
	for i, e := range entries {
		mods, key := renderSpec(e.Shortcut)
		pad := strings.Repeat(" ", width-runewidth.StringWidth(plains[i]))

		if profile == termenv.Ascii {
			out.WriteString(plains[i])
			out.WriteString(pad)
		} else {
			for _, m := range mods {
				out.WriteString(termenv.String(m + "+").Foreground(profile.Color(dimColor.Hex())).Faint().String())
			}
			out.WriteString(termenv.String(key).Foreground(profile.Color(keyColor.Hex())).Bold().String())
			out.WriteString(pad)
		}

		out.WriteString("  ")
		out.WriteString(e.Description)
		out.WriteString("\n")
	}
	return out.String()
}
