package tetris

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Theme is the per-kind look used when drawing pieces.
type Theme struct {
	Colors [kindCount]core.Color
	Glyphs [kindCount]rune
	Ghost  rune
}

// DefaultTheme uses the catalog colors and solid blocks.
func DefaultTheme() Theme {
	t := Theme{Ghost: '░'}
	for _, k := range AllKinds {
		t.Colors[k] = k.Color()
		t.Glyphs[k] = '█'
	}
	return t
}

// ThemeFromConfig overlays configured colors and glyphs on the default theme.
// Unknown color names keep the catalog color.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	t := DefaultTheme()
	if r, _ := utf8.DecodeRuneInString(tc.Ghost); r != utf8.RuneError {
		t.Ghost = r
	}
	for name, pt := range tc.Pieces {
		k, ok := ParseKind(name)
		if !ok {
			continue
		}
		if c, ok := core.ParseColor(pt.Color); ok {
			t.Colors[k] = c
		}
		if r, _ := utf8.DecodeRuneInString(pt.Glyph); r != utf8.RuneError {
			t.Glyphs[k] = r
		}
	}
	return t
}
