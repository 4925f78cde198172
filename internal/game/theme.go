package game

import (
	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// Theme maps tile values to colors.
type Theme struct {
	Board         core.Color
	Empty         core.Color
	DarkText      core.Color
	LightText     core.Color
	LightTextFrom engine.Tile // Tiles at or above use LightText
	Tiles         map[engine.Tile]core.Color
}

// DefaultTheme returns the classic 2048 palette.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default().Theme)
}

// ThemeFromConfig converts the YAML theme section.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	t := Theme{
		Board:         core.Color(tc.Board),
		Empty:         core.Color(tc.Empty),
		DarkText:      core.Color(tc.DarkText),
		LightText:     core.Color(tc.LightText),
		LightTextFrom: engine.Tile(tc.LightTextFrom),
		Tiles:         make(map[engine.Tile]core.Color, len(tc.Tiles)),
	}
	for v, c := range tc.Tiles {
		t.Tiles[engine.Tile(v)] = core.Color(c)
	}
	return t
}

// TileStyle returns the style used to draw a tile.
// Values without a configured color fall back to the empty-cell color.
func (t Theme) TileStyle(v engine.Tile) core.Style {
	bg, ok := t.Tiles[v]
	if !ok || v.IsEmpty() {
		bg = t.Empty
	}

	fg := t.DarkText
	if v >= t.LightTextFrom {
		fg = t.LightText
	}
	return core.Style{FG: fg, BG: bg, Bold: true}
}

// BoardStyle is the style of the frame around the tiles.
func (t Theme) BoardStyle() core.Style {
	return core.Style{FG: t.DarkText, BG: t.Board}
}

// OverlayStyle is the style of message boxes drawn over the board.
func (t Theme) OverlayStyle() core.Style {
	return core.Style{FG: t.LightText, BG: t.DarkText, Bold: true}
}
