package model

import (
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// Palette holds the theme-dependent chart colors. Toggling the theme swaps
// the palette in every payload without recomputing any chart data.
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Grid       string `json:"grid"`
}

// PaletteFor returns the chart palette of the given theme
func PaletteFor(theme types.Theme) Palette {
	if theme == types.ThemeDark {
		return Palette{
			Background: "#1a1a2e",
			Text:       "#ffffff",
			Grid:       "#444444",
		}
	}
	return Palette{
		Background: "#ffffff",
		Text:       "#000000",
		Grid:       "#cccccc",
	}
}

// Maturity color scale: red (0) through dark green (4)
var levelScale = [...]string{
	"#d73027", // 0 red
	"#fc8d59", // 1 orange
	"#fee08b", // 2 yellow
	"#d9ef8b", // 3 light green
	"#1a9850", // 4 dark green
}

// LevelColor maps a maturity level to its scale color, level 0 at the lowest
// intensity and level 4 at the highest
func LevelColor(l types.Level) string {
	if l < types.LevelMin || l > types.LevelMax {
		return levelScale[0]
	}
	return levelScale[l]
}

// GapColor maps a protection gap to a severity color
func GapColor(gap int) string {
	switch {
	case gap >= 4:
		return "#d73027"
	case gap == 3:
		return "#fc8d59"
	case gap == 2:
		return "#fee08b"
	default:
		return "#d9ef8b"
	}
}
