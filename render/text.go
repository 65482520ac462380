package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text starting at col and returns the column after the last cell
// Cells past the right screen edge are dropped
func drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) int {
	width, _ := screen.Size()
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= width {
			screen.SetContent(col, row, r, nil, style)
		}
		col += w
	}
	return col
}

// drawCentered writes text centered on row
func drawCentered(screen tcell.Screen, row int, text string, style tcell.Style) {
	width, _ := screen.Size()
	col := (width - runewidth.StringWidth(text)) / 2
	drawText(screen, max(0, col), row, text, style)
}

// bar renders pct in [0, 1] as a fixed width gauge
func bar(pct float64, width int) string {
	pct = max(0, min(1, pct))
	filled := int(pct*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
