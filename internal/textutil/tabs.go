package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth matches the tab stops man's formatter assumes.
const DefaultTabWidth = 8

// ExpandTabsFrom expands tabs in text assuming it starts at column
// startCol, and returns the expanded text along with the column after it.
// Document lines are stored as styled segments, so expansion has to carry
// the column across segment boundaries.
func ExpandTabsFrom(text string, tabWidth int, startCol int) (string, int) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsRune(text, '\t') {
		return text, startCol + DisplayWidth(text)
	}

	var builder strings.Builder
	column := startCol
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				builder.WriteByte(' ')
			}
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		column += width
	}
	return builder.String(), column
}

// DisplayWidth reports the printable width of text accounting for wide
// runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		width += w
	}
	return width
}
