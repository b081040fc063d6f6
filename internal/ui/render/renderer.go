package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	statepkg "github.com/kk-code-lab/manlink/internal/state"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the entire UI based on state: a bordered frame with the
// page title, the visible document slice, and the bottom status or search
// row.
func (r *Renderer) Render(state *statepkg.PagerState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w < 2 || h < 3 {
		r.screen.Show()
		return
	}

	r.drawFrame(state, w, h)
	r.drawContent(state, w, h)
	r.drawBottomRow(state, w, h)

	r.screen.Show()
}

// drawFrame draws the box around the document: top border with centered
// title on row 0, side borders, bottom border on row h-2. Row h-1 stays
// free for the status line.
func (r *Renderer) drawFrame(state *statepkg.PagerState, w, h int) {
	style := tcell.StyleDefault

	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(w-1, 0, '┐', nil, style)
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
	}

	title := " " + state.Doc.Title + " "
	if maxTitle := w - 4; runewidth.StringWidth(title) > maxTitle {
		title = runewidth.Truncate(title, maxTitle, "… ")
	}
	titleX := (w - runewidth.StringWidth(title)) / 2
	if titleX < 1 {
		titleX = 1
	}
	r.drawText(titleX, 0, w-1, title, style)

	for y := 1; y < h-2; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(w-1, y, '│', nil, style)
	}

	r.screen.SetContent(0, h-2, '└', nil, style)
	r.screen.SetContent(w-1, h-2, '┘', nil, style)
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, h-2, '─', nil, style)
	}
}

// drawContent fills rows 1 through h-3 with the document slice starting
// at the scroll offset. Content starts at column 1, inside the border.
func (r *Renderer) drawContent(state *statepkg.PagerState, w, h int) {
	for row := 1; row <= h-3; row++ {
		idx := state.ScrollOffset + row - 1
		if idx < 0 || idx >= len(state.Doc.Styled) {
			continue
		}

		x := 1
		for _, seg := range state.Doc.Styled[idx] {
			if x >= w-1 {
				break
			}
			x = r.drawText(x, row, w-1, seg.Text, segmentStyle(seg))
		}
	}
}

// drawBottomRow renders row h-1: the search prompt while composing,
// otherwise a reverse-video status line.
func (r *Renderer) drawBottomRow(state *statepkg.PagerState, w, h int) {
	y := h - 1

	if state.SearchActive {
		r.screen.HideCursor()
		style := tcell.StyleDefault
		x := r.drawText(0, y, w, "/", style)
		r.drawText(x, y, w, state.SearchQuery, style)
		cursorX := 1 + runewidth.StringWidth(state.SearchQuery[:state.SearchCursor])
		if cursorX < w {
			r.screen.ShowCursor(cursorX, y)
		}
		return
	}

	r.screen.HideCursor()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	left := " " + state.Mouse.String()
	if state.LastJump != "" {
		left += "  " + state.LastJump
	}
	r.drawText(0, y, w, left, style)

	right := positionIndicator(state) + " "
	rightX := w - runewidth.StringWidth(right)
	if rightX > runewidth.StringWidth(left)+1 {
		r.drawText(rightX, y, w, right, style)
	}
}

// positionIndicator formats the visible line range, e.g. "1-21/130".
func positionIndicator(state *statepkg.PagerState) string {
	total := state.Doc.LineCount()
	if total == 0 {
		return "0-0/0"
	}
	first := state.ScrollOffset + 1
	last := state.ScrollOffset + state.ContentRows()
	if last > total {
		last = total
	}
	if first > total {
		first = total
	}
	return fmt.Sprintf("%d-%d/%d", first, last, total)
}

// drawText draws text at (x, y) up to column limit, advancing by display
// width, and returns the column after the last drawn rune.
func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) int {
	for _, ru := range text {
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		if x+width > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}

// segmentStyle maps a styled segment onto a tcell style.
func segmentStyle(seg statepkg.StyledSegment) tcell.Style {
	style := tcell.StyleDefault.
		Bold(seg.Attr&statepkg.AttrBold != 0).
		Dim(seg.Attr&statepkg.AttrDim != 0).
		Italic(seg.Attr&statepkg.AttrItalic != 0).
		Underline(seg.Attr&statepkg.AttrUnderline != 0).
		Reverse(seg.Attr&statepkg.AttrReverse != 0)

	if fg := mapColor(seg.Fg); fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg := mapColor(seg.Bg); bg != tcell.ColorDefault {
		style = style.Background(bg)
	}
	return style
}

func mapColor(c int32) tcell.Color {
	switch {
	case c < 0:
		return tcell.ColorDefault
	case c < statepkg.ColorRGB:
		return tcell.PaletteColor(int(c))
	default:
		rgb := c &^ statepkg.ColorRGB
		return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF))
	}
}
