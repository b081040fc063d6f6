package textutil

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Span is a byte range within a line.
type Span struct {
	Start int
	End   int
}

// WrapSpans computes the byte ranges of line after wrapping it to width
// display columns. Breaks happen at the last space that fits, or mid-word
// when a single word exceeds the width; the break space itself is dropped,
// as are spaces trailing a broken segment. An empty line yields one empty
// span so wrapped output never loses blank lines.
//
// Returning ranges instead of substrings lets callers slice a parallel
// styled representation of the same line at identical positions.
func WrapSpans(line string, width int) []Span {
	if width < 1 {
		width = 1
	}
	if line == "" {
		return []Span{{0, 0}}
	}

	var spans []Span
	start := 0
	col := 0
	lastSpace := -1

	for i, r := range line {
		if r == ' ' {
			lastSpace = i
		}
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if col+w > width && i > start {
			brk := i
			if lastSpace > start {
				brk = lastSpace
			}
			end := brk
			for end > start && line[end-1] == ' ' {
				end--
			}
			spans = append(spans, Span{start, end})

			for brk < len(line) && line[brk] == ' ' {
				brk++
			}
			start = brk
			lastSpace = -1

			col = 0
			next := i + utf8.RuneLen(r)
			if start < next {
				col = DisplayWidth(line[start:next])
			}
			continue
		}
		col += w
	}

	if start < len(line) || len(spans) == 0 {
		spans = append(spans, Span{start, len(line)})
	}
	return spans
}
