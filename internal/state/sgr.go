package state

import (
	"strconv"
	"strings"
)

// sgrState tracks the running style while scanning a line's escape
// sequences.
type sgrState struct {
	attr TextAttr
	fg   int32
	bg   int32
}

func newSGRState() sgrState {
	return sgrState{fg: ColorNone, bg: ColorNone}
}

// parseStyledLine splits a raw line containing SGR escape sequences into
// styled segments. Non-SGR escape sequences are dropped. The style is
// carried in from the previous line so man's bold/underline runs survive
// line breaks; the final style is returned for the next line.
func parseStyledLine(raw string, style sgrState) (StyledLine, sgrState) {
	var line StyledLine
	var text strings.Builder

	flush := func() {
		if text.Len() == 0 {
			return
		}
		line = append(line, StyledSegment{
			Text: text.String(),
			Attr: style.attr,
			Fg:   style.fg,
			Bg:   style.bg,
		})
		text.Reset()
	}

	for i := 0; i < len(raw); {
		if raw[i] != 0x1B {
			text.WriteByte(raw[i])
			i++
			continue
		}

		seq, params, isSGR := scanCSI(raw[i:])
		if seq == 0 {
			// Lone ESC at end of line.
			i++
			continue
		}
		if isSGR {
			flush()
			style = applySGR(style, params)
		}
		i += seq
	}

	flush()
	return line, style
}

// scanCSI measures the escape sequence at the start of s, which must begin
// with ESC. It returns the byte length of the sequence, the parameter
// bytes, and whether the final byte was 'm'.
func scanCSI(s string) (length int, params string, isSGR bool) {
	if len(s) < 2 {
		return 0, "", false
	}
	if s[1] != '[' {
		// Two-byte escape (ESC c, ESC 7, ...). Skip both bytes.
		return 2, "", false
	}

	i := 2
	for i < len(s) {
		b := s[i]
		if b >= 0x40 && b <= 0x7E {
			return i + 1, s[2:i], b == 'm'
		}
		i++
	}
	// Unterminated sequence; consume the rest of the line.
	return len(s), "", false
}

// applySGR folds one SGR parameter list into the running style. Unknown
// and malformed parameters leave the style unchanged.
func applySGR(style sgrState, params string) sgrState {
	if params == "" {
		return newSGRState()
	}

	fields := strings.Split(params, ";")
	for i := 0; i < len(fields); i++ {
		code, err := strconv.Atoi(fields[i])
		if err != nil {
			if fields[i] == "" {
				code = 0
			} else {
				continue
			}
		}

		switch {
		case code == 0:
			style = newSGRState()
		case code == 1:
			style.attr |= AttrBold
		case code == 2:
			style.attr |= AttrDim
		case code == 3:
			style.attr |= AttrItalic
		case code == 4:
			style.attr |= AttrUnderline
		case code == 7:
			style.attr |= AttrReverse
		case code == 22:
			style.attr &^= AttrBold | AttrDim
		case code == 23:
			style.attr &^= AttrItalic
		case code == 24:
			style.attr &^= AttrUnderline
		case code == 27:
			style.attr &^= AttrReverse
		case code >= 30 && code <= 37:
			style.fg = int32(code - 30)
		case code == 39:
			style.fg = ColorNone
		case code >= 40 && code <= 47:
			style.bg = int32(code - 40)
		case code == 49:
			style.bg = ColorNone
		case code >= 90 && code <= 97:
			style.fg = int32(code - 90 + 8)
		case code >= 100 && code <= 107:
			style.bg = int32(code - 100 + 8)
		case code == 38 || code == 48:
			color, consumed := parseExtendedColor(fields[i+1:])
			if consumed == 0 {
				return style
			}
			if code == 38 {
				style.fg = color
			} else {
				style.bg = color
			}
			i += consumed
		}
	}
	return style
}

// parseExtendedColor handles the 5;n (palette) and 2;r;g;b (truecolor)
// forms that follow SGR 38/48. It returns how many fields it consumed, or
// zero when the form is malformed.
func parseExtendedColor(fields []string) (int32, int) {
	if len(fields) == 0 {
		return ColorNone, 0
	}
	switch fields[0] {
	case "5":
		if len(fields) < 2 {
			return ColorNone, 0
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n > 255 {
			return ColorNone, 0
		}
		return int32(n), 2
	case "2":
		if len(fields) < 4 {
			return ColorNone, 0
		}
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(fields[1+i])
			if err != nil || n < 0 || n > 255 {
				return ColorNone, 0
			}
			rgb[i] = uint8(n)
		}
		return rgbColor(rgb[0], rgb[1], rgb[2]), 4
	}
	return ColorNone, 0
}
