package state

// TextAttr is a bitmask of text attributes decoded from SGR sequences.
type TextAttr uint8

const (
	AttrBold TextAttr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Color values for StyledSegment. Non-negative values below ColorRGB are
// palette indices (0-255); values at or above ColorRGB carry a packed
// 24-bit color in the low bits.
const (
	ColorNone int32 = -1
	ColorRGB  int32 = 1 << 24
)

func rgbColor(r, g, b uint8) int32 {
	return ColorRGB | int32(r)<<16 | int32(g)<<8 | int32(b)
}

// StyledSegment is a run of text rendered with one style.
type StyledSegment struct {
	Text string
	Attr TextAttr
	Fg   int32
	Bg   int32
}

// StyledLine is one document line split into style runs. The concatenated
// segment texts equal the plain line exactly, byte for byte, so byte
// ranges computed on the plain text can slice the styled form.
type StyledLine []StyledSegment

// Plain returns the line's text with styling discarded.
func (sl StyledLine) Plain() string {
	if len(sl) == 0 {
		return ""
	}
	total := 0
	for _, seg := range sl {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range sl {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

// Slice returns the styled run covering plain-text byte range
// [start, end), preserving each covered segment's style.
func (sl StyledLine) Slice(start, end int) StyledLine {
	if start >= end {
		return nil
	}

	var out StyledLine
	pos := 0
	for _, seg := range sl {
		segStart := pos
		segEnd := pos + len(seg.Text)
		pos = segEnd
		if segEnd <= start {
			continue
		}
		if segStart >= end {
			break
		}

		lo := 0
		if start > segStart {
			lo = start - segStart
		}
		hi := len(seg.Text)
		if end < segEnd {
			hi = end - segStart
		}
		if lo < hi {
			piece := seg
			piece.Text = seg.Text[lo:hi]
			out = append(out, piece)
		}
	}
	return out
}
