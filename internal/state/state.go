package state

// MouseMode selects what mouse input is used for.
type MouseMode int

const (
	// MouseLinkClicking captures mouse events so clicks resolve
	// cross-reference tokens. Wheel scrolling works; terminal text
	// selection does not.
	MouseLinkClicking MouseMode = iota
	// MouseTextSelection releases mouse capture back to the terminal so
	// the user can select and copy text.
	MouseTextSelection
)

func (m MouseMode) String() string {
	if m == MouseTextSelection {
		return "select"
	}
	return "links"
}

// scrollPastEnd is how many rows beyond the last content row the viewport
// may scroll, so the final line can clear the bottom border.
const scrollPastEnd = 2

// PagerState is the single source of truth for the pager.
type PagerState struct {
	Doc *Document

	ScrollOffset int
	ScreenWidth  int
	ScreenHeight int

	Mouse MouseMode

	SearchActive bool
	SearchQuery  string
	SearchCursor int // byte offset into SearchQuery

	// LastJump holds a short status about the most recent link jump,
	// empty when the last jump succeeded.
	LastJump string
}

// NewPagerState wraps doc with scroll position zero and link-clicking
// mouse capture.
func NewPagerState(doc *Document) *PagerState {
	return &PagerState{Doc: doc}
}

// ContentRows is the number of document rows visible between the frame's
// top border and the bottom status row.
func (s *PagerState) ContentRows() int {
	rows := s.ScreenHeight - 3
	if rows < 0 {
		rows = 0
	}
	return rows
}

// MaxScroll is the largest permitted scroll offset. The document may
// scroll until only scrollPastEnd rows of slack remain below the last
// line.
func (s *PagerState) MaxScroll() int {
	max := s.Doc.LineCount() - s.ScreenHeight + scrollPastEnd
	if max < 0 {
		max = 0
	}
	return max
}

// ClampScroll forces ScrollOffset back into [0, MaxScroll]. Every reduce
// ends with a clamp so resizes and reflows can never leave the viewport
// past the document.
func (s *PagerState) ClampScroll() {
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if max := s.MaxScroll(); s.ScrollOffset > max {
		s.ScrollOffset = max
	}
}
