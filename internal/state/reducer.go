package state

import (
	"unicode/utf8"

	"github.com/kk-code-lab/manlink/internal/manwidth"
)

// StateReducer applies actions to PagerState. Reduce runs on the event
// loop goroutine only; nothing here is safe for concurrent use.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce mutates state according to action. The scroll offset is clamped
// after every action so no reducer arm can leave the viewport past the
// document.
func (r *StateReducer) Reduce(s *PagerState, action Action) {
	switch a := action.(type) {
	case ScrollUpAction:
		s.ScrollOffset--
	case ScrollDownAction:
		s.ScrollOffset++
	case ScrollPageUpAction:
		s.ScrollOffset -= s.ContentRows()
	case ScrollPageDownAction:
		s.ScrollOffset += s.ContentRows()
	case JumpTopAction:
		s.ScrollOffset = 0
	case JumpBottomAction:
		s.ScrollOffset = s.MaxScroll()

	case ToggleMouseModeAction:
		if s.Mouse == MouseLinkClicking {
			s.Mouse = MouseTextSelection
		} else {
			s.Mouse = MouseLinkClicking
		}

	case SearchStartAction:
		s.SearchActive = true
		s.SearchQuery = ""
		s.SearchCursor = 0
	case SearchCharAction:
		r.insertSearchRune(s, a.Char)
	case SearchBackspaceAction:
		r.deleteSearchRune(s)
	case SearchMoveCursorAction:
		r.moveSearchCursor(s, a.Direction)
	case SearchCancelAction:
		s.SearchActive = false
		s.SearchQuery = ""
		s.SearchCursor = 0
	case SearchCommitAction:
		// TODO: jump to the first match of SearchQuery in Doc.Lines.
		s.SearchActive = false

	case ResizeAction:
		r.resize(s, a.Width, a.Height)
	}

	s.ClampScroll()
}

func (r *StateReducer) resize(s *PagerState, width, height int) {
	s.ScreenWidth = width
	s.ScreenHeight = height

	contentWidth := width - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	s.Doc.Reflow(contentWidth)

	// Child man invocations spawned after this resize format to the new
	// window, not to whatever width this process inherited.
	manwidth.Set(width)
}

func (r *StateReducer) insertSearchRune(s *PagerState, ch rune) {
	if !s.SearchActive {
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	s.SearchQuery = s.SearchQuery[:s.SearchCursor] + string(buf[:n]) + s.SearchQuery[s.SearchCursor:]
	s.SearchCursor += n
}

func (r *StateReducer) deleteSearchRune(s *PagerState) {
	if !s.SearchActive || s.SearchCursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.SearchQuery[:s.SearchCursor])
	s.SearchQuery = s.SearchQuery[:s.SearchCursor-size] + s.SearchQuery[s.SearchCursor:]
	s.SearchCursor -= size
}

func (r *StateReducer) moveSearchCursor(s *PagerState, direction string) {
	if !s.SearchActive {
		return
	}
	switch direction {
	case "left":
		if s.SearchCursor > 0 {
			_, size := utf8.DecodeLastRuneInString(s.SearchQuery[:s.SearchCursor])
			s.SearchCursor -= size
		}
	case "right":
		if s.SearchCursor < len(s.SearchQuery) {
			_, size := utf8.DecodeRuneInString(s.SearchQuery[s.SearchCursor:])
			s.SearchCursor += size
		}
	case "home":
		s.SearchCursor = 0
	case "end":
		s.SearchCursor = len(s.SearchQuery)
	}
}
