package state

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/kk-code-lab/manlink/internal/manwidth"
)

func newTestState(t *testing.T, lines, width, height int) *PagerState {
	t.Helper()
	t.Setenv(manwidth.EnvVar, "")

	var b strings.Builder
	b.WriteString("TEST(1)  header\n")
	for i := 1; i < lines; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	doc, err := NewDocument(b.String(), 8)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := NewPagerState(doc)
	NewStateReducer().Reduce(s, ResizeAction{Width: width, Height: height})
	return s
}

func TestReducerScrollDownAndUp(t *testing.T) {
	s := newTestState(t, 50, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, ScrollDownAction{})
	if s.ScrollOffset != 1 {
		t.Errorf("Expected scroll 1, got %d", s.ScrollOffset)
	}
	r.Reduce(s, ScrollUpAction{})
	r.Reduce(s, ScrollUpAction{})
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll clamped at 0, got %d", s.ScrollOffset)
	}
}

func TestReducerScrollClampsPastEnd(t *testing.T) {
	s := newTestState(t, 50, 80, 24)
	r := NewStateReducer()

	for i := 0; i < 200; i++ {
		r.Reduce(s, ScrollDownAction{})
	}
	want := s.Doc.LineCount() - s.ScreenHeight + 2
	if s.ScrollOffset != want {
		t.Errorf("Expected scroll clamped at %d, got %d", want, s.ScrollOffset)
	}
}

func TestReducerShortDocumentNeverScrolls(t *testing.T) {
	s := newTestState(t, 5, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, ScrollDownAction{})
	r.Reduce(s, ScrollPageDownAction{})
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll 0 for short document, got %d", s.ScrollOffset)
	}
}

func TestReducerPageMovesByContentRows(t *testing.T) {
	s := newTestState(t, 100, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, ScrollPageDownAction{})
	if s.ScrollOffset != s.ContentRows() {
		t.Errorf("Expected scroll %d, got %d", s.ContentRows(), s.ScrollOffset)
	}
	r.Reduce(s, ScrollPageUpAction{})
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll 0 after page up, got %d", s.ScrollOffset)
	}
}

func TestReducerJumpTopAndBottom(t *testing.T) {
	s := newTestState(t, 100, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, JumpBottomAction{})
	if s.ScrollOffset != s.MaxScroll() {
		t.Errorf("Expected scroll %d, got %d", s.MaxScroll(), s.ScrollOffset)
	}
	r.Reduce(s, JumpTopAction{})
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll 0, got %d", s.ScrollOffset)
	}
}

func TestReducerToggleMouseMode(t *testing.T) {
	s := newTestState(t, 10, 80, 24)
	r := NewStateReducer()

	if s.Mouse != MouseLinkClicking {
		t.Fatalf("Expected initial link-clicking mode, got %v", s.Mouse)
	}
	r.Reduce(s, ToggleMouseModeAction{})
	if s.Mouse != MouseTextSelection {
		t.Errorf("Expected text-selection mode, got %v", s.Mouse)
	}
	r.Reduce(s, ToggleMouseModeAction{})
	if s.Mouse != MouseLinkClicking {
		t.Errorf("Expected link-clicking mode, got %v", s.Mouse)
	}
}

func TestReducerSearchEditing(t *testing.T) {
	s := newTestState(t, 10, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, SearchStartAction{})
	if !s.SearchActive {
		t.Fatal("Expected search mode active")
	}
	for _, ch := range "grep" {
		r.Reduce(s, SearchCharAction{Char: ch})
	}
	if s.SearchQuery != "grep" || s.SearchCursor != 4 {
		t.Errorf("Expected query %q cursor 4, got %q cursor %d", "grep", s.SearchQuery, s.SearchCursor)
	}

	r.Reduce(s, SearchMoveCursorAction{Direction: "left"})
	r.Reduce(s, SearchCharAction{Char: 'a'})
	if s.SearchQuery != "greap" {
		t.Errorf("Expected %q, got %q", "greap", s.SearchQuery)
	}

	r.Reduce(s, SearchMoveCursorAction{Direction: "end"})
	r.Reduce(s, SearchBackspaceAction{})
	r.Reduce(s, SearchBackspaceAction{})
	if s.SearchQuery != "gre" {
		t.Errorf("Expected %q, got %q", "gre", s.SearchQuery)
	}

	r.Reduce(s, SearchCancelAction{})
	if s.SearchActive || s.SearchQuery != "" {
		t.Errorf("Expected cleared search state, got active=%v query=%q", s.SearchActive, s.SearchQuery)
	}
}

func TestReducerSearchMultibyteCursor(t *testing.T) {
	s := newTestState(t, 10, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, SearchStartAction{})
	r.Reduce(s, SearchCharAction{Char: 'a'})
	r.Reduce(s, SearchCharAction{Char: 'é'})
	r.Reduce(s, SearchCharAction{Char: 'b'})

	r.Reduce(s, SearchMoveCursorAction{Direction: "left"})
	r.Reduce(s, SearchMoveCursorAction{Direction: "left"})
	if s.SearchCursor != 1 {
		t.Errorf("Expected cursor at byte 1, got %d", s.SearchCursor)
	}
	r.Reduce(s, SearchBackspaceAction{})
	if s.SearchQuery != "éb" {
		t.Errorf("Expected %q, got %q", "éb", s.SearchQuery)
	}
}

func TestReducerSearchCommitLeavesComposeMode(t *testing.T) {
	s := newTestState(t, 10, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, SearchStartAction{})
	r.Reduce(s, SearchCharAction{Char: 'x'})
	r.Reduce(s, SearchCommitAction{})
	if s.SearchActive {
		t.Error("Expected search compose mode exited on commit")
	}
	if s.SearchQuery != "x" {
		t.Errorf("Expected committed query retained, got %q", s.SearchQuery)
	}
}

func TestReducerResizeReflowsAndClamps(t *testing.T) {
	s := newTestState(t, 50, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, JumpBottomAction{})
	before := s.ScrollOffset

	r.Reduce(s, ResizeAction{Width: 80, Height: 50})
	if s.ScrollOffset >= before {
		t.Errorf("Expected scroll reduced after growing the window, got %d (was %d)", s.ScrollOffset, before)
	}
	if s.ScreenHeight != 50 {
		t.Errorf("Expected height 50, got %d", s.ScreenHeight)
	}
}

func TestReducerResizeUpdatesManWidth(t *testing.T) {
	s := newTestState(t, 10, 80, 24)
	r := NewStateReducer()

	r.Reduce(s, ResizeAction{Width: 120, Height: 40})
	if got := os.Getenv(manwidth.EnvVar); got != "118" {
		t.Errorf("Expected MANWIDTH 118, got %q", got)
	}
}
