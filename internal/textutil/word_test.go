package textutil

import (
	"strings"
	"testing"
)

func wordAtByteCol(t *testing.T, l *WordLocator, lines []string, scroll, row, byteCol int) (string, bool) {
	t.Helper()
	// Content starts at screen column 1; the tests below use ASCII-only
	// prefixes so byte offset equals cluster index.
	return l.WordAt(lines, scroll, row, byteCol+1)
}

func TestWordAtResolvesReferenceToken(t *testing.T) {
	lines := []string{
		"NAME",
		"       foo - does things, see bar(1) for more",
	}
	l := NewWordLocator()

	col := strings.Index(lines[1], "bar")
	word, ok := wordAtByteCol(t, l, lines, 0, 2, col)
	if !ok {
		t.Fatal("Expected a word under the cursor")
	}
	if word != "bar(1)" {
		t.Errorf("Expected %q, got %q", "bar(1)", word)
	}
}

func TestWordAtAppliesScrollOffset(t *testing.T) {
	lines := []string{"zero", "one", "two", "three"}
	l := NewWordLocator()

	// Row 1 with scroll 2 lands on document line 2.
	word, ok := l.WordAt(lines, 2, 1, 1)
	if !ok {
		t.Fatal("Expected a word under the cursor")
	}
	if word != "two" {
		t.Errorf("Expected %q, got %q", "two", word)
	}
}

func TestWordAtBorderColumnIsNotAWord(t *testing.T) {
	l := NewWordLocator()
	if _, ok := l.WordAt([]string{"text"}, 0, 1, 0); ok {
		t.Error("Expected no word at the frame border column")
	}
}

func TestWordAtWhitespaceIsNotAWord(t *testing.T) {
	lines := []string{"foo bar"}
	l := NewWordLocator()
	if _, ok := wordAtByteCol(t, l, lines, 0, 1, 3); ok {
		t.Error("Expected no word on a space")
	}
}

func TestWordAtOutOfRange(t *testing.T) {
	lines := []string{"short"}
	l := NewWordLocator()
	if _, ok := l.WordAt(lines, 0, 9, 1); ok {
		t.Error("Expected no word below the document")
	}
	if _, ok := l.WordAt(lines, 0, 1, 40); ok {
		t.Error("Expected no word past the end of the line")
	}
	if _, ok := l.WordAt(lines, 5, 1, 1); ok {
		t.Error("Expected no word when scrolled past the document")
	}
}

func TestWordAtSlashSplitsBothDirections(t *testing.T) {
	lines := []string{"foo/bar(1)"}
	l := NewWordLocator()

	word, ok := wordAtByteCol(t, l, lines, 0, 1, strings.Index(lines[0], "bar"))
	if !ok || word != "bar(1)" {
		t.Errorf("Expected %q, got %q (ok=%v)", "bar(1)", word, ok)
	}

	word, ok = wordAtByteCol(t, l, lines, 0, 1, 0)
	if !ok || word != "foo" {
		t.Errorf("Expected %q, got %q (ok=%v)", "foo", word, ok)
	}
}

func TestWordAtParensBreakLeftwardOnly(t *testing.T) {
	lines := []string{"see mount(2) here"}
	l := NewWordLocator()

	// Clicking the digit inside the parens must not absorb the name.
	word, ok := wordAtByteCol(t, l, lines, 0, 1, strings.Index(lines[0], "2)"))
	if !ok {
		t.Fatal("Expected a word under the cursor")
	}
	if word != "2)" {
		t.Errorf("Expected %q, got %q", "2)", word)
	}
}

func TestWordAtGraphemeClusters(t *testing.T) {
	// Each e+combining-acute is one cluster occupying one column.
	line := "résumé(1) rocks"
	lines := []string{line}
	l := NewWordLocator()

	// Cluster column 2 is the 's'; cluster columns start at screen col 1.
	word, ok := l.WordAt(lines, 0, 1, 3)
	if !ok {
		t.Fatal("Expected a word under the cursor")
	}
	if word != "résumé(1)" {
		t.Errorf("Expected accented token, got %q", word)
	}
}

func TestWordAtCachesOffsetsPerLine(t *testing.T) {
	lines := []string{"same line", "same line"}
	l := NewWordLocator()

	first, ok1 := l.WordAt(lines, 0, 1, 1)
	second, ok2 := l.WordAt(lines, 0, 2, 1)
	if !ok1 || !ok2 {
		t.Fatal("Expected words on both rows")
	}
	if first != second {
		t.Errorf("Expected identical words, got %q and %q", first, second)
	}
	if len(l.offsets) != 1 {
		t.Errorf("Expected one cache entry for identical lines, got %d", len(l.offsets))
	}
}
