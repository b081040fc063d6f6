package textutil

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// WordLocator resolves a clicked screen position to the word under it.
//
// The grapheme-offset cache is keyed by full line text, so two lines with
// identical content share one entry, and lines regenerated by a reflow
// leave stale entries unreferenced rather than wrong. A locator belongs to
// the event-loop goroutine that owns it; it is not safe for concurrent
// use.
type WordLocator struct {
	offsets map[string][]int
}

// NewWordLocator returns a locator with an empty cache.
func NewWordLocator() *WordLocator {
	return &WordLocator{offsets: make(map[string][]int)}
}

// WordAt maps a screen position to the word spanning it. row is the
// screen row of the click and col the screen column; column 0 is the
// frame border and never holds a word, and the document line index is
// row+scroll-1 to account for the top border row. The returned string is
// a byte slice of the underlying line.
//
// Boundary characters are asymmetric on purpose: scanning left breaks at
// parentheses so a click inside "(2)" stays detached from whatever
// precedes the token, while scanning right passes over them so a click on
// the name part of "bar(1)" keeps its trailing "(1)". Slashes break both
// ways to keep path fragments out of reference tokens.
func (l *WordLocator) WordAt(lines []string, scroll, row, col int) (string, bool) {
	if col < 1 {
		return "", false
	}
	col--

	idx := row + scroll - 1
	if idx < 0 || idx >= len(lines) {
		return "", false
	}
	line := lines[idx]

	clusters := graphemeClusters(line)
	if col >= len(clusters) {
		return "", false
	}
	if clusterIsSpace(clusters[col]) {
		return "", false
	}

	start := col
	for start > 0 && !leftBoundary(clusters[start-1]) {
		start--
	}
	end := col
	for end < len(clusters) && !rightBoundary(clusters[end]) {
		end++
	}

	offs := l.lineOffsets(line, clusters)
	return line[offs[start]:offs[end]], true
}

// lineOffsets returns the grapheme-boundary byte offsets for line:
// len(clusters)+1 entries, monotonically increasing, first 0 and last
// len(line). Computed once per distinct line text.
func (l *WordLocator) lineOffsets(line string, clusters []string) []int {
	if offs, ok := l.offsets[line]; ok {
		return offs
	}

	offs := make([]int, 0, len(clusters)+1)
	pos := 0
	offs = append(offs, pos)
	for _, cluster := range clusters {
		pos += len(cluster)
		offs = append(offs, pos)
	}
	l.offsets[line] = offs
	return offs
}

func graphemeClusters(line string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

func clusterIsSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func leftBoundary(cluster string) bool {
	switch cluster {
	case "/", "(", ")":
		return true
	}
	return clusterIsSpace(cluster)
}

func rightBoundary(cluster string) bool {
	return cluster == "/" || clusterIsSpace(cluster)
}
