package state

import (
	"errors"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/kk-code-lab/manlink/internal/textutil"
)

// ErrNoPageID reports piped input whose first line does not start with a
// recognizable page identifier.
var ErrNoPageID = errors.New("no whitespace found in document text")

// Document holds a formatted manual page: the raw piped bytes, the page
// identifier from its header, and the current wrapped form. Lines and
// Styled are parallel: Styled[i].Plain() == Lines[i] for every row, so
// screen positions resolved against Lines index Styled exactly.
type Document struct {
	Raw    string
	PageID string
	Title  string

	Lines  []string
	Styled []StyledLine

	unwrapped []StyledLine
	tabWidth  int
}

// NewDocument parses raw pager input into an unwrapped document. Reflow
// must be called before rendering; until then Lines mirrors the unwrapped
// text.
func NewDocument(raw string, tabWidth int) (*Document, error) {
	pageID, err := PageIdentifier(raw)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Raw:      raw,
		PageID:   pageID,
		Title:    "manlink - " + pageID,
		tabWidth: tabWidth,
	}
	doc.buildUnwrapped()

	doc.Lines = make([]string, len(doc.unwrapped))
	doc.Styled = make([]StyledLine, len(doc.unwrapped))
	for i, line := range doc.unwrapped {
		doc.Lines[i] = line.Plain()
		doc.Styled[i] = line
	}
	return doc, nil
}

// PageIdentifier extracts the page identifier from the top of raw man
// output: the header's first whitespace-delimited token, typically
// "NAME(SECTION)", with any escape sequences removed.
func PageIdentifier(raw string) (string, error) {
	idx := strings.IndexFunc(raw, unicode.IsSpace)
	if idx < 0 {
		return "", ErrNoPageID
	}
	return ansi.Strip(raw[:idx]), nil
}

// buildUnwrapped splits Raw into lines and parses each into styled
// segments with tabs expanded. Tab stops are computed against the visible
// column, which escape sequences do not advance, so expansion runs on the
// parsed segments rather than the raw bytes.
func (d *Document) buildUnwrapped() {
	rawLines := strings.Split(d.Raw, "\n")
	if n := len(rawLines); n > 0 && rawLines[n-1] == "" {
		rawLines = rawLines[:n-1]
	}

	d.unwrapped = make([]StyledLine, len(rawLines))
	style := newSGRState()
	for i, rawLine := range rawLines {
		rawLine = strings.TrimSuffix(rawLine, "\r")

		var line StyledLine
		line, style = parseStyledLine(rawLine, style)

		col := 0
		for j := range line {
			line[j].Text, col = textutil.ExpandTabsFrom(line[j].Text, d.tabWidth, col)
		}
		d.unwrapped[i] = line
	}
}

// Reflow rewraps the document to width display columns, rebuilding Lines
// and Styled in lockstep.
func (d *Document) Reflow(width int) {
	if width < 1 {
		width = 1
	}

	d.Lines = d.Lines[:0]
	d.Styled = d.Styled[:0]
	for _, line := range d.unwrapped {
		plain := line.Plain()
		for _, sp := range textutil.WrapSpans(plain, width) {
			d.Lines = append(d.Lines, plain[sp.Start:sp.End])
			d.Styled = append(d.Styled, line.Slice(sp.Start, sp.End))
		}
	}
}

// LineCount reports the number of wrapped lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
