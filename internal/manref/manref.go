// Package manref parses man-page cross-reference tokens such as "mount(2)".
package manref

import (
	"errors"
	"strings"
)

// ErrNotReference reports that a token does not name a manual page.
var ErrNotReference = errors.New("not a man page reference")

// Reference identifies a manual page by name and single-digit section.
// References are only produced by Parse, so the fields are always safe to
// hand to a subprocess argument list.
type Reference struct {
	name    string
	section string
}

// Parse interprets token as a "name(section)" cross reference.
//
// Tokens containing a NUL byte or a path separator are rejected outright:
// the parsed pieces end up as argv words for the formatter, and neither
// character can appear in a legitimate page name. The closing parenthesis
// is deliberately not required, so "mount(2" parses; tightening that rule
// would change which clicks count as links.
func Parse(token string) (Reference, error) {
	if strings.ContainsAny(token, "/\x00") {
		return Reference{}, ErrNotReference
	}

	open := strings.IndexByte(token, '(')
	if open < 0 {
		return Reference{}, ErrNotReference
	}
	if open+1 >= len(token) || !isASCIIDigit(token[open+1]) {
		return Reference{}, ErrNotReference
	}

	return Reference{
		name:    token[:open],
		section: token[open+1 : open+2],
	}, nil
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Name returns the page name, e.g. "mount".
func (r Reference) Name() string {
	return r.name
}

// Section returns the single-digit section, e.g. "2".
func (r Reference) Section() string {
	return r.section
}

// Args returns the section and name as two separate argv words, the order
// man(1) expects them in.
func (r Reference) Args() []string {
	return []string{r.section, r.name}
}

func (r Reference) String() string {
	return r.name + "(" + r.section + ")"
}
