// Package manwidth negotiates the MANWIDTH environment variable across
// pager generations, so that every process in a jump chain formats its
// page to the same column count as the original terminal.
package manwidth

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// EnvVar is consumed by man(1) when it formats a page.
const EnvVar = "MANWIDTH"

const (
	// defaultColumns mirrors man's own assumption when the terminal size
	// cannot be determined.
	defaultColumns = 80

	// borderMargin accounts for the left and right border columns of the
	// content frame.
	borderMargin = 2
)

// Ensure sets MANWIDTH from the terminal size unless an ancestor pager
// already set it to a usable value. Called once before the startup
// re-exec; a set variable is the signal that an ancestor did the work.
func Ensure() error {
	if _, err := strconv.ParseUint(os.Getenv(EnvVar), 10, 16); err == nil {
		return nil
	}
	return Set(ttyColumns())
}

// Set records cols, minus the frame margin, as the negotiated width.
// Resize handling calls Set directly: the ancestor-skip rule in Ensure
// only protects the startup re-exec, not interactive resizes. The stored
// value never drops below one column; man treats MANWIDTH=0 as unset.
func Set(cols int) error {
	width := cols - borderMargin
	if width < 1 {
		width = 1
	}
	return os.Setenv(EnvVar, strconv.Itoa(width))
}

func ttyColumns() int {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return defaultColumns
	}
	defer func() {
		_ = tty.Close()
	}()

	cols, _, err := term.GetSize(int(tty.Fd()))
	if err != nil || cols <= 0 {
		return defaultColumns
	}
	return cols
}
