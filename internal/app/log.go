package app

import (
	"io"
	"log"
)

// debugLog receives diagnostic output when enabled. The screen owns the
// terminal, so logging goes to a file instead of stderr.
var debugLog *log.Logger

// EnableDebugLog directs debug logging to w.
func EnableDebugLog(w io.Writer) {
	debugLog = log.New(w, "manlink: ", log.LstdFlags|log.Lmicroseconds)
}

func debugf(format string, args ...any) {
	if debugLog == nil {
		return
	}
	debugLog.Printf(format, args...)
}
