// Package diag holds process-level diagnostic setup shared by the cmd entry
// points: log configuration and panic reporting.
package diag

import (
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

var initOnce sync.Once

// Init configures the standard logger once per process. Later calls are
// no-ops, so every entry point may call it unconditionally.
// A nil w means os.Stderr.
func Init(prefix string, w io.Writer) {
	initOnce.Do(func() {
		if w == nil {
			w = os.Stderr
		}
		log.SetOutput(w)
		log.SetPrefix(prefix)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.Printf("[DIAG] logging initialized")
	})
}

// LogPanic records a recovered panic value with the current stack trace.
// Call it from a deferred recover block.
func LogPanic(where string, v any) {
	log.Printf("[PANIC] %s: %v\n%s", where, v, debug.Stack())
}
