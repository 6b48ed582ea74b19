package mlbuf

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// debugLogger is a minimal on/off logger for the buffer's internal debug
// traces — the Go analogue of the original's MLBUF_DEBUG_PRINTF macro,
// which is compiled out unless a debug flag is set.
type debugLogger struct {
	mu      sync.Mutex
	enabled bool
	output  io.Writer
}

var defaultDebugLogger = &debugLogger{output: os.Stderr}

// SetDebug enables or disables debug tracing for this package. Disabled by
// default.
func SetDebug(enabled bool) {
	defaultDebugLogger.mu.Lock()
	defer defaultDebugLogger.mu.Unlock()
	defaultDebugLogger.enabled = enabled
}

// SetDebugOutput redirects debug tracing to w.
func SetDebugOutput(w io.Writer) {
	defaultDebugLogger.mu.Lock()
	defer defaultDebugLogger.mu.Unlock()
	defaultDebugLogger.output = w
}

func debugf(format string, args ...any) {
	defaultDebugLogger.mu.Lock()
	defer defaultDebugLogger.mu.Unlock()
	if !defaultDebugLogger.enabled {
		return
	}
	fmt.Fprintf(defaultDebugLogger.output, "mlbuf: "+format+"\n", args...)
}
