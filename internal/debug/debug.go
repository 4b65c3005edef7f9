// Package debug provides optional file-based debug logging.
//
// When the FLEXUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, Log is a no-op. Logging
// is for developers instrumenting the engine itself (capacity exhaustion,
// cycle rejection, cache invalidation) — it is never required to interpret
// the public API.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu       sync.Mutex
	logFile  *os.File
	inited   bool
	disabled bool
)

// Log writes a timestamped message to the debug log if FLEXUI_DEBUG is set.
// Safe to call from any goroutine; a no-op until the first call performs
// lazy initialization from the environment.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		initLocked()
	}
	if disabled {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

func initLocked() {
	inited = true

	path := os.Getenv("FLEXUI_DEBUG")
	if path == "" {
		disabled = true
		return
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			disabled = true
			return
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		disabled = true
		return
	}
	logFile = f
}

// Close closes the debug log file, if one was opened. Safe to call even
// when logging was never enabled.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
