// Package logger provides verbose logging for the triscore CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show what each pipeline stage did.
// Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	printf(true, "[DEBUG] "+format+"\n", args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	printf(true, "\n=== %s ===\n", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	printf(true, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	printf(false, "[WARN] "+format+"\n", args...)
}

// Stage prints a section header and returns a func that reports how long
// the stage took. Both are silent unless verbose mode is enabled.
//
//	done := logger.Stage("Load")
//	defer done()
func Stage(name string) func() {
	Section(name)
	start := now()
	return func() {
		printf(true, "[DEBUG] %s took %s\n", name, now().Sub(start).Round(time.Millisecond))
	}
}

func printf(verboseOnly bool, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(output, format, args...)
}
