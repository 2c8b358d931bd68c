// Package logger provides progress logging for the IntelliDoc CLI.
// Debug and Info messages go to stderr only when the --verbose flag is
// set; warnings are always printed so degraded modes (for example a
// missing AI provider) stay visible.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
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
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "debug: "+format+"\n", args...)
	}
}

// Section prints an underlined stage heading if verbose mode is
// enabled. Used to mark the start of a processing stage (extraction,
// summarisation, question answering).
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n%s\n%s\n", name, strings.Repeat("-", len(name)))
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "info: "+format+"\n", args...)
	}
}

// Warn prints a warning message. Warnings are not gated by verbose
// mode: a degraded state should be visible on every run.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "warning: "+format+"\n", args...)
}
