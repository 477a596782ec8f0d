// Package logger provides diagnostic logging for the docdex CLI.
// Debug and info messages are gated behind verbose mode (the
// --verbose flag) and help users follow the index build and query
// pipeline. Warnings about skipped files or malformed frontmatter
// always print, since they explain why a document is missing from
// results.
//
// All output goes to stderr: stdout belongs to command output and,
// in MCP mode, to the protocol stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose turns the gated levels (Debug, Info, Section) on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether gated levels currently print.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, which normally goes to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf writes one line under the read lock. Gated lines are dropped
// unless verbose mode is on.
func logf(gated bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug traces fine-grained pipeline steps in verbose mode.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info reports build and query progress in verbose mode.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Section prints a banner between build phases in verbose mode.
func Section(name string) {
	logf(true, "", "\n=== %s ===", name)
}

// Warn reports a skipped or malformed document. Warnings are not
// gated: a skipped file changes query results, and the reason should
// be visible by default.
func Warn(format string, args ...any) {
	logf(false, "[WARN] ", format, args...)
}
