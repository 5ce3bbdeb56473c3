// Package logging provides the leveled, structured logger every other
// package writes through. The original LOOT core guards every log call
// behind "if (logger) { ... }" because it can run with no logging
// backend attached at all (library mode). Logger reproduces that
// ergonomic with a package-level variable that defaults to a discard
// sink, so calling code never needs a nil check: library callers get
// silence, and the CLI's watch command (and sort, with --verbose)
// swaps in a real logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the logger every package in this module writes through.
// It defaults to discarding everything, matching a caller that never
// attached a logging backend. cmd/lootsort replaces it with a real
// logger writing to stderr.
var Logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "lootsort"})

// UseStderr switches Logger to a real, leveled logger writing to w
// (the CLI passes os.Stderr), prefixed and levelled for the CLI.
func UseStderr(w io.Writer, verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	Logger = log.NewWithOptions(w, log.Options{
		Prefix:          "lootsort",
		ReportTimestamp: true,
		Level:           level,
	})
}
