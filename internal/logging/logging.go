// Package logging configures the process-wide logger. Output goes to
// stderr so stdout stays parseable by scripts and pipelines.
package logging

import (
	"log/slog"
	"os"
	"time"
)

// Setup installs the default logger. Normal runs only surface warnings;
// debug runs include timing and diagnostic records.
func Setup(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// Timed reports how long a phase took, at debug level. Invoke the
// returned func when the phase ends:
//
//	defer logging.Timed("build tree", "pid", pid)()
func Timed(phase string, args ...any) func() {
	start := time.Now()
	return func() {
		slog.Debug(phase, append(args, "elapsed", time.Since(start))...)
	}
}
