// Package cli implements the panelcut command-line interface.
//
// Commands cover the full host workflow around the region engine: computing
// panels for a saved project (with PDF/SVG/PNG/CSS/manifest/label exports),
// importing divider-line sets from CSV, Excel, or DXF files, and managing
// layout templates and page presets. The CLI is built on cobra; logging goes
// through charmbracelet/log with --verbose switching to debug level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "panelcut",
		Level:           level,
	})
}

// ctxKey is a private context-key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches a logger to the context for command handlers.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the command logger, falling back to the
// package default so handlers always have one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
