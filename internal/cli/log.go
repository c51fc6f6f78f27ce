// Package cli implements the hecke command-line interface.
//
// The commands build a Coxeter group, either from the classical catalog
// (--group) or from a TOML generator file (--generators), wrap it in a
// Hecke algebra and print its bases, KL orders or filtrations.
//
// # Logging
//
// All commands support --verbose (-v): debug-level logging plus progress
// records for the KL basis, dual KL basis, digraph and order stages.
// Loggers travel through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer logs the elapsed duration of one operation.
type timer struct {
	logger *log.Logger
	start  time.Time
}

func newTimer(l *log.Logger) *timer {
	return &timer{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond at debug
// level, e.g. "kl basis (12ms)".
func (t *timer) done(msg string) {
	t.logger.Debugf("%s (%s)", msg, time.Since(t.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
