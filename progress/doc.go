// Package progress carries optional, purely observational progress reports
// out of long-running computations.
//
// A computation owns a Reporter per stage and calls Tick(done, total) as
// often as it likes; the Reporter forwards a percentage to the Observer at
// most once per interval, and Done always forwards a final 100%. A nil or
// Nop observer costs one time comparison per Tick.
//
// NewLogObserver adapts an Observer onto a charmbracelet/log Logger.
package progress
