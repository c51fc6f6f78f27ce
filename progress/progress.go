package progress

import (
	"time"
)

// DefaultInterval is the minimum gap between two reports of one stage.
const DefaultInterval = 2 * time.Second

// Stage names a phase of a long-running computation.
type Stage string

// Stages reported by the Hecke algebra.
const (
	StageKLBasis     Stage = "kl-basis"
	StageDualKLBasis Stage = "dual-kl-basis"
	StageDigraph     Stage = "digraph"
	StageOrder       Stage = "order"
)

// String implements fmt.Stringer.
func (s Stage) String() string { return string(s) }

// Observer receives progress reports. percent is in [0, 100].
// Implementations must not call back into the reporting computation.
type Observer interface {
	Progress(stage Stage, percent float64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(stage Stage, percent float64)

// Progress calls f(stage, percent).
func (f ObserverFunc) Progress(stage Stage, percent float64) { f(stage, percent) }

type nop struct{}

func (nop) Progress(Stage, float64) {}

// Nop discards every report.
var Nop Observer = nop{}

// Reporter throttles reports of a single stage. It is not safe for
// concurrent use.
type Reporter struct {
	obs      Observer
	stage    Stage
	interval time.Duration
	last     time.Time
	done     bool
}

// NewReporter starts a throttled reporter for stage. A nil observer is
// replaced by Nop; a negative interval is treated as zero (report every
// Tick).
func NewReporter(obs Observer, stage Stage, interval time.Duration) *Reporter {
	if obs == nil {
		obs = Nop
	}

	return &Reporter{
		obs:      obs,
		stage:    stage,
		interval: max(interval, 0),
		last:     time.Now(),
	}
}

// Stage returns the stage this reporter speaks for.
func (r *Reporter) Stage() Stage { return r.stage }

// Tick records that done of total work units are finished and reports the
// percentage if at least one interval has passed since the last report.
// Ticks after Done and ticks with total ≤ 0 are ignored.
func (r *Reporter) Tick(done, total int) {
	if r.done || total <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(r.last) < r.interval {
		return
	}
	r.last = now
	r.obs.Progress(r.stage, percent(done, total))
}

// Done reports 100% exactly once.
func (r *Reporter) Done() {
	if r.done {
		return
	}
	r.done = true
	r.obs.Progress(r.stage, 100)
}

func percent(done, total int) float64 {
	done = min(max(done, 0), total)

	return 100 * float64(done) / float64(total)
}
