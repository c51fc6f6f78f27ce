package progress_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/progress"
)

type report struct {
	stage   progress.Stage
	percent float64
}

func recorder(out *[]report) progress.Observer {
	return progress.ObserverFunc(func(s progress.Stage, p float64) {
		*out = append(*out, report{s, p})
	})
}

func TestReporter_EveryTickWithZeroInterval(t *testing.T) {
	var got []report
	r := progress.NewReporter(recorder(&got), progress.StageKLBasis, 0)
	assert.Equal(t, progress.StageKLBasis, r.Stage())

	r.Tick(1, 4)
	r.Tick(2, 4)
	r.Tick(9, 4) // clamped
	r.Done()
	r.Done() // once only
	r.Tick(3, 4)

	assert.Equal(t, []report{
		{progress.StageKLBasis, 25},
		{progress.StageKLBasis, 50},
		{progress.StageKLBasis, 100},
		{progress.StageKLBasis, 100},
	}, got)
}

func TestReporter_Throttled(t *testing.T) {
	var got []report
	r := progress.NewReporter(recorder(&got), progress.StageOrder, time.Hour)
	for i := 0; i < 100; i++ {
		r.Tick(i, 100)
	}
	r.Done()

	require.Len(t, got, 1)
	assert.Equal(t, report{progress.StageOrder, 100}, got[0])
}

func TestReporter_NilObserverAndBadTotal(t *testing.T) {
	r := progress.NewReporter(nil, progress.StageDigraph, -time.Second)
	assert.NotPanics(t, func() {
		r.Tick(1, 0)
		r.Tick(1, 2)
		r.Done()
	})
	progress.Nop.Progress(progress.StageDigraph, 50)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	progress.NewLogObserver(logger).Progress(progress.StageDualKLBasis, 42.5)

	out := buf.String()
	assert.Contains(t, out, "progress")
	assert.Contains(t, out, "dual-kl-basis")
	assert.Contains(t, out, "42.5%")
}

func TestLogObserver_FilteredBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	progress.NewLogObserver(logger).Progress(progress.StageKLBasis, 10)
	assert.Zero(t, buf.Len())
}
