package progress

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// LogObserver writes each report as an info-level record with structured
// stage and percent fields.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns an Observer logging to l, or to log.Default()
// when l is nil.
func NewLogObserver(l *log.Logger) *LogObserver {
	if l == nil {
		l = log.Default()
	}

	return &LogObserver{logger: l}
}

// Progress implements Observer.
func (o *LogObserver) Progress(stage Stage, percent float64) {
	o.logger.Info("progress", "stage", stage.String(), "percent", fmt.Sprintf("%.1f%%", percent))
}
