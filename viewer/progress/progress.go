// Package progress defines the boundary to whatever displays load progress
// to the user — an on-page overlay in the original showcase, a log line in a
// headless run. The asset pipeline only ever talks to the Sink interface.
package progress

import (
	"fmt"

	"github.com/Carmen-Shannon/showroom-go/logging"
)

// Sink receives loading progress for display. Implementations must tolerate
// calls in any order; the pipeline shows the sink before the primary load and
// hides it when that load settles.
type Sink interface {
	// Show makes the progress display visible.
	Show()

	// Hide removes the progress display.
	Hide()

	// Progress reports fractional completion of the load being displayed.
	//
	// Parameters:
	//   - fraction: completion in [0, 1]; 0 also covers unknown totals
	Progress(fraction float32)

	// Failure reports that the displayed load failed.
	//
	// Parameters:
	//   - err: the load error
	Failure(err error)
}

// logSink renders progress as log lines.
type logSink struct {
	log *logging.Logger
}

// nopSink discards everything.
type nopSink struct{}

var _ Sink = &logSink{}
var _ Sink = nopSink{}

// NewLogSink creates a Sink that renders progress as percentage text through
// the given logger.
//
// Parameters:
//   - log: the logger to render through (nil falls back to a no-op logger)
//
// Returns:
//   - Sink: the logging sink
func NewLogSink(log *logging.Logger) Sink {
	if log == nil {
		log = logging.Nop()
	}
	return &logSink{log: log}
}

// NewNopSink creates a Sink that discards all progress reports.
//
// Returns:
//   - Sink: the no-op sink
func NewNopSink() Sink {
	return nopSink{}
}

func (s *logSink) Show() {
	s.log.Infow("loading started")
}

func (s *logSink) Hide() {
	s.log.Infow("loading finished")
}

func (s *logSink) Progress(fraction float32) {
	s.log.Infof("loading %s", FormatPercent(fraction))
}

func (s *logSink) Failure(err error) {
	s.log.Warnw("loading failed", "error", err)
}

func (nopSink) Show()                  {}
func (nopSink) Hide()                  {}
func (nopSink) Progress(float32)       {}
func (nopSink) Failure(error)          {}

// FormatPercent renders a fraction as the percentage text a display sink
// shows, clamping out-of-range values.
//
// Parameters:
//   - fraction: completion in [0, 1]
//
// Returns:
//   - string: percentage text such as "42%"
func FormatPercent(fraction float32) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("%.0f%%", fraction*100)
}
