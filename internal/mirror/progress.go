package mirror

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress while a tree is converted. Calls come from a
// single goroutine.
type Reporter interface {
	Start(total int)
	Advance(path string)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(int)      {}
func (nopReporter) Advance(string) {}
func (nopReporter) Finish()        {}

// BarReporter draws a progress bar on a writer, usually stderr.
type BarReporter struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

// NewBarReporter creates a reporter that renders to w.
func NewBarReporter(w io.Writer, description string) *BarReporter {
	return &BarReporter{w: w, description: description}
}

// Start implements Reporter.
func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(r.w)
		}),
	)
}

// Advance implements Reporter.
func (r *BarReporter) Advance(string) {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

// Finish implements Reporter.
func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}
