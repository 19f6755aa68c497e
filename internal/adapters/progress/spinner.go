package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/osx-upgrade/internal/usecase"
)

// SpinnerSink shows generation progress with a spinner. It writes to its
// own writer (stderr) so stdout only carries the generated JSON.
type SpinnerSink struct {
	spinner    *spinner.Spinner
	out        io.Writer
	stage      string
	stageStart time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.stage {
		r.completeStage()
		r.stage = event.Stage
		r.stageStart = time.Now()
	}

	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		suffix := event.Message
		if event.Total > 0 {
			suffix = fmt.Sprintf("%s (%d/%d)", event.Message, event.Current, event.Total)
		}
		r.spinner.Suffix = " " + suffix
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}

	if event.Stage == usecase.StageCompleted {
		fmt.Fprintln(r.out, color.New(color.FgGreen).Sprintf("✓ %s", event.Message))
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgCyan).Sprint(message))
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprint(message))
	})
}

// Stop stops the spinner if it is still running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// completeStage prints the duration of a finished stage when it was slow
func (r *SpinnerSink) completeStage() {
	if r.stage == "" {
		return
	}
	if r.stage != usecase.StageCompleted && time.Since(r.stageStart) > time.Second {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprintf("  %s took %s", r.stage, time.Since(r.stageStart).Round(time.Millisecond)))
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
