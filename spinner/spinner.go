// Package spinner shows a spinner while a region is being listed.
package spinner

import (
	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/pterm/pterm"
)

var sequence = []string{"☢️ ", "💥", "🔥", "❌"}

// Spinner wraps a running pterm spinner. A nil *Spinner does nothing, so callers never check
// whether it was enabled.
type Spinner struct {
	printer *pterm.SpinnerPrinter
}

// Start starts a spinner with text when enabled, and returns nil otherwise.
func Start(text string, enabled bool) *Spinner {
	if !enabled {
		return nil
	}
	printer, err := pterm.DefaultSpinner.WithSequence(sequence...).WithRemoveWhenDone(true).Start(text)
	if err != nil {
		logging.Debugf("Unable to start spinner: %v", err)
		return nil
	}
	return &Spinner{printer: printer}
}

func (s *Spinner) UpdateText(text string) {
	if s == nil {
		return
	}
	s.printer.UpdateText(text)
}

// Stop removes the spinner.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	if err := s.printer.Stop(); err != nil {
		logging.Debugf("Unable to stop spinner: %v", err)
	}
}
