// Package progressbar tracks how many regions of a multi-region run are done.
package progressbar

import (
	"time"

	"github.com/gruntwork-io/ecs-nuke/logging"
	"github.com/pterm/pterm"
)

// ProgressBar wraps a running pterm progress bar. A nil *ProgressBar does nothing.
type ProgressBar struct {
	printer *pterm.ProgressbarPrinter
}

// StartProgressBarWithLength starts a bar of length steps when enabled, and returns nil otherwise.
func StartProgressBarWithLength(title string, length int, enabled bool) *ProgressBar {
	if !enabled || length <= 0 {
		return nil
	}
	printer, err := pterm.DefaultProgressbar.
		WithTitle(title).
		WithTotal(length).
		WithRemoveWhenDone(true).
		WithElapsedTimeRoundingFactor(time.Second).
		Start()
	if err != nil {
		logging.Debugf("Unable to start progress bar: %v", err)
		return nil
	}
	return &ProgressBar{printer: printer}
}

func (p *ProgressBar) UpdateTitle(title string) {
	if p == nil {
		return
	}
	p.printer.UpdateTitle(title)
}

func (p *ProgressBar) Increment() {
	if p == nil {
		return
	}
	p.printer.Increment()
}

func (p *ProgressBar) Stop() {
	if p == nil {
		return
	}
	if _, err := p.printer.Stop(); err != nil {
		logging.Debugf("Unable to stop progress bar: %v", err)
	}
}
