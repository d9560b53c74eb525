package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ShouldSuppressProgressOutput returns true if progress output should be suppressed
func ShouldSuppressProgressOutput(outputFormat string) bool {
	return outputFormat == "json"
}

// Interactive reports whether banners, spinners and progress bars should be drawn: stdout must be
// a terminal and the report format must not be machine readable.
func Interactive(outputFormat string) bool {
	if ShouldSuppressProgressOutput(outputFormat) {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
