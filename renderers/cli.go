package renderers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/ecs-nuke/reporting"
	"github.com/pterm/pterm"
)

const (
	SuccessEmoji = "✅"
	FailureEmoji = "❌"
)

// CLIRenderer buffers events and prints them as tables once the run completes. A dry run only
// produces found resources, so it gets the listing table instead of the deletion report.
type CLIRenderer struct {
	writer  io.Writer
	found   []reporting.ResourceFound
	deleted []reporting.ResourceDeleted
	errors  []reporting.GeneralError
}

// NewCLIRenderer creates a CLI renderer.
// The writer parameter specifies where the final table output will be written.
func NewCLIRenderer(writer io.Writer) *CLIRenderer {
	if writer == nil {
		writer = os.Stdout
	}
	return &CLIRenderer{writer: writer}
}

func (r *CLIRenderer) OnEvent(event reporting.Event) {
	switch e := event.(type) {
	case reporting.ResourceFound:
		r.found = append(r.found, e)
	case reporting.ResourceDeleted:
		r.deleted = append(r.deleted, e)
	case reporting.GeneralError:
		r.errors = append(r.errors, e)
	}
}

func (r *CLIRenderer) Render() error {
	if err := r.printErrors(); err != nil {
		return err
	}
	if len(r.deleted) == 0 && len(r.found) > 0 {
		return r.printFound()
	}
	return r.printRunReport()
}

func (r *CLIRenderer) printErrors() error {
	if len(r.errors) == 0 {
		return nil
	}

	tableData := pterm.TableData{
		{"Region", "Resource Type", "Description", "Error"},
	}
	for _, e := range r.errors {
		tableData = append(tableData, []string{e.Region, e.ResourceType, e.Description, truncate(removeNewlines(e.Error), 80)})
	}

	return r.table(tableData)
}

func (r *CLIRenderer) printFound() error {
	tableData := pterm.TableData{
		{"Resource Type", "Region", "Identifier"},
	}
	for _, e := range r.found {
		tableData = append(tableData, []string{e.ResourceType, e.Region, e.Identifier})
	}

	return r.table(tableData)
}

func (r *CLIRenderer) printRunReport() error {
	if len(r.deleted) == 0 {
		pterm.Info.WithWriter(r.writer).Println("No resources touched in this run.")
		return nil
	}

	tableData := pterm.TableData{
		{"Identifier", "Resource Type", "Region", "Deleted Successfully"},
	}

	for _, res := range r.deleted {
		var status string
		if res.Success {
			status = SuccessEmoji
		} else {
			status = fmt.Sprintf("%s %s", FailureEmoji, truncate(removeNewlines(res.Error), 40))
		}
		tableData = append(tableData, []string{res.Identifier, res.ResourceType, res.Region, status})
	}

	return r.table(tableData)
}

func (r *CLIRenderer) table(data pterm.TableData) error {
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithRowSeparator("-").
		WithLeftAlignment().
		WithData(data).
		WithWriter(r.writer).
		Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func removeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}
