// Package outputters dispatches a run summary to the configured formatter.
package outputters

import (
	"fmt"
	"time"

	"github.com/emberprep/qlint/internal/config"
	"github.com/emberprep/qlint/internal/output"
	"github.com/emberprep/qlint/internal/runner"
)

// Outputter handles output formatting.
type Outputter struct {
	config     *config.Config
	showScores bool
}

// NewOutputter creates a new Outputter.
func NewOutputter(cfg *config.Config, showScores bool) *Outputter {
	return &Outputter{config: cfg, showScores: showScores}
}

// Format renders the summary using the configured format.
func (o *Outputter) Format(summary *runner.Summary, format string) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}

	switch format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.showScores).Format(summary)
	case "json":
		return output.NewJSONFormatter(true, o.config.Output).Format(summary)
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Verbose, o.config.Output).Format(summary)
	case "text":
		return output.NewTextFormatter(o.config.Output).Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
