package output

import (
	"github.com/emberprep/qlint/internal/runner"
	"github.com/emberprep/qlint/internal/validate"
)

// TextFormatter renders the plain-text operational report.
type TextFormatter struct {
	outputFile string
}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter(outputFile string) *TextFormatter {
	return &TextFormatter{outputFile: outputFile}
}

// Format renders the summary's validation results through the batch report
// generator.
func (f *TextFormatter) Format(summary *runner.Summary) error {
	report := validate.GenerateValidationReport(summary.ValidationResults())
	return writeOut(report, f.outputFile)
}
