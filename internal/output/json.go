package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/emberprep/qlint/internal/crossfile"
	"github.com/emberprep/qlint/internal/runner"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{indent: indent, outputFile: outputFile}
}

// JSONReport represents the complete JSON report structure.
type JSONReport struct {
	Header   JSONHeader          `json:"header"`
	Summary  JSONSummary         `json:"summary"`
	Results  []runner.FileResult `json:"results"`
	Findings []crossfile.Finding `json:"findings,omitempty"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics.
type JSONSummary struct {
	TotalQuestions  int    `json:"total_questions"`
	Passed          int    `json:"passed"`
	Failed          int    `json:"failed"`
	AutoCorrectable int    `json:"auto_correctable"`
	TotalErrors     int    `json:"total_errors"`
	TotalWarnings   int    `json:"total_warnings"`
	SchemaFailures  int    `json:"schema_failures"`
	BaselineIgnored int    `json:"baseline_ignored,omitempty"`
	Duration        string `json:"duration"`
}

// Format renders the summary as JSON to the output file or stdout.
func (f *JSONFormatter) Format(summary *runner.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "qlint",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalQuestions:  summary.TotalQuestions,
			Passed:          summary.PassedQuestions,
			Failed:          summary.FailedQuestions,
			AutoCorrectable: summary.AutoCorrectable,
			TotalErrors:     summary.TotalErrors,
			TotalWarnings:   summary.TotalWarnings,
			SchemaFailures:  summary.SchemaFailures,
			BaselineIgnored: summary.BaselineIgnored,
			Duration:        time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results:  summary.Results,
		Findings: summary.Findings,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}
