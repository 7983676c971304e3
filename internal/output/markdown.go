package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/emberprep/qlint/internal/runner"
	"github.com/emberprep/qlint/internal/scoring"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{verbose: verbose, outputFile: outputFile}
}

// Format renders the summary as Markdown to the output file or stdout.
func (f *MarkdownFormatter) Format(summary *runner.Summary) error {
	var builder strings.Builder

	builder.WriteString("# Question Validation Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Content root:** %s\n\n", summary.ContentRoot))
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", time.Since(summary.StartTime).Round(time.Millisecond)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Questions | %d |\n", summary.TotalQuestions))
	builder.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.PassedQuestions))
	builder.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedQuestions))
	builder.WriteString(fmt.Sprintf("| Auto-correctable | %d |\n", summary.AutoCorrectable))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", summary.TotalErrors))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", summary.TotalWarnings))
	if summary.SchemaFailures > 0 {
		builder.WriteString(fmt.Sprintf("| Schema failures | %d |\n", summary.SchemaFailures))
	}
	builder.WriteString("\n")

	builder.WriteString("## Detailed Results\n\n")
	if summary.TotalQuestions == 0 && summary.SchemaFailures == 0 {
		builder.WriteString("*No questions found to validate.*\n\n")
	}

	for _, fr := range summary.Results {
		if len(fr.SchemaErrors) > 0 {
			builder.WriteString(fmt.Sprintf("### %s\n\nStatus: ❌ (schema)\n\n", fr.File))
			for _, e := range fr.SchemaErrors {
				builder.WriteString(fmt.Sprintf("- %s\n", e.Message))
			}
			builder.WriteString("\n")
			continue
		}
		if fr.Result.Passed && !f.verbose {
			continue
		}

		builder.WriteString(fmt.Sprintf("### %s\n\n", fr.Result.QuestionID))
		builder.WriteString(fmt.Sprintf("Status: %s\n\n", statusEmoji(fr.Result.Passed)))
		builder.WriteString(fmt.Sprintf("File: `%s`\n\n", fr.File))
		if fr.Score != nil {
			info := scoring.GetTierInfo(fr.Score.Tier)
			builder.WriteString(fmt.Sprintf("Ember Score: **%.0f/100** (%s)\n\n", fr.Score.Score, info.Label))
		}

		if len(fr.Result.Errors) > 0 {
			builder.WriteString("#### Errors\n\n")
			for _, e := range fr.Result.Errors {
				builder.WriteString(fmt.Sprintf("- **%s** - %s", e.Field, e.Message))
				if e.SuggestedFix != "" {
					builder.WriteString(fmt.Sprintf(" (fix: %s)", e.SuggestedFix))
				}
				builder.WriteString("\n")
			}
			builder.WriteString("\n")
		}

		if len(fr.Result.Warnings) > 0 {
			builder.WriteString("#### Warnings\n\n")
			for _, w := range fr.Result.Warnings {
				builder.WriteString(fmt.Sprintf("- %s\n", w.Message))
			}
			builder.WriteString("\n")
		}
	}

	if len(summary.Findings) > 0 {
		builder.WriteString("## Cross-file Findings\n\n")
		for _, finding := range summary.Findings {
			builder.WriteString(fmt.Sprintf("- %s (`%s`)\n", finding.Message, strings.Join(finding.Files, "`, `")))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## Conclusion\n\n")
	if summary.FailedQuestions == 0 && summary.SchemaFailures == 0 {
		builder.WriteString("✓ All questions passed validation\n")
	} else {
		builder.WriteString(fmt.Sprintf("✗ %d questions failed validation\n", summary.FailedQuestions))
	}

	return writeOut(builder.String(), f.outputFile)
}

func statusEmoji(passed bool) string {
	if passed {
		return "✅"
	}
	return "❌"
}

func writeOut(content, outputFile string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}
