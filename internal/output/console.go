// Package output renders a validation run summary in the supported report
// formats: styled console output, JSON, Markdown, and the plain-text
// operational report.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/emberprep/qlint/internal/runner"
	"github.com/emberprep/qlint/internal/scoring"
)

// ConsoleFormatter formats output for console display.
type ConsoleFormatter struct {
	quiet      bool
	verbose    bool
	showScores bool
	colorize   bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose, showScores bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:      quiet,
		verbose:    verbose,
		showScores: showScores,
		colorize:   true,
	}
}

// Format renders the summary to stdout.
func (f *ConsoleFormatter) Format(summary *runner.Summary) error {
	if f.quiet {
		return nil
	}

	f.printResults(summary)
	f.printFindings(summary)
	f.printSummary(summary)
	f.printConclusion(summary)
	return nil
}

func (f *ConsoleFormatter) printResults(summary *runner.Summary) {
	for _, fr := range summary.Results {
		if len(fr.SchemaErrors) > 0 {
			fmt.Printf("%s %s\n", f.style("9").Render("✗"), fr.File)
			for _, e := range fr.SchemaErrors {
				fmt.Printf("    ✘ %s\n", f.style("9").Render(e.Message))
			}
			continue
		}

		hasIssues := len(fr.Result.Errors) > 0 || len(fr.Result.Warnings) > 0
		if !hasIssues && !f.verbose && !f.showScores {
			continue
		}

		status := "✓"
		color := "10" // green
		if len(fr.Result.Errors) > 0 {
			status = "✗"
			color = "9" // red
		} else if len(fr.Result.Warnings) > 0 {
			status = "⚠"
			color = "3" // yellow
		}
		fmt.Printf("%s %s (%s)%s\n", f.style(color).Render(status), fr.Result.QuestionID, fr.File, f.scoreSuffix(fr))

		for _, e := range fr.Result.Errors {
			fmt.Printf("    ✘ %s: %s\n", f.style("9").Render(e.Field), e.Message)
			if e.SuggestedFix != "" {
				fmt.Printf("      fix: %s\n", e.SuggestedFix)
			}
		}
		for _, w := range fr.Result.Warnings {
			fmt.Printf("    ⚠ %s\n", f.style("3").Render(w.Message))
		}
		if fr.Corrected {
			fmt.Printf("    %s\n", f.style("10").Render("auto-correctable"))
		}
		if f.showScores && f.verbose && fr.Score != nil {
			for _, entry := range scoring.FormatScoreBreakdown(fr.Score.Breakdown) {
				fmt.Printf("    %s: %.1f/%.0f (%d%%)\n", entry.Component, entry.Score, entry.MaxScore, entry.Percentage)
			}
		}
	}
}

func (f *ConsoleFormatter) scoreSuffix(fr runner.FileResult) string {
	if !f.showScores || fr.Score == nil {
		return ""
	}
	info := scoring.GetTierInfo(fr.Score.Tier)
	return fmt.Sprintf("  %s %.0f/100 %s", strings.Repeat("🔥", info.Flames), fr.Score.Score, info.Label)
}

func (f *ConsoleFormatter) printFindings(summary *runner.Summary) {
	for _, finding := range summary.Findings {
		fmt.Printf("%s %s (%s)\n", f.style("3").Render("⚠"), finding.Message, strings.Join(finding.Files, ", "))
	}
}

func (f *ConsoleFormatter) printSummary(summary *runner.Summary) {
	if summary.FailedQuestions == 0 && summary.TotalWarnings == 0 && summary.SchemaFailures == 0 {
		return
	}

	duration := time.Since(summary.StartTime)
	fmt.Printf("\n%d/%d passed, %d errors, %d warnings (%v)\n",
		summary.PassedQuestions, summary.TotalQuestions,
		summary.TotalErrors, summary.TotalWarnings,
		duration.Round(time.Millisecond))
	if summary.AutoCorrectable > 0 {
		fmt.Printf("%d auto-correctable\n", summary.AutoCorrectable)
	}
	if summary.BaselineIgnored > 0 {
		fmt.Printf("%d baseline issues ignored\n", summary.BaselineIgnored)
	}
}

func (f *ConsoleFormatter) printConclusion(summary *runner.Summary) {
	if len(summary.Results) > 0 {
		fmt.Println()
	}
	if summary.FailedQuestions == 0 && summary.SchemaFailures == 0 {
		style := lipgloss.NewStyle()
		if f.colorize {
			style = style.Bold(true).Foreground(lipgloss.Color("10"))
		}
		fmt.Printf("%s\n", style.Render("✓ All passed"))
	}
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
