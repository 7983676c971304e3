package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/emberprep/qlint/internal/types"
)

// ValidateBatch validates a collection of questions in order. Questions
// that pass go into Passed unchanged; questions whose only blocking errors
// are auto-fixable are repaired and go into Passed corrected; everything
// else lands in Failed as its full ValidationResult. A single correction
// pass, no re-validation loop.
func ValidateBatch(questions []types.MathQuestion) types.BatchValidationResult {
	batch := types.BatchValidationResult{Total: len(questions)}

	for i := range questions {
		q := questions[i]
		result := ValidateQuestion(&q)
		switch {
		case result.Passed:
			batch.Passed = append(batch.Passed, q)
		case result.CorrectedData != nil:
			batch.Passed = append(batch.Passed, result.CorrectedData.Apply(q))
			batch.AutoCorrected++
		default:
			batch.Failed = append(batch.Failed, result)
		}
	}
	return batch
}

// GenerateValidationReport renders validation results as a plain-text
// report for operational review: a counts header followed by one block per
// failed question.
func GenerateValidationReport(results []types.ValidationResult) string {
	var b strings.Builder

	total := len(results)
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	failed := total - passed

	b.WriteString("Question Validation Report\n")
	b.WriteString("==========================\n")
	fmt.Fprintf(&b, "Total:  %d\n", total)
	fmt.Fprintf(&b, "Passed: %d (%d%%)\n", passed, percentage(passed, total))
	fmt.Fprintf(&b, "Failed: %d (%d%%)\n", failed, percentage(failed, total))

	for _, r := range results {
		if r.Passed {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", r.QuestionID)
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  [%s] %s\n", e.Code, e.Message)
			if e.SuggestedFix != "" {
				fmt.Fprintf(&b, "    fix: %s\n", e.SuggestedFix)
			}
		}
	}
	return b.String()
}

// percentage guards the empty-results case; a zero total is 0%, not a
// division by zero.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
