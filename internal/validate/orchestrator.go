// Package validate provides the core validation orchestration logic: it
// runs the applicable check set per question, aggregates failures into
// errors and warnings, attempts auto-correction, and produces the per
// question and per batch verdicts.
package validate

import (
	"fmt"
	"regexp"

	"github.com/emberprep/qlint/internal/check"
	"github.com/emberprep/qlint/internal/normalize"
	"github.com/emberprep/qlint/internal/types"
)

// fieldForCheck maps check names to the question field an error targets.
// Unknown check names fall back to the check name itself.
var fieldForCheck = map[string]string{
	check.CheckAnswerExistsInOptions:     "options",
	check.CheckCorrectOptionMatches:      "correct_option",
	check.CheckComputationVerification:   "computational_verification.expression",
	check.CheckDisplayAnswerVerification: "computed_answer",
	check.CheckMixedNumberConversion:     "computed_answer",
	check.CheckRequiredFields:            "multiple",
	check.CheckHasVerificationExpression: "computational_verification",
	check.CheckFractionAnswerParses:      "computed_answer",
	check.CheckFractionLowestTerms:       "computed_answer",
	check.CheckNoDuplicateOptions:        "options",
	check.CheckSelfVerification:          "verification.verification_status",
}

var shouldBeRe = regexp.MustCompile(`should be "([a-e])"`)

// ValidateQuestion runs every applicable validator on a question and
// aggregates the outcome. The consistency checks always run; the
// computational validators run only for Mathematics questions. The function
// is pure: identical input yields an identical result, and malformed input
// surfaces as failed checks, never as a panic.
func ValidateQuestion(q *types.MathQuestion) types.ValidationResult {
	checks := check.ValidateConsistency(q)
	if q.Subject == types.SubjectMathematics {
		checks = append(checks, check.ValidateArithmetic(q)...)
		checks = append(checks, check.ValidateFractions(q)...)
	}

	result := types.ValidationResult{
		QuestionID: q.ID,
		Passed:     true,
		Checks:     checks,
	}

	for _, c := range checks {
		if c.Passed {
			continue
		}
		if !c.Severity.Blocks() {
			result.Warnings = append(result.Warnings, types.ValidationWarning{
				Code:    c.Name,
				Message: failureMessage(c),
			})
			continue
		}
		result.Passed = false
		result.Errors = append(result.Errors, toValidationError(c))
	}

	if patch := buildPatch(q, result.Errors); patch != nil {
		result.CorrectedData = patch
	}
	return result
}

func toValidationError(c types.CheckResult) types.ValidationError {
	field, ok := fieldForCheck[c.Name]
	if !ok {
		field = c.Name
	}

	err := types.ValidationError{
		Code:    c.Name,
		Message: failureMessage(c),
		Field:   field,
	}

	if key := suggestedKey(c); key != "" {
		err.AutoFixable = true
		err.SuggestedFix = fmt.Sprintf("Set correct_option to %q", key)
	}
	return err
}

func failureMessage(c types.CheckResult) string {
	if c.Details != "" {
		return c.Details
	}
	return fmt.Sprintf("check %s failed", c.Name)
}

// suggestedKey returns the option key a failed check points at, or "" when
// the failure is not auto-fixable. A failure is auto-fixable when it is the
// suggested_correction check, or the correct-option check whose details
// carry the `should be "x"` pattern.
func suggestedKey(c types.CheckResult) string {
	if c.Name != check.CheckSuggestedCorrection && c.Name != check.CheckCorrectOptionMatches {
		return ""
	}
	if c.SuggestedOptionKey != "" {
		return c.SuggestedOptionKey
	}
	if m := shouldBeRe.FindStringSubmatch(c.Details); m != nil {
		return m[1]
	}
	return ""
}

// buildPatch produces a corrected_data patch when at least one error is
// auto-fixable and a concrete correction rule applies. The only rule today
// is repointing correct_option at the option that matches the computed
// answer. No applicable rule means no patch, not an empty one.
func buildPatch(q *types.MathQuestion, errs []types.ValidationError) *types.QuestionPatch {
	fixable := false
	for _, e := range errs {
		if e.AutoFixable {
			fixable = true
			break
		}
	}
	if !fixable {
		return nil
	}

	for _, key := range types.OptionKeys {
		if v, ok := q.Options[key]; ok && normalize.Equal(v, q.ComputedAnswer) {
			return &types.QuestionPatch{CorrectOption: key}
		}
	}
	return nil
}
