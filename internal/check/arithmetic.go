package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emberprep/qlint/internal/mathexpr"
	"github.com/emberprep/qlint/internal/types"
)

// Computational check names.
const (
	CheckHasVerificationExpression = "has_verification_expression"
	CheckComputationVerification   = "computation_verification"
	CheckDisplayAnswerVerification = "display_answer_verification"
)

// ValidateArithmetic recomputes a Mathematics question's answer from its
// symbolic expression and compares it to both the stated expected result and
// the display answer. Unparseable expressions and division by zero are
// critical (garbage working); a numeric disagreement is an error.
func ValidateArithmetic(q *types.MathQuestion) []types.CheckResult {
	var results []types.CheckResult

	cv := q.ComputationalVerification
	hasExpr := cv != nil && strings.TrimSpace(cv.Expression) != ""
	expr := types.CheckResult{
		Name:     CheckHasVerificationExpression,
		Passed:   hasExpr,
		Severity: types.SeverityError,
	}
	if !hasExpr {
		expr.Details = "no computational verification expression to recompute from"
		return append(results, expr)
	}
	results = append(results, expr)

	value, err := mathexpr.Eval(cv.Expression)
	if err != nil {
		severity := types.SeverityCritical
		details := fmt.Sprintf("expression %q cannot be evaluated: %v", cv.Expression, err)
		if errors.Is(err, mathexpr.ErrDivisionByZero) {
			details = fmt.Sprintf("expression %q divides by zero", cv.Expression)
		}
		results = append(results, types.CheckResult{
			Name:     CheckComputationVerification,
			Passed:   false,
			Severity: severity,
			Details:  details,
		})
		return results
	}

	// Recomputed value vs the stated expected result, under the result format.
	computation := types.CheckResult{
		Name:     CheckComputationVerification,
		Passed:   true,
		Severity: types.SeverityError,
	}
	expected, err := mathexpr.ParseAnswer(cv.ExpectedResult, cv.ResultFormat)
	switch {
	case err != nil:
		computation.Passed = false
		computation.Severity = types.SeverityCritical
		computation.Details = fmt.Sprintf("expected result %q is not a valid %s value: %v",
			cv.ExpectedResult, formatName(cv.ResultFormat), err)
	case value.Cmp(expected) != 0:
		computation.Passed = false
		computation.Details = fmt.Sprintf("expression %q evaluates to %s but expected result is %q",
			cv.Expression, value.RatString(), cv.ExpectedResult)
	}
	results = append(results, computation)

	// Recomputed value vs the display answer, under the answer format.
	display := types.CheckResult{
		Name:     CheckDisplayAnswerVerification,
		Passed:   true,
		Severity: types.SeverityError,
	}
	stated, err := mathexpr.ParseAnswer(q.ComputedAnswer, string(q.AnswerFormat))
	switch {
	case err != nil:
		display.Passed = false
		display.Severity = types.SeverityCritical
		display.Details = fmt.Sprintf("computed answer %q is not a valid %s value: %v",
			q.ComputedAnswer, formatName(string(q.AnswerFormat)), err)
	case value.Cmp(stated) != 0:
		display.Passed = false
		display.Details = fmt.Sprintf("expression %q evaluates to %s but computed answer is %q",
			cv.Expression, value.RatString(), q.ComputedAnswer)
	}
	results = append(results, display)

	return results
}

func formatName(format string) string {
	if format == "" {
		return "numeric"
	}
	return format
}
