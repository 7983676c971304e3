package check

import (
	"fmt"

	"github.com/emberprep/qlint/internal/mathexpr"
	"github.com/emberprep/qlint/internal/types"
)

// Fraction check names.
const (
	CheckFractionAnswerParses  = "fraction_answer_parses"
	CheckMixedNumberConversion = "mixed_number_conversion"
	CheckFractionLowestTerms   = "fraction_in_lowest_terms"
)

// ValidateFractions checks fraction and mixed-number answers for correct
// form: the answer must parse under its declared format, improper fractions
// must be converted where a mixed number is declared, and fractions not in
// lowest terms are flagged as warnings. Questions in other formats produce
// no results.
func ValidateFractions(q *types.MathQuestion) []types.CheckResult {
	format := q.AnswerFormat
	if format != types.FormatFraction && format != types.FormatMixedNumber {
		return nil
	}

	var results []types.CheckResult

	_, err := mathexpr.ParseAnswer(q.ComputedAnswer, string(format))
	parses := types.CheckResult{
		Name:     CheckFractionAnswerParses,
		Passed:   err == nil,
		Severity: types.SeverityCritical,
	}
	if err != nil {
		parses.Details = fmt.Sprintf("computed answer %q is not a valid %s: %v", q.ComputedAnswer, format, err)
		return append(results, parses)
	}
	results = append(results, parses)

	if format == types.FormatMixedNumber {
		results = append(results, mixedNumberResult(q))
	}
	results = append(results, lowestTermsResult(q))

	return results
}

// mixedNumberResult verifies that an answer declared as a mixed number is
// actually written in mixed form: an improper fraction like "7/5" should be
// "1 2/5", and the fractional part of "1 7/5" must itself be proper.
func mixedNumberResult(q *types.MathQuestion) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckMixedNumberConversion,
		Passed:   true,
		Severity: types.SeverityError,
	}

	if num, den, ok := mathexpr.FractionParts(q.ComputedAnswer); ok {
		if den != 0 && abs64(num) >= den {
			r, err := mathexpr.ParseAnswer(q.ComputedAnswer, string(types.FormatFraction))
			result.Passed = false
			result.Details = fmt.Sprintf("%q is an improper fraction for a mixed-number answer", q.ComputedAnswer)
			if err == nil {
				result.Details = fmt.Sprintf("%q is an improper fraction for a mixed-number answer, should be written %q",
					q.ComputedAnswer, mathexpr.FormatMixed(r))
			}
		}
		return result
	}

	if _, num, den, ok := mathexpr.MixedParts(q.ComputedAnswer); ok && den != 0 && num >= den {
		result.Passed = false
		result.Details = fmt.Sprintf("fractional part of %q is improper", q.ComputedAnswer)
	}
	return result
}

// lowestTermsResult warns when the fraction part is reducible. This never
// blocks: "2/4" is unconventional, not wrong.
func lowestTermsResult(q *types.MathQuestion) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckFractionLowestTerms,
		Passed:   true,
		Severity: types.SeverityWarning,
	}

	num, den, ok := mathexpr.FractionParts(q.ComputedAnswer)
	if !ok {
		_, num, den, ok = mathexpr.MixedParts(q.ComputedAnswer)
	}
	if !ok || den == 0 {
		return result
	}
	if !mathexpr.IsReduced(num, den) {
		result.Passed = false
		result.Details = fmt.Sprintf("fraction in %q is not in lowest terms", q.ComputedAnswer)
	}
	return result
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
