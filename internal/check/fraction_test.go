package check

import (
	"strings"
	"testing"

	"github.com/emberprep/qlint/internal/types"
)

func fractionQuestion(answer string, format types.AnswerFormat) types.MathQuestion {
	q := validQuestion()
	q.ComputedAnswer = answer
	q.AnswerFormat = format
	return q
}

func TestValidateFractions_SkipsOtherFormats(t *testing.T) {
	for _, format := range []types.AnswerFormat{
		types.FormatInteger,
		types.FormatDecimal,
		types.FormatPercentage,
		types.FormatRatio,
	} {
		q := fractionQuestion("3", format)
		if results := ValidateFractions(&q); results != nil {
			t.Errorf("format %s: got %d results, want none", format, len(results))
		}
	}
}

func TestValidateFractions_ProperFraction(t *testing.T) {
	q := fractionQuestion("3/4", types.FormatFraction)
	results := ValidateFractions(&q)
	for _, c := range results {
		if !c.Passed {
			t.Errorf("check %s failed: %s", c.Name, c.Details)
		}
	}
	if hasCheck(results, CheckMixedNumberConversion) {
		t.Error("mixed-number conversion should only run for mixed_number answers")
	}
}

func TestValidateFractions_UnparseableAnswer(t *testing.T) {
	q := fractionQuestion("three quarters", types.FormatFraction)
	results := ValidateFractions(&q)

	c := findCheck(t, results, CheckFractionAnswerParses)
	if c.Passed {
		t.Error("fraction_answer_parses should fail")
	}
	if c.Severity != types.SeverityCritical {
		t.Errorf("severity = %s, want critical", c.Severity)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want parse failure to short-circuit the rest", len(results))
	}
}

func TestValidateFractions_ImproperFractionAsMixedNumber(t *testing.T) {
	q := fractionQuestion("7/5", types.FormatMixedNumber)
	c := findCheck(t, ValidateFractions(&q), CheckMixedNumberConversion)
	if c.Passed {
		t.Error("mixed_number_conversion should fail for an improper fraction")
	}
	if c.Severity != types.SeverityError {
		t.Errorf("severity = %s, want error", c.Severity)
	}
	if !strings.Contains(c.Details, `should be written "1 2/5"`) {
		t.Errorf("details %q should suggest the mixed form", c.Details)
	}
}

func TestValidateFractions_ImproperFractionalPart(t *testing.T) {
	q := fractionQuestion("1 7/5", types.FormatMixedNumber)
	c := findCheck(t, ValidateFractions(&q), CheckMixedNumberConversion)
	if c.Passed {
		t.Error("mixed_number_conversion should fail when the fractional part is improper")
	}
}

func TestValidateFractions_WellFormedMixedNumber(t *testing.T) {
	q := fractionQuestion("1 2/5", types.FormatMixedNumber)
	for _, c := range ValidateFractions(&q) {
		if !c.Passed {
			t.Errorf("check %s failed: %s", c.Name, c.Details)
		}
	}
}

func TestValidateFractions_NotInLowestTerms(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		format types.AnswerFormat
	}{
		{"Plain fraction", "2/4", types.FormatFraction},
		{"Mixed number fractional part", "1 2/4", types.FormatMixedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := fractionQuestion(tt.answer, tt.format)
			c := findCheck(t, ValidateFractions(&q), CheckFractionLowestTerms)
			if c.Passed {
				t.Errorf("%q should be flagged as reducible", tt.answer)
			}
			if c.Severity != types.SeverityWarning {
				t.Errorf("severity = %s, want warning", c.Severity)
			}
		})
	}
}

func TestValidateFractions_LowestTermsPasses(t *testing.T) {
	q := fractionQuestion("3/4", types.FormatFraction)
	if c := findCheck(t, ValidateFractions(&q), CheckFractionLowestTerms); !c.Passed {
		t.Errorf("3/4 flagged as reducible: %s", c.Details)
	}
}
