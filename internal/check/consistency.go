// Package check implements the per-question validation checks: structural
// consistency checks that run for every subject, and computational checks
// that recompute answers for Mathematics questions. Checks report findings
// as data; they never panic on missing fields.
package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emberprep/qlint/internal/normalize"
	"github.com/emberprep/qlint/internal/types"
)

// Consistency check names, fixed because downstream field mapping and
// auto-fix detection key off them.
const (
	CheckAnswerExistsInOptions = "answer_exists_in_options"
	CheckCorrectOptionMatches  = "correct_option_matches_computed"
	CheckSuggestedCorrection   = "suggested_correction"
	CheckSelfVerification      = "self_verification_status"
	CheckNoDuplicateOptions    = "no_duplicate_options"
	CheckRequiredFields        = "required_fields_present"
)

// ValidateConsistency runs the structural and self-referential checks on a
// question. All checks run unconditionally; only suggested_correction is
// conditional, emitted when the right answer exists among the options but
// the wrong key is marked correct.
func ValidateConsistency(q *types.MathQuestion) []types.CheckResult {
	var results []types.CheckResult

	answerKey := matchingOptionKey(q)
	answerInOptions := answerKey != ""

	results = append(results, types.CheckResult{
		Name:     CheckAnswerExistsInOptions,
		Passed:   answerInOptions,
		Severity: types.SeverityCritical,
		Details:  answerExistsDetails(q, answerInOptions),
	})

	correctMatches := false
	if v, ok := q.Options[q.CorrectOption]; ok {
		correctMatches = normalize.Equal(v, q.ComputedAnswer)
	}
	results = append(results, correctOptionResult(q, correctMatches, answerKey))

	if answerInOptions && !correctMatches {
		results = append(results, types.CheckResult{
			Name:               CheckSuggestedCorrection,
			Passed:             false,
			Severity:           types.SeverityError,
			Details:            fmt.Sprintf("Set correct_option to %q", answerKey),
			SuggestedOptionKey: answerKey,
		})
	}

	results = append(results, selfVerificationResult(q))
	results = append(results, duplicateOptionsResult(q))
	results = append(results, requiredFieldsResult(q))

	return results
}

// matchingOptionKey returns the first option key (in a-e order) whose value
// equals the computed answer under normalization, or "".
func matchingOptionKey(q *types.MathQuestion) string {
	if q.ComputedAnswer == "" {
		return ""
	}
	for _, key := range types.OptionKeys {
		if v, ok := q.Options[key]; ok && normalize.Equal(v, q.ComputedAnswer) {
			return key
		}
	}
	return ""
}

func answerExistsDetails(q *types.MathQuestion, passed bool) string {
	if passed {
		return ""
	}
	return fmt.Sprintf("computed answer %q does not match any option", q.ComputedAnswer)
}

func correctOptionResult(q *types.MathQuestion, passed bool, answerKey string) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckCorrectOptionMatches,
		Passed:   passed,
		Severity: types.SeverityCritical,
	}
	if passed {
		return result
	}

	switch {
	case answerKey != "":
		// The phrasing is load-bearing: auto-fix detection looks for the
		// `should be "x"` pattern in these details.
		result.Details = fmt.Sprintf("correct_option is %q but the computed answer matches option %q, should be %q",
			q.CorrectOption, answerKey, answerKey)
		result.SuggestedOptionKey = answerKey
	case q.Options[q.CorrectOption] == "" && !hasKey(q.Options, q.CorrectOption):
		result.Details = fmt.Sprintf("correct_option %q is not a valid option key", q.CorrectOption)
	default:
		result.Details = fmt.Sprintf("option %q (%q) does not match computed answer %q",
			q.CorrectOption, q.Options[q.CorrectOption], q.ComputedAnswer)
	}
	return result
}

// selfVerificationResult checks the generator's own verification block.
// A non-VERIFIED status is an error severity failure: it contributes to
// passed=false but is surfaced apart from the hard structural checks.
func selfVerificationResult(q *types.MathQuestion) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckSelfVerification,
		Severity: types.SeverityError,
	}
	switch {
	case q.Verification == nil:
		result.Details = "question carries no self-verification block"
	case q.Verification.VerificationStatus == types.VerificationVerified:
		result.Passed = true
	default:
		result.Details = fmt.Sprintf("self-reported verification status is %q, expected %q",
			q.Verification.VerificationStatus, types.VerificationVerified)
	}
	return result
}

func duplicateOptionsResult(q *types.MathQuestion) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckNoDuplicateOptions,
		Passed:   true,
		Severity: types.SeverityError,
	}

	seen := make(map[string]string, len(q.Options))
	var dups []string
	for _, key := range types.OptionKeys {
		v, ok := q.Options[key]
		if !ok {
			continue
		}
		norm := normalize.Answer(v)
		if first, dup := seen[norm]; dup {
			dups = append(dups, fmt.Sprintf("%q and %q", first, key))
		} else {
			seen[norm] = key
		}
	}
	if len(dups) > 0 {
		result.Passed = false
		result.Details = "duplicate options under normalization: " + strings.Join(dups, ", ")
	}
	return result
}

func requiredFieldsResult(q *types.MathQuestion) types.CheckResult {
	result := types.CheckResult{
		Name:     CheckRequiredFields,
		Passed:   true,
		Severity: types.SeverityCritical,
	}

	var missing []string
	required := map[string]string{
		"id":              q.ID,
		"subject":         q.Subject,
		"topic":           q.Topic,
		"question_text":   q.QuestionText,
		"computed_answer": q.ComputedAnswer,
		"correct_option":  q.CorrectOption,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing required fields: "+strings.Join(missing, ", "))
	}
	if n := presentOptionCount(q.Options); n != len(types.OptionKeys) {
		problems = append(problems, fmt.Sprintf("expected exactly %d options, found %d", len(types.OptionKeys), n))
	}
	if len(problems) > 0 {
		result.Passed = false
		result.Details = strings.Join(problems, "; ")
	}
	return result
}

// presentOptionCount counts non-empty options under the canonical keys.
// Extra keys outside a-e do not count toward the required five.
func presentOptionCount(options map[string]string) int {
	n := 0
	for _, key := range types.OptionKeys {
		if v, ok := options[key]; ok && strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

func hasKey(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}
