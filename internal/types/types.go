// Package types provides shared types used across the qlint codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "time"

// Severity classifies a failed check. Critical and Error failures block a
// question from passing; Warning failures are surfaced but never block.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
)

// Blocks reports whether a failure at this severity flips a question's
// overall passed flag to false.
func (s Severity) Blocks() bool {
	return s == SeverityCritical || s == SeverityError
}

// ReviewStatus is the human-trust level of a question.
type ReviewStatus string

const (
	ReviewUnreviewed  ReviewStatus = "unreviewed"
	ReviewAIOnly      ReviewStatus = "ai_only"
	ReviewSpotChecked ReviewStatus = "spot_checked"
	ReviewReviewed    ReviewStatus = "reviewed"
)

// AnswerFormat declares how a computed answer string is written.
type AnswerFormat string

const (
	FormatInteger     AnswerFormat = "integer"
	FormatDecimal     AnswerFormat = "decimal"
	FormatFraction    AnswerFormat = "fraction"
	FormatMixedNumber AnswerFormat = "mixed_number"
	FormatPercentage  AnswerFormat = "percentage"
	FormatRatio       AnswerFormat = "ratio"
)

// Self-reported verification statuses attached by the generation pipeline.
const (
	VerificationVerified           = "VERIFIED"
	VerificationMismatch           = "MISMATCH"
	VerificationAnswerNotInOptions = "ANSWER_NOT_IN_OPTIONS"
)

// OptionKeys enumerates the five answer option keys in display order.
var OptionKeys = []string{"a", "b", "c", "d", "e"}

// Verification is the self-reported verification block on a question.
type Verification struct {
	VerificationStatus string `json:"verification_status" yaml:"verification_status"`
	Notes              string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ComputationalVerification carries the symbolic working a question was
// generated from, used to recompute the expected answer.
type ComputationalVerification struct {
	Expression     string `json:"expression" yaml:"expression"`
	ExpectedResult string `json:"expected_result" yaml:"expected_result"`
	ResultFormat   string `json:"result_format" yaml:"result_format"`
}

// MathQuestion is the validation view of a question record. The pipeline
// assumes shape-valid input (schema validation happens at the boundary) and
// checks semantic validity: missing fields fail checks, they never panic.
// The yaml tags must mirror the json tags: corrected questions are written
// back in either encoding and both must round-trip through the schema.
type MathQuestion struct {
	ID             string            `json:"id" yaml:"id"`
	Subject        string            `json:"subject" yaml:"subject"`
	Topic          string            `json:"topic" yaml:"topic"`
	Subtopic       string            `json:"subtopic,omitempty" yaml:"subtopic,omitempty"`
	Difficulty     string            `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	YearGroup      int               `json:"year_group,omitempty" yaml:"year_group,omitempty"`
	QuestionText   string            `json:"question_text" yaml:"question_text"`
	ComputedAnswer string            `json:"computed_answer" yaml:"computed_answer"`
	AnswerFormat   AnswerFormat      `json:"answer_format" yaml:"answer_format"`
	Options        map[string]string `json:"options" yaml:"options"`
	CorrectOption  string            `json:"correct_option" yaml:"correct_option"`

	Verification              *Verification              `json:"verification,omitempty" yaml:"verification,omitempty"`
	ComputationalVerification *ComputationalVerification `json:"computational_verification,omitempty" yaml:"computational_verification,omitempty"`

	// Scoring signals, optional. Zero values mean "no signal".
	CurriculumReference string       `json:"curriculum_reference,omitempty" yaml:"curriculum_reference,omitempty"`
	ReviewStatus        ReviewStatus `json:"review_status,omitempty" yaml:"review_status,omitempty"`
	TotalAttempts       int          `json:"total_attempts,omitempty" yaml:"total_attempts,omitempty"`
	ErrorCount          int          `json:"error_count,omitempty" yaml:"error_count,omitempty"`
	HelpfulVotes        int          `json:"helpful_votes,omitempty" yaml:"helpful_votes,omitempty"`
}

// ScoringInput extracts the signals the Ember Score calculator reads.
func (q *MathQuestion) ScoringInput() ScoringInput {
	return ScoringInput{
		CurriculumReference: q.CurriculumReference,
		ReviewStatus:        q.ReviewStatus,
		TotalAttempts:       q.TotalAttempts,
		ErrorReportCount:    q.ErrorCount,
		HelpfulVotes:        q.HelpfulVotes,
	}
}

// ScoringInput is the scoring view of a question. Absent signals are zero
// values and degrade to documented defaults; the calculator never fails.
type ScoringInput struct {
	CurriculumReference string       `json:"curriculum_reference,omitempty"`
	ReviewStatus        ReviewStatus `json:"review_status,omitempty"`
	TotalAttempts       int          `json:"total_attempts"`
	ErrorReportCount    int          `json:"error_report_count"`
	HelpfulVotes        int          `json:"helpful_votes"`
}

// CheckResult is a single named validation check outcome.
//
// SuggestedOptionKey carries the auto-correction target in structured form
// so downstream code does not have to re-parse it out of Details.
type CheckResult struct {
	Name               string   `json:"name"`
	Passed             bool     `json:"passed"`
	Severity           Severity `json:"severity"`
	Details            string   `json:"details,omitempty"`
	SuggestedOptionKey string   `json:"suggested_option_key,omitempty"`
}

// ValidationError is a blocking finding derived from a critical or error
// severity check failure.
type ValidationError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Field        string `json:"field"`
	AutoFixable  bool   `json:"auto_fixable"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// ValidationWarning is a non-blocking finding derived from a warning
// severity check failure.
type ValidationWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuestionPatch is a partial correction produced by auto-fix. Only fields
// with a concrete correction rule are ever populated.
type QuestionPatch struct {
	CorrectOption string `json:"correct_option,omitempty"`
}

// Apply merges the patch onto a copy of the question, patch fields winning.
func (p *QuestionPatch) Apply(q MathQuestion) MathQuestion {
	if p == nil {
		return q
	}
	if p.CorrectOption != "" {
		q.CorrectOption = p.CorrectOption
	}
	return q
}

// ValidationResult is the per-question verdict.
type ValidationResult struct {
	QuestionID    string              `json:"question_id"`
	Passed        bool                `json:"passed"`
	Checks        []CheckResult       `json:"checks"`
	Errors        []ValidationError   `json:"errors,omitempty"`
	Warnings      []ValidationWarning `json:"warnings,omitempty"`
	CorrectedData *QuestionPatch      `json:"corrected_data,omitempty"`
}

// BatchValidationResult partitions a batch into passed (original or
// auto-corrected) questions and still-failing results.
type BatchValidationResult struct {
	Total         int                `json:"total"`
	Passed        []MathQuestion     `json:"passed"`
	Failed        []ValidationResult `json:"failed"`
	AutoCorrected int                `json:"auto_corrected"`
}

// ScoreBreakdown is the three weighted Ember Score components.
type ScoreBreakdown struct {
	CurriculumAlignment float64 `json:"curriculumAlignment"` // 0-40
	ExpertVerification  float64 `json:"expertVerification"`  // 0-40
	CommunityFeedback   float64 `json:"communityFeedback"`   // 0-20
}

// ScoreResult is the computed Ember Score for a question.
type ScoreResult struct {
	Score          float64        `json:"score"` // 0-100
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Tier           string         `json:"tier"` // draft, confident, verified
	LastCalculated time.Time      `json:"lastCalculated"`
}

// SubjectMathematics gates the computational validators.
const SubjectMathematics = "Mathematics"
