package runner

import (
	"time"

	"github.com/emberprep/qlint/internal/crossfile"
	"github.com/emberprep/qlint/internal/schema"
	"github.com/emberprep/qlint/internal/types"
)

// FileResult is the outcome for one question in one file.
type FileResult struct {
	File         string                 `json:"file"`
	Question     types.MathQuestion     `json:"-"`
	Result       types.ValidationResult `json:"result"`
	Score        *types.ScoreResult     `json:"score,omitempty"`
	Corrected    bool                   `json:"corrected"`
	SchemaErrors []schema.Error         `json:"schema_errors,omitempty"`
}

// Summary aggregates a whole validation run for reporting.
type Summary struct {
	ContentRoot string
	StartTime   time.Time

	Results  []FileResult
	Findings []crossfile.Finding

	TotalQuestions  int
	PassedQuestions int
	FailedQuestions int
	AutoCorrectable int
	TotalErrors     int
	TotalWarnings   int
	CriticalErrors  int
	SchemaFailures  int
	BaselineIgnored int
}

func (s *Summary) add(fr FileResult) {
	s.Results = append(s.Results, fr)
	s.TotalQuestions++
	if fr.Result.Passed {
		s.PassedQuestions++
	} else {
		s.FailedQuestions++
	}
	if fr.Corrected {
		s.AutoCorrectable++
	}
	s.TotalErrors += len(fr.Result.Errors)
	s.TotalWarnings += len(fr.Result.Warnings)
	s.CriticalErrors += criticalCount(fr.Result)
}

func (s *Summary) addSchemaFailure(file string, errs []schema.Error) {
	s.Results = append(s.Results, FileResult{File: file, SchemaErrors: errs})
	s.SchemaFailures += len(errs)
}

// criticalCount counts the kept errors whose originating check was
// critical. Baseline filtering drops errors but never touches checks, so
// severity is recovered by check name.
func criticalCount(r types.ValidationResult) int {
	severity := make(map[string]types.Severity, len(r.Checks))
	for _, c := range r.Checks {
		severity[c.Name] = c.Severity
	}
	n := 0
	for _, e := range r.Errors {
		if severity[e.Code] == types.SeverityCritical {
			n++
		}
	}
	return n
}

// ValidationResults extracts the per-question results, preserving order.
func (s *Summary) ValidationResults() []types.ValidationResult {
	results := make([]types.ValidationResult, 0, len(s.Results))
	for _, fr := range s.Results {
		if len(fr.SchemaErrors) > 0 {
			continue
		}
		results = append(results, fr.Result)
	}
	return results
}

// ShouldFail reports whether the run fails the build at the given fail-on
// level. Schema failures always fail: a document that cannot be decoded
// was never validated.
func (s *Summary) ShouldFail(failOn string) bool {
	if s.SchemaFailures > 0 {
		return true
	}
	switch failOn {
	case "critical":
		return s.CriticalErrors > 0
	case "warning":
		return s.TotalErrors > 0 || s.TotalWarnings > 0
	default: // error
		return s.TotalErrors > 0
	}
}
