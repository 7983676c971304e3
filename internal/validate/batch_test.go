package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emberprep/qlint/internal/types"
)

func TestValidateBatch_Partition(t *testing.T) {
	questions := make([]types.MathQuestion, 0, 10)

	// Six valid questions.
	for i := 0; i < 6; i++ {
		q := validQuestion()
		q.ID = fmt.Sprintf("pass-%d", i+1)
		questions = append(questions, q)
	}
	// Two with a repairable wrong correct_option key.
	for i := 0; i < 2; i++ {
		q := validQuestion()
		q.ID = fmt.Sprintf("fix-%d", i+1)
		q.CorrectOption = "a"
		questions = append(questions, q)
	}
	// Two whose answer is in no option at all.
	for i := 0; i < 2; i++ {
		q := validQuestion()
		q.ID = fmt.Sprintf("fail-%d", i+1)
		q.ComputedAnswer = "9/10"
		q.ComputationalVerification.ExpectedResult = "9/10"
		q.ComputationalVerification.Expression = "9/10"
		questions = append(questions, q)
	}

	batch := ValidateBatch(questions)

	if batch.Total != 10 {
		t.Errorf("Total = %d, want 10", batch.Total)
	}
	if len(batch.Passed) != 8 {
		t.Errorf("len(Passed) = %d, want 8", len(batch.Passed))
	}
	if batch.AutoCorrected != 2 {
		t.Errorf("AutoCorrected = %d, want 2", batch.AutoCorrected)
	}
	if len(batch.Failed) != 2 {
		t.Errorf("len(Failed) = %d, want 2", len(batch.Failed))
	}

	for _, q := range batch.Passed {
		if strings.HasPrefix(q.ID, "fix-") && q.CorrectOption != "b" {
			t.Errorf("%s: CorrectOption = %q, patch not applied", q.ID, q.CorrectOption)
		}
	}
	for _, r := range batch.Failed {
		if !strings.HasPrefix(r.QuestionID, "fail-") {
			t.Errorf("unexpected failed question %s", r.QuestionID)
		}
	}
}

func TestValidateBatch_PreservesOrder(t *testing.T) {
	var questions []types.MathQuestion
	for i := 0; i < 4; i++ {
		q := validQuestion()
		q.ID = fmt.Sprintf("q-%d", i)
		questions = append(questions, q)
	}

	batch := ValidateBatch(questions)
	for i, q := range batch.Passed {
		if want := fmt.Sprintf("q-%d", i); q.ID != want {
			t.Errorf("Passed[%d].ID = %q, want %q", i, q.ID, want)
		}
	}
}

func TestValidateBatch_Empty(t *testing.T) {
	batch := ValidateBatch(nil)
	if batch.Total != 0 || len(batch.Passed) != 0 || len(batch.Failed) != 0 || batch.AutoCorrected != 0 {
		t.Errorf("empty batch should be all zeros: %+v", batch)
	}
}

func TestGenerateValidationReport(t *testing.T) {
	q := validQuestion()
	passing := ValidateQuestion(&q)

	bad := validQuestion()
	bad.ID = "q-bad"
	bad.CorrectOption = "a"
	failing := ValidateQuestion(&bad)

	report := GenerateValidationReport([]types.ValidationResult{passing, failing})

	for _, want := range []string{
		"Question Validation Report",
		"Total:  2",
		"Passed: 1 (50%)",
		"Failed: 1 (50%)",
		"q-bad",
		"[correct_option_matches_computed]",
		`fix: Set correct_option to "b"`,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "q-001\n") {
		t.Error("passing questions should not get a detail block")
	}
}

func TestGenerateValidationReport_Empty(t *testing.T) {
	report := GenerateValidationReport(nil)
	for _, want := range []string{"Total:  0", "Passed: 0 (0%)", "Failed: 0 (0%)"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
