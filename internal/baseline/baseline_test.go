package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emberprep/qlint/internal/types"
)

func failingResult(id string) types.ValidationResult {
	return types.ValidationResult{
		QuestionID: id,
		Passed:     false,
		Errors: []types.ValidationError{
			{
				Code:    "correct_option_matches_computed",
				Message: `correct_option is "a" but the computed answer matches option "b", should be "b"`,
				Field:   "correct_option",
			},
		},
	}
}

func TestCreateAndIsKnown(t *testing.T) {
	b := Create([]types.ValidationResult{failingResult("q-1")})

	if len(b.Fingerprints) != 1 {
		t.Fatalf("got %d fingerprints, want 1", len(b.Fingerprints))
	}
	if !b.IsKnown("q-1", failingResult("q-1").Errors[0]) {
		t.Error("recorded error should be known")
	}
	if b.IsKnown("q-2", failingResult("q-2").Errors[0]) {
		t.Error("same error on a different question should not be known")
	}
}

func TestIsKnown_MessageDrift(t *testing.T) {
	b := Create([]types.ValidationResult{failingResult("q-1")})

	drifted := types.ValidationError{
		Code:    "correct_option_matches_computed",
		Message: `correct_option is "c" but the computed answer matches option "d", should be "d"`,
	}
	if !b.IsKnown("q-1", drifted) {
		t.Error("quoted literals should be normalized away in the fingerprint")
	}

	otherCode := drifted
	otherCode.Code = "answer_exists_in_options"
	if b.IsKnown("q-1", otherCode) {
		t.Error("a different error code must not match")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	b := Create([]types.ValidationResult{failingResult("q-1"), failingResult("q-2")})
	b.CreatedAt = "2026-08-28T00:00:00Z"
	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Version != "1.0" {
		t.Errorf("Version = %q", loaded.Version)
	}
	if len(loaded.Fingerprints) != len(b.Fingerprints) {
		t.Errorf("got %d fingerprints, want %d", len(loaded.Fingerprints), len(b.Fingerprints))
	}
	if !loaded.IsKnown("q-1", failingResult("q-1").Errors[0]) {
		t.Error("loaded baseline should rebuild its index")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for corrupt JSON")
	}
}

func TestFilterResult(t *testing.T) {
	known := failingResult("q-1")
	b := Create([]types.ValidationResult{known})

	t.Run("All known", func(t *testing.T) {
		filtered, ignored := b.FilterResult(known)
		if ignored != 1 {
			t.Errorf("ignored = %d, want 1", ignored)
		}
		if !filtered.Passed {
			t.Error("result should pass once its only error is baselined")
		}
		if len(filtered.Errors) != 0 {
			t.Errorf("got %d errors, want 0", len(filtered.Errors))
		}
	})

	t.Run("Mixed", func(t *testing.T) {
		r := failingResult("q-1")
		r.Errors = append(r.Errors, types.ValidationError{
			Code:    "no_duplicate_options",
			Message: `duplicate options under normalization: "a" and "c"`,
		})
		filtered, ignored := b.FilterResult(r)
		if ignored != 1 {
			t.Errorf("ignored = %d, want 1", ignored)
		}
		if filtered.Passed {
			t.Error("an unbaselined error must still fail the result")
		}
		if len(filtered.Errors) != 1 || filtered.Errors[0].Code != "no_duplicate_options" {
			t.Errorf("kept errors = %+v", filtered.Errors)
		}
	})

	t.Run("Nil baseline", func(t *testing.T) {
		var nb *Baseline
		r := failingResult("q-1")
		filtered, ignored := nb.FilterResult(r)
		if ignored != 0 || filtered.Passed {
			t.Error("nil baseline should filter nothing")
		}
	})
}
