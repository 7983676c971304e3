package crossfile

import (
	"reflect"
	"testing"

	"github.com/emberprep/qlint/internal/types"
)

func entry(file, id, text string) Entry {
	return Entry{File: file, Question: types.MathQuestion{ID: id, QuestionText: text}}
}

func TestCheck_Clean(t *testing.T) {
	entries := []Entry{
		entry("a.json", "q-1", "What is 1+1?"),
		entry("b.json", "q-2", "What is 2+2?"),
	}
	if findings := Check(entries); len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %+v", len(findings), findings)
	}
}

func TestCheck_DuplicateIDs(t *testing.T) {
	entries := []Entry{
		entry("b.json", "q-1", "What is 2+2?"),
		entry("a.json", "q-1", "What is 1+1?"),
		entry("c.json", "q-2", "What is 3+3?"),
	}

	findings := Check(entries)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Code != CodeDuplicateID {
		t.Errorf("Code = %q", f.Code)
	}
	if want := []string{"a.json", "b.json"}; !reflect.DeepEqual(f.Files, want) {
		t.Errorf("Files = %v, want %v", f.Files, want)
	}
}

func TestCheck_DuplicateText(t *testing.T) {
	entries := []Entry{
		entry("a.json", "q-1", "What is 1/2 + 1/4?"),
		entry("b.json", "q-2", "what  is 1/2 + 1/4?"),
	}

	findings := Check(entries)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	if findings[0].Code != CodeDuplicateText {
		t.Errorf("Code = %q", findings[0].Code)
	}
}

func TestCheck_EmptyFieldsIgnored(t *testing.T) {
	entries := []Entry{
		entry("a.json", "", ""),
		entry("b.json", "", "  "),
	}
	if findings := Check(entries); len(findings) != 0 {
		t.Errorf("blank ids and text should not collide: %+v", findings)
	}
}

func TestCheck_Deterministic(t *testing.T) {
	entries := []Entry{
		entry("b.json", "q-2", "beta"),
		entry("a.json", "q-1", "alpha"),
		entry("d.json", "q-2", "beta"),
		entry("c.json", "q-1", "alpha"),
	}

	first := Check(entries)
	second := Check(entries)
	if !reflect.DeepEqual(first, second) {
		t.Error("findings should be deterministic")
	}
	if len(first) != 4 {
		t.Fatalf("got %d findings, want 2 id + 2 text", len(first))
	}
	if first[0].Code != CodeDuplicateID || first[2].Code != CodeDuplicateText {
		t.Errorf("findings out of order: %+v", first)
	}
}
