// Package crossfile runs batch-level integrity checks that no single
// question can see: duplicate identifiers and duplicate question text
// across a content pack. Findings are informational; per-question verdicts
// are unaffected.
package crossfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emberprep/qlint/internal/normalize"
	"github.com/emberprep/qlint/internal/types"
)

// Entry pairs a question with the file it was loaded from.
type Entry struct {
	File     string
	Question types.MathQuestion
}

// Finding is a batch-level integrity problem.
type Finding struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

// Finding codes.
const (
	CodeDuplicateID   = "duplicate_question_id"
	CodeDuplicateText = "duplicate_question_text"
)

// Check scans a content pack for duplicate question IDs and duplicate
// question text (under answer normalization, so trivial whitespace and
// casing differences still collide).
func Check(entries []Entry) []Finding {
	var findings []Finding
	findings = append(findings, duplicateIDs(entries)...)
	findings = append(findings, duplicateText(entries)...)
	return findings
}

func duplicateIDs(entries []Entry) []Finding {
	byID := make(map[string][]string)
	for _, e := range entries {
		if e.Question.ID == "" {
			continue
		}
		byID[e.Question.ID] = append(byID[e.Question.ID], e.File)
	}
	return collectDuplicates(byID, func(id string, files []string) Finding {
		return Finding{
			Code:    CodeDuplicateID,
			Message: fmt.Sprintf("question id %q appears %d times", id, len(files)),
			Files:   files,
		}
	})
}

func duplicateText(entries []Entry) []Finding {
	byText := make(map[string][]string)
	display := make(map[string]string)
	for _, e := range entries {
		text := strings.TrimSpace(e.Question.QuestionText)
		if text == "" {
			continue
		}
		key := normalize.Answer(text)
		byText[key] = append(byText[key], e.File)
		if _, ok := display[key]; !ok {
			display[key] = e.Question.ID
		}
	}
	return collectDuplicates(byText, func(key string, files []string) Finding {
		return Finding{
			Code:    CodeDuplicateText,
			Message: fmt.Sprintf("question text of %q appears %d times", display[key], len(files)),
			Files:   files,
		}
	})
}

func collectDuplicates(m map[string][]string, build func(string, []string) Finding) []Finding {
	var keys []string
	for k, files := range m {
		if len(files) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	findings := make([]Finding, 0, len(keys))
	for _, k := range keys {
		files := m[k]
		sort.Strings(files)
		findings = append(findings, build(k, files))
	}
	return findings
}
