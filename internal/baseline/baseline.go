// Package baseline records known validation failures so legacy question
// banks can be adopted incrementally: baselined errors are filtered out of
// results until the underlying questions are actually fixed.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/emberprep/qlint/internal/types"
)

// Baseline is a snapshot of known issues that should be ignored.
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool
}

// Create builds a baseline from validation results, fingerprinting every
// error they carry.
func Create(results []types.ValidationResult) *Baseline {
	index := make(map[string]bool)
	var fingerprints []string

	for _, r := range results {
		for _, e := range r.Errors {
			fp := fingerprint(r.QuestionID, e)
			if !index[fp] {
				index[fp] = true
				fingerprints = append(fingerprints, fp)
			}
		}
	}

	// Sort for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		Fingerprints: fingerprints,
		index:        index,
	}
}

// Load reads a baseline from a JSON file.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}
	return &b, nil
}

// Save writes the baseline to a JSON file.
func (b *Baseline) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}
	return nil
}

// IsKnown checks whether an error on a question is in the baseline.
func (b *Baseline) IsKnown(questionID string, err types.ValidationError) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(questionID, err)]
}

// FilterResult strips baselined errors from a result and recomputes the
// passed flag. Returns the filtered result and the number of errors
// ignored. Warnings are never baselined.
func (b *Baseline) FilterResult(r types.ValidationResult) (types.ValidationResult, int) {
	if b == nil || len(r.Errors) == 0 {
		return r, 0
	}

	var kept []types.ValidationError
	ignored := 0
	for _, e := range r.Errors {
		if b.IsKnown(r.QuestionID, e) {
			ignored++
			continue
		}
		kept = append(kept, e)
	}
	if ignored == 0 {
		return r, 0
	}

	r.Errors = kept
	r.Passed = len(kept) == 0
	return r, ignored
}

// fingerprint creates a stable hash of an issue for comparison.
// Uses: question id + error code + normalized message pattern.
func fingerprint(questionID string, err types.ValidationError) string {
	msg := normalizeMessage(err.Message)
	data := fmt.Sprintf("%s|%s|%s", questionID, err.Code, msg)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// normalizeMessage replaces specific values with placeholders so similar
// issues keep matching as the message's literals drift.
func normalizeMessage(msg string) string {
	// Replace double-quoted strings with placeholder
	msg = regexp.MustCompile(`"[^"]+"`).ReplaceAllString(msg, `"*"`)

	// Replace numbers with placeholder
	msg = regexp.MustCompile(`\b\d+\b`).ReplaceAllString(msg, `N`)

	// Normalize whitespace
	msg = strings.Join(strings.Fields(msg), " ")

	return msg
}
