// Package schema handles boundary validation of raw question documents.
// Incoming JSON/YAML is shape-checked against a CUE schema before it is
// decoded into the typed MathQuestion the pipeline operates on; open-ended
// dictionaries never travel past this package.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/emberprep/qlint/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Error is a shape violation found at the boundary.
type Error struct {
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

// Validator checks raw question data against the embedded CUE schema.
type Validator struct {
	ctx      *cue.Context
	schema   cue.Value
	loaded   bool
	disabled bool
}

// DisableShapeChecks turns shape validation into a pass-through. Documents
// are still parsed and decoded; they are just not unified with the schema.
func (v *Validator) DisableShapeChecks() {
	v.disabled = true
}

// NewValidator compiles the embedded schemas. A schema that fails to load
// degrades to pass-through validation rather than blocking the pipeline.
func NewValidator() *Validator {
	v := &Validator{ctx: cuecontext.New()}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return v
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}
		def := inst.LookupPath(cue.ParsePath("#Question"))
		if def.Exists() {
			v.schema = def
			v.loaded = true
		}
	}
	return v
}

// ValidateQuestion checks raw question data against the schema. A nil
// result means the shape is acceptable.
func (v *Validator) ValidateQuestion(data map[string]any) []Error {
	if !v.loaded || v.disabled {
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []Error{{Message: fmt.Sprintf("cannot encode question data: %v", err)}}
	}

	unified := v.schema.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []Error{{Message: fmt.Sprintf("schema validation failed: %v", err)}}
	}
	if err := unified.Validate(); err != nil {
		return []Error{{Message: fmt.Sprintf("schema validation failed: %v", err)}}
	}
	return nil
}

// DecodeQuestions parses a question document (JSON or YAML; a single object
// or an array of objects), shape-checks each entry, and decodes the valid
// ones into typed questions. Shape errors are returned per entry alongside
// the questions that did decode; a document that cannot be parsed at all is
// an error.
func (v *Validator) DecodeQuestions(file string, content []byte) ([]types.MathQuestion, []Error, error) {
	var raw any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("cannot parse %s: %w", file, err)
	}

	var entries []map[string]any
	switch doc := raw.(type) {
	case map[string]any:
		entries = append(entries, doc)
	case []any:
		for i, item := range doc {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, nil, fmt.Errorf("%s: entry %d is not a question object", file, i)
			}
			entries = append(entries, m)
		}
	case nil:
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("%s: expected a question object or array", file)
	}

	var questions []types.MathQuestion
	var errs []Error
	for i, entry := range entries {
		if shapeErrs := v.ValidateQuestion(entry); len(shapeErrs) > 0 {
			for _, e := range shapeErrs {
				e.File = file
				e.Message = fmt.Sprintf("entry %d: %s", i, e.Message)
				errs = append(errs, e)
			}
			continue
		}
		q, err := decodeQuestion(entry)
		if err != nil {
			errs = append(errs, Error{File: file, Message: fmt.Sprintf("entry %d: %v", i, err)})
			continue
		}
		questions = append(questions, q)
	}
	return questions, errs, nil
}

// decodeQuestion converts shape-valid raw data into the typed question via
// a JSON round trip, so the struct tags stay the single source of field
// naming truth.
func decodeQuestion(data map[string]any) (types.MathQuestion, error) {
	var q types.MathQuestion
	buf, err := json.Marshal(data)
	if err != nil {
		return q, fmt.Errorf("cannot re-encode question: %w", err)
	}
	if err := json.Unmarshal(buf, &q); err != nil {
		return q, fmt.Errorf("cannot decode question: %w", err)
	}
	return q, nil
}
