// Package runner coordinates a validation run across a content pack: file
// discovery, boundary decoding, per-question validation, scoring, baseline
// filtering and cross-file checks. It is the only layer that touches the
// filesystem; the validation pipeline underneath stays pure.
package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/emberprep/qlint/internal/baseline"
	"github.com/emberprep/qlint/internal/config"
	"github.com/emberprep/qlint/internal/crossfile"
	"github.com/emberprep/qlint/internal/discovery"
	"github.com/emberprep/qlint/internal/schema"
	"github.com/emberprep/qlint/internal/scoring"
	"github.com/emberprep/qlint/internal/types"
	"github.com/emberprep/qlint/internal/validate"
)

// Options holds per-run behavior toggles.
type Options struct {
	UseBaseline    bool
	CreateBaseline bool
	BaselinePath   string
	Write          bool // apply auto-corrections back to single-question files
	Scores         bool // compute Ember Scores alongside validation
}

// Runner coordinates a validation run.
type Runner struct {
	cfg       *config.Config
	opts      Options
	validator *schema.Validator
}

// New creates a Runner. The boundary validator is built once per run.
func New(cfg *config.Config, opts Options) *Runner {
	validator := schema.NewValidator()
	if !cfg.Schemas.Enabled {
		validator.DisableShapeChecks()
	}
	return &Runner{cfg: cfg, opts: opts, validator: validator}
}

// Run validates the given files, or every discovered question file under
// the content root when no files are passed.
func (r *Runner) Run(paths []string) (*Summary, error) {
	files, err := r.resolveFiles(paths)
	if err != nil {
		return nil, err
	}

	b, err := r.loadBaseline()
	if err != nil && !r.cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: failed to load baseline: %v\n", err)
	}

	summary := &Summary{ContentRoot: r.cfg.Root, StartTime: time.Now()}
	var entries []crossfile.Entry
	var rawResults []types.ValidationResult

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", file, err)
		}

		questions, shapeErrs, err := r.validator.DecodeQuestions(r.displayPath(file), content)
		if err != nil {
			return nil, err
		}
		if len(shapeErrs) > 0 {
			summary.addSchemaFailure(r.displayPath(file), shapeErrs)
		}

		singleQuestionFile := len(questions) == 1 && len(shapeErrs) == 0

		for i := range questions {
			q := questions[i]
			entries = append(entries, crossfile.Entry{File: r.displayPath(file), Question: q})

			result := validate.ValidateQuestion(&q)
			rawResults = append(rawResults, result)

			if r.opts.UseBaseline && b != nil {
				var ignored int
				result, ignored = b.FilterResult(result)
				summary.BaselineIgnored += ignored
			}

			fr := FileResult{
				File:     r.displayPath(file),
				Question: q,
				Result:   result,
			}
			if r.opts.Scores {
				score := scoring.CalculateEmberScore(q.ScoringInput())
				fr.Score = &score
			}
			if !result.Passed && result.CorrectedData != nil {
				fr.Corrected = true
				if r.opts.Write && singleQuestionFile {
					if err := writeCorrected(file, result.CorrectedData.Apply(q)); err != nil {
						return nil, err
					}
				}
			}
			summary.add(fr)
		}
	}

	summary.Findings = crossfile.Check(entries)

	if r.opts.CreateBaseline {
		if err := r.saveBaseline(rawResults); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// resolveFiles turns explicit arguments into paths, or discovers question
// files under the content root.
func (r *Runner) resolveFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return discovery.New(r.cfg.Root, r.cfg.Patterns, r.cfg.Exclude).Discover()
	}

	var files []string
	for _, p := range paths {
		if !discovery.Exists(p) {
			return nil, fmt.Errorf("no such file: %s", p)
		}
		if !discovery.IsQuestionFile(p) {
			return nil, fmt.Errorf("not a question file (want .json/.yaml/.yml): %s", p)
		}
		files = append(files, p)
	}
	return files, nil
}

func (r *Runner) displayPath(file string) string {
	if rel, err := filepath.Rel(r.cfg.Root, file); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return file
}

func (r *Runner) baselinePath() string {
	path := r.opts.BaselinePath
	if path == "" {
		path = r.cfg.Baseline.Path
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.cfg.Root, path)
	}
	return path
}

func (r *Runner) loadBaseline() (*baseline.Baseline, error) {
	if !r.opts.UseBaseline {
		return nil, nil
	}
	path := r.baselinePath()
	if _, err := os.Stat(path); err != nil {
		return nil, nil // no baseline yet, not an error
	}
	return baseline.Load(path)
}

func (r *Runner) saveBaseline(results []types.ValidationResult) error {
	b := baseline.Create(results)
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	path := r.baselinePath()
	if err := b.Save(path); err != nil {
		return fmt.Errorf("failed to save baseline: %w", err)
	}
	if !r.cfg.Quiet {
		fmt.Printf("\nBaseline created: %s (%d issues)\n", path, len(b.Fingerprints))
	}
	return nil
}

// writeCorrected rewrites a single-question document with the corrected
// question. Multi-question documents are left for manual correction.
func writeCorrected(file string, q types.MathQuestion) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(file)) == ".json" {
		data, err = json.MarshalIndent(q, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yamlv3.Marshal(q)
	}
	if err != nil {
		return fmt.Errorf("cannot encode corrected question for %s: %w", file, err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("cannot write corrected question to %s: %w", file, err)
	}
	return nil
}
