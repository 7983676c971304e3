// Package discovery locates question documents inside a content pack.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the canonical locations for question documents.
// Anything under questions/ plus explicitly suffixed files anywhere.
var DefaultPatterns = []string{
	"questions/**/*.json",
	"questions/**/*.yaml",
	"questions/**/*.yml",
	"**/*.question.json",
	"**/*.question.yaml",
	"**/*.question.yml",
}

// FileDiscovery finds question files under a content root.
type FileDiscovery struct {
	root     string
	patterns []string
	excludes []string
}

// New creates a FileDiscovery. Empty patterns fall back to DefaultPatterns.
func New(root string, patterns, excludes []string) *FileDiscovery {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileDiscovery{root: root, patterns: patterns, excludes: excludes}
}

// Discover walks the content root and returns every file matching an
// include pattern and no exclude pattern, as sorted absolute paths.
func (d *FileDiscovery) Discover() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !d.matchesAny(d.patterns, rel) || d.matchesAny(d.excludes, rel) {
			return nil
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (d *FileDiscovery) matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// IsQuestionFile reports whether a path looks like a question document,
// used when files are passed explicitly rather than discovered.
func IsQuestionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Exists reports whether the path exists; a helper for callers resolving
// explicit file arguments.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
