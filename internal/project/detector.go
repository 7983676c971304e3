// Package project detects the root of a question content pack.
package project

import (
	"os"
	"path/filepath"
)

// Root markers, checked in order.
var rootMarkers = []string{".qlintrc.json", ".qlintrc.yaml", ".qlintrc.yml", "questions"}

// FindContentRoot searches for a content-pack root starting from the given
// path and climbing up the directory tree. A directory containing a qlint
// config file or a questions/ directory is a root; a .git directory is the
// fallback marker. When nothing matches, the starting path is returned.
func FindContentRoot(startPath string) (string, error) {
	if startPath == "" {
		startPath = "."
	}
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isContentRoot(currentDir) {
			return currentDir, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}
	return absPath, nil
}

func isContentRoot(path string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		return true
	}
	return false
}
