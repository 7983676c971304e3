package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindContentRoot(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		isDir  bool
	}{
		{"Config file", ".qlintrc.json", false},
		{"YAML config file", ".qlintrc.yaml", false},
		{"Questions directory", "questions", true},
		{"Git repository", ".git", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			marker := filepath.Join(root, tt.marker)
			if tt.isDir {
				if err := os.Mkdir(marker, 0755); err != nil {
					t.Fatal(err)
				}
			} else {
				if err := os.WriteFile(marker, []byte("{}"), 0644); err != nil {
					t.Fatal(err)
				}
			}
			nested := filepath.Join(root, "bank", "fractions")
			if err := os.MkdirAll(nested, 0755); err != nil {
				t.Fatal(err)
			}

			got, err := FindContentRoot(nested)
			if err != nil {
				t.Fatalf("FindContentRoot: %v", err)
			}
			if got != root {
				t.Errorf("got %q, want %q", got, root)
			}
		})
	}
}

func TestFindContentRoot_NoMarkers(t *testing.T) {
	root := t.TempDir()
	got, err := FindContentRoot(root)
	if err != nil {
		t.Fatalf("FindContentRoot: %v", err)
	}
	if got != root {
		t.Errorf("got %q, want the starting path %q", got, root)
	}
}
