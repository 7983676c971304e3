package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/emberprep/qlint/internal/runner"
)

func TestRootCmdFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"root", "quiet", "verbose", "format", "output", "fail-on"} {
		if flags.Lookup(name) == nil {
			t.Errorf("persistent flag %s should exist", name)
		}
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"validate", "score", "report"} {
		if !names[want] {
			t.Errorf("subcommand %s should be registered", want)
		}
	}
}

func TestValidateCmdFlags(t *testing.T) {
	for _, name := range []string{"baseline", "create-baseline", "baseline-path", "write"} {
		if validateCmd.Flags().Lookup(name) == nil {
			t.Errorf("validate flag %s should exist", name)
		}
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		content    string
	}{
		{"No config file", "", ""},
		{"JSON config", ".qlintrc.json", `{"quiet": true}`},
		{"YAML config", ".qlintrc.yaml", "quiet: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Chdir(t.TempDir())
			if tt.configFile != "" {
				if err := os.WriteFile(tt.configFile, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			initConfig()
		})
	}
}

func TestRun_CleanPack(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte(`{
		"id": "q-001",
		"subject": "Mathematics",
		"topic": "Fractions",
		"question_text": "What is 1/2 + 1/4?",
		"computed_answer": "3/4",
		"answer_format": "fraction",
		"options": {"a": "1/4", "b": "3/4", "c": "1/2", "d": "2/3", "e": "5/4"},
		"correct_option": "b",
		"verification": {"verification_status": "VERIFIED"},
		"computational_verification": {
			"expression": "1/2 + 1/4",
			"expected_result": "3/4",
			"result_format": "fraction"
		}
	}`)
	if err := os.MkdirAll("questions", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("questions", "q.json"), content, 0644); err != nil {
		t.Fatal(err)
	}

	oldRoot, oldQuiet := rootPath, quiet
	rootPath, quiet = dir, true
	defer func() { rootPath, quiet = oldRoot, oldQuiet }()

	failed, err := run(nil, runner.Options{}, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if failed {
		t.Error("clean pack should not fail the build")
	}
}

func TestRun_FailingPack(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte(`{
		"id": "q-002",
		"subject": "Mathematics",
		"topic": "Fractions",
		"question_text": "What is 1/2 + 1/4?",
		"computed_answer": "3/4",
		"answer_format": "fraction",
		"options": {"a": "1/4", "b": "3/4", "c": "1/2", "d": "2/3", "e": "5/4"},
		"correct_option": "a",
		"verification": {"verification_status": "VERIFIED"},
		"computational_verification": {
			"expression": "1/2 + 1/4",
			"expected_result": "3/4",
			"result_format": "fraction"
		}
	}`)
	if err := os.MkdirAll("questions", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("questions", "q.json"), content, 0644); err != nil {
		t.Fatal(err)
	}

	oldRoot, oldQuiet := rootPath, quiet
	rootPath, quiet = dir, true
	defer func() { rootPath, quiet = oldRoot, oldQuiet }()

	failed, err := run(nil, runner.Options{}, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !failed {
		t.Error("mis-keyed question should fail the build")
	}

	// Creating a baseline accepts the current state.
	failed, err = run(nil, runner.Options{CreateBaseline: true}, "")
	if err != nil {
		t.Fatalf("create-baseline run: %v", err)
	}
	if failed {
		t.Error("create-baseline run should succeed")
	}
	if _, err := os.Stat(filepath.Join(dir, ".qlint-baseline.json")); err != nil {
		t.Errorf("baseline not written: %v", err)
	}
}
