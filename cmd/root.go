// Package cmd implements the qlint command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emberprep/qlint/internal/config"
	"github.com/emberprep/qlint/internal/outputters"
	"github.com/emberprep/qlint/internal/project"
	"github.com/emberprep/qlint/internal/runner"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failOn       string
)

var rootCmd = &cobra.Command{
	Use:   "qlint",
	Short: "Question lint - quality validation and scoring for exam content packs",
	Long: `qlint validates exam-question content packs: structural consistency of
answer options, arithmetic and fraction correctness of Mathematics
questions, and Ember Score quality metrics.

By default, qlint validates every question file discovered under the
content root. Use the subcommands to validate specific files, compute
scores, or write reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAndExit(args, runner.Options{}, "")
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Content root directory (auto-detected if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown|text)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failOn, "fail-on", "error", "Fail build on specified level (critical|error|warning)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failOn", rootCmd.PersistentFlags().Lookup("fail-on"))
}

func initConfig() {
	for _, path := range config.ConfigFiles {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// run executes a full validation run and renders the output. It returns
// whether the run should fail the build.
func run(paths []string, opts runner.Options, formatOverride string) (bool, error) {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return false, fmt.Errorf("error loading configuration: %w", err)
	}
	if cfg.Root == "" {
		root, err := project.FindContentRoot(".")
		if err != nil {
			return false, fmt.Errorf("error detecting content root: %w", err)
		}
		cfg.Root = root
	}

	summary, err := runner.New(cfg, opts).Run(paths)
	if err != nil {
		return false, err
	}

	format := cfg.Format
	if formatOverride != "" {
		format = formatOverride
	}
	outputter := outputters.NewOutputter(cfg, opts.Scores)
	if err := outputter.Format(summary, format); err != nil {
		return false, fmt.Errorf("error formatting output: %w", err)
	}

	// Creating a baseline accepts the current state.
	if opts.CreateBaseline {
		return false, nil
	}
	return summary.ShouldFail(cfg.FailOn), nil
}

func runAndExit(paths []string, opts runner.Options, formatOverride string) {
	failed, err := run(paths, opts, formatOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}
