package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emberprep/qlint/internal/runner"
)

var (
	useBaseline    bool
	createBaseline bool
	baselinePath   string
	writeFixes     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate question files",
	Long: `Validate question files for structural consistency and, for Mathematics
questions, computational correctness. With no arguments, every question
file under the content root is validated.

Auto-correctable errors (a correct answer present under the wrong option
key) are reported with a suggested fix; --write applies the fix back to
single-question files.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAndExit(args, runner.Options{
			UseBaseline:    useBaseline,
			CreateBaseline: createBaseline,
			BaselinePath:   baselinePath,
			Write:          writeFixes,
		}, "")
	},
}

func init() {
	validateCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Ignore issues recorded in the baseline file")
	validateCmd.Flags().BoolVar(&createBaseline, "create-baseline", false, "Record current issues as the baseline and exit successfully")
	validateCmd.Flags().StringVar(&baselinePath, "baseline-path", "", "Baseline file path (default .qlint-baseline.json under the content root)")
	validateCmd.Flags().BoolVarP(&writeFixes, "write", "w", false, "Apply auto-corrections back to single-question files")

	rootCmd.AddCommand(validateCmd)
}
