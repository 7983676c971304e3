package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emberprep/qlint/internal/runner"
)

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Write a validation report",
	Long: `Run validation and write the plain-text operational report: counts
header, then one block per failed question with error codes, messages and
suggested fixes. Use --format to pick json or markdown instead, and
--output to write to a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		format := outputFormat
		if f := cmd.Flag("format"); f != nil && !f.Changed && format == "console" {
			format = "text"
		}
		runAndExit(args, runner.Options{Scores: true}, format)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
