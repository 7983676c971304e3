package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emberprep/qlint/internal/runner"
)

var scoreCmd = &cobra.Command{
	Use:   "score [files...]",
	Short: "Compute Ember Scores for questions",
	Long: `Compute the Ember Score for each question: a 0-100 quality metric
blending curriculum alignment, expert review tier and community feedback.
Scores are computed alongside validation so a question's verdict and its
score appear together. Use --verbose for the per-component breakdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAndExit(args, runner.Options{Scores: true}, "")
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
