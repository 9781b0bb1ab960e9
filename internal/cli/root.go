package cli

import (
	"github.com/okhalid/subfix/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subfix",
	Short: "Subtitle timing fixer and homework file organizer",
	Long: `Subfix repairs overlapping timestamps in SRT subtitle files and
organizes paired starter/solution homework files into per-task folders.

Every run writes a markdown log describing what was changed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
