package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okhalid/subfix/internal/organize"
	"github.com/okhalid/subfix/internal/report"
	"github.com/spf13/cobra"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [directory]",
	Short: "Organize paired starter/solution files into per-task folders",
	Long: `Organize a flat directory of homework files into one folder per task.

Files are paired by name: <task>-starter<ext> and <task>-solution<ext>.
For each complete pair a <task>/ folder is created, the starter file is
moved into it, and the solution file is moved into <task>/solution/.
Files missing their counterpart are left in place and reported.

A log.md report is written into the target directory.

Examples:
  subfix organize
  subfix organize ./homework
  subfix organize ./homework --ext .py
  subfix organize ./homework --starter-suffix _start --solution-suffix _done`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrganize,
}

func init() {
	rootCmd.AddCommand(organizeCmd)

	organizeCmd.Flags().
		String("ext", organize.DefaultExt, "File extension of homework files")
	organizeCmd.Flags().
		String("starter-suffix", organize.DefaultStarterSuffix, "Filename suffix marking starter files")
	organizeCmd.Flags().
		String("solution-suffix", organize.DefaultSolutionSuffix, "Filename suffix marking solution files")
	organizeCmd.Flags().
		Bool("no-report", false, "Skip writing the log.md report")
}

func runOrganize(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	ext, _ := cmd.Flags().GetString("ext")
	starterSuffix, _ := cmd.Flags().GetString("starter-suffix")
	solutionSuffix, _ := cmd.Flags().GetString("solution-suffix")
	noReport, _ := cmd.Flags().GetBool("no-report")

	org := organize.New()
	org.Ext = ext
	org.StarterSuffix = starterSuffix
	org.SolutionSuffix = solutionSuffix

	logger.Infow("Organizing homework files",
		"directory", dir,
		"ext", ext,
	)

	result, err := org.Run(dir)
	if err != nil {
		return fmt.Errorf("organize failed: %w", err)
	}

	logger.Infow("Organize pass complete",
		"files", result.FilesScanned,
		"tasks", result.Discovered(),
		"organized", len(result.Tasks),
		"warnings", len(result.Incomplete),
	)
	for _, inc := range result.Incomplete {
		logger.Warnw("Incomplete task pair",
			"task", inc.Name,
			"missing", inc.MissingRole,
			"found", inc.ExistingFile,
		)
	}
	for _, fail := range result.Failures {
		logger.Errorw("Failed to organize task",
			"task", fail.Name,
			"error", fail.Err,
		)
	}

	if !noReport {
		rep := &report.OrganizeReport{
			Dir:         dir,
			GeneratedAt: time.Now(),
			Result:      result,
		}
		logPath := filepath.Join(dir, "log.md")
		if err := rep.Write(logPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Infow("Wrote report",
			"path", logPath,
		)
	}

	absDir, _ := filepath.Abs(dir)
	fmt.Printf("Organize complete: %s\n", absDir)
	fmt.Printf("  Tasks discovered: %d\n", result.Discovered())
	fmt.Printf("  Organized: %d\n", len(result.Tasks))
	fmt.Printf("  Warnings: %d\n", len(result.Incomplete))

	return nil
}
