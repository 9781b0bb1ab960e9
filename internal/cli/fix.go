package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okhalid/subfix/internal/overlap"
	"github.com/okhalid/subfix/internal/report"
	"github.com/okhalid/subfix/internal/subtitle"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [subtitle_file]",
	Short: "Remove timing overlaps from an SRT subtitle file",
	Long: `Fix overlapping timestamps in the specified SRT file.

Each entry whose end time runs past the next entry's start time is shortened
to end a small gap before it. Entries that cannot be shortened without
inverting their own start and end times are left alone and reported.

The original file is saved with a .backup extension before any changes are
written, and a markdown log is written next to the input file.

Examples:
  subfix fix movie.srt
  subfix fix movie.srt --gap 200
  subfix fix movie.srt -o fixed.srt --no-backup
  subfix fix movie.srt --report fixes.md`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().
		IntP("gap", "g", 100, "Gap in milliseconds to leave between adjacent entries (values <= 0 use the 100ms default)")
	fixCmd.Flags().
		Bool("no-backup", false, "Skip creating a .backup copy of the input file")
	fixCmd.Flags().
		String("report", "", "Markdown report path (default: <input>_log.md)")
	fixCmd.Flags().
		Bool("no-report", false, "Skip writing the markdown report")
}

func runFix(cmd *cobra.Command, args []string) error {
	srtPath := args[0]

	if _, err := os.Stat(srtPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", srtPath)
	}

	gapMillis, _ := cmd.Flags().GetInt("gap")
	noBackup, _ := cmd.Flags().GetBool("no-backup")
	reportPath, _ := cmd.Flags().GetString("report")
	noReport, _ := cmd.Flags().GetBool("no-report")
	outputPath, _ := cmd.Flags().GetString("output")

	if strings.ToLower(filepath.Ext(srtPath)) != ".srt" {
		logger.Warnw("Input does not have a .srt extension",
			"file", srtPath,
		)
	}
	if outputPath == "" {
		outputPath = srtPath
	}
	if reportPath == "" {
		reportPath = defaultReportPath(srtPath)
	}

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, diags := subtitle.Parse(string(data))
	logger.Infow("Parsed subtitle file",
		"file", srtPath,
		"entries", len(entries),
	)

	if !noBackup {
		backupPath := srtPath + ".backup"
		if err := os.WriteFile(backupPath, data, 0644); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		logger.Infow("Created backup",
			"path", backupPath,
		)
	}

	resolver := overlap.NewResolver(time.Duration(gapMillis) * time.Millisecond)
	fixed, result := resolver.Resolve(entries)
	diags = append(diags, result.Diagnostics...)

	logger.Infow("Resolution pass complete",
		"found", result.Found,
		"fixed", result.Fixed,
	)

	if result.Fixed > 0 || outputPath != srtPath {
		if err := os.WriteFile(outputPath, []byte(subtitle.Render(fixed)), 0644); err != nil {
			return fmt.Errorf("failed to write subtitle file: %w", err)
		}
	}

	if !noReport {
		rep := &report.FixReport{
			File:        filepath.Base(srtPath),
			Path:        srtPath,
			GeneratedAt: time.Now(),
			Entries:     len(fixed),
			Found:       result.Found,
			Fixed:       result.Fixed,
			Diagnostics: diags,
			Modified:    modifiedEntries(fixed),
		}
		if err := rep.Write(reportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Infow("Wrote report",
			"path", reportPath,
		)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Overlap fix complete: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(fixed))
	fmt.Printf("  Overlaps found: %d\n", result.Found)
	fmt.Printf("  Overlaps fixed: %d\n", result.Fixed)

	return nil
}

func defaultReportPath(srtPath string) string {
	ext := filepath.Ext(srtPath)
	return strings.TrimSuffix(srtPath, ext) + "_log.md"
}

func modifiedEntries(entries []subtitle.Entry) []subtitle.Entry {
	var modified []subtitle.Entry
	for _, entry := range entries {
		if entry.Modified {
			modified = append(modified, entry)
		}
	}
	return modified
}
