// Package report renders markdown run logs for the fix and organize
// commands.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/okhalid/subfix/internal/organize"
	"github.com/okhalid/subfix/internal/subtitle"
)

// maximum number of modified entries shown in a fix report
const maxExamples = 5

// maximum length in characters of the text excerpt shown per modified entry
const maxExcerpt = 100

// summary of one overlap-fix run
type FixReport struct {
	File        string
	Path        string
	GeneratedAt time.Time
	Entries     int
	Found       int
	Fixed       int
	Diagnostics []subtitle.Diagnostic
	Modified    []subtitle.Entry
}

func (r *FixReport) Render() string {
	var sb strings.Builder

	sb.WriteString("# SRT Time Overlap Fix Log\n\n")

	sb.WriteString("## Run\n")
	sb.WriteString(fmt.Sprintf("- **File**: `%s`\n", r.File))
	sb.WriteString(fmt.Sprintf("- **Path**: `%s`\n", r.Path))
	sb.WriteString(fmt.Sprintf("- **Date**: %s\n",
		r.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("- **Entries**: %d\n\n", r.Entries))

	sb.WriteString("## Results\n")
	sb.WriteString(fmt.Sprintf("- **Overlaps found**: %d\n", r.Found))
	sb.WriteString(fmt.Sprintf("- **Overlaps fixed**: %d\n", r.Fixed))
	if r.Fixed > 0 {
		sb.WriteString("- **Status**: overlaps corrected\n\n")
	} else {
		sb.WriteString("- **Status**: no changes made\n\n")
	}

	if len(r.Diagnostics) > 0 {
		sb.WriteString("## Details\n\n")
		for _, d := range r.Diagnostics {
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", d.Severity, d.Message))
		}
		sb.WriteString("\n")
	}

	if len(r.Modified) > 0 {
		sb.WriteString("## Modified entries\n\n")
		for i, entry := range r.Modified {
			if i >= maxExamples {
				break
			}
			sb.WriteString(fmt.Sprintf("### Entry #%d\n", entry.Index))
			sb.WriteString(fmt.Sprintf("```\n%s\n```\n", excerpt(entry.Text)))
			sb.WriteString(fmt.Sprintf("- **Previous end**: `%s`\n",
				subtitle.FormatTimestamp(entry.OriginalEnd)))
			sb.WriteString(fmt.Sprintf("- **New end**: `%s`\n\n",
				subtitle.FormatTimestamp(entry.EndTime)))
		}
	}

	sb.WriteString("---\n*Generated automatically by subfix*\n")
	return sb.String()
}

func (r *FixReport) Write(path string) error {
	return os.WriteFile(path, []byte(r.Render()), 0644)
}

// summary of one organize run
type OrganizeReport struct {
	Dir         string
	GeneratedAt time.Time
	Result      *organize.Result
}

func (r *OrganizeReport) Render() string {
	var sb strings.Builder
	res := r.Result

	sb.WriteString("# Homework Organizer Report\n\n")
	sb.WriteString(fmt.Sprintf("- **Directory**: `%s`\n", r.Dir))
	sb.WriteString(fmt.Sprintf("- **Date**: %s\n\n",
		r.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString("---\n\n")

	for _, task := range res.Tasks {
		sb.WriteString(fmt.Sprintf("## Task: %s\n", task.Name))
		sb.WriteString(fmt.Sprintf("- **Folder**: `%s/`\n", task.Name))
		sb.WriteString(fmt.Sprintf("- **Starter**: `%s`\n", task.StarterDest))
		sb.WriteString(fmt.Sprintf("- **Solution**: `%s`\n\n", task.SolutionDest))
	}

	for _, inc := range res.Incomplete {
		sb.WriteString(fmt.Sprintf("## Warning: %s\n", inc.Name))
		sb.WriteString(fmt.Sprintf("- **Missing**: %s file\n", inc.MissingRole))
		sb.WriteString(fmt.Sprintf("- **Found only**: `%s`\n\n", inc.ExistingFile))
	}

	for _, fail := range res.Failures {
		sb.WriteString(fmt.Sprintf("## Error: %s\n", fail.Name))
		sb.WriteString(fmt.Sprintf("- **Reason**: %v\n\n", fail.Err))
	}

	sb.WriteString("---\n\n")
	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Tasks discovered | %d |\n", res.Discovered()))
	sb.WriteString(fmt.Sprintf("| Organized | %d |\n", len(res.Tasks)))
	sb.WriteString(fmt.Sprintf("| Warnings | %d |\n", len(res.Incomplete)))
	if res.Discovered() > 0 {
		rate := len(res.Tasks) * 100 / res.Discovered()
		sb.WriteString(fmt.Sprintf("| Success rate | %d%% |\n", rate))
	}

	sb.WriteString("\n---\n*Generated automatically by subfix*\n")
	return sb.String()
}

func (r *OrganizeReport) Write(path string) error {
	return os.WriteFile(path, []byte(r.Render()), 0644)
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= maxExcerpt {
		return text
	}
	return string(runes[:maxExcerpt]) + "..."
}
