package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/okhalid/subfix/internal/organize"
	"github.com/okhalid/subfix/internal/subtitle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixReportRender(t *testing.T) {
	rep := &FixReport{
		File:        "movie.srt",
		Path:        "/videos/movie.srt",
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Entries:     42,
		Found:       3,
		Fixed:       2,
		Diagnostics: []subtitle.Diagnostic{
			subtitle.Infof("parsed 42 entries"),
			subtitle.Warningf("cannot fix entry #9: shortened end would not follow its start"),
		},
		Modified: []subtitle.Entry{
			{
				Index:       4,
				StartTime:   1 * time.Second,
				EndTime:     3*time.Second + 900*time.Millisecond,
				OriginalEnd: 5 * time.Second,
				Text:        "Hello there.",
				Modified:    true,
			},
		},
	}

	out := rep.Render()
	assert.Contains(t, out, "# SRT Time Overlap Fix Log")
	assert.Contains(t, out, "- **File**: `movie.srt`")
	assert.Contains(t, out, "- **Date**: 2026-08-30 12:00:00")
	assert.Contains(t, out, "- **Entries**: 42")
	assert.Contains(t, out, "- **Overlaps found**: 3")
	assert.Contains(t, out, "- **Overlaps fixed**: 2")
	assert.Contains(t, out, "overlaps corrected")
	assert.Contains(t, out, "[warning] cannot fix entry #9")
	assert.Contains(t, out, "### Entry #4")
	assert.Contains(t, out, "- **Previous end**: `00:00:05,000`")
	assert.Contains(t, out, "- **New end**: `00:00:03,900`")
}

func TestFixReportNoChanges(t *testing.T) {
	rep := &FixReport{
		File:        "clean.srt",
		GeneratedAt: time.Now(),
		Entries:     5,
	}

	out := rep.Render()
	assert.Contains(t, out, "no changes made")
	assert.NotContains(t, out, "## Modified entries")
}

func TestFixReportExcerptLimits(t *testing.T) {
	long := strings.Repeat("x", 150)
	entries := make([]subtitle.Entry, 8)
	for i := range entries {
		entries[i] = subtitle.Entry{Index: i + 1, Text: long, Modified: true}
	}

	rep := &FixReport{Modified: entries, Fixed: 8, Found: 8}
	out := rep.Render()

	assert.Contains(t, out, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 101))
	assert.Contains(t, out, "### Entry #5")
	assert.NotContains(t, out, "### Entry #6", "only the first 5 modified entries are shown")
}

func TestExcerptTruncatesMultibyteTextCleanly(t *testing.T) {
	long := strings.Repeat("م", 120)
	got := excerpt(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("م", maxExcerpt)+"...", got)

	short := "مرحبا بالعالم"
	assert.Equal(t, short, excerpt(short))
}

func TestFixReportWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie_log.md")

	rep := &FixReport{File: "movie.srt", GeneratedAt: time.Now()}
	require.NoError(t, rep.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# SRT Time Overlap Fix Log")
}

func TestOrganizeReportRender(t *testing.T) {
	rep := &OrganizeReport{
		Dir:         "/homework",
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Result: &organize.Result{
			FilesScanned: 3,
			Tasks: []organize.Task{
				{
					Name:         "lists",
					StarterDest:  "/homework/lists/lists-starter.rkt",
					SolutionDest: "/homework/lists/solution/lists-solution.rkt",
				},
			},
			Incomplete: []organize.Incomplete{
				{Name: "trees", ExistingFile: "trees-starter.rkt", MissingRole: "solution"},
			},
		},
	}

	out := rep.Render()
	assert.Contains(t, out, "# Homework Organizer Report")
	assert.Contains(t, out, "## Task: lists")
	assert.Contains(t, out, "## Warning: trees")
	assert.Contains(t, out, "- **Missing**: solution file")
	assert.Contains(t, out, "| Tasks discovered | 2 |")
	assert.Contains(t, out, "| Organized | 1 |")
	assert.Contains(t, out, "| Success rate | 50% |")
}
