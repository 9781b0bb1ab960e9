package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// Render produces SRT text for the entry list. Consecutive entries are
// separated by a single blank line; the final entry ends with a newline but
// no blank line after it.
func Render(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%d\n", entry.Index))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.StartTime),
			FormatTimestamp(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTimestamp renders a duration as zero-padded HH:MM:SS,mmm.
func FormatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
