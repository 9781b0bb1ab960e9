package subtitle

import (
	"fmt"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string

	// set when a pass shortens the entry; OriginalEnd keeps the
	// pre-adjustment end time for reporting
	Modified    bool
	OriginalEnd time.Duration
}

// severity of a diagnostic message
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// non-fatal event recorded while parsing or adjusting entries
type Diagnostic struct {
	Severity Severity
	Message  string
}

func Infof(format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	}
}

func Warningf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	}
}
