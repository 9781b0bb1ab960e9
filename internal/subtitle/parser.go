package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedBlock marks a block that does not have the
	// index / time-range / text shape.
	ErrMalformedBlock = errors.New("malformed subtitle block")

	// ErrInvalidTimestamp marks a timestamp that is not exactly
	// HH:MM:SS,mmm.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

var (
	timestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)
	blockSepRegex  = regexp.MustCompile(`\n\s*\n`)
)

// Parse reads SRT text into an ordered entry list. Blocks that cannot be
// parsed are skipped and recorded as warning diagnostics; parsing itself
// never fails.
func Parse(text string) ([]Entry, []Diagnostic) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var entries []Entry
	var diags []Diagnostic

	blocks := blockSepRegex.Split(strings.TrimSpace(text), -1)
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		entry, err := parseBlock(block)
		if err != nil {
			diags = append(diags, Warningf("skipping block %q: %v",
				firstLine(block), err))
			continue
		}
		entries = append(entries, entry)
	}

	diags = append(diags, Infof("parsed %d entries", len(entries)))
	return entries, diags
}

func parseBlock(block string) (Entry, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return Entry{}, fmt.Errorf(
			"%w: expected index, time range and text, got %d lines",
			ErrMalformedBlock,
			len(lines),
		)
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Entry{}, fmt.Errorf(
			"%w: index line %q is not an integer",
			ErrMalformedBlock,
			lines[0],
		)
	}

	times := strings.Split(lines[1], " --> ")
	if len(times) != 2 {
		return Entry{}, fmt.Errorf(
			"%w: time line %q is not a range",
			ErrMalformedBlock,
			lines[1],
		)
	}

	start, err := ParseTimestamp(strings.TrimSpace(times[0]))
	if err != nil {
		return Entry{}, err
	}
	end, err := ParseTimestamp(strings.TrimSpace(times[1]))
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Index:       index,
		StartTime:   start,
		EndTime:     end,
		Text:        strings.Join(lines[2:], "\n"),
		OriginalEnd: end,
	}, nil
}

// ParseTimestamp converts a strict HH:MM:SS,mmm string into a duration
// since midnight.
func ParseTimestamp(s string) (time.Duration, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if len(matches) != 5 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

func firstLine(block string) string {
	lines := strings.SplitN(strings.TrimSpace(block), "\n", 2)
	return lines[0]
}
