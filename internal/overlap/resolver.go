// Package overlap removes timing overlaps between adjacent subtitle
// entries with a single forward pass.
package overlap

import (
	"time"

	"github.com/okhalid/subfix/internal/subtitle"
)

// DefaultGap is the silent buffer left between a shortened entry and the
// start of its successor.
const DefaultGap = 100 * time.Millisecond

type Resolver struct {
	Gap time.Duration
}

// outcome of a resolution pass
type Result struct {
	Found       int
	Fixed       int
	Diagnostics []subtitle.Diagnostic
}

func NewResolver(gap time.Duration) *Resolver {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Resolver{Gap: gap}
}

// Resolve walks adjacent pairs in order and shortens the earlier entry
// whenever its end runs past the next entry's start. An entry is never
// shortened to or below its own start; such pairs are left overlapping and
// reported. Only end times change, and only downward. The input slice is
// not modified.
func (r *Resolver) Resolve(entries []subtitle.Entry) ([]subtitle.Entry, Result) {
	out := make([]subtitle.Entry, len(entries))
	copy(out, entries)

	var res Result
	if len(out) < 2 {
		return out, res
	}

	gap := r.Gap
	if gap <= 0 {
		gap = DefaultGap
	}

	for i := 0; i < len(out)-1; i++ {
		current := &out[i]
		next := out[i+1]

		if current.EndTime <= next.StartTime {
			continue
		}
		res.Found++

		amount := current.EndTime - next.StartTime
		newEnd := next.StartTime - gap

		if newEnd > current.StartTime {
			current.OriginalEnd = current.EndTime
			current.EndTime = newEnd
			current.Modified = true
			res.Fixed++

			res.Diagnostics = append(res.Diagnostics, subtitle.Infof(
				"fixed %dms overlap on entry #%d: end %s -> %s",
				amount.Milliseconds(),
				current.Index,
				subtitle.FormatTimestamp(current.OriginalEnd),
				subtitle.FormatTimestamp(current.EndTime),
			))
		} else {
			res.Diagnostics = append(res.Diagnostics, subtitle.Warningf(
				"cannot fix entry #%d: shortened end would not follow its start",
				current.Index,
			))
		}
	}

	return out, res
}
