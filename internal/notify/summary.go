package notify

import "github.com/five82/notilog/internal/logs"

// DefaultMaxLines is the number of entries materialized in a summary.
const DefaultMaxLines = 10

// Summary is the compact projection of a filtered view for a space-constrained
// surface.
type Summary struct {
	Headline string   // text of the most recent matched entry
	Lines    []string // up to maxLines texts, most recent first
	Count    int      // total matched entries, not just Lines
}

// Empty reports whether no entry matched.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Summarize builds a Summary from a most-recent-first view.
func Summarize(view []logs.Entry, maxLines int) Summary {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	sum := Summary{Count: len(view)}
	if len(view) == 0 {
		return sum
	}
	sum.Headline = view[0].Text
	n := min(len(view), maxLines)
	sum.Lines = make([]string, 0, n)
	for _, e := range view[:n] {
		sum.Lines = append(sum.Lines, e.Text)
	}
	return sum
}
