// Package render turns filtered log views into display-ready text: the full
// HTML document for the viewer and the fixed-width line format shared with the
// terminal UI.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/five82/notilog/internal/logs"
)

// TagWidth is the fixed width of the tag column.
const TagWidth = 10

const ellipsis = "…"

// TagField fits tag into TagWidth columns: longer tags keep their first
// TagWidth-1 runes followed by an ellipsis, shorter ones are padded with
// trailing spaces.
func TagField(tag string) string {
	n := utf8.RuneCountInString(tag)
	switch {
	case n > TagWidth:
		runes := []rune(tag)
		return string(runes[:TagWidth-1]) + ellipsis
	case n < TagWidth:
		return tag + strings.Repeat(" ", TagWidth-n)
	default:
		return tag
	}
}

// Timestamp formats t as HH:MM:SS:mmm in local time.
func Timestamp(t time.Time) string {
	local := t.Local()
	return fmt.Sprintf("%s:%03d", local.Format("15:04:05"), local.Nanosecond()/int(time.Millisecond))
}

// Line renders one entry as "TIME TAG TEXT" without styling.
func Line(e logs.Entry) string {
	return Timestamp(e.Time) + " " + TagField(e.Tag) + " " + e.Text
}

// Color returns the HTML color for a level. WTF and unknown levels share the
// fallback color.
func Color(level logs.Level) string {
	switch level {
	case logs.Verbose:
		return "#000000"
	case logs.Debug:
		return "#0000FF"
	case logs.Info:
		return "#367000"
	case logs.Warn:
		return "#F5B800"
	case logs.Error:
		return "#FF0000"
	case logs.Assert:
		return "#F500B8"
	default:
		return "#703A00"
	}
}
