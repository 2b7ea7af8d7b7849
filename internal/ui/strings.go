package ui

import "strings"

// truncate shortens a string to the given rune limit, adding an ellipsis if
// needed. Newlines are flattened so a single entry stays on one line.
func truncate(value string, limit int) string {
	value = strings.Join(strings.Fields(value), " ")
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
