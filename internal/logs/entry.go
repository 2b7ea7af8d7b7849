package logs

import "time"

// Entry is one recorded log event. It is created once at log-call time and
// never mutated.
type Entry struct {
	Level Level
	Time  time.Time
	Tag   string
	Text  string
}

// NewEntry stamps a new entry with the current wall-clock time.
func NewEntry(level Level, tag, text string) Entry {
	return Entry{
		Level: level,
		Time:  time.Now(),
		Tag:   tag,
		Text:  text,
	}
}
