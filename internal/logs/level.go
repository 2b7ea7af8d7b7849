// Package logs defines the log levels and the immutable entry value shared by
// the store, the renderers and the sinks.
package logs

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the severity of an entry. Values match the Android log priorities.
type Level int

const (
	Verbose Level = 2
	Debug   Level = 3
	Info    Level = 4
	Warn    Level = 5
	Error   Level = 6
	Assert  Level = 7

	// WTF sits above Assert and is never offered as a filter choice.
	WTF Level = 99
)

var choices = []Level{Verbose, Debug, Info, Warn, Error, Assert}

// Choices returns the six selectable display levels in ascending order.
// Verbose doubles as "show everything".
func Choices() []Level {
	out := make([]Level, len(choices))
	copy(out, choices)
	return out
}

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case Verbose:
		return "Verbose"
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warn:
		return "Warn"
	case Error:
		return "Error"
	case Assert:
		return "Assert"
	case WTF:
		return "WTF"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Letter returns the single-letter logcat code for the level.
func (l Level) Letter() string {
	switch l {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warn:
		return "W"
	case Error:
		return "E"
	case Assert:
		return "A"
	case WTF:
		return "F"
	default:
		return "?"
	}
}

// Valid reports whether l is one of the defined levels, WTF included.
func (l Level) Valid() bool {
	switch l {
	case Verbose, Debug, Info, Warn, Error, Assert, WTF:
		return true
	}
	return false
}

// ParseLevel accepts a level name ("warn"), a logcat letter ("W") or the
// numeric priority ("5").
func ParseLevel(s string) (Level, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("parse level: empty value")
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		l := Level(n)
		if !l.Valid() {
			return 0, fmt.Errorf("parse level: unknown priority %d", n)
		}
		return l, nil
	}
	switch strings.ToLower(trimmed) {
	case "verbose", "v":
		return Verbose, nil
	case "debug", "d":
		return Debug, nil
	case "info", "i":
		return Info, nil
	case "warn", "warning", "w":
		return Warn, nil
	case "error", "e":
		return Error, nil
	case "assert", "a":
		return Assert, nil
	case "wtf", "f":
		return WTF, nil
	}
	return 0, fmt.Errorf("parse level: unknown level %q", trimmed)
}

// MarshalText encodes the level as its lower-case name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("marshal level: invalid level %d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText decodes anything ParseLevel accepts.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
