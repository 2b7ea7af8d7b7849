package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/five82/notilog/internal/logs"
)

// DefaultTag labels lines that carry no logcat header.
const DefaultTag = "stdin"

var (
	// 10-19 14:32:15.123  1234  5678 I Example: message
	threadtimePattern = regexp.MustCompile(`^(\d{2})-(\d{2})\s+(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s+\d+\s+\d+\s+([VDIWEAF])\s+(.*?)\s*:\s?(.*)$`)
	// I/Example( 1234): message
	briefPattern = regexp.MustCompile(`^([VDIWEAF])/([^:(]*?)\(\s*\d+\):\s?(.*)$`)
	// I/Example: message
	tagPattern = regexp.MustCompile(`^([VDIWEAF])/([^:]*?):\s?(.*)$`)
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		var lines []string
		err := scan(file, func(line string) { lines = append(lines, line) })
		return lines, err
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	err = scan(file, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries reads the last maxLines of path and parses each into an entry,
// oldest first.
func ReadEntries(path string, maxLines int, now time.Time) ([]logs.Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]logs.Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Entry(line, now))
	}
	return entries, nil
}

// Follow parses lines from r until EOF, calling fn for each non-blank one.
func Follow(r io.Reader, fn func(logs.Entry)) error {
	return scan(r, func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		fn(Entry(line, time.Now()))
	})
}

// Entry parses line, falling back to an Info entry under DefaultTag when the
// line has no recognizable header.
func Entry(line string, now time.Time) logs.Entry {
	if e, ok := ParseLine(line, now); ok {
		return e
	}
	return logs.Entry{Level: logs.Info, Time: now, Tag: DefaultTag, Text: line}
}

// ParseLine recognizes logcat threadtime, logcat brief and "L/Tag: text"
// lines. Threadtime stamps carry no year; now supplies it. Other formats are
// stamped with now.
func ParseLine(line string, now time.Time) (logs.Entry, bool) {
	line = strings.TrimRight(line, "\r\n")

	if m := threadtimePattern.FindStringSubmatch(line); m != nil {
		level, err := logs.ParseLevel(m[7])
		if err != nil {
			return logs.Entry{}, false
		}
		return logs.Entry{
			Level: level,
			Time:  stamp(m[1:7], now),
			Tag:   strings.TrimSpace(m[8]),
			Text:  m[9],
		}, true
	}
	if m := briefPattern.FindStringSubmatch(line); m != nil {
		level, err := logs.ParseLevel(m[1])
		if err != nil {
			return logs.Entry{}, false
		}
		return logs.Entry{Level: level, Time: now, Tag: strings.TrimSpace(m[2]), Text: m[3]}, true
	}
	if m := tagPattern.FindStringSubmatch(line); m != nil {
		level, err := logs.ParseLevel(m[1])
		if err != nil {
			return logs.Entry{}, false
		}
		return logs.Entry{Level: level, Time: now, Tag: strings.TrimSpace(m[2]), Text: m[3]}, true
	}
	return logs.Entry{}, false
}

func stamp(parts []string, now time.Time) time.Time {
	n := make([]int, len(parts))
	for i, p := range parts {
		n[i], _ = strconv.Atoi(p)
	}
	return time.Date(now.Year(), time.Month(n[0]), n[1], n[2], n[3], n[4], n[5]*int(time.Millisecond), now.Location())
}

func scan(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	return nil
}
