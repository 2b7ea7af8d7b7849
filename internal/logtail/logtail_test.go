package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/five82/notilog/internal/logs"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v, want nil, nil", got, err)
	}
}

func TestParseLine(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
		want  logs.Entry
		ok    bool
	}{
		{
			name:  "threadtime",
			input: "10-18 14:32:15.123  1234  5678 W Example : loop 3",
			want: logs.Entry{
				Level: logs.Warn,
				Time:  time.Date(2026, 10, 18, 14, 32, 15, 123*int(time.Millisecond), time.Local),
				Tag:   "Example",
				Text:  "loop 3",
			},
			ok: true,
		},
		{
			name:  "brief",
			input: "E/ActivityManager(  512): ANR in com.example",
			want:  logs.Entry{Level: logs.Error, Time: now, Tag: "ActivityManager", Text: "ANR in com.example"},
			ok:    true,
		},
		{
			name:  "sink format",
			input: "F/Core: impossible",
			want:  logs.Entry{Level: logs.WTF, Time: now, Tag: "Core", Text: "impossible"},
			ok:    true,
		},
		{
			name:  "text keeps colons",
			input: "I/Net: addr: 10.0.0.1:80",
			want:  logs.Entry{Level: logs.Info, Time: now, Tag: "Net", Text: "addr: 10.0.0.1:80"},
			ok:    true,
		},
		{
			name:  "plain text",
			input: "just a line",
			ok:    false,
		},
		{
			name:  "unknown letter",
			input: "X/Tag: text",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.input, now)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Level != tt.want.Level || got.Tag != tt.want.Tag || got.Text != tt.want.Text || !got.Time.Equal(tt.want.Time) {
				t.Fatalf("ParseLine(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEntry_FallsBackToDefaultTag(t *testing.T) {
	now := time.Now()
	got := Entry("free-form output", now)
	if got.Level != logs.Info || got.Tag != DefaultTag || got.Text != "free-form output" {
		t.Fatalf("Entry = %#v, want Info/%s", got, DefaultTag)
	}
}

func TestReadEntries_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "import.log")
	content := "I/A: one\n\nD/B( 1): two\n   \nthree\n"
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadEntries(logPath, 0, time.Now())
	if err != nil {
		t.Fatalf("ReadEntries error = %v", err)
	}
	var texts []string
	for _, e := range got {
		texts = append(texts, e.Tag+"="+e.Text)
	}
	want := []string{"A=one", "B=two", DefaultTag + "=three"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("ReadEntries = %v, want %v", texts, want)
	}
}

func TestFollow(t *testing.T) {
	var got []logs.Entry
	err := Follow(strings.NewReader("W/Net: slow\n\nplain\n"), func(e logs.Entry) {
		got = append(got, e)
	})
	if err != nil {
		t.Fatalf("Follow error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Follow delivered %d entries, want 2", len(got))
	}
	if got[0].Level != logs.Warn || got[1].Tag != DefaultTag {
		t.Fatalf("Follow = %#v", got)
	}
}
