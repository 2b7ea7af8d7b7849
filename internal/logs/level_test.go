package logs

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"verbose", Verbose},
		{"D", Debug},
		{" info ", Info},
		{"warning", Warn},
		{"6", Error},
		{"Assert", Assert},
		{"wtf", WTF},
		{"99", WTF},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	for _, in := range []string{"", "loud", "1", "42"} {
		if _, err := ParseLevel(in); err == nil {
			t.Fatalf("ParseLevel(%q) expected error", in)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := append(Choices(), WTF)
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("%v should sort below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestChoicesReturnsCopy(t *testing.T) {
	c := Choices()
	if len(c) != 6 {
		t.Fatalf("len(Choices()) = %d, want 6", len(c))
	}
	c[0] = WTF
	if Choices()[0] != Verbose {
		t.Fatal("Choices should return an independent slice")
	}
}

func TestTextRoundTrip(t *testing.T) {
	b, err := Warn.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error = %v", err)
	}
	if string(b) != "warn" {
		t.Fatalf("MarshalText = %q, want warn", b)
	}
	var l Level
	if err := l.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if l != Warn {
		t.Fatalf("UnmarshalText = %v, want Warn", l)
	}
	if _, err := Level(1).MarshalText(); err == nil {
		t.Fatal("MarshalText of invalid level should fail")
	}
}
