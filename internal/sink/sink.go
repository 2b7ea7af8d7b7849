// Package sink forwards log records to the platform log, separately from the
// in-memory buffer and its notification.
package sink

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/five82/notilog/internal/logs"
)

// Record is one log call as seen by a sink. Err is the optional error attached
// to the call; it is never stored in the buffer.
type Record struct {
	Level logs.Level
	Tag   string
	Text  string
	Err   error
}

// Sink accepts log records.
type Sink interface {
	Write(r Record)
}

// Func adapts a function to Sink.
type Func func(r Record)

// Write calls f.
func (f Func) Write(r Record) { f(r) }

// Discard drops every record.
var Discard Sink = Func(func(Record) {})

// Multi writes each record to every sink in order.
type Multi []Sink

// Write forwards r to all sinks.
func (m Multi) Write(r Record) {
	for _, s := range m {
		s.Write(r)
	}
}

// Format renders a record the way logcat's brief format does: "I/Tag: text",
// with the error on a following line.
func Format(r Record) string {
	line := fmt.Sprintf("%s/%s: %s", r.Level.Letter(), r.Tag, r.Text)
	if r.Err != nil {
		line += "\n" + r.Err.Error()
	}
	return line
}

// Std writes formatted records through a standard library logger.
type Std struct {
	logger *log.Logger
}

// NewStd wraps an existing logger.
func NewStd(l *log.Logger) *Std {
	return &Std{logger: l}
}

// NewWriter logs to w with millisecond timestamps.
func NewWriter(w io.Writer) *Std {
	return NewStd(log.New(w, "", log.LstdFlags|log.Lmicroseconds))
}

// NewStderr logs to standard error.
func NewStderr() *Std {
	return NewWriter(os.Stderr)
}

// Write implements Sink.
func (s *Std) Write(r Record) {
	s.logger.Println(Format(r))
}
