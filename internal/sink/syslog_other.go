//go:build windows || plan9

package sink

import "errors"

// Syslog is unavailable on this platform.
type Syslog struct{}

// NewSyslog always fails on this platform.
func NewSyslog(string) (*Syslog, error) {
	return nil, errors.New("connect syslog: not supported on this platform")
}

// Write implements Sink.
func (s *Syslog) Write(Record) {}

// Close implements io.Closer.
func (s *Syslog) Close() error { return nil }
