//go:build !windows && !plan9

package sink

import (
	"fmt"
	"log/syslog"

	"github.com/five82/notilog/internal/logs"
)

// Syslog writes records to the local syslog daemon.
type Syslog struct {
	w *syslog.Writer
}

// NewSyslog connects to the local syslog daemon using ident as the program
// name.
func NewSyslog(ident string) (*Syslog, error) {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_DEBUG, ident)
	if err != nil {
		return nil, fmt.Errorf("connect syslog: %w", err)
	}
	return &Syslog{w: w}, nil
}

// Write implements Sink. Delivery errors are dropped.
func (s *Syslog) Write(r Record) {
	msg := Format(r)
	switch r.Level {
	case logs.Verbose, logs.Debug:
		_ = s.w.Debug(msg)
	case logs.Info:
		_ = s.w.Info(msg)
	case logs.Warn:
		_ = s.w.Warning(msg)
	case logs.Error:
		_ = s.w.Err(msg)
	case logs.Assert:
		_ = s.w.Crit(msg)
	default:
		_ = s.w.Emerg(msg)
	}
}

// Close closes the connection to the daemon.
func (s *Syslog) Close() error {
	return s.w.Close()
}
