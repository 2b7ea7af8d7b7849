// Package notilog is the logging front end applications call. Each call is
// written to the platform sink and recorded in the store, which refreshes the
// notification and, when enabled, shows a toast.
package notilog

import (
	"github.com/five82/notilog/internal/logs"
	"github.com/five82/notilog/internal/sink"
	"github.com/five82/notilog/internal/state"
)

// Logger routes log calls to a store and a sink. A nil store or sink skips
// that destination.
type Logger struct {
	store *state.Store
	sink  sink.Sink
}

// New builds a Logger.
func New(store *state.Store, s sink.Sink) *Logger {
	return &Logger{store: store, sink: s}
}

// Store returns the backing store.
func (l *Logger) Store() *state.Store {
	return l.store
}

// Log records msg at level. err only reaches the sink.
func (l *Logger) Log(level logs.Level, tag, msg string, err error) {
	if l == nil {
		return
	}
	if l.store != nil {
		l.store.Record(level, tag, msg)
	}
	if l.sink != nil {
		l.sink.Write(sink.Record{Level: level, Tag: tag, Text: msg, Err: err})
	}
}

// Verbose records msg at verbose level.
func (l *Logger) Verbose(tag, msg string) { l.Log(logs.Verbose, tag, msg, nil) }

// Debug records msg at debug level.
func (l *Logger) Debug(tag, msg string) { l.Log(logs.Debug, tag, msg, nil) }

// Info records msg at info level.
func (l *Logger) Info(tag, msg string) { l.Log(logs.Info, tag, msg, nil) }

// Warn records msg at warn level.
func (l *Logger) Warn(tag, msg string) { l.Log(logs.Warn, tag, msg, nil) }

// Error records msg at error level.
func (l *Logger) Error(tag, msg string) { l.Log(logs.Error, tag, msg, nil) }

// Assert records msg at assert level.
func (l *Logger) Assert(tag, msg string) { l.Log(logs.Assert, tag, msg, nil) }

// WTF reports a condition that should never happen.
func (l *Logger) WTF(tag, msg string) { l.Log(logs.WTF, tag, msg, nil) }

// VerboseErr is Verbose with an attached error.
func (l *Logger) VerboseErr(tag, msg string, err error) { l.Log(logs.Verbose, tag, msg, err) }

// DebugErr is Debug with an attached error.
func (l *Logger) DebugErr(tag, msg string, err error) { l.Log(logs.Debug, tag, msg, err) }

// InfoErr is Info with an attached error.
func (l *Logger) InfoErr(tag, msg string, err error) { l.Log(logs.Info, tag, msg, err) }

// WarnErr is Warn with an attached error.
func (l *Logger) WarnErr(tag, msg string, err error) { l.Log(logs.Warn, tag, msg, err) }

// ErrorErr is Error with an attached error.
func (l *Logger) ErrorErr(tag, msg string, err error) { l.Log(logs.Error, tag, msg, err) }

// AssertErr is Assert with an attached error.
func (l *Logger) AssertErr(tag, msg string, err error) { l.Log(logs.Assert, tag, msg, err) }

// WTFErr is WTF with an attached error.
func (l *Logger) WTFErr(tag, msg string, err error) { l.Log(logs.WTF, tag, msg, err) }
