// Package logtail reads existing log output into entries.
//
// # Overview
//
// The notification log is usually fed by the Logger facade, but two other
// sources exist: a saved log file passed with --import, and another program's
// output piped on stdin. This package turns both into logs.Entry values the
// store can take.
//
// # Reading Log Files
//
// Read returns the last maxLines of a file using a ring buffer, so only
// O(maxLines) lines are held regardless of file size. A non-positive maxLines
// returns the whole file. Missing files return nil, nil.
//
//	entries, err := logtail.ReadEntries(path, 1000, time.Now())
//	if err != nil {
//		log.Printf("import failed: %v", err)
//	}
//
// # Line Formats
//
// ParseLine recognizes three layouts:
//
//	10-19 14:32:15.123  1234  5678 I Example: message   (logcat threadtime)
//	I/Example( 1234): message                          (logcat brief)
//	I/Example: message                                 (sink output)
//
// Threadtime lines keep their own timestamp; the year comes from the caller's
// clock. The other layouts are stamped with the time they were read.
//
// Lines matching none of these become Info entries tagged DefaultTag, so piped
// output from arbitrary programs still shows up.
//
// # Error Handling
//
// Open and scan errors are wrapped ("open log: ...", "read log: ..."). Lines
// longer than 1MB stop the scan with bufio.ErrTooLong.
package logtail
