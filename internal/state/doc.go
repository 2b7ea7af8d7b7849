// Package state holds the in-memory log buffer and the display settings that
// decide which entries reach the notification and the viewer.
//
// # Overview
//
// Store is the single shared container every log call writes into. It keeps
// the most recent entries (1000 by default) in a fixed-size ring, the set of
// tags seen this session, the selected level and tag filter, and two flags
// gating the notification and toast channels.
//
//	Log callers (any goroutine)          Viewer / dialogs
//	┌────────────────────┐               ┌────────────────────┐
//	│ store.Record(...)  │               │ store.SetLevel()   │
//	│        ↓           │               │ store.SetFilter()  │
//	│  ring insert/evict │──── mutex ────│ store.Clear()      │
//	│  tag set update    │               │ store.FilteredView │
//	│        ↓           │               └────────────────────┘
//	│ Observer.Refresh   │  summary push
//	│ Observer.Toast     │  transient push
//	└────────────────────┘
//
// # Filtering
//
// The level selection is an equality test, not a threshold: Verbose shows
// everything, any other level shows entries of exactly that level. The tag
// filter is an equality test against one tag, or NoFilter for all tags. A
// filter naming a tag that was never recorded matches nothing and is not an
// error.
//
// # Concurrency Model
//
// One sync.Mutex guards every field. Record performs the insert, the eviction,
// the tag-set update and the resulting Observer calls as one unit, so
// concurrent records never interleave and a pushed summary never reflects a
// half-applied insert. Reads take the same lock; the buffer is small.
//
// Because observers run under the lock they must not call back into the
// store, and they must hand work to other goroutines rather than block on the
// one that is logging.
//
// # Lifecycle
//
// New returns an initialized store. A zero Store is valid but inert: every
// record and settings call is a no-op, which mirrors logging before the
// facility was set up. Close removes the notification on teardown.
//
// # Persistence
//
// SetLevel and SetFilter hand the new value to the Persister. Failures are
// logged and otherwise ignored; nothing is read back.
package state
