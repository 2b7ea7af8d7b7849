package state

import (
	"log"
	"slices"
	"sync"

	"github.com/five82/notilog/internal/logs"
)

// DefaultCapacity is the number of entries kept before the oldest is evicted.
const DefaultCapacity = 1000

// NoFilter is the filter value that matches every tag.
const NoFilter = ""

// Observer receives the output channels driven by store mutations. Calls are
// made while the store lock is held, so implementations must not call back
// into the Store and must not block on the goroutine that mutates it.
type Observer interface {
	// Refresh receives the filtered view after every record or settings change.
	Refresh(view []logs.Entry)
	// Toast receives the text of each recorded entry while toasts are enabled.
	Toast(text string)
	// Cancel removes the active notification.
	Cancel()
}

// Persister stores the two durable display settings.
type Persister interface {
	PutLevel(level logs.Level) error
	PutFilter(tag string) error
}

// Options configure a Store.
type Options struct {
	Capacity      int // zero uses DefaultCapacity
	Level         logs.Level
	Filter        string
	Notifications bool
	Toasts        bool
	Observer      Observer
	Persister     Persister
}

// DefaultOptions returns show-all settings with notifications on and toasts off.
func DefaultOptions() Options {
	return Options{
		Capacity:      DefaultCapacity,
		Level:         logs.Verbose,
		Filter:        NoFilter,
		Notifications: true,
	}
}

// Store is the bounded, most-recent-first log buffer together with the
// display settings that select what the output channels show.
//
// A zero Store is uninitialized: records and settings changes are ignored
// until it is built with New.
type Store struct {
	mu    sync.Mutex
	ready bool

	// ring buffer; head indexes the most recent entry
	buf  []logs.Entry
	head int
	n    int

	tags map[string]struct{}

	level         logs.Level
	filter        string
	notifications bool
	toasts        bool

	observer  Observer
	persister Persister
}

// New builds an initialized store.
func New(opts Options) *Store {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	level := opts.Level
	if !level.Valid() {
		level = logs.Verbose
	}
	return &Store{
		ready:         true,
		buf:           make([]logs.Entry, capacity),
		head:          capacity - 1,
		tags:          make(map[string]struct{}),
		level:         level,
		filter:        opts.Filter,
		notifications: opts.Notifications,
		toasts:        opts.Toasts,
		observer:      opts.Observer,
		persister:     opts.Persister,
	}
}

// Record stamps and stores a new entry, then drives the enabled output
// channels.
func (s *Store) Record(level logs.Level, tag, text string) {
	s.Add(logs.NewEntry(level, tag, text))
}

// Add stores a prebuilt entry, evicting the oldest one when the buffer is
// full. Entries are kept whether or not the output channels are enabled.
func (s *Store) Add(e logs.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	s.head = (s.head + 1) % len(s.buf)
	s.buf[s.head] = e
	if s.n < len(s.buf) {
		s.n++
	}
	s.tags[e.Tag] = struct{}{}

	s.refreshLocked()
	if s.toasts && s.observer != nil {
		s.observer.Toast(e.Text)
	}
}

// SetLevel selects the level shown by the views. Verbose shows every level;
// any other level shows only entries of exactly that level.
func (s *Store) SetLevel(level logs.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	s.level = level
	s.refreshLocked()
	if s.persister != nil {
		if err := s.persister.PutLevel(level); err != nil {
			log.Printf("persist level failed: %v", err)
		}
	}
}

// SetFilter restricts the views to one tag. NoFilter shows every tag. The tag
// is not checked against TagOptions; an unknown tag simply matches nothing.
func (s *Store) SetFilter(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	s.filter = tag
	s.refreshLocked()
	if s.persister != nil {
		if err := s.persister.PutFilter(tag); err != nil {
			log.Printf("persist filter failed: %v", err)
		}
	}
}

// Level returns the selected display level.
func (s *Store) Level() logs.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return logs.Verbose
	}
	return s.level
}

// Filter returns the selected tag filter, or NoFilter.
func (s *Store) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return NoFilter
	}
	return s.filter
}

// SetNotificationsEnabled gates the summary push for future records.
func (s *Store) SetNotificationsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = enabled
}

// SetToastsEnabled gates the transient-message push for future records.
func (s *Store) SetToastsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = enabled
}

// NotificationsEnabled reports whether records refresh the notification.
func (s *Store) NotificationsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

// ToastsEnabled reports whether records push transient messages.
func (s *Store) ToastsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toasts
}

// Clear drops every entry and removes the notification. Settings and the tag
// set are kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	clear(s.buf)
	s.head = len(s.buf) - 1
	s.n = 0
	if s.observer != nil {
		s.observer.Cancel()
	}
}

// Refresh pushes the current summary, e.g. after startup so the surface
// reflects persisted settings.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	s.refreshLocked()
}

// Close removes the notification. The store stays usable.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready && s.observer != nil {
		s.observer.Cancel()
	}
}

// FilteredView returns the entries matching the current level and filter,
// most recent first.
func (s *Store) FilteredView() []logs.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredLocked()
}

// Entries returns every stored entry, most recent first.
func (s *Store) Entries() []logs.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]logs.Entry, 0, s.n)
	s.each(func(e logs.Entry) {
		out = append(out, e)
	})
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// TagOptions returns every tag recorded this session in sorted order.
func (s *Store) TagOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *Store) refreshLocked() {
	if !s.notifications || s.observer == nil {
		return
	}
	s.observer.Refresh(s.filteredLocked())
}

func (s *Store) filteredLocked() []logs.Entry {
	out := make([]logs.Entry, 0, s.n)
	s.each(func(e logs.Entry) {
		if s.matches(e) {
			out = append(out, e)
		}
	})
	return out
}

func (s *Store) matches(e logs.Entry) bool {
	if s.level != logs.Verbose && e.Level != s.level {
		return false
	}
	return s.filter == NoFilter || e.Tag == s.filter
}

// each walks the ring from the most recent entry to the oldest.
func (s *Store) each(fn func(logs.Entry)) {
	size := len(s.buf)
	for i := 0; i < s.n; i++ {
		fn(s.buf[(s.head-i+size)%size])
	}
}
