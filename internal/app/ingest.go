package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/five82/notilog/internal/logs"
	"github.com/five82/notilog/internal/logtail"
	"github.com/five82/notilog/internal/state"
)

// importFile seeds the store with the last capacity lines of path.
func importFile(store *state.Store, path string, capacity int) error {
	entries, err := logtail.ReadEntries(path, capacity, time.Now())
	if err != nil {
		return fmt.Errorf("import log: %w", err)
	}
	addQuietly(store, entries)
	return nil
}

// addQuietly stores entries with the output channels paused, then pushes a
// single refresh.
func addQuietly(store *state.Store, entries []logs.Entry) {
	if len(entries) == 0 {
		return
	}
	notifications, toasts := store.NotificationsEnabled(), store.ToastsEnabled()
	store.SetNotificationsEnabled(false)
	store.SetToastsEnabled(false)
	for _, e := range entries {
		store.Add(e)
	}
	store.SetNotificationsEnabled(notifications)
	store.SetToastsEnabled(toasts)
	store.Refresh()
}

// StartIngest feeds lines from r into the store until EOF. It returns
// immediately; the returned channel closes when reading stops.
func StartIngest(ctx context.Context, r io.Reader, store *state.Store) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := logtail.Follow(r, func(e logs.Entry) {
			if ctx.Err() != nil {
				return
			}
			store.Add(e)
		})
		if err != nil {
			log.Printf("stdin ingest stopped: %v", err)
		}
	}()
	return done
}
