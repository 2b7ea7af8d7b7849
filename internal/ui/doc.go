// Package ui provides the terminal viewer for the notification log.
//
// # Architecture Overview
//
// The viewer is a Bubble Tea program. It shows the store's filtered view, most
// recent first, with one color per level, and offers the same actions as the
// notification: pick a tag filter, pick a level, clear the log. It also hosts
// an in-terminal version of the notification (the header line) and of toasts
// (the boxes above the footer).
//
// # Package Structure
//
//   - app.go: Model, Update/View, key handling and the Run entry point
//   - surface.go: Surface, the notify.Presenter and notify.Toaster backed by the program
//   - dialog.go: single-choice dialogs for the tag filter and the level
//   - keys.go: key bindings built with bubbles/key
//   - help.go: help overlay generated from the key bindings
//   - theme.go: Nightfox, Kanagawa and Slate themes with per-level colors
//
// # Event Flow
//
//  1. The store calls its observer while holding its lock
//  2. The observer reaches Surface.Present or Surface.Show, which only record
//     the value and signal a channel without blocking
//  3. The Surface pump goroutine calls tea.Program.Send
//  4. Update re-reads the filtered view from the store outside the lock
//
// A once-a-second tick also re-reads the view, so the list stays current while
// the notification is off or the viewer is not a presenter.
//
// Dialog choices call Store.SetLevel or Store.SetFilter, which persist the
// choice and refresh every presenter, the desktop notification included.
//
// # Key Bindings
//
//   - f: filter by tag ("None" clears the filter)
//   - l: choose level (Verbose shows everything; other levels match exactly)
//   - c: clear the log (tags stay available in the filter dialog)
//   - r: re-read the filtered view now
//   - t / n: toggle toasts / the notification
//   - T: cycle theme (saved to prefs)
//   - h or ?: help
//   - q or ctrl+c: quit
//
// # Usage Example
//
//	surface := ui.NewSurface()
//	// ... build the store with a Summarizer presenting to surface ...
//	err := ui.Run(ui.Options{
//		Context: ctx,
//		Store:   store,
//		Surface: surface,
//		Prefs:   prefs.NewPersister(path),
//	})
package ui
