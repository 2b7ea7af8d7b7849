// Package app provides the orchestration layer for notilog.
//
// # Overview
//
// This package is the composition root. It loads the configuration and the
// saved display preferences, opens the platform sink, builds the notification
// surfaces, constructs the store with a Summarizer as its observer, and then
// either prints the view, runs headless, or starts the terminal viewer.
//
// # Components
//
//   - app.go: Run, surface selection and sink selection
//   - emitter.go: demo traffic on a ticker (--demo)
//   - ingest.go: --import seeding and live stdin ingest
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Startup settings
//	       ├─────> prefs.Load()         Level, filter, theme
//	       ├─────> openSink()           stderr, syslog or none
//	       ├─────> ui.NewSurface()      Viewer presenter/toaster (interactive only)
//	       ├─────> desktop.Connect()    D-Bus presenter (optional)
//	       ├─────> state.New()          Store observed by notify.Summarizer
//	       ├─────> importFile()         Seed from a saved log
//	       ├─────> StartIngest()        Follow piped stdin
//	       ├─────> StartEmitter()       Demo traffic
//	       └─────> ui.Run()             Viewer (blocks)
//
// # Modes
//
//   - Interactive (stdout is a terminal): the viewer runs; log output moves to
//     notilog.log in the temp dir so it does not draw over the screen.
//   - Headless (--headless or stdout not a terminal): surfaces stay live until
//     the context is cancelled.
//   - Dump (--dump-html): stdin is read to EOF, the filtered view is written as
//     HTML to stdout, and Run returns.
//
// Notification actions need the viewer. Without it the Summarizer is told the
// viewer is unavailable and offers none; a Clear arriving anyway still works.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Syslog sink requested but unavailable
//   - Import file unreadable (a missing file imports nothing)
//   - Viewer failure
//
// Recoverable errors (logged):
//   - Desktop notification service unavailable
//   - Presenter or preference write failures
//   - Stdin read errors
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Demo: true}); err != nil {
//		log.Fatalf("notilog failed: %v", err)
//	}
package app
