package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/five82/notilog/internal/config"
	"github.com/five82/notilog/internal/desktop"
	"github.com/five82/notilog/internal/notify"
	"github.com/five82/notilog/internal/notilog"
	"github.com/five82/notilog/internal/prefs"
	"github.com/five82/notilog/internal/render"
	"github.com/five82/notilog/internal/sink"
	"github.com/five82/notilog/internal/state"
	"github.com/five82/notilog/internal/ui"
)

const appTag = "notilog"

// Options configure the notilog application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses the config's prefs_path
	Demo       bool          // log demo traffic
	DemoEvery  time.Duration // zero uses default
	ImportPath string        // seed the log from a saved logcat dump
	DumpHTML   bool          // print the filtered view as HTML and exit
	Headless   bool          // no viewer; keep the notification until cancelled

	Stdin  io.Reader // nil uses os.Stdin
	Stdout io.Writer // nil uses os.Stdout
}

// Run wires the store to its surfaces and blocks until the viewer exits or
// the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := cfg.PrefsPath
	if opts.PrefsPath != "" {
		prefsPath = opts.PrefsPath
	}
	userPrefs, _ := prefs.Load(prefsPath)
	persister := prefs.NewPersister(prefsPath)

	stdin, stdout := opts.Stdin, opts.Stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	interactive := !opts.Headless && !opts.DumpHTML && isTerminal(stdout)
	piped := !isTerminal(stdin)

	if interactive {
		// Keep log output off the viewer's screen.
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), "notilog.log"), appTag)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	logSink, closeSink, err := openSink(cfg.Sink, cfg.Label, interactive)
	if err != nil {
		return err
	}
	defer closeSink()

	var storeRef atomic.Pointer[state.Store]
	var surface *ui.Surface
	if interactive {
		surface = ui.NewSurface()
	}

	var presenters notify.Multi
	var toaster notify.Toaster
	if surface != nil {
		toaster = surface
		if cfg.Notifier != config.NotifierNone {
			presenters = append(presenters, surface)
		}
	}
	if cfg.Notifier == config.NotifierDesktop && !opts.DumpHTML {
		n, err := desktop.Connect(cfg.Label, func(a notify.Action) {
			handleAction(a, surface, storeRef.Load())
		})
		if err != nil {
			log.Printf("desktop notifications disabled: %v", err)
		} else {
			defer n.Close()
			presenters = append(presenters, n)
			if toaster == nil {
				toaster = n
			}
		}
	}

	summarizer := notify.NewSummarizer(notify.Options{
		Title:           cfg.Label,
		Icon:            cfg.Icon,
		MaxLines:        cfg.SummaryLines,
		ViewerAvailable: surface != nil,
		Presenter:       presenterOf(presenters),
		Toaster:         toaster,
	})

	store := state.New(state.Options{
		Capacity:      cfg.Capacity,
		Level:         userPrefs.Level,
		Filter:        userPrefs.Filter,
		Notifications: cfg.Notifications,
		Toasts:        cfg.Toasts,
		Observer:      summarizer,
		Persister:     persister,
	})
	storeRef.Store(store)
	defer store.Close()

	logger := notilog.New(store, logSink)

	if opts.ImportPath != "" {
		if err := importFile(store, opts.ImportPath, cfg.Capacity); err != nil {
			return err
		}
	}

	if opts.DumpHTML {
		if piped {
			<-StartIngest(ctx, stdin, store)
		}
		if opts.Demo {
			emitRound(logger, 0)
			emitRound(logger, 1)
		}
		if _, err := io.WriteString(stdout, render.HTML(store.FilteredView())); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		return nil
	}

	store.Refresh()
	if piped {
		StartIngest(ctx, stdin, store)
	}
	if opts.Demo {
		StartEmitter(ctx, logger, opts.DemoEvery)
	}

	if !interactive {
		logger.Verbose(appTag, "running headless")
		<-ctx.Done()
		return nil
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Surface:   surface,
		ThemeName: userPrefs.Theme,
		Prefs:     persister,
		Title:     cfg.Label,
		InputTTY:  piped,
	})
}

// handleAction routes a desktop notification action. Without a viewer only
// clearing can be carried out.
func handleAction(a notify.Action, surface *ui.Surface, store *state.Store) {
	if surface != nil {
		surface.Invoke(a)
		return
	}
	if a == notify.ActionClear && store != nil {
		store.Clear()
	}
}

func openSink(name, ident string, interactive bool) (sink.Sink, func(), error) {
	switch name {
	case config.SinkNone:
		return sink.Discard, func() {}, nil
	case config.SinkSyslog:
		s, err := sink.NewSyslog(ident)
		if err != nil {
			return nil, nil, fmt.Errorf("open syslog: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	default:
		if interactive {
			// log.Default writes to the debug log file while the viewer runs.
			return sink.NewStd(log.Default()), func() {}, nil
		}
		return sink.NewStderr(), func() {}, nil
	}
}

func presenterOf(ps notify.Multi) notify.Presenter {
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	default:
		return ps
	}
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
