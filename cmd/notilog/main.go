package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/notilog/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	demo := flag.Bool("demo", false, "log demo traffic")
	demoSeconds := flag.Int("demo-every", 0, "seconds between demo rounds (optional, defaults to 3s)")
	importPath := flag.String("import", "", "seed the log from a saved logcat dump")
	dumpHTML := flag.Bool("dump-html", false, "print the filtered log as HTML and exit")
	headless := flag.Bool("headless", false, "run without the terminal viewer")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Demo:       *demo,
		ImportPath: *importPath,
		DumpHTML:   *dumpHTML,
		Headless:   *headless,
	}
	if s := *demoSeconds; s > 0 {
		opts.DemoEvery = time.Duration(s) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "notilog: %v\n", err)
		return 1
	}
	return 0
}
