package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/notilog/internal/notilog"
)

const (
	defaultEmitInterval = 3 * time.Second
	demoTag             = "Example"
	loremIpsum          = "Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
)

// StartEmitter launches a background goroutine that logs demo traffic at a
// fixed cadence, alternating a synchronous loop with a background burst. It
// returns immediately.
func StartEmitter(ctx context.Context, logger *notilog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultEmitInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for round := 0; ; round++ {
			emitRound(logger, round)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func emitRound(logger *notilog.Logger, round int) {
	if round%2 == 0 {
		emitLoop(logger)
		return
	}
	emitBurst(logger)
}

// emitLoop toasts only the entries logged between the two toggles.
func emitLoop(logger *notilog.Logger) {
	logger.Info(demoTag, "start loop")
	setToasts(logger, true)
	for i := 0; i < 5; i++ {
		logger.Debug(demoTag, fmt.Sprintf("i=%d", i))
	}
	setToasts(logger, false)
	logger.Info(demoTag, fmt.Sprintf("end loop %d", time.Now().UnixMilli()))
}

// emitBurst logs from a second goroutine with toasts left on.
func emitBurst(logger *notilog.Logger) {
	setToasts(logger, true)
	logger.Error(demoTag, "start async")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for k := 0; k < 5; k++ {
			logger.Warn(demoTag, fmt.Sprintf("k=%d %s", k, loremIpsum))
		}
		logger.Verbose(demoTag, "end async")
	}()
	<-done
}

func setToasts(logger *notilog.Logger, enabled bool) {
	if logger == nil {
		return
	}
	if store := logger.Store(); store != nil {
		store.SetToastsEnabled(enabled)
	}
}
