package database

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithShutdown derives a context from parent that is cancelled when SIGTERM
// or SIGINT arrives. onSignal, if non-nil, runs before cancellation. The
// returned stop function releases the signal handler and cancels the context.
func WithShutdown(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigChan)
		cancel()
	}
	return ctx, stop
}
