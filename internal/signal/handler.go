// Package signal cancels signet's command context on SIGINT or SIGTERM.
//
// Import rules:
//   - CAN import: std lib, zerolog
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// Exit codes for a process stopped by a signal, following the shell
// convention of 128 + signal number.
const (
	ExitCodeInterrupt = 130
	ExitCodeTerminate = 143
)

// Handler cancels a context when SIGINT or SIGTERM is received. An in-flight
// hash request sees the cancellation and returns a hash failure instead of a
// digest.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal

	mu       sync.Mutex
	received os.Signal
}

// NewHandler creates a handler listening for SIGINT and SIGTERM.
//
// Usage:
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := cli.Execute(h.Context(), info)
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffered so signal.Notify never drops a signal while we are busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context canceled on the first signal or on Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel closed when the first signal arrives.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Received returns the first signal delivered, or nil if none arrived.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode returns the conventional exit code for the received signal,
// or 0 if no signal arrived.
func (h *Handler) ExitCode() int {
	switch h.Received() {
	case nil:
		return 0
	case syscall.SIGTERM:
		return ExitCodeTerminate
	default:
		return ExitCodeInterrupt
	}
}

// Stop stops listening and cancels the context. It is safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.received = sig
		h.mu.Unlock()

		zerolog.Ctx(h.ctx).Debug().
			Str("component", "signal").
			Stringer("signal", sig).
			Msg("interrupt received, canceling")

		h.cancel()
		close(h.interrupted)
	})
}

// listen handles signals until Stop is called or the context ends.
// Only the first signal has an effect; later ones are drained.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
