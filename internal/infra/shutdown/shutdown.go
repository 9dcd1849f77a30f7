// Package shutdown provides graceful shutdown handling.
//
// A Handler waits for SIGINT or SIGTERM and then runs registered cleanup
// hooks, most recently registered first, under a deadline.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler coordinates graceful shutdown.
type Handler struct {
	timeout time.Duration
	hooks   []func(context.Context) error
	mu      sync.Mutex
	sigCh   chan os.Signal
	done    chan struct{}
}

// NewHandler creates a shutdown handler. timeout bounds the total time
// spent running hooks.
func NewHandler(timeout time.Duration) *Handler {
	h := &Handler{
		timeout: timeout,
		sigCh:   make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(h.sigCh, syscall.SIGINT, syscall.SIGTERM)
	return h
}

// OnShutdown registers a cleanup hook. Hooks run in reverse order of
// registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Trigger requests shutdown without a signal, e.g. from tests or an
// internal fatal condition.
func (h *Handler) Trigger() {
	select {
	case h.sigCh <- syscall.SIGTERM:
	default:
	}
}

// Wait blocks until a signal arrives, then runs all hooks under the
// configured deadline. The last hook error is returned.
func (h *Handler) Wait() error {
	<-h.sigCh
	signal.Stop(h.sigCh)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := make([]func(context.Context) error, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	var lastErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			lastErr = err
		}
	}

	close(h.done)
	return lastErr
}

// Done returns a channel that closes when shutdown has completed.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
