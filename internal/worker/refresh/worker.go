// Package refresh periodically reloads the caches fed by the café API.
package refresh

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Refresher reloads one cache.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Worker refreshes every target on each tick.
type Worker struct {
	targets  map[string]Refresher
	interval time.Duration
	stopCh   chan struct{}
}

// NewWorker creates a refresh worker. A non-positive interval defaults to 30 seconds.
func NewWorker(interval time.Duration, targets map[string]Refresher) *Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Worker{
		targets:  targets,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start refreshes immediately and then on every tick until ctx is done or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Refresh worker started", "interval", w.interval, "targets", len(w.targets))
	w.RefreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Refresh worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Refresh worker stopped")

			return
		case <-ticker.C:
			w.RefreshAll(ctx)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

// RefreshAll refreshes the targets concurrently and returns how many failed.
// Failures are logged; each target keeps its previous data.
func (w *Worker) RefreshAll(ctx context.Context) int {
	var g errgroup.Group
	failed := make(chan string, len(w.targets))

	for name, target := range w.targets {
		g.Go(func() error {
			if err := target.Refresh(ctx); err != nil {
				slog.Warn("Refresh failed", "target", name, "error", err)
				failed <- name
			}

			return nil
		})
	}
	_ = g.Wait()
	close(failed)

	return len(failed)
}
