// Package worker runs the background refresh loop that keeps the dashboard
// snapshot close to the live spreadsheet without anyone pressing reload.
package worker

import (
	"context"
	"time"

	applog "invitados/internal/log"
)

// Reloader is the single operation the worker drives. Concurrent manual
// reloads collapse into the same fetch on the dashboard side.
type Reloader interface {
	Reload(ctx context.Context) error
}

type RefreshWorker struct {
	dash     Reloader
	interval time.Duration
	timeout  time.Duration
	logger   *applog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewRefreshWorker creates a worker that reloads every interval. Each
// attempt is bounded by timeout.
func NewRefreshWorker(dash Reloader, interval, timeout time.Duration, logger *applog.Logger) *RefreshWorker {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentDashboard)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RefreshWorker{
		dash:     dash,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. It returns immediately; the first
// refresh fires one full interval after start, since the caller loads the
// initial snapshot itself.
func (w *RefreshWorker) Start() {
	go w.run()
}

func (w *RefreshWorker) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh()
		case <-w.stop:
			return
		}
	}
}

func (w *RefreshWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	started := time.Now()
	if err := w.dash.Reload(ctx); err != nil {
		// The previous snapshot stays live, so a failed refresh only
		// means staler data until the next tick.
		w.logger.Warn("Background refresh failed", "error", err, "interval", w.interval)
		return
	}
	w.logger.Debug("Background refresh completed", "duration_ms", time.Since(started).Milliseconds())
}

// Stop terminates the loop and waits for it to exit. A refresh in flight
// finishes first.
func (w *RefreshWorker) Stop() {
	close(w.stop)
	<-w.done
}
