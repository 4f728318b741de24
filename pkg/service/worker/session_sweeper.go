package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/interfaces"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/errutil"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/logging"
)

// SessionSweeper periodically removes dashboard sessions that have been idle
// longer than the TTL. Sessions hold no durable data, so sweeping one only
// forces the client to start over with defaults.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type SessionSweeper struct {
	repo     interfaces.Repository
	ttl      time.Duration
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSessionSweeper creates a sweeper that removes sessions idle longer than ttl
func NewSessionSweeper(repo interfaces.Repository, ttl, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. It does not block server startup.
func (w *SessionSweeper) Start(ctx context.Context) error {
	logging.Default().Info("Session sweeper starting",
		"ttl", w.ttl.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the sweeper to stop and waits for completion
func (w *SessionSweeper) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Session sweeper stopped")
}

func (w *SessionSweeper) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Errors are reported but never stop the loop; next tick retries
			_ = errutil.Handle(ctx, w.Sweep(ctx), "session sweep failed")

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Session sweeper context cancelled")
			return
		}
	}
}

// Sweep performs a single sweep cycle, deleting every session whose last
// update is older than the TTL.
func (w *SessionSweeper) Sweep(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.ttl)

	states, err := w.repo.Session().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list sessions")
	}

	var removed int
	for _, state := range states {
		if state.UpdatedAt.After(cutoff) {
			continue
		}
		if err := w.repo.Session().Delete(ctx, state.ID); err != nil {
			// A session deleted by its owner mid-sweep is not an error
			logging.Default().Warn("failed to delete expired session",
				"id", state.ID, "error", err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logging.Default().Info("Session sweep completed",
			"removed", removed,
			"remaining", len(states)-removed)
	}
	return nil
}
