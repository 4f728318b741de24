package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/service/worker"
)

func TestSessionSweeperSweep(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	defer repo.Close()

	s1, err := repo.Session().Create(ctx, model.NewViewState("2025"))
	gt.NoError(t, err).Required()
	s2, err := repo.Session().Create(ctx, model.NewViewState("2025"))
	gt.NoError(t, err).Required()

	t.Run("keeps fresh sessions", func(t *testing.T) {
		sweeper := worker.NewSessionSweeper(repo, time.Hour, time.Minute)
		gt.NoError(t, sweeper.Sweep(ctx))

		_, err := repo.Session().Get(ctx, s1.ID)
		gt.NoError(t, err)
		_, err = repo.Session().Get(ctx, s2.ID)
		gt.NoError(t, err)
	})

	t.Run("removes expired sessions", func(t *testing.T) {
		// Negative TTL puts the cutoff in the future, expiring everything
		sweeper := worker.NewSessionSweeper(repo, -time.Second, time.Minute)
		gt.NoError(t, sweeper.Sweep(ctx))

		_, err := repo.Session().Get(ctx, s1.ID)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
		_, err = repo.Session().Get(ctx, s2.ID)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})
}

func TestSessionSweeperStartStop(t *testing.T) {
	repo := memory.New()
	defer repo.Close()

	sweeper := worker.NewSessionSweeper(repo, time.Hour, time.Hour)
	gt.NoError(t, sweeper.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop in time")
	}
}
