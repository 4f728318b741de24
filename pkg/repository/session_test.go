package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/interfaces"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
)

func runSessionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns session ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Session().Create(ctx, &model.ViewState{
			SelectedYear: "2025",
			Theme:        types.ThemeDark,
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.SelectedYear).Equal(types.Year("2025"))
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Create with provided ID preserves it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := types.NewSessionID()
		created, err := repo.Session().Create(ctx, &model.ViewState{ID: id, SelectedYear: "2025"})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(id)

		_, err = repo.Session().Create(ctx, &model.ViewState{ID: id, SelectedYear: "2025"})
		gt.Error(t, err)
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Session().Create(ctx, &model.ViewState{SelectedYear: "2025"})
		gt.NoError(t, err).Required()

		got, err := repo.Session().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		got.SelectedCategory = "privacy"
		again, err := repo.Session().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, again.SelectedCategory).Equal(types.CategoryID(""))
	})

	t.Run("Get of unknown session fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Session().Get(ctx, types.NewSessionID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("Put updates state and keeps CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Session().Create(ctx, &model.ViewState{SelectedYear: "2025"})
		gt.NoError(t, err).Required()

		created.SelectedYear = "2026"
		created.SimulationEnabled = true
		updated, err := repo.Session().Put(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.SelectedYear).Equal(types.Year("2026"))
		gt.Bool(t, updated.SimulationEnabled).True()
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("Put of unknown session fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Session().Put(ctx, &model.ViewState{ID: types.NewSessionID()})
		gt.Error(t, err)
	})

	t.Run("List returns all sessions as copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Session().Create(ctx, &model.ViewState{SelectedYear: "2025"})
		gt.NoError(t, err).Required()
		_, err = repo.Session().Create(ctx, &model.ViewState{SelectedYear: "2025"})
		gt.NoError(t, err).Required()

		states, err := repo.Session().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, states).Length(2)

		for _, state := range states {
			state.SelectedCategory = "privacy"
		}
		got, err := repo.Session().Get(ctx, first.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.SelectedCategory).Equal(types.CategoryID(""))
	})

	t.Run("Delete removes session", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Session().Create(ctx, &model.ViewState{SelectedYear: "2025"})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Session().Delete(ctx, created.ID))

		_, err = repo.Session().Get(ctx, created.ID)
		gt.Error(t, err)

		gt.Error(t, repo.Session().Delete(ctx, created.ID))
	})
}

func TestMemorySessionRepository(t *testing.T) {
	runSessionRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}
