// Package storagetest holds the behaviour every storage.Store must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-cli/internal/domain"
	"todo-cli/internal/storage"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) storage.Store

// RunContract runs the shared store contract against stores built by newStore.
func RunContract(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("load before any save is empty", func(t *testing.T) {
		store := newStore(t)

		tasks, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("round trip preserves order and every field", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		saved := []domain.Task{
			domain.NewTask("Buy milk"),
			domain.NewTask("Write report").Toggle(),
			domain.NewTask("Call Sam ☎"),
		}

		require.NoError(t, store.Save(ctx, saved))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		first := []domain.Task{domain.NewTask("A"), domain.NewTask("B"), domain.NewTask("C")}
		second := []domain.Task{first[2], domain.NewTask("D")}

		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, loaded)
	})

	t.Run("saving an empty list clears the snapshot", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, []domain.Task{domain.NewTask("A")}))
		require.NoError(t, store.Save(ctx, nil))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, loaded)
		assert.Empty(t, loaded)
	})

	t.Run("stored snapshot is isolated from caller slices", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		tasks := []domain.Task{domain.NewTask("A")}

		require.NoError(t, store.Save(ctx, tasks))
		tasks[0].IsCompleted = true

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.False(t, loaded[0].IsCompleted)

		loaded[0].IsCompleted = true
		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, again[0].IsCompleted)
	})
}
