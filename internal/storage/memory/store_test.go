package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-cli/internal/domain"
	"todo-cli/internal/storage"
	"todo-cli/internal/storage/storagetest"
)

var _ storage.Store = (*Store)(nil)

func TestStore_Contract(t *testing.T) {
	storagetest.RunContract(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestNewSeeded(t *testing.T) {
	seed := []domain.Task{domain.NewTask("A"), domain.NewTask("B")}
	store := NewSeeded(seed)

	seed[0].IsCompleted = true

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.False(t, loaded[0].IsCompleted, "seed must be copied")
	assert.Equal(t, "B", loaded[1].Title)
}

func TestStore_LostWithInstance(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, New().Save(ctx, []domain.Task{domain.NewTask("A")}))

	loaded, err := New().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
