package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-cli/internal/config"
	"todo-cli/internal/domain"
	"todo-cli/internal/manager"
	"todo-cli/internal/storage/memory"
)

// failingStore loads nothing and rejects every save
type failingStore struct{}

func (failingStore) Save(context.Context, []domain.Task) error {
	return errors.New("disk full")
}

func (failingStore) Load(context.Context) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func newTestManager(t *testing.T, titles ...string) *manager.Manager {
	t.Helper()

	tasks := make([]domain.Task, 0, len(titles))
	for _, title := range titles {
		tasks = append(tasks, domain.NewTask(title))
	}
	return manager.New(context.Background(), memory.NewSeeded(tasks))
}

func TestDispatch_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		result := Dispatch(ctx, newTestManager(t), CommandList, "")
		assert.Equal(t, Result{Message: "Empty (try add todos)"}, result)
	})

	t.Run("numbered with marks", func(t *testing.T) {
		m := newTestManager(t, "Buy milk", "Write report")
		_, err := m.Toggle(ctx, 1)
		require.NoError(t, err)

		result := Dispatch(ctx, m, CommandList, "ignored")
		assert.Equal(t, "Your Todos:\n1. ✅ Buy milk\n2. ❌ Write report", result.Message)
		assert.False(t, result.Exit)
	})
}

func TestDispatch_ListUsesConfiguredMarks(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.CompletedMark = "[x]"
	cfg.Display.PendingMark = "[ ]"
	m := newTestManager(t, "A", "B")
	_, err := m.Toggle(context.Background(), 2)
	require.NoError(t, err)

	result := NewDispatcher(cfg, nil).Dispatch(context.Background(), m, CommandList, "")
	assert.Equal(t, "Your Todos:\n1. [ ] A\n2. [x] B", result.Message)
}

func TestDispatch_Add(t *testing.T) {
	m := newTestManager(t)

	result := Dispatch(context.Background(), m, CommandAdd, "Buy milk")
	assert.Equal(t, `Added "Buy milk".`, result.Message)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "Buy milk", m.List()[0].Task.Title)
}

func TestDispatch_AddEmptyTitle(t *testing.T) {
	m := newTestManager(t)

	result := Dispatch(context.Background(), m, CommandAdd, "   ")
	assert.Equal(t, "Invalid input: title cannot be empty. Please try again.", result.Message)
	assert.False(t, result.Exit)
	assert.Equal(t, 0, m.Len())
}

func TestDispatch_Toggle(t *testing.T) {
	m := newTestManager(t, "A", "B")
	ctx := context.Background()

	result := Dispatch(ctx, m, CommandToggle, "2")
	assert.Equal(t, `Marked "B" as done.`, result.Message)
	assert.True(t, m.List()[1].Task.IsCompleted)

	result = Dispatch(ctx, m, CommandToggle, " 2 ")
	assert.Equal(t, `Marked "B" as not done.`, result.Message)
	assert.False(t, m.List()[1].Task.IsCompleted)
}

func TestDispatch_Delete(t *testing.T) {
	m := newTestManager(t, "A", "B", "C")

	result := Dispatch(context.Background(), m, CommandDelete, "1")
	assert.Equal(t, `Deleted "A".`, result.Message)

	entries := m.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Task.Title)
	assert.Equal(t, 1, entries[0].Position)
}

func TestDispatch_BadPosition(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		arg      string
		expected string
	}{
		{
			name:     "toggle non numeric",
			cmd:      CommandToggle,
			arg:      "two",
			expected: "Invalid input: invalid input for position: must be a whole number. Please try again.",
		},
		{
			name:     "delete blank",
			cmd:      CommandDelete,
			arg:      "",
			expected: "Invalid input: invalid input for position: a number is required. Please try again.",
		},
		{
			name:     "toggle zero",
			cmd:      CommandToggle,
			arg:      "0",
			expected: "Invalid input: position 0 is out of range: choose a number between 1 and 2. Please try again.",
		},
		{
			name:     "delete past the end",
			cmd:      CommandDelete,
			arg:      "3",
			expected: "Invalid input: position 3 is out of range: choose a number between 1 and 2. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, "A", "B")
			before := m.Tasks()

			result := Dispatch(context.Background(), m, tt.cmd, tt.arg)
			assert.Equal(t, tt.expected, result.Message)
			assert.False(t, result.Exit)
			assert.Equal(t, before, m.Tasks())
		})
	}
}

func TestDispatch_SaveFailureKeepsChange(t *testing.T) {
	m := manager.New(context.Background(), failingStore{})

	result := Dispatch(context.Background(), m, CommandAdd, "Buy milk")
	assert.Equal(t, "Your changes could not be saved. Please try again.", result.Message)
	assert.Equal(t, 1, m.Len())
}

func TestDispatch_ExitAndInvalid(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	assert.Equal(t, Result{Message: "Goodbye!", Exit: true}, Dispatch(ctx, m, CommandExit, ""))
	assert.Equal(t, Result{Message: "Invalid input. Please try again."}, Dispatch(ctx, m, CommandInvalid, ""))
}
