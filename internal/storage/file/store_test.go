package file

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"todo-cli/internal/domain"
	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/storage"
	"todo-cli/internal/storage/storagetest"
)

var (
	_ storage.Store      = (*Store)(nil)
	_ storage.LoadWarner = (*Store)(nil)
)

func TestStore_Contract_JSON(t *testing.T) {
	storagetest.RunContract(t, func(t *testing.T) storage.Store {
		return New(filepath.Join(t.TempDir(), "todos.json"))
	})
}

func TestStore_Contract_YAML(t *testing.T) {
	storagetest.RunContract(t, func(t *testing.T) storage.Store {
		return New(filepath.Join(t.TempDir(), "todos.yaml"))
	})
}

func TestStore_ReopenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "todos.json")
	ctx := context.Background()
	saved := []domain.Task{domain.NewTask("Buy milk"), domain.NewTask("Write report").Toggle()}

	require.NoError(t, New(path).Save(ctx, saved))

	loaded, err := New(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStore_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	task := domain.NewTask("Buy milk")

	require.NoError(t, New(path).Save(context.Background(), []domain.Task{task}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]interface{}{
		"id":          task.ID.String(),
		"title":       "Buy milk",
		"isCompleted": false,
	}, raw[0])
}

func TestStore_YAMLLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.yml")
	task := domain.NewTask("Buy milk").Toggle()

	require.NoError(t, New(path).Save(context.Background(), []domain.Task{task}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, task.ID.String(), raw[0]["id"])
	assert.Equal(t, true, raw[0]["isCompleted"])
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "does-not-exist.json"))

	tasks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestStore_LoadCorruptData(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"truncated json", "todos.json", `[{"id": "`},
		{"foreign json", "todos.json", `{"todos": []}`},
		{"empty file", "todos.json", ``},
		{"bad uuid", "todos.json", `[{"id": "123", "title": "A", "isCompleted": false}]`},
		{"empty title", "todos.json", `[{"id": "6f1c2a6e-57b4-4f8f-9c1e-5d7f1b1e2a3c", "title": "", "isCompleted": false}]`},
		{"foreign yaml", "todos.yaml", "todos:\n  - a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			var logs bytes.Buffer
			store := New(path, WithLogger(logging.New(&logs, false)))

			tasks, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)
			assert.Contains(t, logs.String(), "warning: stored data could not be read")
			assert.Contains(t, logs.String(), path)
			assert.True(t, errors.IsErrorType(store.LoadWarning(), errors.ErrorTypeCorruptData))
		})
	}
}

func TestStore_LoadWarningClearedByGoodLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "`), 0644))
	store := New(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.NoError(t, err)
	require.Error(t, store.LoadWarning())

	require.NoError(t, store.Save(ctx, []domain.Task{domain.NewTask("A")}))
	tasks, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, store.LoadWarning())
}

func TestStore_LoadReadError(t *testing.T) {
	// A directory in place of the file cannot be read
	path := t.TempDir()

	tasks, err := New(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The parent "directory" is a regular file
	store := New(filepath.Join(blocker, "todos.json"))

	err := store.Save(context.Background(), []domain.Task{domain.NewTask("A")})
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
}

func TestStore_SaveFailureKeepsPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todos.json")
	ctx := context.Background()
	original := []domain.Task{domain.NewTask("Keep me")}
	require.NoError(t, New(path).Save(ctx, original))

	ctxCancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := New(path).Save(ctxCancelled, []domain.Task{domain.NewTask("Lost")})
	require.Error(t, err)

	loaded, err := New(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "todos.json"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, []domain.Task{domain.NewTask("A")}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todos.json", entries[0].Name())
}

func TestStore_DirPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := New(filepath.Join(dir, "todos.json"), WithDirPermissions(0700))

	require.NoError(t, store.Save(context.Background(), nil))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm()&0700)
}

func TestCodecFor(t *testing.T) {
	assert.Equal(t, "json", codecFor("todos.json").Name())
	assert.Equal(t, "json", codecFor("todos").Name())
	assert.Equal(t, "yaml", codecFor("todos.yaml").Name())
	assert.Equal(t, "yaml", codecFor("TODOS.YML").Name())
}
