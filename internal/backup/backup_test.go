package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCreate(t *testing.T) {
	prefs := writePrefs(t, `{"last_model":"llama3.2:3b"}`)
	dir := t.TempDir()

	path, err := Create(prefs, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"last_model":"llama3.2:3b"}`, string(data))
	assert.Contains(t, filepath.Base(path), "config-")
}

func TestCreate_MissingPrefs(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "nope.json"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no preferences file")
}

func TestCreate_SameSecondGetsDistinctNames(t *testing.T) {
	prefs := writePrefs(t, `{}`)
	dir := t.TempDir()

	a, err := Create(prefs, dir)
	require.NoError(t, err)
	b, err := Create(prefs, dir)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestList_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "config-20240101-000000.json")
	recent := filepath.Join(dir, "config-20240601-000000.json")
	require.NoError(t, os.WriteFile(old, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(recent, []byte("{}"), 0644))

	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	backups, err := List(dir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "config-20240601-000000.json", backups[0].Name)
}

func TestList_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config-20240601-000000.json"), []byte("{}"), 0644))

	backups, err := List(dir)
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestList_MissingDir(t *testing.T) {
	backups, err := List(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRestore(t *testing.T) {
	prefs := writePrefs(t, `{"last_model":"new"}`)
	dir := t.TempDir()

	name := "config-20240601-000000.json"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{"last_model":"old"}`), 0644))

	require.NoError(t, Restore(dir, name, prefs))

	data, err := os.ReadFile(prefs)
	require.NoError(t, err)
	assert.Equal(t, `{"last_model":"old"}`, string(data))

	// The pre-restore preferences were saved as a new backup.
	backups, err := List(dir)
	require.NoError(t, err)
	assert.Len(t, backups, 2)
}

func TestRestore_UnknownName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config-20240601-000000.json"), []byte("{}"), 0644))

	err := Restore(dir, "config-19990101-000000.json", filepath.Join(t.TempDir(), "config.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "config-20240601-000000.json")
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"config-20240101-000000.json",
		"config-20240201-000000.json",
		"config-20240301-000000.json",
		"config-20240401-000000.json",
	}
	for i, n := range names {
		path := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		mt := time.Now().Add(time.Duration(i-10) * time.Hour)
		require.NoError(t, os.Chtimes(path, mt, mt))
	}

	removed, err := Prune(dir, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	backups, err := List(dir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	// The two newest survive.
	assert.Equal(t, "config-20240401-000000.json", backups[0].Name)
	assert.Equal(t, "config-20240301-000000.json", backups[1].Name)
}

func TestPrune_NothingToDo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config-20240601-000000.json"), []byte("{}"), 0644))

	removed, err := Prune(dir, 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
