package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pandora"
	"github.com/fwojciec/pandora/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDatasets(t *testing.T) {
	t.Parallel()

	t.Run("empty dir argument returns defaults", func(t *testing.T) {
		t.Parallel()
		ds, err := fs.LoadDatasets("")
		require.NoError(t, err)
		assert.Equal(t, pandora.DefaultDatasets(), ds)
	})

	t.Run("directory without datasets returns defaults", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "notes.json"), `{}`)
		ds, err := fs.LoadDatasets(dir)
		require.NoError(t, err)
		assert.Equal(t, pandora.DefaultDatasets(), ds)
	})

	t.Run("overrides only the series present", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "mood.json"), `[{"day":"Mon","value":9},{"day":"Tue","value":2}]`)

		ds, err := fs.LoadDatasets(dir)
		require.NoError(t, err)
		assert.Equal(t, []pandora.MoodPoint{{Day: "Mon", Value: 9}, {Day: "Tue", Value: 2}}, ds.Mood)
		assert.Equal(t, pandora.DefaultDatasets().Stress, ds.Stress)
		assert.Equal(t, pandora.DefaultDatasets().Sleep, ds.Sleep)
	})

	t.Run("finds files in nested directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "week", "42", "stress.json"), `[{"time":"9am","level":10}]`)
		writeFile(t, filepath.Join(dir, "sleep", "sleep.json"), `[{"day":"Sun","hours":9.5}]`)

		ds, err := fs.LoadDatasets(dir)
		require.NoError(t, err)
		assert.Equal(t, []pandora.StressPoint{{Time: "9am", Level: 10}}, ds.Stress)
		assert.Equal(t, []pandora.SleepPoint{{Day: "Sun", Hours: 9.5}}, ds.Sleep)
	})

	t.Run("shallowest duplicate wins", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a", "mood.json"), `[{"day":"Deep","value":1}]`)
		writeFile(t, filepath.Join(dir, "mood.json"), `[{"day":"Top","value":7}]`)

		ds, err := fs.LoadDatasets(dir)
		require.NoError(t, err)
		require.Len(t, ds.Mood, 1)
		assert.Equal(t, "Top", ds.Mood[0].Day)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "sleep.json"), `{"day":"Mon"}`)

		_, err := fs.LoadDatasets(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode sleep.json")
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()
		_, err := fs.LoadDatasets(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("file instead of directory is an error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		p := filepath.Join(dir, "mood.json")
		writeFile(t, p, `[]`)
		_, err := fs.LoadDatasets(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}
