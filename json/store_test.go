package json_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pandora"
	pandorajson "github.com/fwojciec/pandora/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFile(t *testing.T) {
	t.Parallel()

	s := pandorajson.NewStore(filepath.Join(t.TempDir(), "state.json"))
	v, ok, err := s.Get(pandora.UserIDKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	id, err := pandora.LookupUserID(s)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s := pandorajson.NewStore(path)

	require.NoError(t, s.Set(pandora.UserIDKey, "u1"))
	require.NoError(t, s.Set(pandora.ThemeKey, pandora.ThemeLight))

	v, ok, err := s.Get(pandora.UserIDKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", v)

	// A second store on the same path sees the persisted values.
	other := pandorajson.NewStore(path)
	isDark, err := pandora.LookupTheme(other, true)
	require.NoError(t, err)
	assert.False(t, isDark)

	require.NoError(t, s.Delete(pandora.UserIDKey))
	_, ok, err = other.Get(pandora.UserIDKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete("never-set"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := pandorajson.NewStore(path)
	_, _, err := s.Get(pandora.UserIDKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal envelope")

	assert.Error(t, s.Set(pandora.UserIDKey, "u1"))
}

func TestUnmarshalValues(t *testing.T) {
	t.Parallel()

	t.Run("unknown version", func(t *testing.T) {
		t.Parallel()
		_, err := pandorajson.UnmarshalValues([]byte(`{"version": 2, "values": {}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported envelope version")
	})

	t.Run("missing values map", func(t *testing.T) {
		t.Parallel()
		values, err := pandorajson.UnmarshalValues([]byte(`{"version": 1}`))
		require.NoError(t, err)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("marshal output is readable", func(t *testing.T) {
		t.Parallel()
		data, err := pandorajson.MarshalValues(map[string]string{"user_id": "u1"})
		require.NoError(t, err)
		values, err := pandorajson.UnmarshalValues(data)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"user_id": "u1"}, values)
	})
}
