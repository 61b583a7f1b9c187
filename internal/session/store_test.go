package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	sess := &Session{
		User:  Identity{Name: "Mina", Email: "mina@x.com", Role: "manager"},
		Token: "tok-9",
	}
	require.NoError(t, store.Save(sess))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess, got)
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreEmptyToken(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"),
		[]byte(`{"user":{"name":"x"},"token":""}`), 0o600))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "a session without a token is no session")
}

func TestStoreClear(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(&Session{Token: "t"}))
	require.NoError(t, store.Clear())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
