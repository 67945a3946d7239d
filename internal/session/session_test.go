package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingSession(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	_, ok := store.Load()
	assert.False(t, ok)
	assert.Equal(t, ScreenSplash, store.InitialScreen())
}

func TestLoginPersistsSession(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	session, err := store.Login("  me@example.com ", "anything")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", session.Email)

	reopened := NewStore(dir, nil)
	loaded, ok := reopened.Load()
	require.True(t, ok)
	assert.Equal(t, session, loaded)
	assert.Equal(t, ScreenDashboard, reopened.InitialScreen())

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"me@example.com"}`, string(raw))
}

func TestSignupKeepsName(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	session, err := store.Signup("Nila", "nila@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Nila", session.DisplayName())

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "Nila", loaded.Name)
}

func TestEmptyCredentialsRejected(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	_, err := store.Login("   ", "pw")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	_, err = store.Signup("", "", "pw")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	assert.NoFileExists(t, store.Path())
}

func TestMalformedSessionIsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600))
	store := NewStore(dir, nil)

	_, ok := store.Load()
	assert.False(t, ok)
	assert.Equal(t, ScreenSplash, store.InitialScreen())

	require.NoError(t, os.WriteFile(store.Path(), []byte(`{}`), 0o600))
	_, ok = store.Load()
	assert.False(t, ok)
}

func TestLogoutRemovesSession(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	_, err := store.Login("me@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.NoFileExists(t, store.Path())
	require.NoError(t, store.Logout())
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "Cutie", Session{}.DisplayName())
	assert.Equal(t, "a@b.c", Session{Email: "a@b.c"}.DisplayName())
	assert.Equal(t, "Ann", Session{Email: "a@b.c", Name: "Ann"}.DisplayName())
}
