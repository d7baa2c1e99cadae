package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsession/internal/domain"
	"authsession/internal/store"
)

func sampleCookies() []domain.StoredCookie {
	return []domain.StoredCookie{
		{
			URL:      "http://localhost:8080/",
			Name:     "session",
			Value:    "abc123",
			Path:     "/",
			Expires:  time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
			HttpOnly: true,
		},
	}
}

func TestCookies_SaveLoad_Plain(t *testing.T) {
	home := t.TempDir()
	var cs domain.CookieStore = store.NewCookieFileStore(home, "")

	require.NoError(t, cs.SaveCookies(sampleCookies()))

	got, err := cs.LoadCookies()
	require.NoError(t, err)
	assert.Equal(t, sampleCookies(), got)

	info, err := os.Stat(filepath.Join(home, "cookies.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCookies_LoadMissing_Empty(t *testing.T) {
	cs := store.NewCookieFileStore(t.TempDir(), "")

	got, err := cs.LoadCookies()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCookies_SaveLoad_Encrypted(t *testing.T) {
	home := t.TempDir()
	cs := store.NewCookieFileStore(home, "correct horse")

	require.NoError(t, cs.SaveCookies(sampleCookies()))

	raw, err := os.ReadFile(filepath.Join(home, "cookies.enc"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123")

	got, err := store.NewCookieFileStore(home, "correct horse").LoadCookies()
	require.NoError(t, err)
	assert.Equal(t, sampleCookies(), got)
}

func TestCookies_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.NewCookieFileStore(home, "correct").SaveCookies(sampleCookies()))

	_, err := store.NewCookieFileStore(home, "wrong").LoadCookies()
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestCookies_Clear(t *testing.T) {
	home := t.TempDir()
	cs := store.NewCookieFileStore(home, "")
	require.NoError(t, cs.SaveCookies(sampleCookies()))

	require.NoError(t, cs.Clear())
	require.NoError(t, cs.Clear(), "clearing twice is not an error")

	got, err := cs.LoadCookies()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCookies_CreatesMissingHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	cs := store.NewCookieFileStore(home, "")

	require.NoError(t, cs.SaveCookies(sampleCookies()))
	_, err := os.Stat(filepath.Join(home, "cookies.json"))
	assert.NoError(t, err)
}
