package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"authsession/internal/domain"
)

const (
	cookiesFile          = "cookies.json"
	encryptedCookiesFile = "cookies.enc"
)

// CookieFileStore persists the transport's cookie jar under dir.
//
// With an empty passphrase cookies are written as plain JSON (mode 0600).
// Otherwise they are sealed with a passphrase-derived key.
type CookieFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewCookieFileStore returns a CookieFileStore rooted at dir.
func NewCookieFileStore(dir, passphrase string) *CookieFileStore {
	return &CookieFileStore{dir: dir, passphrase: passphrase}
}

// SaveCookies replaces the stored cookie set.
func (s *CookieFileStore) SaveCookies(cookies []domain.StoredCookie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cookies == nil {
		cookies = []domain.StoredCookie{}
	}
	return sealer{passphrase: s.passphrase}.save(s.path(), cookies)
}

// LoadCookies returns the stored cookies; a missing file yields none.
func (s *CookieFileStore) LoadCookies() ([]domain.StoredCookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cookies []domain.StoredCookie
	if _, err := (sealer{passphrase: s.passphrase}).load(s.path(), &cookies); err != nil {
		return nil, err
	}
	return cookies, nil
}

// Clear removes the stored cookies.
func (s *CookieFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *CookieFileStore) path() string {
	if s.passphrase == "" {
		return filepath.Join(s.dir, cookiesFile)
	}
	return filepath.Join(s.dir, encryptedCookiesFile)
}

// Compile-time assertion that CookieFileStore implements domain.CookieStore.
var _ domain.CookieStore = (*CookieFileStore)(nil)
