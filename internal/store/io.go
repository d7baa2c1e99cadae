package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"authsession/internal/util/memzero"
)

// fileMode is used for every file the store writes. Cookies are credentials.
const fileMode os.FileMode = 0o600

// sealer turns a document into file bytes and back. An empty passphrase
// means the document is stored as indented JSON.
type sealer struct {
	passphrase string
}

// load decodes the file at path into out. A missing file leaves out
// untouched and reports found=false.
func (s sealer) load(path string, out any) (found bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if s.passphrase != "" {
		if b, err = decrypt(s.passphrase, b); err != nil {
			return true, err
		}
		defer memzero.Zero(b)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return true, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// save encodes v and atomically replaces the file at path.
func (s sealer) save(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		plain := b
		N, r, p := scryptParamsDefault()
		b, err = encrypt(s.passphrase, plain, N, r, p)
		memzero.Zero(plain)
		if err != nil {
			return err
		}
	}
	return replaceFile(path, b)
}

// replaceFile writes b to a temp file next to path and renames it over path,
// so readers see either the old or the new content. The parent directory is
// created with 0700 if missing.
func replaceFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
