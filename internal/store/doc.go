// Package store provides file-based persistence for the session cookie jar.
//
// CookieFileStore implements domain.CookieStore, serialising cookies as JSON
// on disk, optionally sealed with a passphrase (scrypt + ChaCha20-Poly1305).
// Writes go through a temp file and an atomic rename. All methods are
// concurrency-safe via internal locking. Files live under the configured home
// directory.
package store
