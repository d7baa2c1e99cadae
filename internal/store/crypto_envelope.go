package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// cookieFormatVersion is written into every sealed cookie file.
const cookieFormatVersion = 2

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed cookie file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted cookie file")

// envelope is the on-disk form of a sealed cookie file.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// additionalData binds the ciphertext to the header fields it depends on.
func (e envelope) additionalData() []byte {
	return fmt.Appendf(append([]byte(nil), e.Salt...), "|v%d|%d|%d|%d", e.V, e.N, e.R, e.P)
}

func (e envelope) aead(passphrase string) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), e.Salt, e.N, e.R, e.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

// encrypt derives a key from passphrase and seals raw into a JSON envelope.
func encrypt(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	e := envelope{
		V:     cookieFormatVersion,
		Salt:  make([]byte, 16),
		N:     N,
		R:     r,
		P:     p,
		Nonce: make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(e.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(e.Nonce); err != nil {
		return nil, err
	}

	aead, err := e.aead(passphrase)
	if err != nil {
		return nil, err
	}
	e.Cipher = aead.Seal(nil, e.Nonce, raw, e.additionalData())
	return json.Marshal(e)
}

// decrypt opens a JSON envelope using a key derived from passphrase.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, ErrWrongPassphrase
	}
	if e.V != cookieFormatVersion {
		return nil, fmt.Errorf("unsupported cookie file version %d", e.V)
	}
	if len(e.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}

	aead, err := e.aead(passphrase)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, e.Nonce, e.Cipher, e.additionalData())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
