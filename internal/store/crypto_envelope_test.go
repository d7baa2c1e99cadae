package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap scrypt parameters keep the tests fast.
const testN, testR, testP = 1 << 10, 8, 1

func TestEnvelope_RoundTrip(t *testing.T) {
	sealed, err := encrypt("pw", []byte(`[{"name":"session"}]`), testN, testR, testP)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "session")

	raw, err := decrypt("pw", sealed)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"session"}]`, string(raw))
}

func TestEnvelope_TamperedHeaderRejected(t *testing.T) {
	sealed, err := encrypt("pw", []byte("cookies"), testN, testR, testP)
	require.NoError(t, err)

	var e envelope
	require.NoError(t, json.Unmarshal(sealed, &e))
	e.Salt[0] ^= 0xff
	tampered, err := json.Marshal(e)
	require.NoError(t, err)

	_, err = decrypt("pw", tampered)
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestEnvelope_UnknownVersion(t *testing.T) {
	sealed, err := json.Marshal(envelope{V: cookieFormatVersion + 1})
	require.NoError(t, err)

	_, err = decrypt("pw", sealed)
	assert.ErrorContains(t, err, "unsupported cookie file version")
}

func TestEnvelope_Garbage(t *testing.T) {
	_, err := decrypt("pw", []byte("not json"))
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}
