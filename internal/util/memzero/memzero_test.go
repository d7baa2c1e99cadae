package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	a := []byte(`{"password":"hunter2"}`)
	b := []byte("second")

	Zero(a, nil, b, []byte{})

	assert.Equal(t, make([]byte, len(a)), a)
	assert.Equal(t, make([]byte, len(b)), b)
}
