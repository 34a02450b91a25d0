package security

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestIDCipherRoundTrip(t *testing.T) {
	c, err := NewIDCipher(testKey())
	require.NoError(t, err)

	sealed, err := c.Seal("some-user-id")
	require.NoError(t, err)
	assert.NotEqual(t, "some-user-id", sealed)

	opened, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", opened)
}

func TestIDCipherFreshNonce(t *testing.T) {
	c, err := NewIDCipher(testKey())
	require.NoError(t, err)

	a, err := c.Seal("id")
	require.NoError(t, err)
	b, err := c.Seal("id")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestIDCipherTamperedCiphertext(t *testing.T) {
	c, err := NewIDCipher(testKey())
	require.NoError(t, err)

	_, err = c.Open("not-even-ciphertext")
	assert.Error(t, err)

	sealed, err := c.Seal("id")
	require.NoError(t, err)

	tampered := "A" + sealed[1:]
	if tampered == sealed {
		tampered = "B" + sealed[1:]
	}

	_, err = c.Open(tampered)
	assert.Error(t, err)
}

func TestIDCipherBadKeyLength(t *testing.T) {
	_, err := NewIDCipher([]byte("too-short"))
	assert.Error(t, err)
}
