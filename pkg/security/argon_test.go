package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	a := NewArgon()

	encoded, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.NotContains(t, encoded, "secret1")

	// Salts are random so two hashes of the same password must differ
	encoded2, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, encoded2)
}

func TestVerifyPasswd(t *testing.T) {
	a := NewArgon()

	encoded, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("secret1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("not-secret1", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswdInvalidHash(t *testing.T) {
	a := NewArgon()

	_, err := a.VerifyPasswd("whatever", "not-a-phc-string")
	assert.Error(t, err)
}
