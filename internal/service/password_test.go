package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyDigestDeterministic(t *testing.T) {
	// Known SHA-256 vector
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		legacyDigest("hello"))

	assert.Equal(t, legacyDigest("secret123"), legacyDigest("secret123"))
	assert.NotEqual(t, legacyDigest("secret123"), legacyDigest("secret124"))
}

func TestIsLegacyHash(t *testing.T) {
	assert.True(t, isLegacyHash(legacyDigest("anything")))
	assert.False(t, isLegacyHash("$2a$12$abcdefghijklmnopqrstuv"), "bcrypt is not legacy")
	assert.False(t, isLegacyHash("short"))
	assert.False(t, isLegacyHash("zz24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b98zz"))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := hashPassword("secret123")
	require.NoError(t, err)

	ok, upgrade := verifyPassword(hash, "secret123")
	assert.True(t, ok)
	assert.False(t, upgrade, "bcrypt rows need no upgrade")

	ok, _ = verifyPassword(hash, "wrong")
	assert.False(t, ok)
}

func TestVerifyPasswordLegacy(t *testing.T) {
	stored := legacyDigest("secret123")

	ok, upgrade := verifyPassword(stored, "secret123")
	assert.True(t, ok)
	assert.True(t, upgrade, "legacy match must trigger a re-hash")

	ok, upgrade = verifyPassword(stored, "wrong")
	assert.False(t, ok)
	assert.False(t, upgrade)
}
