package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFile_RoundTrip(t *testing.T) {
	creds := NewCredentialFile(filepath.Join(t.TempDir(), "nested", "token"))

	token, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means unauthenticated")

	require.NoError(t, creds.Save("tok-123"))

	token, err = creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	info, err := os.Stat(creds.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCredentialFile_Clear(t *testing.T) {
	creds := NewCredentialFile(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, creds.Save("tok"))

	require.NoError(t, creds.Clear())
	token, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is a no-op
	require.NoError(t, creds.Clear())
}

func TestPeekToken_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	info, err := PeekToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestPeekToken_Opaque(t *testing.T) {
	_, err := PeekToken("not-a-jwt")
	assert.Error(t, err)
}
