package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialFile stores the opaque bearer token at a well-known path.
// Absence of the file means unauthenticated.
type CredentialFile struct {
	path string
}

// NewCredentialFile returns a credential store backed by the given path.
func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

// Path returns the backing file path.
func (c *CredentialFile) Path() string {
	return c.path
}

// Load reads the persisted token. A missing file is not an error and
// yields the empty string.
func (c *CredentialFile) Load() (string, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the token, creating the parent directory if needed.
func (c *CredentialFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating credential dir: %w", err)
	}
	if err := os.WriteFile(c.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent credential is a no-op.
func (c *CredentialFile) Clear() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing credential: %w", err)
	}
	return nil
}

// TokenInfo is a best-effort, display-only peek into a JWT credential.
// The token stays opaque to all control flow; validation is always the
// server's job via the verify endpoint.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekToken decodes JWT claims without verifying the signature. Opaque
// non-JWT tokens return an error, which callers treat as "nothing to show".
func PeekToken(token string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("not a JWT credential: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
