// Package session owns the authenticated identity and the persisted
// credential. The Store is the sole mutator of both; commands receive it
// explicitly instead of reaching for ambient global state.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anirudh-why/SmartSkin/internal/api"
)

// Status is the auth state machine state.
type Status int

const (
	// StatusUnauthenticated means no valid credential is held.
	StatusUnauthenticated Status = iota
	// StatusVerifyingSilently is the background startup check.
	StatusVerifyingSilently
	// StatusVerifying is an explicit login/registration verification.
	StatusVerifying
	// StatusAuthenticated means identity is present and valid.
	StatusAuthenticated
	// StatusError holds a user-visible failure reason.
	StatusError
)

// String returns the lowercase state name used in badges and logs.
func (s Status) String() string {
	switch s {
	case StatusVerifyingSilently, StatusVerifying:
		return "verifying"
	case StatusAuthenticated:
		return "authenticated"
	case StatusError:
		return "error"
	default:
		return "unauthenticated"
	}
}

// ErrNotAuthenticated is the local rejection for operations that require
// a session; no network round trip is made.
var ErrNotAuthenticated = errors.New("not logged in")

// Store is the session state machine.
//
// Invariant: identity is non-nil if and only if status is
// StatusAuthenticated. Each verification attempt carries a generation
// number; a completion whose generation is stale is discarded so a slow
// response can never overwrite newer state.
type Store struct {
	client *api.Client
	creds  *CredentialFile
	logger *slog.Logger

	mu        sync.Mutex
	status    Status
	errReason string
	identity  *api.User
	gen       uint64
}

// New creates a session store and installs it as the client's token
// source so every authenticated request reads the persisted credential.
func New(client *api.Client, creds *CredentialFile, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		client: client,
		creds:  creds,
		logger: logger,
		status: StatusUnauthenticated,
	}
	client.SetTokenSource(s.Token)
	return s
}

// Token reads the current persisted credential. Empty when logged out.
func (s *Store) Token() string {
	token, err := s.creds.Load()
	if err != nil {
		s.logger.Debug("credential read failed", "error", err)
		return ""
	}
	return token
}

// Status returns the current state and, for StatusError, its reason.
func (s *Store) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.errReason
}

// Authenticated reports whether an identity is present.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusAuthenticated
}

// Identity returns a copy of the authenticated identity, or nil.
func (s *Store) Identity() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	user := *s.identity
	if s.identity.Preferences != nil {
		prefs := *s.identity.Preferences
		user.Preferences = &prefs
	}
	return &user
}

// Bootstrap attempts silent verification of a persisted credential at
// process start. Failures clear the credential and leave the store
// unauthenticated without surfacing an error: a background check must
// never produce user-visible failure.
func (s *Store) Bootstrap(ctx context.Context) {
	token := s.Token()
	if token == "" {
		return
	}
	if err := s.verify(ctx, token, true); err != nil {
		s.logger.Debug("silent verification failed", "error", err)
	}
}

// Login exchanges credentials for a token, persists it, and verifies it.
// On failure the state stays unauthenticated and nothing is persisted.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return err
	}
	return s.adopt(ctx, resp.Token)
}

// Register creates an account and establishes a session, with the same
// contract as Login.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	resp, err := s.client.Register(ctx, email, password, name)
	if err != nil {
		s.fail(err)
		return err
	}
	return s.adopt(ctx, resp.Token)
}

// adopt persists a fresh token and runs non-silent verification.
func (s *Store) adopt(ctx context.Context, token string) error {
	if err := s.creds.Save(token); err != nil {
		s.fail(err)
		return err
	}
	return s.verify(ctx, token, false)
}

// Logout clears the credential and identity unconditionally. It is a
// purely local operation and requires no network call.
func (s *Store) Logout() error {
	err := s.creds.Clear()

	s.mu.Lock()
	s.identity = nil
	s.status = StatusUnauthenticated
	s.errReason = ""
	s.gen++ // invalidate any in-flight verification
	s.mu.Unlock()

	return err
}

// UpdatePreferences sends the preference payload and merges it into the
// local identity only after the server accepts it. A failed call leaves
// local state untouched.
func (s *Store) UpdatePreferences(ctx context.Context, prefs api.Preferences) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}

	if _, err := s.client.UpdatePreferences(ctx, prefs); err != nil {
		return err
	}

	s.mu.Lock()
	if s.identity != nil {
		merged := prefs
		s.identity.Preferences = &merged
	}
	s.mu.Unlock()
	return nil
}

// verify validates a token against the server and, on success, fetches
// the extended profile and merges it into the identity.
func (s *Store) verify(ctx context.Context, token string, silent bool) error {
	gen := s.beginVerify(silent)

	resp, err := s.client.Verify(ctx, token)
	if err != nil {
		s.clearCredential()
		s.settle(gen, nil, err, silent)
		return err
	}
	if !resp.Valid || resp.User == nil {
		s.clearCredential()
		err := errors.New("session expired")
		s.settle(gen, nil, err, silent)
		return err
	}

	user := resp.User
	// The verify payload is minimal; the profile endpoint has the full
	// record. A profile failure is tolerable, the session stays valid.
	if profile, perr := s.client.Profile(ctx); perr == nil {
		user = mergeProfile(user, profile)
	} else {
		s.logger.Debug("profile fetch after verification failed", "error", perr)
	}

	if !s.settle(gen, user, nil, silent) {
		return fmt.Errorf("verification superseded by a newer attempt")
	}
	return nil
}

// beginVerify bumps the generation and enters the verifying state.
func (s *Store) beginVerify(silent bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if silent {
		s.status = StatusVerifyingSilently
	} else {
		s.status = StatusVerifying
	}
	return s.gen
}

// settle applies a verification outcome unless a newer attempt has
// started since. Returns false when the outcome was discarded as stale.
func (s *Store) settle(gen uint64, user *api.User, cause error, silent bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding stale verification result", "gen", gen, "current", s.gen)
		return false
	}

	if user != nil {
		s.identity = user
		s.status = StatusAuthenticated
		s.errReason = ""
		return true
	}

	s.identity = nil
	if silent || cause == nil {
		// Background failures stay invisible.
		s.status = StatusUnauthenticated
		s.errReason = ""
	} else {
		s.status = StatusError
		s.errReason = cause.Error()
	}
	return true
}

// fail records a rejected credential request. The machine returns to
// Unauthenticated; the reason is kept for display.
func (s *Store) fail(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.status = StatusUnauthenticated
	s.errReason = cause.Error()
}

func (s *Store) clearCredential() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Debug("clearing credential failed", "error", err)
	}
}

// mergeProfile overlays the extended profile record on the verify payload.
func mergeProfile(base, profile *api.User) *api.User {
	merged := *base
	if profile.ID != "" {
		merged.ID = profile.ID
	}
	if profile.Name != "" {
		merged.Name = profile.Name
	}
	if profile.Email != "" {
		merged.Email = profile.Email
	}
	if profile.Preferences != nil {
		merged.Preferences = profile.Preferences
	}
	return &merged
}
