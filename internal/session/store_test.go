package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh-why/SmartSkin/internal/api"
)

type fixture struct {
	store    *Store
	creds    *CredentialFile
	requests *atomic.Int64
}

// newFixture wires a store against a stub backend that accepts
// "good-token" and knows one user.
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	requests := &atomic.Int64{}
	counting := func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}
	server := httptest.NewServer(http.HandlerFunc(counting))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, nil)
	creds := NewCredentialFile(filepath.Join(t.TempDir(), "token"))
	return &fixture{
		store:    New(client, creds, nil),
		creds:    creds,
		requests: requests,
	}
}

// stubBackend implements login/verify/profile/preferences for tests.
func stubBackend(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "correct" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"token": "good-token"})
		case "/api/auth/register":
			json.NewEncoder(w).Encode(map[string]string{"token": "good-token"})
		case "/api/auth/verify":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["token"] != "good-token" {
				json.NewEncoder(w).Encode(map[string]any{"valid": false})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"valid": true,
				"user":  map[string]string{"id": "u1", "email": "a@b.com"},
			})
		case "/api/user/profile":
			json.NewEncoder(w).Encode(map[string]any{
				"id": "u1", "name": "Ada", "email": "a@b.com",
				"preferences": map[string]any{"skin_type": "Dry", "skin_concerns": []string{"Dryness"}},
			})
		case "/api/user/preferences":
			var prefs api.Preferences
			json.NewDecoder(r.Body).Decode(&prefs)
			json.NewEncoder(w).Encode(prefs)
		default:
			http.NotFound(w, r)
		}
	}
}

func TestStore_LoginSuccess(t *testing.T) {
	f := newFixture(t, stubBackend(t))

	err := f.store.Login(context.Background(), "a@b.com", "correct")
	require.NoError(t, err)

	assert.True(t, f.store.Authenticated())
	status, reason := f.store.Status()
	assert.Equal(t, StatusAuthenticated, status)
	assert.Empty(t, reason)

	// Token persisted
	token, err := f.creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "good-token", token)

	// Extended profile merged into identity
	identity := f.store.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, "Ada", identity.Name)
	require.NotNil(t, identity.Preferences)
	assert.Equal(t, "Dry", identity.Preferences.SkinType)
}

func TestStore_LoginFailure(t *testing.T) {
	f := newFixture(t, stubBackend(t))

	err := f.store.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	status, reason := f.store.Status()
	assert.Equal(t, StatusUnauthenticated, status)
	assert.Equal(t, "Invalid credentials", reason)
	assert.Nil(t, f.store.Identity())

	// No credential persisted
	token, loadErr := f.creds.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, token)
}

func TestStore_Register(t *testing.T) {
	f := newFixture(t, stubBackend(t))

	err := f.store.Register(context.Background(), "a@b.com", "correct", "Ada")
	require.NoError(t, err)
	assert.True(t, f.store.Authenticated())
}

func TestStore_Logout(t *testing.T) {
	f := newFixture(t, stubBackend(t))
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "correct"))

	before := f.requests.Load()
	require.NoError(t, f.store.Logout())

	assert.Nil(t, f.store.Identity())
	assert.False(t, f.store.Authenticated())
	token, _ := f.creds.Load()
	assert.Empty(t, token)

	// Logout is local: no network call
	assert.Equal(t, before, f.requests.Load())

	// Subsequent authenticated operation is rejected locally
	err := f.store.UpdatePreferences(context.Background(), api.Preferences{SkinType: "Oily"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, before, f.requests.Load(), "local rejection must not hit the network")
}

func TestStore_BootstrapSilent(t *testing.T) {
	t.Run("valid persisted token authenticates", func(t *testing.T) {
		f := newFixture(t, stubBackend(t))
		require.NoError(t, f.creds.Save("good-token"))

		f.store.Bootstrap(context.Background())

		assert.True(t, f.store.Authenticated())
	})

	t.Run("invalid token is cleared without surfacing an error", func(t *testing.T) {
		f := newFixture(t, stubBackend(t))
		require.NoError(t, f.creds.Save("stale-token"))

		f.store.Bootstrap(context.Background())

		status, reason := f.store.Status()
		assert.Equal(t, StatusUnauthenticated, status)
		assert.Empty(t, reason, "silent failures must not leave a visible reason")
		token, _ := f.creds.Load()
		assert.Empty(t, token, "invalid credential must be cleared")
	})

	t.Run("absent credential skips the network entirely", func(t *testing.T) {
		f := newFixture(t, stubBackend(t))

		f.store.Bootstrap(context.Background())

		assert.Equal(t, int64(0), f.requests.Load())
		assert.False(t, f.store.Authenticated())
	})
}

func TestStore_UpdatePreferences(t *testing.T) {
	t.Run("success merges optimistically", func(t *testing.T) {
		f := newFixture(t, stubBackend(t))
		require.NoError(t, f.store.Login(context.Background(), "a@b.com", "correct"))

		prefs := api.Preferences{SkinType: "Combination", SkinConcerns: []string{"Acne"}}
		require.NoError(t, f.store.UpdatePreferences(context.Background(), prefs))

		identity := f.store.Identity()
		require.NotNil(t, identity.Preferences)
		assert.Equal(t, "Combination", identity.Preferences.SkinType)
	})

	t.Run("failure leaves local preferences unchanged", func(t *testing.T) {
		failing := false
		base := stubBackend(t)
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			if failing && r.URL.Path == "/api/user/preferences" {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "storage unavailable"})
				return
			}
			base(w, r)
		})
		require.NoError(t, f.store.Login(context.Background(), "a@b.com", "correct"))
		failing = true

		before := f.store.Identity().Preferences
		err := f.store.UpdatePreferences(context.Background(), api.Preferences{SkinType: "Oily"})
		require.Error(t, err)

		after := f.store.Identity().Preferences
		assert.Equal(t, before, after, "no partial merge on failure")
	})
}

func TestStore_StaleVerificationDiscarded(t *testing.T) {
	release := make(chan struct{})
	base := stubBackend(t)
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/verify" {
			<-release // hold the response until the test says so
		}
		base(w, r)
	})
	require.NoError(t, f.creds.Save("good-token"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.store.Bootstrap(context.Background())
	}()

	// Wait for the verification to be in flight, then log out. The
	// logout bumps the generation, so the eventual verify response
	// must be discarded.
	require.Eventually(t, func() bool {
		status, _ := f.store.Status()
		return status == StatusVerifyingSilently
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, f.store.Logout())
	close(release)
	<-done

	assert.False(t, f.store.Authenticated(), "stale verification must not resurrect the session")
	token, _ := f.creds.Load()
	assert.Empty(t, token)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
	assert.Equal(t, "verifying", StatusVerifying.String())
	assert.Equal(t, "verifying", StatusVerifyingSilently.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "error", StatusError.String())
}
