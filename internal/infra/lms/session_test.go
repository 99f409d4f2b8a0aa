package lms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"enrollsync/config"
	"enrollsync/internal/domain/entity"
	domainerrors "enrollsync/internal/domain/errors"
	mockRepo "enrollsync/internal/mocks/repository"
	mockService "enrollsync/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LMS = &config.LMSConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
	cfg.Secrets = &config.SecretsConfig{
		Provider: "env",
		Names: config.SecretNames{
			ClientID:     "lms-client-id",
			ClientSecret: "lms-client-secret",
			Username:     "lms-username",
			Password:     "lms-password",
		},
	}

	return cfg
}

// expectCredentials wires the four credential secrets.
func expectCredentials(secrets *mockService.MockSecretProvider) {
	secrets.EXPECT().GetSecret(mock.Anything, "lms-client-id").Return("client", nil).Maybe()
	secrets.EXPECT().GetSecret(mock.Anything, "lms-client-secret").Return("secret", nil).Maybe()
	secrets.EXPECT().GetSecret(mock.Anything, "lms-username").Return("api-user", nil).Maybe()
	secrets.EXPECT().GetSecret(mock.Anything, "lms-password").Return("api-pass", nil).Maybe()
}

func newTestSession(t *testing.T, baseURL string, stored entity.TokenState) (*Session, *mockRepo.MockTokenRepository, *mockService.MockSecretProvider) {
	t.Helper()

	tokens := mockRepo.NewMockTokenRepository(t)
	tokens.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	secrets := mockService.NewMockSecretProvider(t)

	session, err := NewSession(context.Background(), testConfig(baseURL), secrets, tokens, testLogger())
	require.NoError(t, err)

	return session, tokens, secrets
}

func TestSession_AccessToken_ValidTokenSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	session, _, _ := newTestSession(t, server.URL, entity.TokenState{
		AccessToken: "held-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	token, err := session.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "held-token", token)
	assert.Zero(t, calls.Load(), "a usable token must be returned without any HTTP call")
}

func TestSession_AccessToken_RefreshesExpiredToken(t *testing.T) {
	var refreshCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.FormValue("grant_type"))
		require.Equal(t, "old-refresh", r.FormValue("refresh_token"))
		refreshCalls.Add(1)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "fresh-token",
			"refresh_token": "new-refresh",
			"expires_in":    7200,
		})
	}))
	defer server.Close()

	session, tokens, secrets := newTestSession(t, server.URL, entity.TokenState{
		AccessToken:  "expired-token",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})
	expectCredentials(secrets)

	var saved entity.TokenState
	tokens.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("entity.TokenState")).
		Run(func(_ context.Context, state entity.TokenState) { saved = state }).
		Return(nil).
		Once()

	token, err := session.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "fresh-token", saved.AccessToken)
	assert.Equal(t, "new-refresh", saved.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(7200*time.Second), saved.ExpiresAt, 5*time.Second)
}

func TestSession_AccessToken_ExpiryBufferForcesRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh-token"})
	}))
	defer server.Close()

	// Expires in 30s: inside the 60s buffer, so not usable.
	session, tokens, secrets := newTestSession(t, server.URL, entity.TokenState{
		AccessToken:  "nearly-expired",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(30 * time.Second),
	})
	expectCredentials(secrets)
	tokens.EXPECT().Save(mock.Anything, mock.AnythingOfType("entity.TokenState")).Return(nil).Once()

	token, err := session.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestSession_AccessToken_RefreshWithoutTokenFallsThroughToPassword(t *testing.T) {
	var refreshCalls, passwordCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.FormValue("grant_type") {
		case "refresh_token":
			refreshCalls.Add(1)
			// 2xx body with no access_token: refresh must report failure.
			_ = json.NewEncoder(w).Encode(map[string]any{})
		case "password":
			passwordCalls.Add(1)
			require.Equal(t, "api", r.FormValue("scope"))
			require.Equal(t, "api-user", r.FormValue("username"))
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "password-token"})
		default:
			t.Errorf("unexpected grant_type %q", r.FormValue("grant_type"))
		}
	}))
	defer server.Close()

	session, tokens, secrets := newTestSession(t, server.URL, entity.TokenState{
		AccessToken:  "expired",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(-time.Hour),
	})
	expectCredentials(secrets)
	tokens.EXPECT().Save(mock.Anything, mock.AnythingOfType("entity.TokenState")).Return(nil).Once()

	token, err := session.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "password-token", token)
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(1), passwordCalls.Load())
}

func TestSession_AccessToken_PasswordGrantFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer server.Close()

	session, _, secrets := newTestSession(t, server.URL, entity.TokenState{})
	expectCredentials(secrets)

	_, err := session.AccessToken(context.Background())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err))
}

func TestSession_AccessToken_PasswordResponseMissingTokenIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer server.Close()

	session, _, secrets := newTestSession(t, server.URL, entity.TokenState{})
	expectCredentials(secrets)

	_, err := session.AccessToken(context.Background())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindAuthentication, domainerrors.KindOf(err))
}

func TestSession_ForceRefresh_NoRefreshTokenNoNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	session, _, _ := newTestSession(t, server.URL, entity.TokenState{
		AccessToken: "expired",
		ExpiresAt:   time.Now().Add(-time.Hour),
	})

	assert.False(t, session.ForceRefresh(context.Background()))
	assert.Zero(t, calls.Load())
}

func TestSession_ForceRefresh_RetainsPriorRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No refresh_token in the body: the prior one must be retained.
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh"})
	}))
	defer server.Close()

	session, tokens, secrets := newTestSession(t, server.URL, entity.TokenState{
		RefreshToken: "keep-me",
	})
	expectCredentials(secrets)
	tokens.EXPECT().Save(mock.Anything, mock.AnythingOfType("entity.TokenState")).Return(nil).Once()

	assert.True(t, session.ForceRefresh(context.Background()))

	state := session.TokenState()
	assert.Equal(t, "fresh", state.AccessToken)
	assert.Equal(t, "keep-me", state.RefreshToken)
}

func TestSession_TokenValid(t *testing.T) {
	tests := []struct {
		name  string
		state entity.TokenState
		valid bool
	}{
		{
			name:  "empty state",
			state: entity.TokenState{},
			valid: false,
		},
		{
			name: "usable token",
			state: entity.TokenState{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(time.Hour),
			},
			valid: true,
		},
		{
			name: "inside expiry buffer",
			state: entity.TokenState{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(30 * time.Second),
			},
			valid: false,
		},
		{
			name: "expired",
			state: entity.TokenState{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(-time.Minute),
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, _, _ := newTestSession(t, "http://localhost", tt.state)

			assert.Equal(t, tt.valid, session.TokenValid())
		})
	}
}
