// Package lms implements the remote learning-management API integration:
// the OAuth2 session lifecycle, the authenticated gateway with its
// single-retry protocol, and the typed endpoint client.
package lms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"enrollsync/config"
	"enrollsync/internal/domain/entity"
	domainerrors "enrollsync/internal/domain/errors"
	"enrollsync/internal/domain/repository"
	"enrollsync/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tokenPath            = "oauth2/token"
	passwordGrantScope   = "api"
	defaultTokenLifetime = 3600 * time.Second
)

// tokenResponse is the token endpoint's JSON body for both grant types.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Session owns the OAuth2 token lifecycle: acquisition, refresh,
// expiry-buffer checks, and write-through persistence. Grant selection
// lives here exclusively; the gateway delegates 401 remediation so the
// refresh-before-password priority is never duplicated.
type Session struct {
	tokenURL   string
	httpClient *http.Client
	secrets    service.SecretProvider
	names      config.SecretNames
	tokens     repository.TokenRepository
	logger     *slog.Logger
	now        func() time.Time

	mu    sync.Mutex
	state entity.TokenState
	creds *entity.Credentials
}

// NewSession constructs a Session with the persisted token state loaded.
// Credentials are not touched until the first grant exchange needs them.
func NewSession(
	ctx context.Context,
	cfg *config.Config,
	secrets service.SecretProvider,
	tokens repository.TokenRepository,
	logger *slog.Logger,
) (*Session, error) {
	state, err := tokens.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted token state")
	}

	return &Session{
		tokenURL:   joinURL(cfg.LMS.BaseURL, tokenPath),
		httpClient: &http.Client{Timeout: cfg.LMS.Timeout},
		secrets:    secrets,
		names:      cfg.Secrets.Names,
		tokens:     tokens,
		logger:     logger,
		now:        time.Now,
		state:      state,
	}, nil
}

// AccessToken returns a usable bearer token. A token passing the validity
// check is returned unchanged; otherwise a refresh exchange is attempted
// when a refresh token is held, falling back to the password grant, which
// either succeeds or fails the call with an authentication error.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Usable(s.now()) {
		return s.state.AccessToken, nil
	}

	if s.state.RefreshToken != "" && s.refreshLocked(ctx) {
		return s.state.AccessToken, nil
	}

	return s.passwordGrantLocked(ctx)
}

// TokenValid reports whether the held access token passes the validity
// invariant. No side effects, no network.
func (s *Session) TokenValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Usable(s.now())
}

// TokenState returns a read-only snapshot of the session state.
func (s *Session) TokenState() entity.TokenState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// ForceRefresh attempts a refresh exchange and reports its success. When no
// refresh token is held it returns false without any network call.
func (s *Session) ForceRefresh(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.RefreshToken == "" {
		return false
	}

	return s.refreshLocked(ctx)
}

// Reauthenticate acquires a fresh token for the gateway's 401 remediation:
// refresh when a refresh token is held, password grant otherwise or when
// the refresh fails. The password grant's own failure is fatal.
func (s *Session) Reauthenticate(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.RefreshToken != "" && s.refreshLocked(ctx) {
		return s.state.AccessToken, nil
	}

	return s.passwordGrantLocked(ctx)
}

// refreshLocked performs a refresh-grant exchange. Any failure leaves the
// session state untouched and returns false. Callers hold s.mu.
func (s *Session) refreshLocked(ctx context.Context) bool {
	creds, err := s.credentialsLocked(ctx)
	if err != nil {
		s.logger.Error("Failed to load credentials for refresh exchange", slog.Any("error", err))

		return false
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", s.state.RefreshToken)
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)

	parsed, err := s.tokenExchange(ctx, form)
	if err != nil {
		s.logger.Warn("Refresh exchange failed", slog.Any("error", err))

		return false
	}

	if parsed.AccessToken == "" {
		s.logger.Warn("Refresh exchange response carried no access token")

		return false
	}

	s.adoptLocked(ctx, parsed, s.state.RefreshToken)

	return true
}

// passwordGrantLocked performs a password-grant exchange. It either returns
// the new access token or a fatal authentication error. Callers hold s.mu.
func (s *Session) passwordGrantLocked(ctx context.Context) (string, error) {
	creds, err := s.credentialsLocked(ctx)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)
	form.Set("scope", passwordGrantScope)

	parsed, err := s.tokenExchange(ctx, form)
	if err != nil {
		return "", domainerrors.ErrAuthenticationFailed.WithDetails(err.Error())
	}

	if parsed.AccessToken == "" {
		return "", domainerrors.ErrTokenResponseInvalid
	}

	s.adoptLocked(ctx, parsed, "")

	return s.state.AccessToken, nil
}

// tokenExchange POSTs a form to the token endpoint and decodes the response.
// Non-2xx statuses and connection errors are both reported as errors
// carrying the response body or the transport message.
func (s *Session) tokenExchange(ctx context.Context, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &parsed, nil
}

// adoptLocked mutates the session state from a successful exchange and
// persists it write-through. Absent refresh tokens fall back to
// priorRefresh; absent expires_in falls back to the default lifetime.
func (s *Session) adoptLocked(ctx context.Context, parsed *tokenResponse, priorRefresh string) {
	lifetime := defaultTokenLifetime
	if parsed.ExpiresIn > 0 {
		lifetime = time.Duration(parsed.ExpiresIn) * time.Second
	}

	refresh := parsed.RefreshToken
	if refresh == "" {
		refresh = priorRefresh
	}

	s.state = entity.TokenState{
		AccessToken:  parsed.AccessToken,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(lifetime),
	}

	// A persistence failure must not invalidate the in-memory token; the
	// next successful exchange writes through again.
	if err := s.tokens.Save(ctx, s.state); err != nil {
		s.logger.Error("Failed to persist token state", slog.Any("error", err))
	}
}

// credentialsLocked lazily loads the credential bundle on first need and
// caches it for the process lifetime. Callers hold s.mu.
func (s *Session) credentialsLocked(ctx context.Context) (*entity.Credentials, error) {
	if s.creds != nil {
		return s.creds, nil
	}

	load := func(name string) (string, error) {
		value, err := s.secrets.GetSecret(ctx, name)
		if err != nil {
			return "", domainerrors.ErrCredentialsUnavailable.WrapMessage(name)
		}

		return value, nil
	}

	clientID, err := load(s.names.ClientID)
	if err != nil {
		return nil, err
	}
	clientSecret, err := load(s.names.ClientSecret)
	if err != nil {
		return nil, err
	}
	username, err := load(s.names.Username)
	if err != nil {
		return nil, err
	}
	password, err := load(s.names.Password)
	if err != nil {
		return nil, err
	}

	s.creds = &entity.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Username:     username,
		Password:     password,
	}

	return s.creds, nil
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
