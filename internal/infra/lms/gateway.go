package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"enrollsync/config"
	domainerrors "enrollsync/internal/domain/errors"

	"github.com/pkg/errors"
)

// Result is a successful (2xx) API response.
type Result struct {
	Status int
	Body   json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Result) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "failed to decode API response")
	}

	return nil
}

// Gateway performs authenticated calls against the LMS API. Every call
// carries a bearer token from the session; a 401 on the first attempt is
// remediated through Session.Reauthenticate and retried exactly once. The
// retried call is terminal whatever its status.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	logger     *slog.Logger
}

// NewGateway constructs a Gateway over the given session.
func NewGateway(cfg *config.Config, session *Session, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimSuffix(cfg.LMS.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.LMS.Timeout},
		session:    session,
		logger:     logger,
	}
}

// Get performs an authenticated GET.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values) (*Result, error) {
	return g.do(ctx, http.MethodGet, path, query, "", nil)
}

// Post performs an authenticated POST with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body any) (*Result, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	return g.do(ctx, http.MethodPost, path, nil, "application/json", encoded)
}

// PostForm performs an authenticated POST with a form-encoded body.
func (g *Gateway) PostForm(ctx context.Context, path string, form url.Values) (*Result, error) {
	return g.do(ctx, http.MethodPost, path, nil, "application/x-www-form-urlencoded", []byte(form.Encode()))
}

// do runs the authenticated-request protocol. The retry budget is one,
// regardless of whether remediation went through the refresh or the
// password grant.
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, contentType string, body []byte) (*Result, error) {
	const attempts = 2

	for attempt := range attempts {
		var token string
		var err error
		if attempt == 0 {
			token, err = g.session.AccessToken(ctx)
		} else {
			token, err = g.session.Reauthenticate(ctx)
		}
		if err != nil {
			return nil, err
		}

		status, respBody, err := g.roundTrip(ctx, method, path, query, contentType, body, token)
		if err != nil {
			return nil, err
		}

		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			return &Result{Status: status, Body: respBody}, nil
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			g.logger.Debug("Received 401, remediating and retrying once",
				slog.String("method", method),
				slog.String("path", path),
			)

			continue
		}

		return nil, domainerrors.NewRemoteAPIError(status, respBody)
	}

	// Unreachable: the second attempt always returns.
	return nil, errors.New("retry budget exhausted")
}

func (g *Gateway) roundTrip(ctx context.Context, method, path string, query url.Values, contentType string, body []byte, token string) (int, []byte, error) {
	target := g.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create API request")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, domainerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, domainerrors.NewTransportError(err)
	}

	return resp.StatusCode, respBody, nil
}
