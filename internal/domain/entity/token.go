// Package entity contains the core business objects of the integration,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// RefreshBuffer is subtracted from the token lifetime so a token is never
// found expired while a request carrying it is still in flight.
const RefreshBuffer = 60 * time.Second

// TokenState is the persisted OAuth2 session state: the access token, the
// refresh token that can renew it, and the absolute expiry of the former.
// A zero value means no session has been established yet.
type TokenState struct {
	AccessToken  string    // Bearer token presented on API calls. Empty when never acquired.
	RefreshToken string    // Refresh-grant credential. Empty when the LMS issued none.
	ExpiresAt    time.Time // Absolute expiry of AccessToken. Zero when never acquired.
}

// Usable reports whether the access token can still be presented: it must be
// non-empty and keep at least RefreshBuffer of lifetime beyond now.
func (t TokenState) Usable(now time.Time) bool {
	return t.AccessToken != "" && t.ExpiresAt.After(now.Add(RefreshBuffer))
}
