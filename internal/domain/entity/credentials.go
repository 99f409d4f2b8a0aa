package entity

// Credentials is the OAuth2 credential bundle used for grant exchanges.
// Loaded once per process lifetime from the secret provider, cached in
// memory only, and never persisted by this system.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}
