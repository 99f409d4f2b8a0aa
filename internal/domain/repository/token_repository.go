// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"enrollsync/internal/domain/entity"
)

// TokenRepository persists the OAuth2 session state across process restarts.
// Writes are write-through: the session persists immediately after every
// successful grant exchange. Concurrent process instances are not
// coordinated; the last writer wins.
type TokenRepository interface {
	// Load retrieves the stored token state. A zero-value state (no error)
	// is returned when nothing has been stored yet.
	Load(ctx context.Context) (entity.TokenState, error)

	// Save stores the token state, replacing whatever was held before.
	Save(ctx context.Context, state entity.TokenState) error
}
