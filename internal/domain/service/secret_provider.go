// Package service defines the interfaces for external collaborators the
// use cases depend on, keeping their concrete transports out of the
// application layer.
package service

import "context"

// SecretProvider returns the latest value of a named secret. Provider
// errors (permission, not-found) are not recovered from locally and
// propagate fatally to the caller.
type SecretProvider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
