// Package delivery defines the entry-point surface shared by the serving
// binaries.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
