// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the app
// container. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
