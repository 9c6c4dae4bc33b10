// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker receiver) started by
// the application container. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
