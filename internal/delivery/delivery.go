// Package delivery defines the contract every transport implementation
// satisfies so the application can serve them uniformly.
package delivery

import "context"

// Delivery is a transport endpoint (HTTP server, worker, ...) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
