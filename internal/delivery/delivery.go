// Package delivery contains the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful stop is not an error.
	Serve(ctx context.Context) error
}
