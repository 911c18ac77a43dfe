// Package delivery defines the servers that expose the use cases.
package delivery

import "context"

// Delivery is a server started once the fx graph is built and stopped through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
