package delivery

import "context"

// Delivery is a long-running entry point started by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
