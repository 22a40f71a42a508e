// Package delivery contains the servers exposed by the development backend.
package delivery

import "context"

// Delivery is a server started by the application and stopped through its lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
