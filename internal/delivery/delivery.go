// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving the gateway, started once
// at boot and stopped through its Fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
