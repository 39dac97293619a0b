package health

import "context"

// Pinger is implemented by components that expose a direct connectivity
// probe. Ping must return nil when the component is reachable.
type Pinger interface {
	HealthPing(ctx context.Context) error
}
