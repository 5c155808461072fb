package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/kernel"
)

// FulfillmentStep is the downstream step an accepted lifecycle request waits
// on before the order's terminal status is persisted. The default adapter is
// a fixed delay simulating fulfillment latency; production deployments can
// substitute a real payment or shipping integration without touching the
// lifecycle use cases.
type FulfillmentStep interface {
	// Await blocks until the fulfillment step for the given order has run,
	// or until the context is cancelled.
	Await(ctx context.Context, orderID kernel.UUID) error
}
