// Package fulfillment provides the default FulfillmentStep adapter.
package fulfillment

import (
	"context"
	"log/slog"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
)

// FixedDelay implements ports.FulfillmentStep as a constant wait. It stands
// in for a real downstream step such as a payment or shipping call; the
// lifecycle use cases only see the Await contract.
type FixedDelay struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewFixedDelay creates a fixed-delay fulfillment step.
func NewFixedDelay(delay time.Duration, logger *slog.Logger) *FixedDelay {
	return &FixedDelay{
		delay:  delay,
		logger: logger,
	}
}

// Await blocks for the configured delay or until the context is cancelled.
func (f *FixedDelay) Await(ctx context.Context, orderID kernel.UUID) error {
	f.logger.Debug("awaiting fulfillment step",
		"order_id", orderID.String(),
		"delay", f.delay,
	)

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
