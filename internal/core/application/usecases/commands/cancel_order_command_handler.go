package commands

import (
	"context"

	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/core/ports"
)

// CancelOrderCommandHandler drives the Pending -> Cancelled transition.
//
// It mirrors ProcessOrderCommandHandler: synchronous existence check, then
// the fulfillment delay, then a version-checked write. An already-scheduled
// opposing transition cannot be revoked; whichever write commits first wins
// and the other fails the version check.
type CancelOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	fulfillment ports.FulfillmentStep
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	fulfillment ports.FulfillmentStep,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: fulfillment,
	}
}

// Handle processes the command and returns the cancelled order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	// The existence check runs before the fulfillment delay.
	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.fulfillment.Await(ctx, aggregate.ID()); err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
