package commands

import (
	"context"

	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/core/ports"
)

// ProcessOrderCommandHandler drives the Pending -> Completed transition.
//
// The order is fetched first: a missing order fails synchronously, before any
// delay is observable to the caller. The handler then waits out the
// fulfillment step, applies the state machine transition, and persists the
// result with a version-checked update. The caller only gets a response once
// the write has succeeded.
//
// Ordering the steps this way means two racing lifecycle requests both wait
// out the delay, but only the first write wins the version check; the loser
// surfaces a concurrent-update error instead of silently overwriting.
type ProcessOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	fulfillment ports.FulfillmentStep
}

// NewProcessOrderCommandHandler creates a handler for processing orders.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	fulfillment ports.FulfillmentStep,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: fulfillment,
	}
}

// Handle processes the command and returns the completed order.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Complete(); err != nil {
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
