package commands

import (
	"context"
	"errors"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles the pricing and assembly of new orders.
//
// For each requested item, in the caller-supplied order, the catalog is
// queried by exact name. The first unresolved name aborts the whole
// operation with ItemNotFoundError: no order is persisted and no further
// names are looked up. The total price is accumulated as unit price times
// quantity in encounter order, and each resolved item's identifier and name
// are snapshotted into the order's line items.
//
// The catalog read and the order insert run inside one unit of work, so
// creation is all-or-nothing.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning the catalog and order repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order,
// including its assigned identifier and computed total price.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	totalPrice := decimal.Zero
	lineItems := make([]order.LineItem, 0, len(cmd.RequestedItems()))

	for _, requested := range cmd.RequestedItems() {
		product, err := itemRepo.GetByName(ctx, requested.Name())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, &ItemNotFoundError{Name: requested.Name()}
			}
			return nil, err
		}

		quantity := decimal.NewFromInt(int64(requested.Quantity()))
		totalPrice = totalPrice.Add(product.Price().Mul(quantity))

		lineItem, err := order.NewLineItem(product.ID(), requested.Name(), requested.Quantity())
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), lineItems, totalPrice)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
