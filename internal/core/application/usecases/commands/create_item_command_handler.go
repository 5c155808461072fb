package commands

import (
	"context"

	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/kernel"
)

// CreateItemCommandHandler adds items to the catalog.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for catalog item creation.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new catalog item and returns it with its assigned identifier.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newItem, err := item.NewItem(kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newItem, nil
}
