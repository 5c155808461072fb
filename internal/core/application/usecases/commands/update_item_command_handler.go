package commands

import (
	"context"

	"ordersystem/internal/core/domain/model/item"
)

// UpdateItemCommandHandler patches catalog items.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for catalog item updates.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the supplied fields to the stored item and returns the result.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*item.Item, error) {
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
	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if name := cmd.Name(); name != nil {
		if err = aggregate.Rename(*name); err != nil {
			return nil, err
		}
	}
	if price := cmd.Price(); price != nil {
		if err = aggregate.ChangePrice(*price); err != nil {
			return nil, err
		}
	}
	if description := cmd.Description(); description != nil {
		aggregate.ChangeDescription(*description)
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
