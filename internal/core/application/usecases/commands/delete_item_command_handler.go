package commands

import (
	"context"
)

// DeleteItemCommandHandler removes catalog items.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for catalog item deletion.
func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the item. Absent items are treated as already deleted.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
