package queries

import (
	"context"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads the pending-order backlog, oldest first.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for the backlog query.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders in Pending status.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]PendingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]PendingOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&id, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		pending = append(pending, PendingOrderResponse{
			ID:        orderID,
			CreatedAt: createdAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
