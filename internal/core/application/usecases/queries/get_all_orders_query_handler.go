package queries

import (
	"context"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order list from the database.
// Orders are returned sorted by ID; lines keep their stored position order.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list query.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order with its lines.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)
	orderIndex := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_price,
			created_at,
			updated_at
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID
		var status int
		var totalPrice decimal.Decimal
		var createdAt, updatedAt time.Time

		if err = rows.Scan(&id, &customerID, &status, &totalPrice, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderIndex[orderID] = len(orders)
		orders = append(orders, OrderResponse{
			ID:         orderID,
			CustomerID: orderCustomerID,
			Items:      make([]OrderItemResponse, 0),
			Status:     order.Status(status).String(),
			TotalPrice: totalPrice,
			CreatedAt:  createdAt,
			UpdatedAt:  updatedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			quantity
		FROM order_line_items
		ORDER BY order_id, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID, itemID uuid.UUID
		var name string
		var quantity int

		if err = lineRows.Scan(&orderID, &itemID, &name, &quantity); err != nil {
			return nil, err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		lineItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		index, ok := orderIndex[parentID]
		if !ok {
			continue
		}
		orders[index].Items = append(orders[index].Items, OrderItemResponse{
			ItemID:   lineItemID,
			Name:     name,
			Quantity: quantity,
		})
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
