package queries

import (
	"context"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler reads the catalog from the database, sorted by name.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for the catalog list query.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query and returns every catalog item.
func (h GetAllItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllItemsQuery,
) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, description string
		var price decimal.Decimal

		if err = rows.Scan(&id, &name, &price, &description); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, ItemResponse{
			ID:          itemID,
			Name:        name,
			Price:       price,
			Description: description,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
