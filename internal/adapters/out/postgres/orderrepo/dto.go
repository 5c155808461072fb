// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check in Update.
// Timestamps are owned by the domain, so GORM's automatic tracking is disabled.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index"`
	LineItems  []LineItemDTO   `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Status     int             `gorm:"index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
	Version    int
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one line of an order. Position preserves the
// request order of the line items; lines are immutable once written.
type LineItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid"`
	Name     string
	Quantity int
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	lineDTOs := make([]LineItemDTO, 0, len(lineItems))
	for position, lineItem := range lineItems {
		lineDTOs = append(lineDTOs, LineItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Position: position,
			ItemID:   lineItem.ItemID().Bytes(),
			Name:     lineItem.Name(),
			Quantity: lineItem.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		LineItems:  lineDTOs,
		Status:     int(aggregate.Status()),
		TotalPrice: aggregate.TotalPrice(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Line items are rebuilt in their stored position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.LineItems, func(i, j int) bool {
		return dto.LineItems[i].Position < dto.LineItems[j].Position
	})

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, lineDTO := range dto.LineItems {
		itemID, itemErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		lineItem, lineErr := order.NewLineItem(itemID, lineDTO.Name, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(
		id,
		customerID,
		lineItems,
		order.Status(dto.Status),
		dto.TotalPrice,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
