// Package itemrepo provides data transfer objects and mapping functions for catalog persistence.
package itemrepo

import (
	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for catalog items.
// The unique index on name backs the exact-match catalog lookup.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"uniqueIndex"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2)"`
	Description string
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price(),
		Description: aggregate.Description(),
	}
}

// toDomain converts a database DTO to a catalog item.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.Description)
}
