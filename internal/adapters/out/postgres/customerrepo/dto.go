// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"time"

	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
// The unique index on user_name backs the account-name uniqueness rule
// enforced by the registration use case.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string
	LastName    string
	UserName    string `gorm:"uniqueIndex"`
	Password    string
	Address     string
	AddressType string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for customer records.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		UserName:    aggregate.UserName(),
		Password:    aggregate.Password(),
		Address:     aggregate.Address(),
		AddressType: aggregate.AddressType(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a customer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.UserName,
		dto.Password,
		dto.Address,
		dto.AddressType,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
