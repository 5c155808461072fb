package queries

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves every customer record.
type GetAllCustomersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllCustomersQuery creates a parameterless query for the customer list.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// CustomerResponse is the read-side representation of a customer record.
// The password column is deliberately not selected.
type CustomerResponse struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	UserName    string
	Address     string
	AddressType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
