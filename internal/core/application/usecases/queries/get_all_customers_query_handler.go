package queries

import (
	"context"
	"time"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler reads the customer list from the database,
// sorted by account name.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for the customer list query.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query and returns every customer record.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			user_name,
			address,
			address_type,
			created_at,
			updated_at
		FROM customers
		ORDER BY user_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var firstName, lastName, userName, address, addressType string
		var createdAt, updatedAt time.Time

		if err = rows.Scan(
			&id,
			&firstName,
			&lastName,
			&userName,
			&address,
			&addressType,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customers = append(customers, CustomerResponse{
			ID:          customerID,
			FirstName:   firstName,
			LastName:    lastName,
			UserName:    userName,
			Address:     address,
			AddressType: addressType,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
