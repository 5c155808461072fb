package http

import (
	"time"

	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/order"
)

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line: a catalog name and a quantity.
type OrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateItemRequest is the POST /items body.
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// UpdateItemRequest is the PUT /items/:id body. Omitted fields keep their value.
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// CreateCustomerRequest is the POST /customers body.
type CreateCustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	Address     string `json:"address"`
	AddressType string `json:"addressType"`
}

// UpdateCustomerRequest is the PATCH /customers/:id body. Omitted fields keep their value.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	UserName    *string `json:"userName"`
	Password    *string `json:"password"`
	Address     *string `json:"address"`
	AddressType *string `json:"addressType"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	TotalPrice float64             `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderItemResponse is one order line on the wire.
type OrderItemResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ItemResponse is the wire representation of a catalog item.
type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CustomerResponse is the wire representation of a customer. The password
// is never returned.
type CustomerResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	UserName    string    `json:"userName"`
	Address     string    `json:"address"`
	AddressType string    `json:"addressType"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageResponse carries a human-readable outcome message, optionally with
// the affected order.
type MessageResponse struct {
	Message string         `json:"message"`
	Order   *OrderResponse `json:"order,omitempty"`
}

// ErrorResponse carries a user-correctable error description.
type ErrorResponse struct {
	Error string `json:"error"`
}

func orderFromDomain(aggregate *order.Order) OrderResponse {
	lineItems := aggregate.LineItems()
	items := make([]OrderItemResponse, 0, len(lineItems))
	for _, lineItem := range lineItems {
		items = append(items, OrderItemResponse{
			ItemID:   lineItem.ItemID().String(),
			Name:     lineItem.Name(),
			Quantity: lineItem.Quantity(),
		})
	}

	return OrderResponse{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Items:      items,
		Status:     aggregate.Status().String(),
		TotalPrice: aggregate.TotalPrice().InexactFloat64(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func orderFromQuery(response queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(response.Items))
	for _, queryItem := range response.Items {
		items = append(items, OrderItemResponse{
			ItemID:   queryItem.ItemID.String(),
			Name:     queryItem.Name,
			Quantity: queryItem.Quantity,
		})
	}

	return OrderResponse{
		ID:         response.ID.String(),
		CustomerID: response.CustomerID.String(),
		Items:      items,
		Status:     response.Status,
		TotalPrice: response.TotalPrice.InexactFloat64(),
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
	}
}

func itemFromDomain(aggregate *item.Item) ItemResponse {
	return ItemResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price().InexactFloat64(),
		Description: aggregate.Description(),
	}
}

func itemFromQuery(response queries.ItemResponse) ItemResponse {
	return ItemResponse{
		ID:          response.ID.String(),
		Name:        response.Name,
		Price:       response.Price.InexactFloat64(),
		Description: response.Description,
	}
}

func customerFromDomain(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          aggregate.ID().String(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		UserName:    aggregate.UserName(),
		Address:     aggregate.Address(),
		AddressType: aggregate.AddressType(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func customerFromQuery(response queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:          response.ID.String(),
		FirstName:   response.FirstName,
		LastName:    response.LastName,
		UserName:    response.UserName,
		Address:     response.Address,
		AddressType: response.AddressType,
		CreatedAt:   response.CreatedAt,
		UpdatedAt:   response.UpdatedAt,
	}
}
