// Package http exposes the order system over echo v4, translating the wire
// contract to commands and queries and mapping errors onto status codes.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handler interfaces decouple the server from the concrete use case types,
// keeping the routing layer testable without a database.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ProcessOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}

	CreateItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateItemCommand) (*item.Item, error)
	}
	UpdateItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateItemCommand) (*item.Item, error)
	}
	DeleteItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteItemCommand) error
	}
	GetAllItemsHandler interface {
		Handle(ctx context.Context, query queries.GetAllItemsQuery) ([]queries.ItemResponse, error)
	}

	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	DeleteCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error
	}
	GetAllCustomersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCustomersQuery) ([]queries.CustomerResponse, error)
	}
)

// Handlers bundles every use case the server routes to.
type Handlers struct {
	CreateOrder  CreateOrderHandler
	ProcessOrder ProcessOrderHandler
	CancelOrder  CancelOrderHandler
	DeleteOrder  DeleteOrderHandler
	GetAllOrders GetAllOrdersHandler

	CreateItem  CreateItemHandler
	UpdateItem  UpdateItemHandler
	DeleteItem  DeleteItemHandler
	GetAllItems GetAllItemsHandler

	CreateCustomer  CreateCustomerHandler
	UpdateCustomer  UpdateCustomerHandler
	DeleteCustomer  DeleteCustomerHandler
	GetAllCustomers GetAllCustomersHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the supplied use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.PUT("/orders/:id/process", s.ProcessOrder)
	e.PUT("/orders/:id/cancel", s.CancelOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)

	e.POST("/items", s.CreateItem)
	e.GET("/items", s.GetItems)
	e.PUT("/items/:id", s.UpdateItem)
	e.DELETE("/items/:id", s.DeleteItem)

	e.POST("/customers", s.CreateCustomer)
	e.GET("/customers", s.GetCustomers)
	e.PATCH("/customers/:id", s.UpdateCustomer)
	e.DELETE("/customers/:id", s.DeleteCustomer)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to create"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid customer id"})
	}

	requestedItems := make([]commands.RequestedItem, 0, len(request.Items))
	for _, requested := range request.Items {
		requestedItem, itemErr := commands.NewRequestedItem(requested.Name, requested.Quantity)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: itemErr.Error()})
		}
		requestedItems = append(requestedItems, requestedItem)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, requestedItems)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var itemNotFound *commands.ItemNotFoundError
		if errors.As(err, &itemNotFound) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("Item '%s' not found.", itemNotFound.Name),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to create order"})
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /orders.
//
//	@Summary	List all orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	result, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to retrieve orders"})
	}

	response := make([]OrderResponse, 0, len(result))
	for _, queryOrder := range result {
		response = append(response, orderFromQuery(queryOrder))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProcessOrder handles PUT /orders/:id/process.
//
//	@Summary	Process a pending order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	MessageResponse
//	@Router		/orders/{id}/process [put]
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	processed, err := s.handlers.ProcessOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderLifecycleError(ctx, err, "Failed to process order")
	}

	response := orderFromDomain(processed)
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order processed", Order: &response})
}

// CancelOrder handles PUT /orders/:id/cancel.
//
//	@Summary	Cancel a pending order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	MessageResponse
//	@Router		/orders/{id}/cancel [put]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	cancelled, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderLifecycleError(ctx, err, "Failed to cancel order")
	}

	response := orderFromDomain(cancelled)
	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Order '%s' cancelled", cancelled.ID().String()),
		Order:   &response,
	})
}

// DeleteOrder handles DELETE /orders/:id. Deletion carries no existence
// check, so repeating it still answers 200.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	MessageResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid order id"})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Failed to delete order"})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order deleted"})
}

// CreateItem handles POST /items.
//
//	@Summary	Add a catalog item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		item	body		CreateItemRequest	true	"Item to add"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	MessageResponse
//	@Router		/items [post]
func (s *Server) CreateItem(ctx echo.Context) error {
	var request CreateItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCreateItemCommand(
		request.Name,
		decimal.NewFromFloat(request.Price),
		request.Description,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := s.handlers.CreateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to create item"})
	}

	return ctx.JSON(http.StatusCreated, itemFromDomain(created))
}

// GetItems handles GET /items.
//
//	@Summary	List the catalog
//	@Tags		items
//	@Produce	json
//	@Success	200	{array}	ItemResponse
//	@Router		/items [get]
func (s *Server) GetItems(ctx echo.Context) error {
	result, err := s.handlers.GetAllItems.Handle(ctx.Request().Context(), queries.NewGetAllItemsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to retrieve items"})
	}

	response := make([]ItemResponse, 0, len(result))
	for _, queryItem := range result {
		response = append(response, itemFromQuery(queryItem))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateItem handles PUT /items/:id.
//
//	@Summary	Update a catalog item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		item	body		UpdateItemRequest	true	"Fields to change"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{id} [put]
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
	}

	var request UpdateItemRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	var price *decimal.Decimal
	if request.Price != nil {
		value := decimal.NewFromFloat(*request.Price)
		price = &value
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, request.Name, price, request.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	updated, err := s.handlers.UpdateItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		}
		if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
			return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to update item"})
	}

	return ctx.JSON(http.StatusOK, itemFromDomain(updated))
}

// DeleteItem handles DELETE /items/:id.
//
//	@Summary	Delete a catalog item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	MessageResponse
//	@Router		/items/{id} [delete]
func (s *Server) DeleteItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid item id"})
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	if err = s.handlers.DeleteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to delete item"})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// CreateCustomer handles POST /customers.
//
//	@Summary	Register a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CreateCustomerRequest	true	"Customer to register"
//	@Success	201			{object}	CustomerResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCreateCustomerCommand(
		request.FirstName,
		request.LastName,
		request.UserName,
		request.Password,
		request.Address,
		request.AddressType,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var taken *commands.UserNameTakenError
		if errors.As(err, &taken) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("Username '%s' already exists.", taken.UserName),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to create customer"})
	}

	return ctx.JSON(http.StatusCreated, customerFromDomain(created))
}

// GetCustomers handles GET /customers.
//
//	@Summary	List all customers
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	CustomerResponse
//	@Router		/customers [get]
func (s *Server) GetCustomers(ctx echo.Context) error {
	result, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to retrieve customers"})
	}

	response := make([]CustomerResponse, 0, len(result))
	for _, queryCustomer := range result {
		response = append(response, customerFromQuery(queryCustomer))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PATCH /customers/:id.
//
//	@Summary	Update a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Customer ID"
//	@Param		customer	body		UpdateCustomerRequest	true	"Fields to change"
//	@Success	200			{object}	CustomerResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/customers/{id} [patch]
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer not found"})
	}

	var request UpdateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		request.FirstName,
		request.LastName,
		request.UserName,
		request.Password,
		request.Address,
		request.AddressType,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	updated, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer not found"})
		}
		if errors.Is(err, errs.ErrValueIsRequired) {
			return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to update customer"})
	}

	return ctx.JSON(http.StatusOK, customerFromDomain(updated))
}

// DeleteCustomer handles DELETE /customers/:id.
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"Customer ID"
//	@Success	200	{object}	MessageResponse
//	@Router		/customers/{id} [delete]
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid customer id"})
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Failed to delete customer"})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Customer deleted"})
}

// orderLifecycleError maps lifecycle failures onto the wire contract:
// missing orders answer 404, refused transitions and lost version races
// answer 409, everything else is a 500.
func (s *Server) orderLifecycleError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	case errors.Is(err, errs.ErrConcurrentUpdate), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, MessageResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: fallback})
	}
}
