package cmd

import (
	"log/slog"
	"os"

	"ordersystem/internal/adapters/out/fulfillment"
	"ordersystem/internal/adapters/out/postgres"
	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	fulfillment ports.FulfillmentStep
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		fulfillment: fulfillment.NewFixedDelay(config.FulfillmentDelay, logger),
		logger:      logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() *commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewProcessOrderCommandHandler(f, c.fulfillment)
	return &handler
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCancelOrderCommandHandler(f, c.fulfillment)
	return &handler
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewDeleteOrderCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() *commands.CreateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateItemCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() *commands.UpdateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateItemCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() *commands.DeleteItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewDeleteItemCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateCustomerCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateCustomerCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() *commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewDeleteCustomerCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllItemsQueryHandler() queries.GetAllItemsQueryHandler {
	return queries.NewGetAllItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
