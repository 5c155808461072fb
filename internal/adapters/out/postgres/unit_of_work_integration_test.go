package postgres_test

import (
	"context"
	"testing"
	"time"

	"ordersystem/internal/adapters/out/postgres"
	"ordersystem/internal/adapters/out/postgres/customerrepo"
	"ordersystem/internal/adapters/out/postgres/itemrepo"
	"ordersystem/internal/adapters/out/postgres/orderrepo"
	"ordersystem/internal/core/domain/model/customer"
	"ordersystem/internal/core/domain/model/item"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&itemrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items, items, customers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newOrder() *order.Order {
	lineItem, err := order.NewLineItem(kernel.NewUUID(), "Laptop", 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{lineItem},
		decimal.RequireFromString("999.99"),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	catalogItem, err := item.NewItem(kernel.NewUUID(), "Laptop", decimal.RequireFromString("999.99"), "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, catalogItem))

	aggregate := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	account, err := customer.NewCustomer(
		kernel.NewUUID(), "John", "Doe", "jdoe", "secret", "123 Main St", "home",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, account))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	_, err = verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.NoError(err)
	_, err = verify.ItemRepository().GetByName(ctx, "Laptop")
	suite.NoError(err)
	_, err = verify.CustomerRepository().GetByUserName(ctx, "jdoe")
	suite.NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
