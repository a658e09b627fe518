package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermail/internal/adapters/out/postgres/orderrepo"
	"ordermail/internal/core/application/usecases/queries"
	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding through repositories.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrdersOnHoldQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersOnHoldQueryHandler
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersOnHoldQueryHandler(db)
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersOnHoldQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) TestHandle_ReturnsOnlyHeldOrders() {
	held := suite.saveOrder("alice@example.com", order.ModelFixHold)
	suite.saveOrder("bob@example.com", order.InProduction)
	suite.saveOrder("carol@example.com", order.Fulfilled)

	query := queries.NewGetOrdersOnHoldQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(held.ID(), result[0].ID)
	suite.Equal("alice@example.com", result[0].CustomerEmail)
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) TestHandle_OrdersByCustomerEmail() {
	suite.saveOrder("zoe@example.com", order.ModelFixHold)
	suite.saveOrder("adam@example.com", order.ModelFixHold)

	query := queries.NewGetOrdersOnHoldQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("adam@example.com", result[0].CustomerEmail)
	suite.Equal("zoe@example.com", result[1].CustomerEmail)
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersOnHoldQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersOnHoldQuery constructor")
}

func (suite *GetOrdersOnHoldQueryHandlerTestSuite) saveOrder(
	email string, status order.Status,
) *order.Order {
	variantKey, err := kernel.NewModelMaterialID("model-1", "mat-1")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), variantKey)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), email, status, []order.Item{item})
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetOrdersOnHoldQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersOnHoldQueryHandlerTestSuite))
}
