package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordermail/internal/adapters/out/postgres/orderrepo"
	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/order"
	"ordermail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("customer@example.com", "model-1", "mat-1")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("customer@example.com", "model-1", "mat-1")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("customer@example.com", retrieved.CustomerEmail())
	suite.Equal(order.New, retrieved.Status())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(testOrder.Items()[0].ID(), retrieved.Items()[0].ID())
	suite.Equal("model-1_mat-1", retrieved.Items()[0].VariantKey().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("customer@example.com", "model-1", "mat-1")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.StartProduction())
	suite.Require().NoError(testOrder.PlaceModelFixHold())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ModelFixHold, retrieved.Status())

	// Line items are untouched by updates.
	suite.Len(retrieved.Items(), 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder("customer@example.com", "model-1", "mat-1")

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInProduction_ReturnsOnlyInProductionOrders() {
	ctx := context.Background()

	inProduction := suite.createTestOrderWithStatus(order.InProduction, "model-1", "mat-1")
	onHold := suite.createTestOrderWithStatus(order.ModelFixHold, "model-2", "mat-2")
	fresh := suite.createTestOrderWithStatus(order.New, "model-3", "mat-3")

	for _, o := range []*order.Order{inProduction, onHold, fresh} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	result, err := suite.repository.GetAllInProduction(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inProduction.ID(), result[0].ID())
	suite.Len(result[0].Items(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInProduction_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	result, err := suite.repository.GetAllInProduction(ctx)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	email, modelID, materialID string,
) *order.Order {
	return suite.createTestOrderWithStatusAndEmail(order.New, email, modelID, materialID)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatus(
	status order.Status, modelID, materialID string,
) *order.Order {
	return suite.createTestOrderWithStatusAndEmail(status, "customer@example.com", modelID, materialID)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithStatusAndEmail(
	status order.Status, email, modelID, materialID string,
) *order.Order {
	variantKey, err := kernel.NewModelMaterialID(modelID, materialID)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), variantKey)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), email, status, []order.Item{item})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
