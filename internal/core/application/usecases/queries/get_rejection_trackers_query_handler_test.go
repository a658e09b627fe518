package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermail/internal/adapters/out/postgres/trackerrepo"
	"ordermail/internal/core/application/usecases/queries"
	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/tracker"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRejectionTrackersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRejectionTrackersQueryHandler
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&trackerrepo.TrackerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRejectionTrackersQueryHandler(db)
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE rejection_email_trackers").Error
	suite.Require().NoError(err)
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) TestHandle_NoHistory_ReturnsEmptySlice() {
	query, err := queries.NewGetRejectionTrackersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) TestHandle_ReturnsOrderHistoryOrderedByModelID() {
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.saveTracker(orderID, "model-b", []string{"dev-2"}, []kernel.UUID{itemID}, "key-b")
	suite.saveTracker(orderID, "model-a", []string{"dev-1", "dev-3"}, nil, "key-a")
	suite.saveTracker(kernel.NewUUID(), "model-a", []string{"dev-x"}, nil, "key-x")

	query, err := queries.NewGetRejectionTrackersQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("model-a", result[0].ModelID)
	suite.Equal([]string{"dev-1", "dev-3"}, result[0].DeviationIDs)
	suite.Equal(1, result[0].SentCount)
	suite.Equal("key-a", result[0].RejectionKey)
	suite.Empty(result[0].OrderItemIDs)

	suite.Equal("model-b", result[1].ModelID)
	suite.Equal([]string{"dev-2"}, result[1].DeviationIDs)
	suite.Equal([]string{itemID.String()}, result[1].OrderItemIDs)
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRejectionTrackersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRejectionTrackersQuery constructor")
}

func (suite *GetRejectionTrackersQueryHandlerTestSuite) saveTracker(
	orderID kernel.UUID,
	modelID string,
	deviationIDs []string,
	itemIDs []kernel.UUID,
	rejectionKey string,
) {
	emailTracker, err := tracker.NewRejectionEmailTracker(orderID, modelID)
	suite.Require().NoError(err)
	emailTracker.RecordSent(deviationIDs, itemIDs, rejectionKey)

	repo := trackerrepo.NewGormTrackerRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.SaveOrUpdate(context.Background(), emailTracker))
}

func TestGetRejectionTrackersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRejectionTrackersQueryHandlerTestSuite))
}
