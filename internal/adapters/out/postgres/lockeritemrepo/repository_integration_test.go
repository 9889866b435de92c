package lockeritemrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres/lockeritemrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
	"parcelhub/internal/pkg/errs"

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

// LockerItemRepositoryIntegrationTestSuite provides integration tests for
// LockerItemRepository using PostgreSQL containers.
type LockerItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *lockeritemrepo.GormLockerItemRepository
	tracker    *MockAggregateTracker
}

func (suite *LockerItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&lockeritemrepo.LockerItemDTO{}))
}

func (suite *LockerItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE locker_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = lockeritemrepo.NewGormLockerItemRepository(suite.db, suite.tracker)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestAdd_ValidItem_Success() {
	ctx := context.Background()
	item := suite.createTestItem("XG15STV", "sneakers", 1.8)

	suite.tracker.On("TrackAggregate", item.ID(), item).Once()

	suite.Require().NoError(suite.repository.Add(ctx, item))

	var count int64
	suite.Require().NoError(suite.db.Model(&lockeritemrepo.LockerItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestGet_ExistingItem_RoundTrips() {
	ctx := context.Background()
	item := suite.createTestItem("XG15STV", "charger", 0.4)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	loaded, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(item))
	suite.Equal("XG15STV", loaded.LockerCode())
	suite.Equal("charger", loaded.Description())
	suite.InDelta(0.4, loaded.Weight().Kg(), 0.0001)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestGetPendingByLocker_ReturnsArrivalOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	descriptions := []string{"first", "second", "third"}
	for _, d := range descriptions {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("XG15STV", d, 1)))
	}
	// item in another locker must not leak in
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("ZZ99AAA", "other", 1)))

	items, err := suite.repository.GetPendingByLocker(ctx, "XG15STV")
	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	for i, item := range items {
		suite.Equal(descriptions[i], item.Description())
	}
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestGetPendingByLocker_UnknownLocker_ReturnsEmpty() {
	items, err := suite.repository.GetPendingByLocker(context.Background(), "NOPE")
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestRemoveItems_DeletesOnlyGivenItems() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	kept := suite.createTestItem("XG15STV", "kept", 1)
	removed := suite.createTestItem("XG15STV", "removed", 1)
	suite.Require().NoError(suite.repository.Add(ctx, kept))
	suite.Require().NoError(suite.repository.Add(ctx, removed))

	err := suite.repository.RemoveItems(ctx, []kernel.UUID{removed.ID()})
	suite.Require().NoError(err)

	items, err := suite.repository.GetPendingByLocker(ctx, "XG15STV")
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("kept", items[0].Description())
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestRemoveItems_AbsentIDs_NoError() {
	err := suite.repository.RemoveItems(context.Background(), []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) TestRemoveItems_EmptySlice_NoOp() {
	err := suite.repository.RemoveItems(context.Background(), nil)
	suite.Require().NoError(err)
}

func (suite *LockerItemRepositoryIntegrationTestSuite) createTestItem(
	lockerCode, description string,
	kg float64,
) *locker.Item {
	weight, err := kernel.NewWeight(kg)
	suite.Require().NoError(err)
	item, err := locker.NewItem(kernel.NewUUID(), lockerCode, description, weight)
	suite.Require().NoError(err)
	return item
}

func TestLockerItemRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(LockerItemRepositoryIntegrationTestSuite))
}
