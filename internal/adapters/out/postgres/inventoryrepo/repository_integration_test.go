package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// InventoryRepositoryIntegrationTestSuite verifies item persistence, the
// append-only movement ledger and the alert timestamps against a real
// PostgreSQL instance.
type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
	tracker    *MockAggregateTracker
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&inventoryrepo.ItemDTO{}, &inventoryrepo.MovementDTO{}, &inventoryrepo.AlertDTO{},
	))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_items CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db, suite.tracker)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) createTestItem(sku string) *inventory.Item {
	item, err := inventory.NewItem(
		kernel.NewUUID(),
		sku,
		"Cardboard Box M",
		inventory.Thresholds{ReorderPoint: 10, Maximum: 100},
		nil,
	)
	suite.Require().NoError(err)
	return item
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAdd_ValidItem_Success() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")

	suite.tracker.On("TrackAggregate", item.ID(), item).Once()

	err := suite.repository.Add(ctx, item)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&inventoryrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAdd_DuplicateSKU_Fails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem("SKU-1001")))

	err := suite.repository.Add(ctx, suite.createTestItem("SKU-1001"))
	suite.Require().Error(err)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")
	suite.Require().NoError(item.AddMovement(inventory.MovementIn, 50, "initial receipt", "warehouse", "PO-1"))
	suite.Require().NoError(item.Reserve(20, "order hold", "dispatcher"))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	restored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(item.ID()))
	suite.Equal("SKU-1001", restored.SKU())
	suite.Equal("Cardboard Box M", restored.Name())
	suite.Equal(50, restored.Stock().Current)
	suite.Equal(20, restored.Stock().Reserved)
	suite.Equal(30, restored.Stock().Available())
	suite.Equal(inventory.Thresholds{ReorderPoint: 10, Maximum: 100}, restored.Thresholds())
	suite.True(restored.IsActive())
	suite.Equal(item.Version(), restored.Version())

	suite.Require().Len(restored.Movements(), 1)
	movement := restored.Movements()[0]
	suite.Equal(inventory.MovementIn, movement.Kind)
	suite.Equal(50, movement.Quantity)
	suite.Equal(50, movement.Effect)
	suite.Equal("initial receipt", movement.Reason)
	suite.Equal("warehouse", movement.Actor)
	suite.Equal("PO-1", movement.Reference)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetBySKU() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	restored, err := suite.repository.GetBySKU(ctx, "SKU-1001")
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(item.ID()))

	_, err = suite.repository.GetBySKU(ctx, "")
	suite.Require().Error(err)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_AppendsLedgerRows() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")
	suite.Require().NoError(item.AddMovement(inventory.MovementIn, 50, "initial receipt", "warehouse", ""))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(item.AddMovement(inventory.MovementOut, 15, "shipment", "warehouse", "SH-9"))
	suite.Require().NoError(suite.repository.Update(ctx, item))

	restored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(35, restored.Stock().Current)
	suite.Require().Len(restored.Movements(), 2)
	suite.Equal(inventory.MovementIn, restored.Movements()[0].Kind)
	suite.Equal(inventory.MovementOut, restored.Movements()[1].Kind)
	suite.Equal(-15, restored.Movements()[1].Effect)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_PersistsAlertTimestamps() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")
	suite.Require().NoError(item.AddMovement(inventory.MovementIn, 5, "initial receipt", "warehouse", ""))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	now := time.Now().UTC()
	alerts := item.CheckAlerts(now)
	suite.Require().Len(alerts, 1)
	suite.Equal(inventory.AlertLowStock, alerts[0].Kind)
	suite.Require().NoError(suite.repository.Update(ctx, item))

	restored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	lastAlerted, ok := restored.LastAlerted()[inventory.AlertLowStock]
	suite.Require().True(ok)
	suite.WithinDuration(now, lastAlerted, time.Second)

	// Still inside the re-alert window after the round trip.
	suite.Empty(restored.CheckAlerts(now.Add(time.Minute)))
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()
	item := suite.createTestItem("SKU-1001")
	suite.Require().NoError(item.AddMovement(inventory.MovementIn, 50, "initial receipt", "warehouse", ""))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	first, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Reserve(30, "order hold", "dispatcher"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Reserve(30, "order hold", "dispatcher"))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesDeactivatedAndSortsBySKU() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	third := suite.createTestItem("SKU-3")
	first := suite.createTestItem("SKU-1")
	retired := suite.createTestItem("SKU-2")
	retired.Deactivate()

	suite.Require().NoError(suite.repository.Add(ctx, third))
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	items, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(items, 2)
	suite.Equal("SKU-1", items[0].SKU())
	suite.Equal("SKU-3", items[1].SKU())
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
