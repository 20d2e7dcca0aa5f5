package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStockLevelsQueryHandlerTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	handler       queries.GetStockLevelsQueryHandler
	inventoryRepo *inventoryrepo.GormInventoryRepository
}

func (suite *GetStockLevelsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&inventoryrepo.ItemDTO{}, &inventoryrepo.MovementDTO{}, &inventoryrepo.AlertDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStockLevelsQueryHandler(db)
	suite.inventoryRepo = inventoryrepo.NewGormInventoryRepository(db, &mockAggregateTracker{})
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStockLevelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE inventory_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetStockLevelsQueryHandlerTestSuite) createItem(sku string, stocked, reserved int) *inventory.Item {
	item, err := inventory.NewItem(
		kernel.NewUUID(), sku, "Test item "+sku,
		inventory.Thresholds{ReorderPoint: 10, Maximum: 100},
		nil,
	)
	suite.Require().NoError(err)
	if stocked > 0 {
		err = item.AddMovement(inventory.MovementIn, stocked, "opening stock", "warehouse", "")
		suite.Require().NoError(err)
	}
	if reserved > 0 {
		err = item.Reserve(reserved, "pending order", "order-service")
		suite.Require().NoError(err)
	}
	return item
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetStockLevelsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TestHandle_ReturnsStockFigures() {
	item := suite.createItem("SKU-2001", 50, 20)
	err := suite.inventoryRepo.Add(context.Background(), item)
	suite.Require().NoError(err)

	query := queries.NewGetStockLevelsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ItemID.IsEqual(item.ID()))
	suite.Equal("SKU-2001", result[0].SKU)
	suite.Equal(50, result[0].Current)
	suite.Equal(20, result[0].Reserved)
	suite.Equal(30, result[0].Available)
	suite.Equal("active", result[0].Status)
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TestHandle_SortedBySKU() {
	for _, sku := range []string{"SKU-3003", "SKU-3001", "SKU-3002"} {
		item := suite.createItem(sku, 25, 0)
		err := suite.inventoryRepo.Add(context.Background(), item)
		suite.Require().NoError(err)
	}

	query := queries.NewGetStockLevelsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("SKU-3001", result[0].SKU)
	suite.Equal("SKU-3002", result[1].SKU)
	suite.Equal("SKU-3003", result[2].SKU)
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TestHandle_ExcludesDeactivatedItems() {
	active := suite.createItem("SKU-4001", 25, 0)
	err := suite.inventoryRepo.Add(context.Background(), active)
	suite.Require().NoError(err)

	retired := suite.createItem("SKU-4002", 25, 0)
	retired.Deactivate()
	err = suite.inventoryRepo.Add(context.Background(), retired)
	suite.Require().NoError(err)

	query := queries.NewGetStockLevelsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("SKU-4001", result[0].SKU)
}

func (suite *GetStockLevelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStockLevelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStockLevelsQuery constructor")
}

func TestGetStockLevelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStockLevelsQueryHandlerTestSuite))
}
