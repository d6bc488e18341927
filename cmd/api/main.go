package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpadp "assetcare-backend/internal/adapter/http"
	"assetcare-backend/internal/adapter/middleware"
	"assetcare-backend/internal/adapter/repository/postgres"
	"assetcare-backend/internal/auth"
	"assetcare-backend/internal/config"
	catalogDomain "assetcare-backend/internal/domain/catalog"
	identityDomain "assetcare-backend/internal/domain/identity"
	inventoryDomain "assetcare-backend/internal/domain/inventory"
	maintenanceDomain "assetcare-backend/internal/domain/maintenance"
	paperworkDomain "assetcare-backend/internal/domain/paperwork"
	"assetcare-backend/internal/infrastructure/cache"
	"assetcare-backend/internal/infrastructure/db"
	ucCatalog "assetcare-backend/internal/usecase/catalog"
	ucIdentity "assetcare-backend/internal/usecase/identity"
	ucInventory "assetcare-backend/internal/usecase/inventory"
	ucMaintenance "assetcare-backend/internal/usecase/maintenance"
	ucPaperwork "assetcare-backend/internal/usecase/paperwork"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("config")
	}

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("postgres")
	}
	if err := migrate(gdb); err != nil {
		logrus.WithError(err).Fatal("migrate")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Fatal("redis")
	}

	// repositories
	identityRepo := postgres.NewIdentityRepository(gdb)
	catalogRepo := postgres.NewCatalogRepository(gdb)
	inventoryRepo := postgres.NewInventoryRepository(gdb)
	maintenanceRepo := postgres.NewMaintenanceRepository(gdb)
	paperworkRepo := postgres.NewPaperworkRepository(gdb)
	unit := postgres.NewGormUoW(gdb)

	authSvc := auth.NewService(cfg.JWTSecret, time.Duration(cfg.JWTTTLSecs)*time.Second)

	// usecases
	identityUC := ucIdentity.NewUsecase(identityRepo, authSvc)
	catalogUC := ucCatalog.NewUsecase(catalogRepo)
	inventoryUC := ucInventory.NewUsecase(inventoryRepo, catalogRepo, unit)
	maintenanceUC := ucMaintenance.NewUsecase(maintenanceRepo, inventoryRepo, unit)
	paperworkUC := ucPaperwork.NewUsecase(paperworkRepo, inventoryRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Base:        httpadp.NewHandler(),
		Identity:    httpadp.NewIdentityHandler(identityUC),
		Catalog:     httpadp.NewCatalogHandler(catalogUC),
		Inventory:   httpadp.NewInventoryHandler(inventoryUC),
		Maintenance: httpadp.NewMaintenanceHandler(maintenanceUC),
		Paperwork:   httpadp.NewPaperworkHandler(paperworkUC),
	},
		middleware.Auth(authSvc, identityRepo),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSec)*time.Second),
	)

	addr := ":" + cfg.AppPort
	logrus.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&identityDomain.Person{},
		&identityDomain.UserAccount{},
		&identityDomain.Role{},
		&identityDomain.PersonRole{},
		&catalogDomain.Brand{},
		&catalogDomain.AssetType{},
		&catalogDomain.AssetModel{},
		&catalogDomain.StockItemModel{},
		&catalogDomain.ConsumableModel{},
		&catalogDomain.Room{},
		&catalogDomain.AttributeDefinition{},
		&inventoryDomain.Asset{},
		&inventoryDomain.StockItem{},
		&inventoryDomain.Consumable{},
		&inventoryDomain.Assignment{},
		&inventoryDomain.Movement{},
		&inventoryDomain.ProblemReport{},
		&inventoryDomain.ConditionHistory{},
		&inventoryDomain.AssetAttributeValue{},
		&inventoryDomain.StockItemAttributeValue{},
		&inventoryDomain.ConsumableAttributeValue{},
		&maintenanceDomain.Maintenance{},
		&maintenanceDomain.MaintenanceTypicalStep{},
		&maintenanceDomain.MaintenanceStep{},
		&maintenanceDomain.MaintenanceStepAttributeChange{},
		&maintenanceDomain.MaintenanceStepItemRequest{},
		&paperworkDomain.AttributionOrder{},
		&paperworkDomain.ReceiptReport{},
		&paperworkDomain.Certificate{},
		&paperworkDomain.CompanyAssetRequest{},
	)
}
