package postgres

import (
	"context"

	"assetcare-backend/internal/domain/maintenance"
	"assetcare-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

var _ uow.UnitOfWork = (*GormUoW)(nil)

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Maintenance: &MaintenanceRepository{db: tx},
			Inventory:   &InventoryRepository{db: tx},
			Catalog:     &CatalogRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinStepTx(ctx context.Context, stepID uint64, fn func(r uow.Repos, s *maintenance.MaintenanceStep) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Maintenance: &MaintenanceRepository{db: tx},
			Inventory:   &InventoryRepository{db: tx},
			Catalog:     &CatalogRepository{db: tx},
		}
		// lock the step row up-front to prevent races
		s, err := r.Maintenance.GetStepForUpdate(ctx, stepID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
