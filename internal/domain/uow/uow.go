package uow

import (
	"context"

	"assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/inventory"
	"assetcare-backend/internal/domain/maintenance"
)

// Repos bundles the repositories that participate in maintenance
// transactions, all bound to the same underlying tx.
type Repos struct {
	Maintenance maintenance.Repository
	Inventory   inventory.Repository
	Catalog     catalog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the step row first, then pass it in
	WithinStepTx(ctx context.Context, stepID uint64, fn func(r Repos, s *maintenance.MaintenanceStep) error) error
}
