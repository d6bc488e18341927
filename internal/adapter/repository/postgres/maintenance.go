package postgres

import (
	"context"

	domain "assetcare-backend/internal/domain/maintenance"

	"gorm.io/gorm"
)

type MaintenanceRepository struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

var _ domain.Repository = (*MaintenanceRepository)(nil)

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaintenanceRepository) GetMaintenance(ctx context.Context, id uint64) (*domain.Maintenance, error) {
	var out domain.Maintenance
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) ListMaintenances(ctx context.Context, assetID uint64) ([]domain.Maintenance, error) {
	var out []domain.Maintenance
	q := r.db.WithContext(ctx).Order("id")
	if assetID != 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	return out, q.Find(&out).Error
}

func (r *MaintenanceRepository) SaveMaintenance(ctx context.Context, m *domain.Maintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaintenanceRepository) CreateStep(ctx context.Context, s *domain.MaintenanceStep) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *MaintenanceRepository) GetStep(ctx context.Context, id uint64) (*domain.MaintenanceStep, error) {
	var out domain.MaintenanceStep
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) GetStepForUpdate(ctx context.Context, id uint64) (*domain.MaintenanceStep, error) {
	var out domain.MaintenanceStep
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) ListStepsByMaintenance(ctx context.Context, maintenanceID uint64) ([]domain.MaintenanceStep, error) {
	var out []domain.MaintenanceStep
	res := r.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).
		Order("ordinal, id").
		Find(&out)
	return out, res.Error
}

func (r *MaintenanceRepository) SaveStep(ctx context.Context, s *domain.MaintenanceStep) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *MaintenanceRepository) CreateTypicalStep(ctx context.Context, t *domain.MaintenanceTypicalStep) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *MaintenanceRepository) GetTypicalStep(ctx context.Context, id uint64) (*domain.MaintenanceTypicalStep, error) {
	var out domain.MaintenanceTypicalStep
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) ListTypicalSteps(ctx context.Context) ([]domain.MaintenanceTypicalStep, error) {
	var out []domain.MaintenanceTypicalStep
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *MaintenanceRepository) CreateAttributeChange(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *MaintenanceRepository) ListAttributeChangesByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error) {
	var out []domain.MaintenanceStepAttributeChange
	res := r.db.WithContext(ctx).
		Where("step_id = ?", stepID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *MaintenanceRepository) ListUnappliedChangesByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error) {
	var out []domain.MaintenanceStepAttributeChange
	res := r.db.WithContext(ctx).
		Where("step_id = ? AND applied_at IS NULL", stepID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *MaintenanceRepository) SaveAttributeChange(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *MaintenanceRepository) CreateItemRequest(ctx context.Context, req *domain.MaintenanceStepItemRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *MaintenanceRepository) GetItemRequest(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error) {
	var out domain.MaintenanceStepItemRequest
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) GetItemRequestForUpdate(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error) {
	var out domain.MaintenanceStepItemRequest
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *MaintenanceRepository) ListItemRequestsByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepItemRequest, error) {
	var out []domain.MaintenanceStepItemRequest
	res := r.db.WithContext(ctx).
		Where("step_id = ?", stepID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *MaintenanceRepository) SaveItemRequest(ctx context.Context, req *domain.MaintenanceStepItemRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
