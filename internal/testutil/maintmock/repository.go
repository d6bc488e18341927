package maintmock

import (
	"context"

	domain "assetcare-backend/internal/domain/maintenance"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies maintenance.Repository.
// Fill in the function fields a test needs; unfilled getters return
// context.Canceled so misuse is loud.
type Repo struct {
	CreateMaintenanceFn func(ctx context.Context, m *domain.Maintenance) error
	GetMaintenanceFn    func(ctx context.Context, id uint64) (*domain.Maintenance, error)
	ListMaintenancesFn  func(ctx context.Context, assetID uint64) ([]domain.Maintenance, error)
	SaveMaintenanceFn   func(ctx context.Context, m *domain.Maintenance) error

	CreateStepFn             func(ctx context.Context, s *domain.MaintenanceStep) error
	GetStepFn                func(ctx context.Context, id uint64) (*domain.MaintenanceStep, error)
	GetStepForUpdateFn       func(ctx context.Context, id uint64) (*domain.MaintenanceStep, error)
	ListStepsByMaintenanceFn func(ctx context.Context, maintenanceID uint64) ([]domain.MaintenanceStep, error)
	SaveStepFn               func(ctx context.Context, s *domain.MaintenanceStep) error

	CreateTypicalStepFn func(ctx context.Context, t *domain.MaintenanceTypicalStep) error
	GetTypicalStepFn    func(ctx context.Context, id uint64) (*domain.MaintenanceTypicalStep, error)
	ListTypicalStepsFn  func(ctx context.Context) ([]domain.MaintenanceTypicalStep, error)

	CreateAttributeChangeFn      func(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error
	ListAttributeChangesByStepFn func(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error)
	ListUnappliedChangesByStepFn func(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error)
	SaveAttributeChangeFn        func(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error

	CreateItemRequestFn       func(ctx context.Context, r *domain.MaintenanceStepItemRequest) error
	GetItemRequestFn          func(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error)
	GetItemRequestForUpdateFn func(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error)
	ListItemRequestsByStepFn  func(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepItemRequest, error)
	SaveItemRequestFn         func(ctx context.Context, r *domain.MaintenanceStepItemRequest) error
}

func (m *Repo) CreateMaintenance(ctx context.Context, mt *domain.Maintenance) error {
	if m.CreateMaintenanceFn != nil {
		return m.CreateMaintenanceFn(ctx, mt)
	}
	return nil
}

func (m *Repo) GetMaintenance(ctx context.Context, id uint64) (*domain.Maintenance, error) {
	if m.GetMaintenanceFn != nil {
		return m.GetMaintenanceFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListMaintenances(ctx context.Context, assetID uint64) ([]domain.Maintenance, error) {
	if m.ListMaintenancesFn != nil {
		return m.ListMaintenancesFn(ctx, assetID)
	}
	return nil, nil
}

func (m *Repo) SaveMaintenance(ctx context.Context, mt *domain.Maintenance) error {
	if m.SaveMaintenanceFn != nil {
		return m.SaveMaintenanceFn(ctx, mt)
	}
	return nil
}

func (m *Repo) CreateStep(ctx context.Context, s *domain.MaintenanceStep) error {
	if m.CreateStepFn != nil {
		return m.CreateStepFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetStep(ctx context.Context, id uint64) (*domain.MaintenanceStep, error) {
	if m.GetStepFn != nil {
		return m.GetStepFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetStepForUpdate(ctx context.Context, id uint64) (*domain.MaintenanceStep, error) {
	if m.GetStepForUpdateFn != nil {
		return m.GetStepForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListStepsByMaintenance(ctx context.Context, maintenanceID uint64) ([]domain.MaintenanceStep, error) {
	if m.ListStepsByMaintenanceFn != nil {
		return m.ListStepsByMaintenanceFn(ctx, maintenanceID)
	}
	return nil, nil
}

func (m *Repo) SaveStep(ctx context.Context, s *domain.MaintenanceStep) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return nil
}

func (m *Repo) CreateTypicalStep(ctx context.Context, t *domain.MaintenanceTypicalStep) error {
	if m.CreateTypicalStepFn != nil {
		return m.CreateTypicalStepFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetTypicalStep(ctx context.Context, id uint64) (*domain.MaintenanceTypicalStep, error) {
	if m.GetTypicalStepFn != nil {
		return m.GetTypicalStepFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListTypicalSteps(ctx context.Context) ([]domain.MaintenanceTypicalStep, error) {
	if m.ListTypicalStepsFn != nil {
		return m.ListTypicalStepsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CreateAttributeChange(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error {
	if m.CreateAttributeChangeFn != nil {
		return m.CreateAttributeChangeFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListAttributeChangesByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error) {
	if m.ListAttributeChangesByStepFn != nil {
		return m.ListAttributeChangesByStepFn(ctx, stepID)
	}
	return nil, nil
}

func (m *Repo) ListUnappliedChangesByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error) {
	if m.ListUnappliedChangesByStepFn != nil {
		return m.ListUnappliedChangesByStepFn(ctx, stepID)
	}
	return nil, nil
}

func (m *Repo) SaveAttributeChange(ctx context.Context, c *domain.MaintenanceStepAttributeChange) error {
	if m.SaveAttributeChangeFn != nil {
		return m.SaveAttributeChangeFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateItemRequest(ctx context.Context, r *domain.MaintenanceStepItemRequest) error {
	if m.CreateItemRequestFn != nil {
		return m.CreateItemRequestFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetItemRequest(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error) {
	if m.GetItemRequestFn != nil {
		return m.GetItemRequestFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetItemRequestForUpdate(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error) {
	if m.GetItemRequestForUpdateFn != nil {
		return m.GetItemRequestForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListItemRequestsByStep(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepItemRequest, error) {
	if m.ListItemRequestsByStepFn != nil {
		return m.ListItemRequestsByStepFn(ctx, stepID)
	}
	return nil, nil
}

func (m *Repo) SaveItemRequest(ctx context.Context, r *domain.MaintenanceStepItemRequest) error {
	if m.SaveItemRequestFn != nil {
		return m.SaveItemRequestFn(ctx, r)
	}
	return nil
}
