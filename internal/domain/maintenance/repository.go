package maintenance

import "context"

type Repository interface {
	CreateMaintenance(ctx context.Context, m *Maintenance) error
	GetMaintenance(ctx context.Context, id uint64) (*Maintenance, error)
	ListMaintenances(ctx context.Context, assetID uint64) ([]Maintenance, error)
	SaveMaintenance(ctx context.Context, m *Maintenance) error

	CreateStep(ctx context.Context, s *MaintenanceStep) error
	GetStep(ctx context.Context, id uint64) (*MaintenanceStep, error)
	// GetStepForUpdate locks the step row for the rest of the transaction.
	GetStepForUpdate(ctx context.Context, id uint64) (*MaintenanceStep, error)
	ListStepsByMaintenance(ctx context.Context, maintenanceID uint64) ([]MaintenanceStep, error)
	SaveStep(ctx context.Context, s *MaintenanceStep) error

	CreateTypicalStep(ctx context.Context, t *MaintenanceTypicalStep) error
	GetTypicalStep(ctx context.Context, id uint64) (*MaintenanceTypicalStep, error)
	ListTypicalSteps(ctx context.Context) ([]MaintenanceTypicalStep, error)

	CreateAttributeChange(ctx context.Context, c *MaintenanceStepAttributeChange) error
	// ListAttributeChangesByStep returns changes in creation order.
	ListAttributeChangesByStep(ctx context.Context, stepID uint64) ([]MaintenanceStepAttributeChange, error)
	// ListUnappliedChangesByStep returns only applied_at IS NULL rows, in creation order.
	ListUnappliedChangesByStep(ctx context.Context, stepID uint64) ([]MaintenanceStepAttributeChange, error)
	SaveAttributeChange(ctx context.Context, c *MaintenanceStepAttributeChange) error

	CreateItemRequest(ctx context.Context, r *MaintenanceStepItemRequest) error
	GetItemRequest(ctx context.Context, id uint64) (*MaintenanceStepItemRequest, error)
	// GetItemRequestForUpdate locks the request row for the transaction.
	GetItemRequestForUpdate(ctx context.Context, id uint64) (*MaintenanceStepItemRequest, error)
	ListItemRequestsByStep(ctx context.Context, stepID uint64) ([]MaintenanceStepItemRequest, error)
	SaveItemRequest(ctx context.Context, r *MaintenanceStepItemRequest) error
}
