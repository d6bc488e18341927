package invmock

import (
	"context"

	"assetcare-backend/internal/domain/catalog"
	domain "assetcare-backend/internal/domain/inventory"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies inventory.Repository.
type Repo struct {
	CreateAssetFn func(ctx context.Context, a *domain.Asset) error
	GetAssetFn    func(ctx context.Context, id uint64) (*domain.Asset, error)
	ListAssetsFn  func(ctx context.Context) ([]domain.Asset, error)
	SaveAssetFn   func(ctx context.Context, a *domain.Asset) error

	CreateStockItemFn func(ctx context.Context, s *domain.StockItem) error
	GetStockItemFn    func(ctx context.Context, id uint64) (*domain.StockItem, error)
	ListStockItemsFn  func(ctx context.Context) ([]domain.StockItem, error)
	SaveStockItemFn   func(ctx context.Context, s *domain.StockItem) error

	CreateConsumableFn func(ctx context.Context, c *domain.Consumable) error
	GetConsumableFn    func(ctx context.Context, id uint64) (*domain.Consumable, error)
	ListConsumablesFn  func(ctx context.Context) ([]domain.Consumable, error)
	SaveConsumableFn   func(ctx context.Context, c *domain.Consumable) error

	CreateAssignmentFn        func(ctx context.Context, a *domain.Assignment) error
	GetAssignmentFn           func(ctx context.Context, id uint64) (*domain.Assignment, error)
	GetActiveAssignmentFn     func(ctx context.Context, target catalog.TargetType, targetID uint64) (*domain.Assignment, error)
	ListAssignmentsByPersonFn func(ctx context.Context, personID uint64, activeOnly bool) ([]domain.Assignment, error)
	SaveAssignmentFn          func(ctx context.Context, a *domain.Assignment) error

	CreateMovementFn        func(ctx context.Context, m *domain.Movement) error
	ListMovementsByTargetFn func(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.Movement, error)

	CreateProblemReportFn func(ctx context.Context, p *domain.ProblemReport) error
	GetProblemReportFn    func(ctx context.Context, id uint64) (*domain.ProblemReport, error)
	ListProblemReportsFn  func(ctx context.Context, unresolvedOnly bool) ([]domain.ProblemReport, error)
	SaveProblemReportFn   func(ctx context.Context, p *domain.ProblemReport) error

	CreateConditionHistoryFn func(ctx context.Context, h *domain.ConditionHistory) error
	ListConditionHistoryFn   func(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.ConditionHistory, error)

	UpsertAttributeValueFn func(ctx context.Context, target catalog.TargetType, targetID, defID uint64, v catalog.AttrValue) error
	GetAttributeValueFn    func(ctx context.Context, target catalog.TargetType, targetID, defID uint64) (catalog.AttrValue, error)
	ListAttributeValuesFn  func(ctx context.Context, target catalog.TargetType, targetID uint64) (map[uint64]catalog.AttrValue, error)
}

func (m *Repo) CreateAsset(ctx context.Context, a *domain.Asset) error {
	if m.CreateAssetFn != nil {
		return m.CreateAssetFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetAsset(ctx context.Context, id uint64) (*domain.Asset, error) {
	if m.GetAssetFn != nil {
		return m.GetAssetFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	if m.ListAssetsFn != nil {
		return m.ListAssetsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SaveAsset(ctx context.Context, a *domain.Asset) error {
	if m.SaveAssetFn != nil {
		return m.SaveAssetFn(ctx, a)
	}
	return nil
}

func (m *Repo) CreateStockItem(ctx context.Context, s *domain.StockItem) error {
	if m.CreateStockItemFn != nil {
		return m.CreateStockItemFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetStockItem(ctx context.Context, id uint64) (*domain.StockItem, error) {
	if m.GetStockItemFn != nil {
		return m.GetStockItemFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	if m.ListStockItemsFn != nil {
		return m.ListStockItemsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SaveStockItem(ctx context.Context, s *domain.StockItem) error {
	if m.SaveStockItemFn != nil {
		return m.SaveStockItemFn(ctx, s)
	}
	return nil
}

func (m *Repo) CreateConsumable(ctx context.Context, c *domain.Consumable) error {
	if m.CreateConsumableFn != nil {
		return m.CreateConsumableFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetConsumable(ctx context.Context, id uint64) (*domain.Consumable, error) {
	if m.GetConsumableFn != nil {
		return m.GetConsumableFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListConsumables(ctx context.Context) ([]domain.Consumable, error) {
	if m.ListConsumablesFn != nil {
		return m.ListConsumablesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SaveConsumable(ctx context.Context, c *domain.Consumable) error {
	if m.SaveConsumableFn != nil {
		return m.SaveConsumableFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateAssignment(ctx context.Context, a *domain.Assignment) error {
	if m.CreateAssignmentFn != nil {
		return m.CreateAssignmentFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetAssignment(ctx context.Context, id uint64) (*domain.Assignment, error) {
	if m.GetAssignmentFn != nil {
		return m.GetAssignmentFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveAssignment(ctx context.Context, target catalog.TargetType, targetID uint64) (*domain.Assignment, error) {
	if m.GetActiveAssignmentFn != nil {
		return m.GetActiveAssignmentFn(ctx, target, targetID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAssignmentsByPerson(ctx context.Context, personID uint64, activeOnly bool) ([]domain.Assignment, error) {
	if m.ListAssignmentsByPersonFn != nil {
		return m.ListAssignmentsByPersonFn(ctx, personID, activeOnly)
	}
	return nil, nil
}

func (m *Repo) SaveAssignment(ctx context.Context, a *domain.Assignment) error {
	if m.SaveAssignmentFn != nil {
		return m.SaveAssignmentFn(ctx, a)
	}
	return nil
}

func (m *Repo) CreateMovement(ctx context.Context, mv *domain.Movement) error {
	if m.CreateMovementFn != nil {
		return m.CreateMovementFn(ctx, mv)
	}
	return nil
}

func (m *Repo) ListMovementsByTarget(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.Movement, error) {
	if m.ListMovementsByTargetFn != nil {
		return m.ListMovementsByTargetFn(ctx, target, targetID)
	}
	return nil, nil
}

func (m *Repo) CreateProblemReport(ctx context.Context, p *domain.ProblemReport) error {
	if m.CreateProblemReportFn != nil {
		return m.CreateProblemReportFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetProblemReport(ctx context.Context, id uint64) (*domain.ProblemReport, error) {
	if m.GetProblemReportFn != nil {
		return m.GetProblemReportFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListProblemReports(ctx context.Context, unresolvedOnly bool) ([]domain.ProblemReport, error) {
	if m.ListProblemReportsFn != nil {
		return m.ListProblemReportsFn(ctx, unresolvedOnly)
	}
	return nil, nil
}

func (m *Repo) SaveProblemReport(ctx context.Context, p *domain.ProblemReport) error {
	if m.SaveProblemReportFn != nil {
		return m.SaveProblemReportFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateConditionHistory(ctx context.Context, h *domain.ConditionHistory) error {
	if m.CreateConditionHistoryFn != nil {
		return m.CreateConditionHistoryFn(ctx, h)
	}
	return nil
}

func (m *Repo) ListConditionHistory(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.ConditionHistory, error) {
	if m.ListConditionHistoryFn != nil {
		return m.ListConditionHistoryFn(ctx, target, targetID)
	}
	return nil, nil
}

func (m *Repo) UpsertAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64, v catalog.AttrValue) error {
	if m.UpsertAttributeValueFn != nil {
		return m.UpsertAttributeValueFn(ctx, target, targetID, defID, v)
	}
	return nil
}

func (m *Repo) GetAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64) (catalog.AttrValue, error) {
	if m.GetAttributeValueFn != nil {
		return m.GetAttributeValueFn(ctx, target, targetID, defID)
	}
	return catalog.AttrValue{}, context.Canceled
}

func (m *Repo) ListAttributeValues(ctx context.Context, target catalog.TargetType, targetID uint64) (map[uint64]catalog.AttrValue, error) {
	if m.ListAttributeValuesFn != nil {
		return m.ListAttributeValuesFn(ctx, target, targetID)
	}
	return nil, nil
}
