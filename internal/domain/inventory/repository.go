package inventory

import (
	"context"

	"assetcare-backend/internal/domain/catalog"
)

type Repository interface {
	CreateAsset(ctx context.Context, a *Asset) error
	GetAsset(ctx context.Context, id uint64) (*Asset, error)
	ListAssets(ctx context.Context) ([]Asset, error)
	SaveAsset(ctx context.Context, a *Asset) error

	CreateStockItem(ctx context.Context, s *StockItem) error
	GetStockItem(ctx context.Context, id uint64) (*StockItem, error)
	ListStockItems(ctx context.Context) ([]StockItem, error)
	SaveStockItem(ctx context.Context, s *StockItem) error

	CreateConsumable(ctx context.Context, c *Consumable) error
	GetConsumable(ctx context.Context, id uint64) (*Consumable, error)
	ListConsumables(ctx context.Context) ([]Consumable, error)
	SaveConsumable(ctx context.Context, c *Consumable) error

	CreateAssignment(ctx context.Context, a *Assignment) error
	GetAssignment(ctx context.Context, id uint64) (*Assignment, error)
	GetActiveAssignment(ctx context.Context, target catalog.TargetType, targetID uint64) (*Assignment, error)
	ListAssignmentsByPerson(ctx context.Context, personID uint64, activeOnly bool) ([]Assignment, error)
	SaveAssignment(ctx context.Context, a *Assignment) error

	CreateMovement(ctx context.Context, m *Movement) error
	ListMovementsByTarget(ctx context.Context, target catalog.TargetType, targetID uint64) ([]Movement, error)

	CreateProblemReport(ctx context.Context, p *ProblemReport) error
	GetProblemReport(ctx context.Context, id uint64) (*ProblemReport, error)
	ListProblemReports(ctx context.Context, unresolvedOnly bool) ([]ProblemReport, error)
	SaveProblemReport(ctx context.Context, p *ProblemReport) error

	CreateConditionHistory(ctx context.Context, h *ConditionHistory) error
	ListConditionHistory(ctx context.Context, target catalog.TargetType, targetID uint64) ([]ConditionHistory, error)

	// UpsertAttributeValue writes v into the per-type attribute value table
	// keyed by (targetID, defID), inserting or updating as needed.
	UpsertAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64, v catalog.AttrValue) error
	GetAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64) (catalog.AttrValue, error)
	ListAttributeValues(ctx context.Context, target catalog.TargetType, targetID uint64) (map[uint64]catalog.AttrValue, error)
}
