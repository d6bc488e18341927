package catmock

import (
	"context"

	domain "assetcare-backend/internal/domain/catalog"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies catalog.Repository. Only
// the lookups the workflows exercise carry function fields; the plain CRUD
// methods are no-ops that return zero values.
type Repo struct {
	GetBrandFn                 func(ctx context.Context, id uint64) (*domain.Brand, error)
	GetRoomFn                  func(ctx context.Context, id uint64) (*domain.Room, error)
	GetAssetModelFn            func(ctx context.Context, id uint64) (*domain.AssetModel, error)
	GetAttributeDefinitionFn   func(ctx context.Context, id uint64) (*domain.AttributeDefinition, error)
	ListAttributeDefinitionsFn func(ctx context.Context, target domain.TargetType) ([]domain.AttributeDefinition, error)
}

func (m *Repo) CreateBrand(ctx context.Context, b *domain.Brand) error { return nil }
func (m *Repo) GetBrand(ctx context.Context, id uint64) (*domain.Brand, error) {
	if m.GetBrandFn != nil {
		return m.GetBrandFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListBrands(ctx context.Context) ([]domain.Brand, error) { return nil, nil }
func (m *Repo) SaveBrand(ctx context.Context, b *domain.Brand) error   { return nil }
func (m *Repo) DeleteBrand(ctx context.Context, id uint64) error       { return nil }

func (m *Repo) CreateAssetType(ctx context.Context, t *domain.AssetType) error { return nil }
func (m *Repo) GetAssetType(ctx context.Context, id uint64) (*domain.AssetType, error) {
	return nil, context.Canceled
}
func (m *Repo) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) { return nil, nil }
func (m *Repo) SaveAssetType(ctx context.Context, t *domain.AssetType) error   { return nil }
func (m *Repo) DeleteAssetType(ctx context.Context, id uint64) error           { return nil }

func (m *Repo) CreateAssetModel(ctx context.Context, am *domain.AssetModel) error { return nil }
func (m *Repo) GetAssetModel(ctx context.Context, id uint64) (*domain.AssetModel, error) {
	if m.GetAssetModelFn != nil {
		return m.GetAssetModelFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAssetModels(ctx context.Context) ([]domain.AssetModel, error) { return nil, nil }
func (m *Repo) SaveAssetModel(ctx context.Context, am *domain.AssetModel) error  { return nil }
func (m *Repo) DeleteAssetModel(ctx context.Context, id uint64) error            { return nil }

func (m *Repo) CreateStockItemModel(ctx context.Context, sm *domain.StockItemModel) error {
	return nil
}
func (m *Repo) GetStockItemModel(ctx context.Context, id uint64) (*domain.StockItemModel, error) {
	return nil, context.Canceled
}
func (m *Repo) ListStockItemModels(ctx context.Context) ([]domain.StockItemModel, error) {
	return nil, nil
}
func (m *Repo) SaveStockItemModel(ctx context.Context, sm *domain.StockItemModel) error { return nil }

func (m *Repo) CreateConsumableModel(ctx context.Context, cm *domain.ConsumableModel) error {
	return nil
}
func (m *Repo) GetConsumableModel(ctx context.Context, id uint64) (*domain.ConsumableModel, error) {
	return nil, context.Canceled
}
func (m *Repo) ListConsumableModels(ctx context.Context) ([]domain.ConsumableModel, error) {
	return nil, nil
}
func (m *Repo) SaveConsumableModel(ctx context.Context, cm *domain.ConsumableModel) error {
	return nil
}

func (m *Repo) CreateRoom(ctx context.Context, r *domain.Room) error { return nil }
func (m *Repo) GetRoom(ctx context.Context, id uint64) (*domain.Room, error) {
	if m.GetRoomFn != nil {
		return m.GetRoomFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) { return nil, nil }
func (m *Repo) SaveRoom(ctx context.Context, r *domain.Room) error   { return nil }

func (m *Repo) CreateAttributeDefinition(ctx context.Context, d *domain.AttributeDefinition) error {
	return nil
}
func (m *Repo) GetAttributeDefinition(ctx context.Context, id uint64) (*domain.AttributeDefinition, error) {
	if m.GetAttributeDefinitionFn != nil {
		return m.GetAttributeDefinitionFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAttributeDefinitions(ctx context.Context, target domain.TargetType) ([]domain.AttributeDefinition, error) {
	if m.ListAttributeDefinitionsFn != nil {
		return m.ListAttributeDefinitionsFn(ctx, target)
	}
	return nil, nil
}
