package catalog

import "context"

type Repository interface {
	CreateBrand(ctx context.Context, b *Brand) error
	GetBrand(ctx context.Context, id uint64) (*Brand, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	SaveBrand(ctx context.Context, b *Brand) error
	DeleteBrand(ctx context.Context, id uint64) error

	CreateAssetType(ctx context.Context, t *AssetType) error
	GetAssetType(ctx context.Context, id uint64) (*AssetType, error)
	ListAssetTypes(ctx context.Context) ([]AssetType, error)
	SaveAssetType(ctx context.Context, t *AssetType) error
	DeleteAssetType(ctx context.Context, id uint64) error

	CreateAssetModel(ctx context.Context, m *AssetModel) error
	GetAssetModel(ctx context.Context, id uint64) (*AssetModel, error)
	ListAssetModels(ctx context.Context) ([]AssetModel, error)
	SaveAssetModel(ctx context.Context, m *AssetModel) error
	DeleteAssetModel(ctx context.Context, id uint64) error

	CreateStockItemModel(ctx context.Context, m *StockItemModel) error
	GetStockItemModel(ctx context.Context, id uint64) (*StockItemModel, error)
	ListStockItemModels(ctx context.Context) ([]StockItemModel, error)
	SaveStockItemModel(ctx context.Context, m *StockItemModel) error

	CreateConsumableModel(ctx context.Context, m *ConsumableModel) error
	GetConsumableModel(ctx context.Context, id uint64) (*ConsumableModel, error)
	ListConsumableModels(ctx context.Context) ([]ConsumableModel, error)
	SaveConsumableModel(ctx context.Context, m *ConsumableModel) error

	CreateRoom(ctx context.Context, r *Room) error
	GetRoom(ctx context.Context, id uint64) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	SaveRoom(ctx context.Context, r *Room) error

	CreateAttributeDefinition(ctx context.Context, d *AttributeDefinition) error
	GetAttributeDefinition(ctx context.Context, id uint64) (*AttributeDefinition, error)
	ListAttributeDefinitions(ctx context.Context, target TargetType) ([]AttributeDefinition, error)
}
