package postgres

import (
	"context"

	domain "assetcare-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ domain.Repository = (*CatalogRepository)(nil)

func (r *CatalogRepository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *CatalogRepository) GetBrand(ctx context.Context, id uint64) (*domain.Brand, error) {
	var out domain.Brand
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var out []domain.Brand
	return out, r.db.WithContext(ctx).Order("name").Find(&out).Error
}

func (r *CatalogRepository) SaveBrand(ctx context.Context, b *domain.Brand) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *CatalogRepository) DeleteBrand(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Brand{}, id)
	if res.Error == nil && res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return res.Error
}

func (r *CatalogRepository) CreateAssetType(ctx context.Context, t *domain.AssetType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *CatalogRepository) GetAssetType(ctx context.Context, id uint64) (*domain.AssetType, error) {
	var out domain.AssetType
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	var out []domain.AssetType
	return out, r.db.WithContext(ctx).Order("name").Find(&out).Error
}

func (r *CatalogRepository) SaveAssetType(ctx context.Context, t *domain.AssetType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *CatalogRepository) DeleteAssetType(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.AssetType{}, id)
	if res.Error == nil && res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return res.Error
}

func (r *CatalogRepository) CreateAssetModel(ctx context.Context, m *domain.AssetModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CatalogRepository) GetAssetModel(ctx context.Context, id uint64) (*domain.AssetModel, error) {
	var out domain.AssetModel
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListAssetModels(ctx context.Context) ([]domain.AssetModel, error) {
	var out []domain.AssetModel
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *CatalogRepository) SaveAssetModel(ctx context.Context, m *domain.AssetModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CatalogRepository) DeleteAssetModel(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.AssetModel{}, id)
	if res.Error == nil && res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return res.Error
}

func (r *CatalogRepository) CreateStockItemModel(ctx context.Context, m *domain.StockItemModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CatalogRepository) GetStockItemModel(ctx context.Context, id uint64) (*domain.StockItemModel, error) {
	var out domain.StockItemModel
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListStockItemModels(ctx context.Context) ([]domain.StockItemModel, error) {
	var out []domain.StockItemModel
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *CatalogRepository) SaveStockItemModel(ctx context.Context, m *domain.StockItemModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CatalogRepository) CreateConsumableModel(ctx context.Context, m *domain.ConsumableModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CatalogRepository) GetConsumableModel(ctx context.Context, id uint64) (*domain.ConsumableModel, error) {
	var out domain.ConsumableModel
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListConsumableModels(ctx context.Context) ([]domain.ConsumableModel, error) {
	var out []domain.ConsumableModel
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *CatalogRepository) SaveConsumableModel(ctx context.Context, m *domain.ConsumableModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CatalogRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *CatalogRepository) GetRoom(ctx context.Context, id uint64) (*domain.Room, error) {
	var out domain.Room
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *CatalogRepository) SaveRoom(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *CatalogRepository) CreateAttributeDefinition(ctx context.Context, d *domain.AttributeDefinition) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *CatalogRepository) GetAttributeDefinition(ctx context.Context, id uint64) (*domain.AttributeDefinition, error) {
	var out domain.AttributeDefinition
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *CatalogRepository) ListAttributeDefinitions(ctx context.Context, target domain.TargetType) ([]domain.AttributeDefinition, error) {
	var out []domain.AttributeDefinition
	q := r.db.WithContext(ctx).Order("id")
	if target != "" {
		q = q.Where("target_type = ?", target)
	}
	return out, q.Find(&out).Error
}
