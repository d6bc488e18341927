package postgres

import (
	"context"
	"errors"

	"assetcare-backend/internal/domain/catalog"
	domain "assetcare-backend/internal/domain/inventory"

	"gorm.io/gorm"
)

type InventoryRepository struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ domain.Repository = (*InventoryRepository)(nil)

func (r *InventoryRepository) CreateAsset(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *InventoryRepository) GetAsset(ctx context.Context, id uint64) (*domain.Asset, error) {
	var out domain.Asset
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	var out []domain.Asset
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *InventoryRepository) SaveAsset(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *InventoryRepository) CreateStockItem(ctx context.Context, s *domain.StockItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *InventoryRepository) GetStockItem(ctx context.Context, id uint64) (*domain.StockItem, error) {
	var out domain.StockItem
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	var out []domain.StockItem
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *InventoryRepository) SaveStockItem(ctx context.Context, s *domain.StockItem) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *InventoryRepository) CreateConsumable(ctx context.Context, c *domain.Consumable) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *InventoryRepository) GetConsumable(ctx context.Context, id uint64) (*domain.Consumable, error) {
	var out domain.Consumable
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) ListConsumables(ctx context.Context) ([]domain.Consumable, error) {
	var out []domain.Consumable
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *InventoryRepository) SaveConsumable(ctx context.Context, c *domain.Consumable) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *InventoryRepository) CreateAssignment(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *InventoryRepository) GetAssignment(ctx context.Context, id uint64) (*domain.Assignment, error) {
	var out domain.Assignment
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) GetActiveAssignment(ctx context.Context, target catalog.TargetType, targetID uint64) (*domain.Assignment, error) {
	var out domain.Assignment
	res := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND active", target, targetID).
		First(&out)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) ListAssignmentsByPerson(ctx context.Context, personID uint64, activeOnly bool) ([]domain.Assignment, error) {
	var out []domain.Assignment
	q := r.db.WithContext(ctx).Where("person_id = ?", personID).Order("id")
	if activeOnly {
		q = q.Where("active")
	}
	return out, q.Find(&out).Error
}

func (r *InventoryRepository) SaveAssignment(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *InventoryRepository) CreateMovement(ctx context.Context, m *domain.Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *InventoryRepository) ListMovementsByTarget(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.Movement, error) {
	var out []domain.Movement
	res := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", target, targetID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *InventoryRepository) CreateProblemReport(ctx context.Context, p *domain.ProblemReport) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *InventoryRepository) GetProblemReport(ctx context.Context, id uint64) (*domain.ProblemReport, error) {
	var out domain.ProblemReport
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *InventoryRepository) ListProblemReports(ctx context.Context, unresolvedOnly bool) ([]domain.ProblemReport, error) {
	var out []domain.ProblemReport
	q := r.db.WithContext(ctx).Order("id")
	if unresolvedOnly {
		q = q.Where("not resolved")
	}
	return out, q.Find(&out).Error
}

func (r *InventoryRepository) SaveProblemReport(ctx context.Context, p *domain.ProblemReport) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *InventoryRepository) CreateConditionHistory(ctx context.Context, h *domain.ConditionHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *InventoryRepository) ListConditionHistory(ctx context.Context, target catalog.TargetType, targetID uint64) ([]domain.ConditionHistory, error) {
	var out []domain.ConditionHistory
	res := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", target, targetID).
		Order("id").
		Find(&out)
	return out, res.Error
}

// UpsertAttributeValue resolves the per-type table and updates or inserts
// the (target, definition) row with the encoded value.
func (r *InventoryRepository) UpsertAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64, v catalog.AttrValue) error {
	s, b, d, n := v.EncodeColumns()

	switch target {
	case catalog.TargetAsset:
		var row domain.AssetAttributeValue
		err := r.db.WithContext(ctx).
			Where("asset_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = domain.AssetAttributeValue{AssetID: targetID, AttributeDefinitionID: defID}
		} else if err != nil {
			return err
		}
		row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber = s, b, d, n
		return r.db.WithContext(ctx).Save(&row).Error

	case catalog.TargetStockItem:
		var row domain.StockItemAttributeValue
		err := r.db.WithContext(ctx).
			Where("stock_item_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = domain.StockItemAttributeValue{StockItemID: targetID, AttributeDefinitionID: defID}
		} else if err != nil {
			return err
		}
		row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber = s, b, d, n
		return r.db.WithContext(ctx).Save(&row).Error

	case catalog.TargetConsumable:
		var row domain.ConsumableAttributeValue
		err := r.db.WithContext(ctx).
			Where("consumable_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = domain.ConsumableAttributeValue{ConsumableID: targetID, AttributeDefinitionID: defID}
		} else if err != nil {
			return err
		}
		row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber = s, b, d, n
		return r.db.WithContext(ctx).Save(&row).Error
	}
	return domain.ErrUnknownTargetType
}

func (r *InventoryRepository) GetAttributeValue(ctx context.Context, target catalog.TargetType, targetID, defID uint64) (catalog.AttrValue, error) {
	switch target {
	case catalog.TargetAsset:
		var row domain.AssetAttributeValue
		err := r.db.WithContext(ctx).
			Where("asset_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if err != nil {
			return catalog.AttrValue{}, translate(err, domain.ErrNotFound)
		}
		return catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)

	case catalog.TargetStockItem:
		var row domain.StockItemAttributeValue
		err := r.db.WithContext(ctx).
			Where("stock_item_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if err != nil {
			return catalog.AttrValue{}, translate(err, domain.ErrNotFound)
		}
		return catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)

	case catalog.TargetConsumable:
		var row domain.ConsumableAttributeValue
		err := r.db.WithContext(ctx).
			Where("consumable_id = ? AND attribute_definition_id = ?", targetID, defID).
			First(&row).Error
		if err != nil {
			return catalog.AttrValue{}, translate(err, domain.ErrNotFound)
		}
		return catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)
	}
	return catalog.AttrValue{}, domain.ErrUnknownTargetType
}

func (r *InventoryRepository) ListAttributeValues(ctx context.Context, target catalog.TargetType, targetID uint64) (map[uint64]catalog.AttrValue, error) {
	out := map[uint64]catalog.AttrValue{}

	switch target {
	case catalog.TargetAsset:
		var rows []domain.AssetAttributeValue
		if err := r.db.WithContext(ctx).Where("asset_id = ?", targetID).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			v, err := catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)
			if err != nil {
				return nil, err
			}
			out[row.AttributeDefinitionID] = v
		}
	case catalog.TargetStockItem:
		var rows []domain.StockItemAttributeValue
		if err := r.db.WithContext(ctx).Where("stock_item_id = ?", targetID).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			v, err := catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)
			if err != nil {
				return nil, err
			}
			out[row.AttributeDefinitionID] = v
		}
	case catalog.TargetConsumable:
		var rows []domain.ConsumableAttributeValue
		if err := r.db.WithContext(ctx).Where("consumable_id = ?", targetID).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			v, err := catalog.DecodeColumns(row.ValueString, row.ValueBool, row.ValueDate, row.ValueNumber)
			if err != nil {
				return nil, err
			}
			out[row.AttributeDefinitionID] = v
		}
	default:
		return nil, domain.ErrUnknownTargetType
	}
	return out, nil
}
