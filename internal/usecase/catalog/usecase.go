package catalog

import (
	"context"

	domain "assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
)

// Usecase is thin on purpose: catalog rows are reference data and carry no
// workflow of their own. Writes require the admin capability, reads are open
// to any authenticated caller.
type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) requireAdmin(actor identity.Actor) error {
	if !identity.Resolve(actor).Has(identity.CapAdmin) {
		return identity.ErrPermissionDenied
	}
	return nil
}

func (u *Usecase) CreateBrand(ctx context.Context, actor identity.Actor, b *domain.Brand) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	return u.repo.CreateBrand(ctx, b)
}

func (u *Usecase) GetBrand(ctx context.Context, id uint64) (*domain.Brand, error) {
	return u.repo.GetBrand(ctx, id)
}

func (u *Usecase) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return u.repo.ListBrands(ctx)
}

func (u *Usecase) SaveBrand(ctx context.Context, actor identity.Actor, b *domain.Brand) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	if _, err := u.repo.GetBrand(ctx, b.ID); err != nil {
		return err
	}
	return u.repo.SaveBrand(ctx, b)
}

func (u *Usecase) DeleteBrand(ctx context.Context, actor identity.Actor, id uint64) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	if _, err := u.repo.GetBrand(ctx, id); err != nil {
		return err
	}
	return u.repo.DeleteBrand(ctx, id)
}

func (u *Usecase) CreateAssetType(ctx context.Context, actor identity.Actor, t *domain.AssetType) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	return u.repo.CreateAssetType(ctx, t)
}

func (u *Usecase) GetAssetType(ctx context.Context, id uint64) (*domain.AssetType, error) {
	return u.repo.GetAssetType(ctx, id)
}

func (u *Usecase) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	return u.repo.ListAssetTypes(ctx)
}

func (u *Usecase) CreateAssetModel(ctx context.Context, actor identity.Actor, m *domain.AssetModel) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	if _, err := u.repo.GetBrand(ctx, m.BrandID); err != nil {
		return err
	}
	if _, err := u.repo.GetAssetType(ctx, m.AssetTypeID); err != nil {
		return err
	}
	return u.repo.CreateAssetModel(ctx, m)
}

func (u *Usecase) GetAssetModel(ctx context.Context, id uint64) (*domain.AssetModel, error) {
	return u.repo.GetAssetModel(ctx, id)
}

func (u *Usecase) ListAssetModels(ctx context.Context) ([]domain.AssetModel, error) {
	return u.repo.ListAssetModels(ctx)
}

func (u *Usecase) CreateStockItemModel(ctx context.Context, actor identity.Actor, m *domain.StockItemModel) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	return u.repo.CreateStockItemModel(ctx, m)
}

func (u *Usecase) ListStockItemModels(ctx context.Context) ([]domain.StockItemModel, error) {
	return u.repo.ListStockItemModels(ctx)
}

func (u *Usecase) CreateConsumableModel(ctx context.Context, actor identity.Actor, m *domain.ConsumableModel) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	return u.repo.CreateConsumableModel(ctx, m)
}

func (u *Usecase) ListConsumableModels(ctx context.Context) ([]domain.ConsumableModel, error) {
	return u.repo.ListConsumableModels(ctx)
}

func (u *Usecase) CreateRoom(ctx context.Context, actor identity.Actor, r *domain.Room) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	if r.ParentID != nil {
		if _, err := u.repo.GetRoom(ctx, *r.ParentID); err != nil {
			return err
		}
	}
	return u.repo.CreateRoom(ctx, r)
}

func (u *Usecase) GetRoom(ctx context.Context, id uint64) (*domain.Room, error) {
	return u.repo.GetRoom(ctx, id)
}

func (u *Usecase) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return u.repo.ListRooms(ctx)
}

func (u *Usecase) CreateAttributeDefinition(ctx context.Context, actor identity.Actor, d *domain.AttributeDefinition) error {
	if err := u.requireAdmin(actor); err != nil {
		return err
	}
	if !d.TargetType.Valid() {
		return domain.ErrInvalidTarget
	}
	switch d.Kind {
	case domain.KindString, domain.KindBool, domain.KindDate, domain.KindNumber:
	default:
		return domain.ErrUnknownKind
	}
	return u.repo.CreateAttributeDefinition(ctx, d)
}

func (u *Usecase) GetAttributeDefinition(ctx context.Context, id uint64) (*domain.AttributeDefinition, error) {
	return u.repo.GetAttributeDefinition(ctx, id)
}

func (u *Usecase) ListAttributeDefinitions(ctx context.Context, target domain.TargetType) ([]domain.AttributeDefinition, error) {
	if !target.Valid() {
		return nil, domain.ErrInvalidTarget
	}
	return u.repo.ListAttributeDefinitions(ctx, target)
}
