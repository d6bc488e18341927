package inventory

import (
	"context"
	"time"

	"assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
	domain "assetcare-backend/internal/domain/inventory"
	"assetcare-backend/internal/domain/uow"
	"assetcare-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	cat  catalog.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, cat catalog.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, cat: cat, uow: tx}
}

func (u *Usecase) CreateAsset(ctx context.Context, actor identity.Actor, in CreateAssetInput) (*domain.Asset, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	if _, err := u.cat.GetAssetModel(ctx, in.AssetModelID); err != nil {
		return nil, err
	}
	if in.RoomID != nil {
		if _, err := u.cat.GetRoom(ctx, *in.RoomID); err != nil {
			return nil, err
		}
	}
	tag := in.InventoryTag
	if tag == "" {
		tag = id.NewID32()
	}
	a := &domain.Asset{
		AssetModelID: in.AssetModelID,
		SerialNumber: in.SerialNumber,
		InventoryTag: tag,
		RoomID:       in.RoomID,
	}
	if err := u.repo.CreateAsset(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) GetAsset(ctx context.Context, id uint64) (*domain.Asset, error) {
	return u.repo.GetAsset(ctx, id)
}

func (u *Usecase) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return u.repo.ListAssets(ctx)
}

func (u *Usecase) CreateStockItem(ctx context.Context, actor identity.Actor, in CreateStockItemInput) (*domain.StockItem, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	if _, err := u.cat.GetStockItemModel(ctx, in.StockItemModelID); err != nil {
		return nil, err
	}
	s := &domain.StockItem{
		StockItemModelID: in.StockItemModelID,
		SerialNumber:     in.SerialNumber,
		RoomID:           in.RoomID,
	}
	if err := u.repo.CreateStockItem(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) GetStockItem(ctx context.Context, id uint64) (*domain.StockItem, error) {
	return u.repo.GetStockItem(ctx, id)
}

func (u *Usecase) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	return u.repo.ListStockItems(ctx)
}

func (u *Usecase) CreateConsumable(ctx context.Context, actor identity.Actor, in CreateConsumableInput) (*domain.Consumable, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	if _, err := u.cat.GetConsumableModel(ctx, in.ConsumableModelID); err != nil {
		return nil, err
	}
	c := &domain.Consumable{
		ConsumableModelID: in.ConsumableModelID,
		RoomID:            in.RoomID,
		Quantity:          in.Quantity,
	}
	if err := u.repo.CreateConsumable(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) GetConsumable(ctx context.Context, id uint64) (*domain.Consumable, error) {
	return u.repo.GetConsumable(ctx, id)
}

func (u *Usecase) ListConsumables(ctx context.Context) ([]domain.Consumable, error) {
	return u.repo.ListConsumables(ctx)
}

// Assign hands an item to a person. An item can have at most one active
// assignment; the previous one must be returned first.
func (u *Usecase) Assign(ctx context.Context, actor identity.Actor, in AssignInput) (*domain.Assignment, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	target := catalog.TargetType(in.TargetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}

	var out *domain.Assignment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := targetExists(ctx, r.Inventory, target, in.TargetID); err != nil {
			return err
		}
		if existing, err := r.Inventory.GetActiveAssignment(ctx, target, in.TargetID); err == nil && existing != nil {
			return domain.ErrAlreadyAssigned
		}
		a := &domain.Assignment{
			PersonID:   in.PersonID,
			TargetType: target,
			TargetID:   in.TargetID,
			Active:     true,
			AssignedAt: time.Now().UTC(),
		}
		if err := r.Inventory.CreateAssignment(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Return(ctx context.Context, actor identity.Actor, assignmentID uint64) (*domain.Assignment, error) {
	caps := identity.Resolve(actor)

	var out *domain.Assignment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Inventory.GetAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		// The holder or the warehouse can return.
		if actor.PersonID != a.PersonID && !caps.Has(identity.CapWarehouseFulfill) {
			return identity.ErrPermissionDenied
		}
		if !a.Active {
			return domain.ErrAlreadyReturned
		}
		now := time.Now().UTC()
		a.Active = false
		a.ReturnedAt = &now
		if err := r.Inventory.SaveAssignment(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListAssignments(ctx context.Context, personID uint64, activeOnly bool) ([]domain.Assignment, error) {
	return u.repo.ListAssignmentsByPerson(ctx, personID, activeOnly)
}

// Move relocates an item and records the movement in the same transaction.
func (u *Usecase) Move(ctx context.Context, actor identity.Actor, in MoveInput) (*domain.Movement, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	target := catalog.TargetType(in.TargetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}
	if _, err := u.cat.GetRoom(ctx, in.ToRoomID); err != nil {
		return nil, err
	}

	var out *domain.Movement
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		from, err := relocate(ctx, r.Inventory, target, in.TargetID, in.ToRoomID)
		if err != nil {
			return err
		}
		mv := &domain.Movement{
			TargetType:      target,
			TargetID:        in.TargetID,
			FromRoomID:      from,
			ToRoomID:        in.ToRoomID,
			MovedByPersonID: actor.PersonID,
			MovedAt:         time.Now().UTC(),
			Note:            in.Note,
		}
		if err := r.Inventory.CreateMovement(ctx, mv); err != nil {
			return err
		}
		out = mv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// relocate updates the item's room and reports where it came from.
func relocate(ctx context.Context, inv domain.Repository, target catalog.TargetType, id, toRoom uint64) (*uint64, error) {
	switch target {
	case catalog.TargetAsset:
		a, err := inv.GetAsset(ctx, id)
		if err != nil {
			return nil, err
		}
		from := a.RoomID
		a.RoomID = &toRoom
		return from, inv.SaveAsset(ctx, a)
	case catalog.TargetStockItem:
		s, err := inv.GetStockItem(ctx, id)
		if err != nil {
			return nil, err
		}
		from := s.RoomID
		s.RoomID = &toRoom
		return from, inv.SaveStockItem(ctx, s)
	case catalog.TargetConsumable:
		c, err := inv.GetConsumable(ctx, id)
		if err != nil {
			return nil, err
		}
		from := c.RoomID
		c.RoomID = &toRoom
		return from, inv.SaveConsumable(ctx, c)
	}
	return nil, domain.ErrUnknownTargetType
}

func (u *Usecase) ListMovements(ctx context.Context, targetType string, targetID uint64) ([]domain.Movement, error) {
	target := catalog.TargetType(targetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}
	return u.repo.ListMovementsByTarget(ctx, target, targetID)
}

// ReportProblem is open to any authenticated person; anyone can notice a
// broken machine.
func (u *Usecase) ReportProblem(ctx context.Context, actor identity.Actor, in ReportProblemInput) (*domain.ProblemReport, error) {
	if _, err := u.repo.GetAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	p := &domain.ProblemReport{
		AssetID:          in.AssetID,
		ReporterPersonID: actor.PersonID,
		Description:      in.Description,
	}
	if err := u.repo.CreateProblemReport(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) ResolveProblem(ctx context.Context, actor identity.Actor, id uint64) (*domain.ProblemReport, error) {
	if !identity.Resolve(actor).Has(identity.CapMaintenanceManage) {
		return nil, identity.ErrPermissionDenied
	}
	p, err := u.repo.GetProblemReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Resolved {
		return nil, domain.ErrAlreadyResolved
	}
	now := time.Now().UTC()
	p.Resolved = true
	p.ResolvedAt = &now
	if err := u.repo.SaveProblemReport(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) ListProblemReports(ctx context.Context, unresolvedOnly bool) ([]domain.ProblemReport, error) {
	return u.repo.ListProblemReports(ctx, unresolvedOnly)
}

func (u *Usecase) ListAttributeValues(ctx context.Context, targetType string, targetID uint64) (map[uint64]catalog.AttrValue, error) {
	target := catalog.TargetType(targetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}
	if err := targetExists(ctx, u.repo, target, targetID); err != nil {
		return nil, err
	}
	return u.repo.ListAttributeValues(ctx, target, targetID)
}

func (u *Usecase) RecordCondition(ctx context.Context, actor identity.Actor, targetType string, targetID uint64, condition string) (*domain.ConditionHistory, error) {
	if !identity.Resolve(actor).Has(identity.CapMaintenanceExecute) {
		return nil, identity.ErrPermissionDenied
	}
	target := catalog.TargetType(targetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}
	if err := targetExists(ctx, u.repo, target, targetID); err != nil {
		return nil, err
	}
	h := &domain.ConditionHistory{
		TargetType:      target,
		TargetID:        targetID,
		Condition:       condition,
		NotedByPersonID: actor.PersonID,
		NotedAt:         time.Now().UTC(),
	}
	if err := u.repo.CreateConditionHistory(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (u *Usecase) ListConditionHistory(ctx context.Context, targetType string, targetID uint64) ([]domain.ConditionHistory, error) {
	target := catalog.TargetType(targetType)
	if !target.Valid() {
		return nil, domain.ErrUnknownTargetType
	}
	return u.repo.ListConditionHistory(ctx, target, targetID)
}

func targetExists(ctx context.Context, inv domain.Repository, target catalog.TargetType, id uint64) error {
	switch target {
	case catalog.TargetAsset:
		_, err := inv.GetAsset(ctx, id)
		return err
	case catalog.TargetStockItem:
		_, err := inv.GetStockItem(ctx, id)
		return err
	case catalog.TargetConsumable:
		_, err := inv.GetConsumable(ctx, id)
		return err
	}
	return domain.ErrUnknownTargetType
}
