package maintenance

import (
	"context"
	"fmt"
	"time"

	"assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
	"assetcare-backend/internal/domain/inventory"
	domain "assetcare-backend/internal/domain/maintenance"
	"assetcare-backend/internal/domain/uow"
)

type Usecase struct {
	maint domain.Repository
	inv   inventory.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(maint domain.Repository, inv inventory.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{maint: maint, inv: inv, uow: tx}
}

func (u *Usecase) CreateMaintenance(ctx context.Context, actor identity.Actor, in CreateMaintenanceInput) (*domain.Maintenance, error) {
	caps := identity.Resolve(actor)
	if !caps.Has(identity.CapMaintenanceExecute) && !caps.Has(identity.CapMaintenanceManage) {
		return nil, identity.ErrPermissionDenied
	}

	performer := in.PerformerPersonID
	if performer == 0 {
		performer = actor.PersonID
	}
	if _, err := u.inv.GetAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}

	m := &domain.Maintenance{
		AssetID:           in.AssetID,
		PerformerPersonID: performer,
		ChiefPersonID:     in.ChiefPersonID,
		Status:            "open",
		Description:       in.Description,
		AttachmentURL:     in.AttachmentURL,
		StartAt:           time.Now().UTC(),
	}
	if err := u.maint.CreateMaintenance(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) GetMaintenance(ctx context.Context, id uint64) (*domain.Maintenance, error) {
	return u.maint.GetMaintenance(ctx, id)
}

func (u *Usecase) ListMaintenances(ctx context.Context, assetID uint64) ([]domain.Maintenance, error) {
	return u.maint.ListMaintenances(ctx, assetID)
}

func (u *Usecase) UpdateMaintenance(ctx context.Context, actor identity.Actor, id uint64, in UpdateMaintenanceInput) (*domain.Maintenance, error) {
	caps := identity.Resolve(actor)

	m, err := u.maint.GetMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.PersonID != m.PerformerPersonID && !caps.Has(identity.CapMaintenanceManage) {
		return nil, identity.ErrPermissionDenied
	}
	// Approval is the chief's call.
	if in.Approved != nil {
		if !caps.Has(identity.CapMaintenanceManage) {
			return nil, identity.ErrPermissionDenied
		}
		m.Approved = *in.Approved
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Success != nil {
		m.Success = in.Success
	}
	if in.AttachmentURL != nil {
		m.AttachmentURL = *in.AttachmentURL
	}
	if in.Close && m.EndAt == nil {
		now := time.Now().UTC()
		m.EndAt = &now
		m.Status = "closed"
	}
	if err := u.maint.SaveMaintenance(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) CreateStep(ctx context.Context, actor identity.Actor, maintenanceID uint64, in CreateStepInput) (*domain.MaintenanceStep, error) {
	caps := identity.Resolve(actor)

	m, err := u.maint.GetMaintenance(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if actor.PersonID != m.PerformerPersonID && !caps.Has(identity.CapMaintenanceManage) {
		return nil, identity.ErrPermissionDenied
	}

	status := domain.StatusStarted
	if in.Status != "" {
		status, err = domain.ParseStepStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}
	person := in.PersonID
	if person == 0 {
		person = actor.PersonID
	}
	if in.TypicalStepID != nil {
		if _, err := u.maint.GetTypicalStep(ctx, *in.TypicalStepID); err != nil {
			return nil, err
		}
	}

	s := &domain.MaintenanceStep{
		MaintenanceID: m.ID,
		TypicalStepID: in.TypicalStepID,
		PersonID:      person,
		Ordinal:       in.Ordinal,
		Status:        status,
		StartAt:       time.Now().UTC(),
	}
	if err := u.maint.CreateStep(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) GetStep(ctx context.Context, id uint64) (*domain.MaintenanceStep, error) {
	return u.maint.GetStep(ctx, id)
}

func (u *Usecase) ListSteps(ctx context.Context, maintenanceID uint64) ([]domain.MaintenanceStep, error) {
	return u.maint.ListStepsByMaintenance(ctx, maintenanceID)
}

func (u *Usecase) ListTypicalSteps(ctx context.Context) ([]domain.MaintenanceTypicalStep, error) {
	return u.maint.ListTypicalSteps(ctx)
}

// UpdateStep is the step state machine. A transition to done applies the
// queued attribute changes in the same transaction; any failure rolls the
// whole batch back and the step stays non-done.
func (u *Usecase) UpdateStep(ctx context.Context, actor identity.Actor, stepID uint64, in UpdateStepInput) (*domain.MaintenanceStep, error) {
	caps := identity.Resolve(actor)

	var updated *domain.MaintenanceStep
	err := u.uow.WithinStepTx(ctx, stepID, func(r uow.Repos, s *domain.MaintenanceStep) error {
		if actor.PersonID != s.PersonID && !caps.Has(identity.CapMaintenanceManage) {
			return identity.ErrPermissionDenied
		}
		// Reassignment is reserved for chiefs/superusers.
		if in.PersonID != nil && *in.PersonID != s.PersonID {
			if !caps.Has(identity.CapMaintenanceManage) {
				return identity.ErrPermissionDenied
			}
			s.PersonID = *in.PersonID
		}
		if in.Success != nil {
			s.Success = in.Success
		}
		if in.Status != nil {
			next, err := domain.ParseStepStatus(*in.Status)
			if err != nil {
				return err
			}
			// A done step is frozen; this also keeps the apply idempotent.
			if s.Status == domain.StatusDone {
				return domain.ErrStepDone
			}
			s.Status = next
			if next == domain.StatusDone {
				if err := applyQueuedChanges(ctx, r, s); err != nil {
					return err
				}
				now := time.Now().UTC()
				s.EndAt = &now
			}
		}
		if err := r.Maintenance.SaveStep(ctx, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyQueuedChanges writes every unapplied change through to its target's
// attribute-value table, in creation order, marking each row applied.
func applyQueuedChanges(ctx context.Context, r uow.Repos, s *domain.MaintenanceStep) error {
	changes, err := r.Maintenance.ListUnappliedChangesByStep(ctx, s.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range changes {
		c := &changes[i]
		v, err := c.Value()
		if err != nil {
			return fmt.Errorf("attribute change %d: %w", c.ID, err)
		}
		if err := r.Inventory.UpsertAttributeValue(ctx, c.TargetType, c.TargetID, c.AttributeDefinitionID, v); err != nil {
			return fmt.Errorf("attribute change %d: %w", c.ID, err)
		}
		c.AppliedAt = &now
		if err := r.Maintenance.SaveAttributeChange(ctx, c); err != nil {
			return fmt.Errorf("attribute change %d: %w", c.ID, err)
		}
	}
	return nil
}

// QueueAttributeChanges validates and appends pending attribute edits to a
// step. Nothing is written to the target entities here; that happens when
// the step goes done.
func (u *Usecase) QueueAttributeChanges(ctx context.Context, actor identity.Actor, stepID uint64, entries []AttributeChangeInput) ([]domain.MaintenanceStepAttributeChange, error) {
	caps := identity.Resolve(actor)

	var out []domain.MaintenanceStepAttributeChange
	err := u.uow.WithinStepTx(ctx, stepID, func(r uow.Repos, s *domain.MaintenanceStep) error {
		if actor.PersonID != s.PersonID && !caps.Has(identity.CapMaintenanceManage) {
			return identity.ErrPermissionDenied
		}
		if s.Status == domain.StatusDone {
			return domain.ErrStepDone
		}
		m, err := r.Maintenance.GetMaintenance(ctx, s.MaintenanceID)
		if err != nil {
			return err
		}

		rows := make([]domain.MaintenanceStepAttributeChange, 0, len(entries))
		for i, e := range entries {
			v, err := catalog.DecodeColumns(e.ValString, e.ValBool, e.ValDate, e.ValNumber)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}

			target := catalog.TargetType(e.TargetType)
			targetID := uint64(0)
			if e.TargetID == nil {
				// Default to the asset under maintenance.
				target = catalog.TargetAsset
				targetID = m.AssetID
			} else {
				if !target.Valid() {
					return fmt.Errorf("entry %d: %w", i, domain.ErrInvalidTarget)
				}
				targetID = *e.TargetID
				if err := targetExists(ctx, r.Inventory, target, targetID); err != nil {
					return fmt.Errorf("entry %d: %w", i, err)
				}
			}

			def, err := r.Catalog.GetAttributeDefinition(ctx, e.DefID)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			if def.Kind != v.Kind {
				return fmt.Errorf("entry %d: %w", i, domain.ErrKindMismatch)
			}

			row := domain.MaintenanceStepAttributeChange{
				StepID:                s.ID,
				TargetType:            target,
				TargetID:              targetID,
				AttributeDefinitionID: e.DefID,
				CreatedByPersonID:     actor.PersonID,
			}
			row.SetValue(v)
			rows = append(rows, row)
		}

		for i := range rows {
			if err := r.Maintenance.CreateAttributeChange(ctx, &rows[i]); err != nil {
				return err
			}
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func targetExists(ctx context.Context, inv inventory.Repository, target catalog.TargetType, id uint64) error {
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
	return domain.ErrInvalidTarget
}

func (u *Usecase) ListAttributeChanges(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepAttributeChange, error) {
	if _, err := u.maint.GetStep(ctx, stepID); err != nil {
		return nil, err
	}
	return u.maint.ListAttributeChangesByStep(ctx, stepID)
}

func (u *Usecase) CreateItemRequest(ctx context.Context, actor identity.Actor, stepID uint64, in CreateItemRequestInput) (*domain.MaintenanceStepItemRequest, error) {
	caps := identity.Resolve(actor)

	var out *domain.MaintenanceStepItemRequest
	err := u.uow.WithinStepTx(ctx, stepID, func(r uow.Repos, s *domain.MaintenanceStep) error {
		if actor.PersonID != s.PersonID && !caps.Has(identity.CapMaintenanceManage) {
			return identity.ErrPermissionDenied
		}
		if s.Status == domain.StatusDone {
			return domain.ErrStepDone
		}

		kind := catalog.TargetType(in.RequestType)
		if kind != catalog.TargetStockItem && kind != catalog.TargetConsumable {
			return domain.ErrInvalidTarget
		}

		req := &domain.MaintenanceStepItemRequest{
			StepID:                     s.ID,
			RequestType:                kind,
			Status:                     domain.RequestStatusRequested,
			RequestedByPersonID:        actor.PersonID,
			RequestedAt:                time.Now().UTC(),
			RequestedStockItemModelID:  in.RequestedStockItemModelID,
			RequestedConsumableModelID: in.RequestedConsumableModelID,
			StockItemID:                in.StockItemID,
			ConsumableID:               in.ConsumableID,
			SourceRoomID:               in.SourceRoomID,
			DestinationRoomID:          in.DestinationRoomID,
			Note:                       in.Note,
		}
		if err := r.Maintenance.CreateItemRequest(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) GetItemRequest(ctx context.Context, id uint64) (*domain.MaintenanceStepItemRequest, error) {
	return u.maint.GetItemRequest(ctx, id)
}

func (u *Usecase) ListItemRequests(ctx context.Context, stepID uint64) ([]domain.MaintenanceStepItemRequest, error) {
	if _, err := u.maint.GetStep(ctx, stepID); err != nil {
		return nil, err
	}
	return u.maint.ListItemRequestsByStep(ctx, stepID)
}

// FulfillItemRequest binds a concrete item to an open request. When both
// rooms are known it also emits a movement record; the inventory subsystem
// owns the actual relocation bookkeeping.
func (u *Usecase) FulfillItemRequest(ctx context.Context, actor identity.Actor, requestID uint64, in FulfillItemRequestInput) (*domain.MaintenanceStepItemRequest, error) {
	caps := identity.Resolve(actor)
	if !caps.Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}

	var out *domain.MaintenanceStepItemRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Maintenance.GetItemRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.Open() {
			return domain.ErrRequestClosed
		}

		var itemID uint64
		switch req.RequestType {
		case catalog.TargetStockItem:
			if in.StockItemID == nil {
				return domain.ErrItemMismatch
			}
			if _, err := r.Inventory.GetStockItem(ctx, *in.StockItemID); err != nil {
				return err
			}
			req.StockItemID = in.StockItemID
			itemID = *in.StockItemID
		case catalog.TargetConsumable:
			if in.ConsumableID == nil {
				return domain.ErrItemMismatch
			}
			if _, err := r.Inventory.GetConsumable(ctx, *in.ConsumableID); err != nil {
				return err
			}
			req.ConsumableID = in.ConsumableID
			itemID = *in.ConsumableID
		default:
			return domain.ErrInvalidTarget
		}

		if in.SourceRoomID != nil {
			req.SourceRoomID = in.SourceRoomID
		}
		if in.DestinationRoomID != nil {
			req.DestinationRoomID = in.DestinationRoomID
		}
		if in.Note != "" {
			req.Note = in.Note
		}

		now := time.Now().UTC()
		req.Status = domain.RequestStatusFulfilled
		req.FulfilledByPersonID = &actor.PersonID
		req.FulfilledAt = &now

		if req.SourceRoomID != nil && req.DestinationRoomID != nil {
			mv := &inventory.Movement{
				TargetType:      req.RequestType,
				TargetID:        itemID,
				FromRoomID:      req.SourceRoomID,
				ToRoomID:        *req.DestinationRoomID,
				MovedByPersonID: actor.PersonID,
				MovedAt:         now,
				Note:            req.Note,
			}
			if err := r.Inventory.CreateMovement(ctx, mv); err != nil {
				return err
			}
		}

		if err := r.Maintenance.SaveItemRequest(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) RejectItemRequest(ctx context.Context, actor identity.Actor, requestID uint64, note string) (*domain.MaintenanceStepItemRequest, error) {
	caps := identity.Resolve(actor)
	if !caps.Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}

	var out *domain.MaintenanceStepItemRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Maintenance.GetItemRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.Open() {
			return domain.ErrRequestClosed
		}
		now := time.Now().UTC()
		req.Status = domain.RequestStatusRejected
		req.RejectedByPersonID = &actor.PersonID
		req.RejectedAt = &now
		if note != "" {
			req.Note = note
		}
		if err := r.Maintenance.SaveItemRequest(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
