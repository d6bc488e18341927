package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
	invDomain "assetcare-backend/internal/domain/inventory"
	maintDomain "assetcare-backend/internal/domain/maintenance"
	"assetcare-backend/internal/domain/uow"
	ucmaint "assetcare-backend/internal/usecase/maintenance"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates every table the unit of work can touch, so the
// end-to-end scenarios run against the real repositories.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&catalog.AttributeDefinition{},
		&invDomain.Asset{},
		&invDomain.StockItem{},
		&invDomain.Consumable{},
		&invDomain.Movement{},
		&invDomain.AssetAttributeValue{},
		&invDomain.StockItemAttributeValue{},
		&invDomain.ConsumableAttributeValue{},
		&maintDomain.Maintenance{},
		&maintDomain.MaintenanceStep{},
		&maintDomain.MaintenanceStepAttributeChange{},
		&maintDomain.MaintenanceStepItemRequest{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	maintRepo := NewMaintenanceRepository(db)
	invRepo := NewInventoryRepository(db)

	var stepID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		m := makeMaintenance(11)
		if err := r.Maintenance.CreateMaintenance(ctx, m); err != nil {
			return err
		}
		if m.ID == 0 {
			t.Fatalf("maintenance auto ID not set")
		}
		s := makeStep(m.ID, 1, maintDomain.StatusStarted)
		if err := r.Maintenance.CreateStep(ctx, s); err != nil {
			return err
		}
		stepID = s.ID
		return r.Inventory.CreateMovement(ctx, &invDomain.Movement{
			TargetType: catalog.TargetStockItem, TargetID: 9, ToRoomID: 2,
			MovedByPersonID: 3, MovedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := maintRepo.GetStep(ctx, stepID); err != nil {
		t.Fatalf("step not visible after commit: %v", err)
	}
	moves, err := invRepo.ListMovementsByTarget(ctx, catalog.TargetStockItem, 9)
	if err != nil || len(moves) != 1 {
		t.Fatalf("movement not visible after commit: moves=%d err=%v", len(moves), err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	maintRepo := NewMaintenanceRepository(db)

	sentinel := errors.New("boom")

	var mID uint64
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		m := makeMaintenance(11)
		if err := r.Maintenance.CreateMaintenance(ctx, m); err != nil {
			return err
		}
		mID = m.ID
		return sentinel
	})

	if _, err := maintRepo.GetMaintenance(ctx, mID); !errors.Is(err, maintDomain.ErrNotFound) {
		t.Fatalf("expected maintenance gone after rollback, got %v", err)
	}
}

func TestGormUoW_WithinStepTx_LocksAndPassesStep(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	maintRepo := NewMaintenanceRepository(db)

	m := makeMaintenance(11)
	if err := maintRepo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}
	s := makeStep(m.ID, 1, maintDomain.StatusStarted)
	if err := maintRepo.CreateStep(ctx, s); err != nil {
		t.Fatalf("seed step: %v", err)
	}

	if err := guow.WithinStepTx(ctx, s.ID, func(r uow.Repos, got *maintDomain.MaintenanceStep) error {
		if got == nil || got.ID != s.ID || got.Status != maintDomain.StatusStarted {
			t.Fatalf("unexpected step passed to fn: %+v", got)
		}
		got.Status = maintDomain.StatusInProgress
		return r.Maintenance.SaveStep(ctx, got)
	}); err != nil {
		t.Fatalf("WithinStepTx commit err: %v", err)
	}

	back, err := maintRepo.GetStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetStep post-commit: %v", err)
	}
	if back.Status != maintDomain.StatusInProgress {
		t.Fatalf("step status not updated, got=%q", back.Status)
	}

	// Unknown step: fn must not run.
	err = guow.WithinStepTx(ctx, 9999, func(uow.Repos, *maintDomain.MaintenanceStep) error {
		t.Fatalf("fn called for missing step")
		return nil
	})
	if !errors.Is(err, maintDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing step, got %v", err)
	}
}

// seedDoneScenario builds an asset, a string attribute definition, a
// maintenance and one in-progress step owned by person 7, all through the
// real repositories.
func seedDoneScenario(t *testing.T, db *gorm.DB) (asset *invDomain.Asset, def *catalog.AttributeDefinition, step *maintDomain.MaintenanceStep) {
	t.Helper()
	ctx := context.Background()
	invRepo := NewInventoryRepository(db)
	catRepo := NewCatalogRepository(db)
	maintRepo := NewMaintenanceRepository(db)

	asset = &invDomain.Asset{AssetModelID: 1, InventoryTag: "INV-100"}
	if err := invRepo.CreateAsset(ctx, asset); err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	def = &catalog.AttributeDefinition{
		Name: "condition", Kind: catalog.KindString, TargetType: catalog.TargetAsset,
	}
	if err := catRepo.CreateAttributeDefinition(ctx, def); err != nil {
		t.Fatalf("seed attribute definition: %v", err)
	}
	m := makeMaintenance(asset.ID)
	if err := maintRepo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}
	step = makeStep(m.ID, 1, maintDomain.StatusInProgress)
	if err := maintRepo.CreateStep(ctx, step); err != nil {
		t.Fatalf("seed step: %v", err)
	}
	return asset, def, step
}

// TestDoneTransitionAppliesQueuedChanges drives the full path: queue a
// change through the usecase, flip the step to done, and verify the value
// landed in the asset's attribute table inside the same transaction.
func TestDoneTransitionAppliesQueuedChanges(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	asset, def, step := seedDoneScenario(t, db)

	maintRepo := NewMaintenanceRepository(db)
	invRepo := NewInventoryRepository(db)
	uc := ucmaint.NewUsecase(maintRepo, invRepo, NewGormUoW(db))

	technician := identity.Actor{
		PersonID: 7,
		Username: "tech",
		Roles:    []string{identity.RoleMaintenanceTechnician},
	}

	val := "needs cleaning"
	if _, err := uc.QueueAttributeChanges(ctx, technician, step.ID, []ucmaint.AttributeChangeInput{
		{DefID: def.ID, ValString: &val},
	}); err != nil {
		t.Fatalf("QueueAttributeChanges: %v", err)
	}

	// Nothing written through yet.
	if _, err := invRepo.GetAttributeValue(ctx, catalog.TargetAsset, asset.ID, def.ID); !errors.Is(err, invDomain.ErrNotFound) {
		t.Fatalf("value written before done transition: %v", err)
	}

	done := string(maintDomain.StatusDone)
	updated, err := uc.UpdateStep(ctx, technician, step.ID, ucmaint.UpdateStepInput{Status: &done})
	if err != nil {
		t.Fatalf("UpdateStep done: %v", err)
	}
	if updated.Status != maintDomain.StatusDone || updated.EndAt == nil {
		t.Fatalf("step not closed: %+v", updated)
	}

	got, err := invRepo.GetAttributeValue(ctx, catalog.TargetAsset, asset.ID, def.ID)
	if err != nil {
		t.Fatalf("GetAttributeValue after done: %v", err)
	}
	if got.Kind != catalog.KindString || got.Text != val {
		t.Fatalf("unexpected applied value: %+v", got)
	}

	changes, err := maintRepo.ListAttributeChangesByStep(ctx, step.ID)
	if err != nil {
		t.Fatalf("ListAttributeChangesByStep: %v", err)
	}
	if len(changes) != 1 || !changes[0].Applied() {
		t.Fatalf("change not marked applied: %+v", changes)
	}

	// Done is terminal: a second transition attempt must not get through.
	if _, err := uc.UpdateStep(ctx, technician, step.ID, ucmaint.UpdateStepInput{Status: &done}); !errors.Is(err, maintDomain.ErrStepDone) {
		t.Fatalf("expected ErrStepDone on second done, got %v", err)
	}
}

// TestDoneTransitionRollsBackOnBadChange corrupts a queued row (no value
// columns set) and verifies the done transition leaves no trace: step still
// in progress, no attribute value, change still unapplied.
func TestDoneTransitionRollsBackOnBadChange(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	asset, def, step := seedDoneScenario(t, db)

	maintRepo := NewMaintenanceRepository(db)
	invRepo := NewInventoryRepository(db)
	uc := ucmaint.NewUsecase(maintRepo, invRepo, NewGormUoW(db))

	// Bypass the usecase's validation to plant an undecodable row.
	if err := maintRepo.CreateAttributeChange(ctx, &maintDomain.MaintenanceStepAttributeChange{
		StepID:                step.ID,
		TargetType:            catalog.TargetAsset,
		TargetID:              asset.ID,
		AttributeDefinitionID: def.ID,
		CreatedByPersonID:     7,
	}); err != nil {
		t.Fatalf("seed bad change: %v", err)
	}

	technician := identity.Actor{
		PersonID: 7,
		Roles:    []string{identity.RoleMaintenanceTechnician},
	}

	done := string(maintDomain.StatusDone)
	if _, err := uc.UpdateStep(ctx, technician, step.ID, ucmaint.UpdateStepInput{Status: &done}); err == nil {
		t.Fatalf("expected done transition to fail on bad change")
	}

	back, err := maintRepo.GetStep(ctx, step.ID)
	if err != nil {
		t.Fatalf("GetStep after rollback: %v", err)
	}
	if back.Status != maintDomain.StatusInProgress || back.EndAt != nil {
		t.Fatalf("step mutated despite rollback: %+v", back)
	}
	if _, err := invRepo.GetAttributeValue(ctx, catalog.TargetAsset, asset.ID, def.ID); !errors.Is(err, invDomain.ErrNotFound) {
		t.Fatalf("attribute value leaked through rollback: %v", err)
	}
	changes, err := maintRepo.ListUnappliedChangesByStep(ctx, step.ID)
	if err != nil || len(changes) != 1 {
		t.Fatalf("expected the bad change to remain unapplied: n=%d err=%v", len(changes), err)
	}
}
