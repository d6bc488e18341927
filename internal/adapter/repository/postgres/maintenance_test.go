package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "assetcare-backend/internal/domain/maintenance"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the maintenance
// tables. The domain models carry no postgres-only column types, so they
// migrate onto sqlite as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Maintenance{},
		&domain.MaintenanceStep{},
		&domain.MaintenanceTypicalStep{},
		&domain.MaintenanceStepAttributeChange{},
		&domain.MaintenanceStepItemRequest{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeMaintenance(assetID uint64) *domain.Maintenance {
	return &domain.Maintenance{
		AssetID:           assetID,
		PerformerPersonID: 7,
		ChiefPersonID:     2,
		Status:            "open",
		Description:       "quarterly inspection",
		StartAt:           time.Now().UTC(),
	}
}

func makeStep(maintenanceID uint64, ordinal int, status domain.StepStatus) *domain.MaintenanceStep {
	return &domain.MaintenanceStep{
		MaintenanceID: maintenanceID,
		PersonID:      7,
		Ordinal:       ordinal,
		Status:        status,
		StartAt:       time.Now().UTC(),
	}
}

func TestCreateAndGetStep(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	m := makeMaintenance(11)
	if err := repo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("CreateMaintenance did not set auto-increment ID")
	}

	s := makeStep(m.ID, 1, domain.StatusStarted)
	if err := repo.CreateStep(ctx, s); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	got, err := repo.GetStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetStep: %v", err)
	}
	if got.MaintenanceID != m.ID || got.Status != domain.StatusStarted {
		t.Errorf("unexpected step: %+v", got)
	}
}

func TestGetStep_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)

	_, err := repo.GetStep(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveStepUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	m := makeMaintenance(11)
	if err := repo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	s := makeStep(m.ID, 1, domain.StatusStarted)
	if err := repo.CreateStep(ctx, s); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	s.Status = domain.StatusInProgress
	if err := repo.SaveStep(ctx, s); err != nil {
		t.Fatalf("SaveStep: %v", err)
	}

	got, err := repo.GetStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetStep: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Errorf("status not updated, got=%q", got.Status)
	}
}

func TestListStepsByMaintenance_Ordering(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	m := makeMaintenance(11)
	if err := repo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	other := makeMaintenance(12)
	if err := repo.CreateMaintenance(ctx, other); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}

	// Create out of ordinal order; listing must sort by ordinal.
	for _, ord := range []int{3, 1, 2} {
		if err := repo.CreateStep(ctx, makeStep(m.ID, ord, domain.StatusStarted)); err != nil {
			t.Fatalf("CreateStep ordinal %d: %v", ord, err)
		}
	}
	if err := repo.CreateStep(ctx, makeStep(other.ID, 1, domain.StatusStarted)); err != nil {
		t.Fatalf("CreateStep other maintenance: %v", err)
	}

	steps, err := repo.ListStepsByMaintenance(ctx, m.ID)
	if err != nil {
		t.Fatalf("ListStepsByMaintenance: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, want := range []int{1, 2, 3} {
		if steps[i].Ordinal != want {
			t.Errorf("steps[%d].Ordinal=%d want %d", i, steps[i].Ordinal, want)
		}
	}
}

func TestListUnappliedChangesByStep(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	m := makeMaintenance(11)
	if err := repo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	s := makeStep(m.ID, 1, domain.StatusInProgress)
	if err := repo.CreateStep(ctx, s); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	val := "OK"
	mk := func(defID uint64) *domain.MaintenanceStepAttributeChange {
		return &domain.MaintenanceStepAttributeChange{
			StepID:                s.ID,
			TargetType:            "asset",
			TargetID:              11,
			AttributeDefinitionID: defID,
			ValueString:           &val,
			CreatedByPersonID:     7,
		}
	}

	first := mk(101)
	second := mk(102)
	third := mk(103)
	for _, c := range []*domain.MaintenanceStepAttributeChange{first, second, third} {
		if err := repo.CreateAttributeChange(ctx, c); err != nil {
			t.Fatalf("CreateAttributeChange: %v", err)
		}
	}

	// Mark the middle one applied; it must drop out of the unapplied list.
	now := time.Now().UTC()
	second.AppliedAt = &now
	if err := repo.SaveAttributeChange(ctx, second); err != nil {
		t.Fatalf("SaveAttributeChange: %v", err)
	}

	got, err := repo.ListUnappliedChangesByStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("ListUnappliedChangesByStep: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 unapplied changes, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != third.ID {
		t.Errorf("unexpected order: got IDs [%d, %d] want [%d, %d]",
			got[0].ID, got[1].ID, first.ID, third.ID)
	}

	all, err := repo.ListAttributeChangesByStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("ListAttributeChangesByStep: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 changes overall, got %d", len(all))
	}
}

func TestItemRequestLifecyclePersistence(t *testing.T) {
	db := openTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	m := makeMaintenance(11)
	if err := repo.CreateMaintenance(ctx, m); err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	s := makeStep(m.ID, 1, domain.StatusInProgress)
	if err := repo.CreateStep(ctx, s); err != nil {
		t.Fatalf("CreateStep: %v", err)
	}

	req := &domain.MaintenanceStepItemRequest{
		StepID:              s.ID,
		RequestType:         "stock_item",
		Status:              domain.RequestStatusRequested,
		RequestedByPersonID: 7,
		RequestedAt:         time.Now().UTC(),
		Note:                "need a spare fan",
	}
	if err := repo.CreateItemRequest(ctx, req); err != nil {
		t.Fatalf("CreateItemRequest: %v", err)
	}

	got, err := repo.GetItemRequestForUpdate(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetItemRequestForUpdate: %v", err)
	}
	if !got.Open() {
		t.Fatalf("fresh request should be open, got status %q", got.Status)
	}

	itemID := uint64(9)
	now := time.Now().UTC()
	got.Status = domain.RequestStatusFulfilled
	got.StockItemID = &itemID
	got.FulfilledAt = &now
	if err := repo.SaveItemRequest(ctx, got); err != nil {
		t.Fatalf("SaveItemRequest: %v", err)
	}

	back, err := repo.GetItemRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetItemRequest: %v", err)
	}
	if back.Open() || back.StockItemID == nil || *back.StockItemID != itemID {
		t.Errorf("fulfillment not persisted: %+v", back)
	}

	reqs, err := repo.ListItemRequestsByStep(ctx, s.ID)
	if err != nil {
		t.Fatalf("ListItemRequestsByStep: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
}
