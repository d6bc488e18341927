package catalog

import (
	"context"
	"errors"
	"testing"

	domain "assetcare-backend/internal/domain/catalog"
	"assetcare-backend/internal/domain/identity"
	"assetcare-backend/internal/testutil/catmock"
)

var (
	admin      = identity.Actor{PersonID: 1, Superuser: true}
	technician = identity.Actor{PersonID: 7, Roles: []string{identity.RoleMaintenanceTechnician}}
)

func TestUsecase_CreateAttributeDefinition(t *testing.T) {
	tests := []struct {
		name    string
		actor   identity.Actor
		def     domain.AttributeDefinition
		wantErr error
	}{
		{
			name:  "valid definition",
			actor: admin,
			def:   domain.AttributeDefinition{Name: "warranty_until", Kind: domain.KindDate, TargetType: domain.TargetAsset},
		},
		{
			name:    "bad target type",
			actor:   admin,
			def:     domain.AttributeDefinition{Name: "x", Kind: domain.KindString, TargetType: "room"},
			wantErr: domain.ErrInvalidTarget,
		},
		{
			name:    "bad kind",
			actor:   admin,
			def:     domain.AttributeDefinition{Name: "x", Kind: "blob", TargetType: domain.TargetAsset},
			wantErr: domain.ErrUnknownKind,
		},
		{
			name:    "technician denied",
			actor:   technician,
			def:     domain.AttributeDefinition{Name: "x", Kind: domain.KindString, TargetType: domain.TargetAsset},
			wantErr: identity.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUsecase(&catmock.Repo{})
			err := u.CreateAttributeDefinition(context.Background(), tt.actor, &tt.def)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUsecase_ListAttributeDefinitions_RejectsBadTarget(t *testing.T) {
	u := NewUsecase(&catmock.Repo{})
	if _, err := u.ListAttributeDefinitions(context.Background(), "person"); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("err = %v", err)
	}
}

func TestUsecase_CreateRoom(t *testing.T) {
	t.Run("unknown parent rejected", func(t *testing.T) {
		u := NewUsecase(&catmock.Repo{
			GetRoomFn: func(ctx context.Context, id uint64) (*domain.Room, error) {
				return nil, domain.ErrNotFound
			},
		})
		parent := uint64(99)
		err := u.CreateRoom(context.Background(), admin, &domain.Room{Name: "Lab 2", ParentID: &parent})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("top-level room needs no parent", func(t *testing.T) {
		u := NewUsecase(&catmock.Repo{})
		if err := u.CreateRoom(context.Background(), admin, &domain.Room{Name: "Main building"}); err != nil {
			t.Fatal(err)
		}
	})
}

func TestUsecase_CreateAssetModel_ChecksReferences(t *testing.T) {
	u := NewUsecase(&catmock.Repo{
		GetBrandFn: func(ctx context.Context, id uint64) (*domain.Brand, error) {
			return nil, domain.ErrNotFound
		},
	})
	err := u.CreateAssetModel(context.Background(), admin, &domain.AssetModel{BrandID: 5, AssetTypeID: 1, Name: "X220"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}
