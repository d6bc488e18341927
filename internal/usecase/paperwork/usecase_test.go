package paperwork

import (
	"context"
	"errors"
	"strings"
	"testing"

	"assetcare-backend/internal/domain/identity"
	invDomain "assetcare-backend/internal/domain/inventory"
	"assetcare-backend/internal/testutil/invmock"
	"assetcare-backend/internal/testutil/papermock"
)

var (
	warehouse  = identity.Actor{PersonID: 3, Roles: []string{identity.RoleExploitationChief}}
	admin      = identity.Actor{PersonID: 1, Superuser: true}
	technician = identity.Actor{PersonID: 7, Roles: []string{identity.RoleMaintenanceTechnician}}
)

func invWithAsset(id uint64) *invmock.Repo {
	return &invmock.Repo{
		GetAssetFn: func(ctx context.Context, got uint64) (*invDomain.Asset, error) {
			if got != id {
				return nil, invDomain.ErrNotFound
			}
			return &invDomain.Asset{ID: got}, nil
		},
	}
}

func TestUsecase_CreateAttributionOrder(t *testing.T) {
	t.Run("numbered and stamped", func(t *testing.T) {
		u := NewUsecase(&papermock.Repo{}, invWithAsset(11))
		o, err := u.CreateAttributionOrder(context.Background(), warehouse, CreateAttributionOrderInput{
			AssetID: 11, ToPersonID: 7,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(o.Number, "AO-") {
			t.Errorf("Number = %q, want AO- prefix", o.Number)
		}
		if o.IssuedAt.IsZero() {
			t.Error("IssuedAt not set")
		}
	})

	t.Run("unknown asset rejected", func(t *testing.T) {
		u := NewUsecase(&papermock.Repo{}, invWithAsset(11))
		_, err := u.CreateAttributionOrder(context.Background(), warehouse, CreateAttributionOrderInput{
			AssetID: 99, ToPersonID: 7,
		})
		if !errors.Is(err, invDomain.ErrNotFound) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("technician cannot issue", func(t *testing.T) {
		u := NewUsecase(&papermock.Repo{}, invWithAsset(11))
		_, err := u.CreateAttributionOrder(context.Background(), technician, CreateAttributionOrderInput{
			AssetID: 11, ToPersonID: 7,
		})
		if !errors.Is(err, identity.ErrPermissionDenied) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestUsecase_CreateReceiptReport(t *testing.T) {
	u := NewUsecase(&papermock.Repo{}, invWithAsset(11))

	r, err := u.CreateReceiptReport(context.Background(), warehouse, CreateReceiptReportInput{Note: "bulk delivery"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(r.Number, "RR-") {
		t.Errorf("Number = %q, want RR- prefix", r.Number)
	}
	if r.ReceivedByPersonID != warehouse.PersonID {
		t.Errorf("ReceivedByPersonID = %d, want %d", r.ReceivedByPersonID, warehouse.PersonID)
	}
}

func TestUsecase_CreateCertificate(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		u := NewUsecase(&papermock.Repo{}, invWithAsset(11))
		if _, err := u.CreateCertificate(context.Background(), warehouse, CreateCertificateInput{AssetID: 11}); !errors.Is(err, identity.ErrPermissionDenied) {
			t.Fatalf("err = %v", err)
		}
		c, err := u.CreateCertificate(context.Background(), admin, CreateCertificateInput{AssetID: 11})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(c.Number, "CT-") {
			t.Errorf("Number = %q, want CT- prefix", c.Number)
		}
	})
}

func TestUsecase_CreateCompanyAssetRequest(t *testing.T) {
	u := NewUsecase(&papermock.Repo{}, &invmock.Repo{})

	r, err := u.CreateCompanyAssetRequest(context.Background(), technician, CreateCompanyAssetRequestInput{
		Justification: "laptop for field visits",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.RequestedByPersonID != technician.PersonID {
		t.Errorf("RequestedByPersonID = %d", r.RequestedByPersonID)
	}
	if r.Quantity != 1 {
		t.Errorf("Quantity floor not applied, got %d", r.Quantity)
	}
}
