package paperwork

import (
	"context"
	"time"

	"assetcare-backend/internal/domain/identity"
	"assetcare-backend/internal/domain/inventory"
	domain "assetcare-backend/internal/domain/paperwork"
	"assetcare-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	inv  inventory.Repository
}

func NewUsecase(repo domain.Repository, inv inventory.Repository) *Usecase {
	return &Usecase{repo: repo, inv: inv}
}

// CreateAttributionOrder issues a numbered handover document. The order is
// paperwork only; assignment state is tracked by the inventory subsystem.
func (u *Usecase) CreateAttributionOrder(ctx context.Context, actor identity.Actor, in CreateAttributionOrderInput) (*domain.AttributionOrder, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	if _, err := u.inv.GetAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	o := &domain.AttributionOrder{
		Number:       id.NewDocNumber("AO"),
		AssetID:      in.AssetID,
		FromPersonID: in.FromPersonID,
		ToPersonID:   in.ToPersonID,
		IssuedAt:     time.Now().UTC(),
		Note:         in.Note,
	}
	if err := u.repo.CreateAttributionOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) GetAttributionOrder(ctx context.Context, id uint64) (*domain.AttributionOrder, error) {
	return u.repo.GetAttributionOrder(ctx, id)
}

func (u *Usecase) ListAttributionOrders(ctx context.Context) ([]domain.AttributionOrder, error) {
	return u.repo.ListAttributionOrders(ctx)
}

func (u *Usecase) CreateReceiptReport(ctx context.Context, actor identity.Actor, in CreateReceiptReportInput) (*domain.ReceiptReport, error) {
	if !identity.Resolve(actor).Has(identity.CapWarehouseFulfill) {
		return nil, identity.ErrPermissionDenied
	}
	if in.AssetID != nil {
		if _, err := u.inv.GetAsset(ctx, *in.AssetID); err != nil {
			return nil, err
		}
	}
	r := &domain.ReceiptReport{
		Number:             id.NewDocNumber("RR"),
		AssetID:            in.AssetID,
		ReceivedByPersonID: actor.PersonID,
		ReceivedAt:         time.Now().UTC(),
		Note:               in.Note,
	}
	if err := u.repo.CreateReceiptReport(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *Usecase) GetReceiptReport(ctx context.Context, id uint64) (*domain.ReceiptReport, error) {
	return u.repo.GetReceiptReport(ctx, id)
}

func (u *Usecase) ListReceiptReports(ctx context.Context) ([]domain.ReceiptReport, error) {
	return u.repo.ListReceiptReports(ctx)
}

func (u *Usecase) CreateCertificate(ctx context.Context, actor identity.Actor, in CreateCertificateInput) (*domain.Certificate, error) {
	if !identity.Resolve(actor).Has(identity.CapAdmin) {
		return nil, identity.ErrPermissionDenied
	}
	if _, err := u.inv.GetAsset(ctx, in.AssetID); err != nil {
		return nil, err
	}
	c := &domain.Certificate{
		Number:    id.NewDocNumber("CT"),
		AssetID:   in.AssetID,
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: in.ExpiresAt,
		Note:      in.Note,
	}
	if err := u.repo.CreateCertificate(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) GetCertificate(ctx context.Context, id uint64) (*domain.Certificate, error) {
	return u.repo.GetCertificate(ctx, id)
}

func (u *Usecase) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	return u.repo.ListCertificates(ctx)
}

// CreateCompanyAssetRequest is open to anyone; asking for equipment is not
// a privileged act.
func (u *Usecase) CreateCompanyAssetRequest(ctx context.Context, actor identity.Actor, in CreateCompanyAssetRequestInput) (*domain.CompanyAssetRequest, error) {
	r := &domain.CompanyAssetRequest{
		RequestedByPersonID: actor.PersonID,
		AssetModelID:        in.AssetModelID,
		Quantity:            in.Quantity,
		Justification:       in.Justification,
	}
	if r.Quantity < 1 {
		r.Quantity = 1
	}
	if err := u.repo.CreateCompanyAssetRequest(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *Usecase) GetCompanyAssetRequest(ctx context.Context, id uint64) (*domain.CompanyAssetRequest, error) {
	return u.repo.GetCompanyAssetRequest(ctx, id)
}

func (u *Usecase) ListCompanyAssetRequests(ctx context.Context) ([]domain.CompanyAssetRequest, error) {
	return u.repo.ListCompanyAssetRequests(ctx)
}
