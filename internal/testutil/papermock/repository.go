package papermock

import (
	"context"

	domain "assetcare-backend/internal/domain/paperwork"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies paperwork.Repository.
// Creates carry function fields so tests can capture the documents; the
// getters and lists are no-ops.
type Repo struct {
	CreateAttributionOrderFn    func(ctx context.Context, o *domain.AttributionOrder) error
	CreateReceiptReportFn       func(ctx context.Context, r *domain.ReceiptReport) error
	CreateCertificateFn         func(ctx context.Context, c *domain.Certificate) error
	CreateCompanyAssetRequestFn func(ctx context.Context, r *domain.CompanyAssetRequest) error
}

func (m *Repo) CreateAttributionOrder(ctx context.Context, o *domain.AttributionOrder) error {
	if m.CreateAttributionOrderFn != nil {
		return m.CreateAttributionOrderFn(ctx, o)
	}
	return nil
}
func (m *Repo) GetAttributionOrder(ctx context.Context, id uint64) (*domain.AttributionOrder, error) {
	return nil, context.Canceled
}
func (m *Repo) ListAttributionOrders(ctx context.Context) ([]domain.AttributionOrder, error) {
	return nil, nil
}

func (m *Repo) CreateReceiptReport(ctx context.Context, r *domain.ReceiptReport) error {
	if m.CreateReceiptReportFn != nil {
		return m.CreateReceiptReportFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetReceiptReport(ctx context.Context, id uint64) (*domain.ReceiptReport, error) {
	return nil, context.Canceled
}
func (m *Repo) ListReceiptReports(ctx context.Context) ([]domain.ReceiptReport, error) {
	return nil, nil
}

func (m *Repo) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	if m.CreateCertificateFn != nil {
		return m.CreateCertificateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetCertificate(ctx context.Context, id uint64) (*domain.Certificate, error) {
	return nil, context.Canceled
}
func (m *Repo) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	return nil, nil
}

func (m *Repo) CreateCompanyAssetRequest(ctx context.Context, r *domain.CompanyAssetRequest) error {
	if m.CreateCompanyAssetRequestFn != nil {
		return m.CreateCompanyAssetRequestFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetCompanyAssetRequest(ctx context.Context, id uint64) (*domain.CompanyAssetRequest, error) {
	return nil, context.Canceled
}
func (m *Repo) ListCompanyAssetRequests(ctx context.Context) ([]domain.CompanyAssetRequest, error) {
	return nil, nil
}
