package postgres

import (
	"context"

	domain "assetcare-backend/internal/domain/paperwork"

	"gorm.io/gorm"
)

type PaperworkRepository struct{ db *gorm.DB }

func NewPaperworkRepository(db *gorm.DB) *PaperworkRepository {
	return &PaperworkRepository{db: db}
}

var _ domain.Repository = (*PaperworkRepository)(nil)

func (r *PaperworkRepository) CreateAttributionOrder(ctx context.Context, o *domain.AttributionOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *PaperworkRepository) GetAttributionOrder(ctx context.Context, id uint64) (*domain.AttributionOrder, error) {
	var out domain.AttributionOrder
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *PaperworkRepository) ListAttributionOrders(ctx context.Context) ([]domain.AttributionOrder, error) {
	var out []domain.AttributionOrder
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *PaperworkRepository) CreateReceiptReport(ctx context.Context, rep *domain.ReceiptReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *PaperworkRepository) GetReceiptReport(ctx context.Context, id uint64) (*domain.ReceiptReport, error) {
	var out domain.ReceiptReport
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *PaperworkRepository) ListReceiptReports(ctx context.Context) ([]domain.ReceiptReport, error) {
	var out []domain.ReceiptReport
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *PaperworkRepository) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PaperworkRepository) GetCertificate(ctx context.Context, id uint64) (*domain.Certificate, error) {
	var out domain.Certificate
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *PaperworkRepository) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	var out []domain.Certificate
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}

func (r *PaperworkRepository) CreateCompanyAssetRequest(ctx context.Context, req *domain.CompanyAssetRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *PaperworkRepository) GetCompanyAssetRequest(ctx context.Context, id uint64) (*domain.CompanyAssetRequest, error) {
	var out domain.CompanyAssetRequest
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, translate(res.Error, domain.ErrNotFound)
}

func (r *PaperworkRepository) ListCompanyAssetRequests(ctx context.Context) ([]domain.CompanyAssetRequest, error) {
	var out []domain.CompanyAssetRequest
	return out, r.db.WithContext(ctx).Order("id").Find(&out).Error
}
