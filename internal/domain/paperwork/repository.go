package paperwork

import "context"

type Repository interface {
	CreateAttributionOrder(ctx context.Context, o *AttributionOrder) error
	GetAttributionOrder(ctx context.Context, id uint64) (*AttributionOrder, error)
	ListAttributionOrders(ctx context.Context) ([]AttributionOrder, error)

	CreateReceiptReport(ctx context.Context, r *ReceiptReport) error
	GetReceiptReport(ctx context.Context, id uint64) (*ReceiptReport, error)
	ListReceiptReports(ctx context.Context) ([]ReceiptReport, error)

	CreateCertificate(ctx context.Context, c *Certificate) error
	GetCertificate(ctx context.Context, id uint64) (*Certificate, error)
	ListCertificates(ctx context.Context) ([]Certificate, error)

	CreateCompanyAssetRequest(ctx context.Context, r *CompanyAssetRequest) error
	GetCompanyAssetRequest(ctx context.Context, id uint64) (*CompanyAssetRequest, error)
	ListCompanyAssetRequests(ctx context.Context) ([]CompanyAssetRequest, error)
}
