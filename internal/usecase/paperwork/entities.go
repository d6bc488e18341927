package paperwork

import "time"

type CreateAttributionOrderInput struct {
	AssetID      uint64  `json:"asset_id" validate:"required"`
	FromPersonID *uint64 `json:"from_person_id"`
	ToPersonID   uint64  `json:"to_person_id" validate:"required"`
	Note         string  `json:"note"`
}

type CreateReceiptReportInput struct {
	AssetID *uint64 `json:"asset_id"`
	Note    string  `json:"note"`
}

type CreateCertificateInput struct {
	AssetID   uint64     `json:"asset_id" validate:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
	Note      string     `json:"note"`
}

type CreateCompanyAssetRequestInput struct {
	AssetModelID  *uint64 `json:"asset_model_id"`
	Quantity      int     `json:"quantity" validate:"gte=1"`
	Justification string  `json:"justification" validate:"required"`
}
