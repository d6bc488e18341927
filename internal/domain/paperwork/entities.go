package paperwork

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("paperwork record not found")

// AttributionOrder hands an asset from one person to another.
type AttributionOrder struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Number       string    `gorm:"size:32;not null;uniqueIndex" json:"number"`
	AssetID      uint64    `gorm:"not null;index" json:"asset_id"`
	FromPersonID *uint64   `json:"from_person_id,omitempty"`
	ToPersonID   uint64    `gorm:"not null" json:"to_person_id"`
	IssuedAt     time.Time `gorm:"not null" json:"issued_at"`
	Note         string    `gorm:"type:text" json:"note"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttributionOrder) TableName() string { return "attribution_orders" }

type ReceiptReport struct {
	ID                 uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Number             string    `gorm:"size:32;not null;uniqueIndex" json:"number"`
	AssetID            *uint64   `gorm:"index" json:"asset_id,omitempty"`
	ReceivedByPersonID uint64    `gorm:"not null" json:"received_by_person_id"`
	ReceivedAt         time.Time `gorm:"not null" json:"received_at"`
	Note               string    `gorm:"type:text" json:"note"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ReceiptReport) TableName() string { return "receipt_reports" }

type Certificate struct {
	ID        uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Number    string     `gorm:"size:32;not null;uniqueIndex" json:"number"`
	AssetID   uint64     `gorm:"not null;index" json:"asset_id"`
	IssuedAt  time.Time  `gorm:"not null" json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Note      string     `gorm:"type:text" json:"note"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Certificate) TableName() string { return "certificates" }

type CompanyAssetRequest struct {
	ID                  uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	RequestedByPersonID uint64    `gorm:"not null;index" json:"requested_by_person_id"`
	AssetModelID        *uint64   `json:"asset_model_id,omitempty"`
	Quantity            int       `gorm:"not null;default:1" json:"quantity"`
	Justification       string    `gorm:"type:text" json:"justification"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CompanyAssetRequest) TableName() string { return "company_asset_requests" }
