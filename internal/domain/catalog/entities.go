package catalog

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("catalog record not found")
	ErrInvalidTarget = errors.New("invalid target type")
	ErrUnknownKind   = errors.New("unknown attribute kind")
)

// TargetType discriminates which inventory entity an attribute (or an
// attribute change) points at. Exact strings are stored in the DB.
type TargetType string

const (
	TargetAsset      TargetType = "asset"
	TargetStockItem  TargetType = "stock_item"
	TargetConsumable TargetType = "consumable"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetAsset, TargetStockItem, TargetConsumable:
		return true
	}
	return false
}

type Brand struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name      string    `gorm:"size:128;not null;uniqueIndex" json:"name"`
	Country   string    `gorm:"size:64" json:"country"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Brand) TableName() string { return "brands" }

type AssetType struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name      string    `gorm:"size:128;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssetType) TableName() string { return "asset_types" }

type AssetModel struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	BrandID     uint64    `gorm:"not null;index" json:"brand_id"`
	AssetTypeID uint64    `gorm:"not null;index" json:"asset_type_id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssetModel) TableName() string { return "asset_models" }

type StockItemModel struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	BrandID   uint64    `gorm:"not null;index" json:"brand_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StockItemModel) TableName() string { return "stock_item_models" }

type ConsumableModel struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Unit      string    `gorm:"size:32" json:"unit"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConsumableModel) TableName() string { return "consumable_models" }

// Room is an org-structure node; ParentID nil means a top-level location.
type Room struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	ParentID  *uint64   `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// AttributeDefinition declares a typed attribute that instances of a target
// type may carry (e.g. asset "warranty_until" of kind date).
type AttributeDefinition struct {
	ID         uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name       string     `gorm:"size:128;not null" json:"name"`
	Kind       ValueKind  `gorm:"size:16;not null" json:"kind"`
	TargetType TargetType `gorm:"size:16;not null;index" json:"target_type"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttributeDefinition) TableName() string { return "attribute_definitions" }
