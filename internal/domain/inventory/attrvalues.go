package inventory

import "time"

// Per-type attribute value tables. One row per (target, definition) pair
// with exactly one value column populated; the storage-boundary encoding of
// catalog.AttrValue.

type AssetAttributeValue struct {
	ID                    uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	AssetID               uint64     `gorm:"not null;uniqueIndex:ux_asset_attr" json:"asset_id"`
	AttributeDefinitionID uint64     `gorm:"not null;uniqueIndex:ux_asset_attr" json:"attribute_definition_id"`
	ValueString           *string    `gorm:"size:512" json:"value_string,omitempty"`
	ValueBool             *bool      `json:"value_bool,omitempty"`
	ValueDate             *time.Time `json:"value_date,omitempty"`
	ValueNumber           *float64   `json:"value_number,omitempty"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssetAttributeValue) TableName() string { return "asset_attribute_values" }

type StockItemAttributeValue struct {
	ID                    uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	StockItemID           uint64     `gorm:"not null;uniqueIndex:ux_stock_item_attr" json:"stock_item_id"`
	AttributeDefinitionID uint64     `gorm:"not null;uniqueIndex:ux_stock_item_attr" json:"attribute_definition_id"`
	ValueString           *string    `gorm:"size:512" json:"value_string,omitempty"`
	ValueBool             *bool      `json:"value_bool,omitempty"`
	ValueDate             *time.Time `json:"value_date,omitempty"`
	ValueNumber           *float64   `json:"value_number,omitempty"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StockItemAttributeValue) TableName() string { return "stock_item_attribute_values" }

type ConsumableAttributeValue struct {
	ID                    uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	ConsumableID          uint64     `gorm:"not null;uniqueIndex:ux_consumable_attr" json:"consumable_id"`
	AttributeDefinitionID uint64     `gorm:"not null;uniqueIndex:ux_consumable_attr" json:"attribute_definition_id"`
	ValueString           *string    `gorm:"size:512" json:"value_string,omitempty"`
	ValueBool             *bool      `json:"value_bool,omitempty"`
	ValueDate             *time.Time `json:"value_date,omitempty"`
	ValueNumber           *float64   `json:"value_number,omitempty"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConsumableAttributeValue) TableName() string { return "consumable_attribute_values" }
