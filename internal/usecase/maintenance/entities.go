package maintenance

import "time"

type CreateMaintenanceInput struct {
	AssetID           uint64 `json:"asset_id"`
	PerformerPersonID uint64 `json:"performer_person_id"`
	ChiefPersonID     uint64 `json:"chief_person_id"`
	Description       string `json:"description"`
	AttachmentURL     string `json:"attachment_url"`
}

type UpdateMaintenanceInput struct {
	Approved      *bool   `json:"approved"`
	Description   *string `json:"description"`
	Success       *bool   `json:"success"`
	AttachmentURL *string `json:"attachment_url"`
	Close         bool    `json:"close"`
}

type CreateStepInput struct {
	TypicalStepID *uint64 `json:"typical_step_id"`
	PersonID      uint64  `json:"person_id"`
	Ordinal       int     `json:"ordinal"`
	// Optional; defaults to "started". Must be a known status string.
	Status string `json:"status"`
}

type UpdateStepInput struct {
	Status   *string `json:"status"`
	PersonID *uint64 `json:"person_id"`
	Success  *bool   `json:"success"`
}

// AttributeChangeInput mirrors the wide-column wire shape; exactly one
// value_* field must be set.
type AttributeChangeInput struct {
	TargetType string     `json:"target_type"`
	TargetID   *uint64    `json:"target_id"`
	DefID      uint64     `json:"attribute_definition_id"`
	ValString  *string    `json:"value_string"`
	ValBool    *bool      `json:"value_bool"`
	ValDate    *time.Time `json:"value_date"`
	ValNumber  *float64   `json:"value_number"`
}

type CreateItemRequestInput struct {
	RequestType                string  `json:"request_type"`
	RequestedStockItemModelID  *uint64 `json:"requested_stock_item_model_id"`
	RequestedConsumableModelID *uint64 `json:"requested_consumable_model_id"`
	StockItemID                *uint64 `json:"stock_item_id"`
	ConsumableID               *uint64 `json:"consumable_id"`
	SourceRoomID               *uint64 `json:"source_room_id"`
	DestinationRoomID          *uint64 `json:"destination_room_id"`
	Note                       string  `json:"note"`
}

type FulfillItemRequestInput struct {
	StockItemID       *uint64 `json:"stock_item_id"`
	ConsumableID      *uint64 `json:"consumable_id"`
	SourceRoomID      *uint64 `json:"source_room_id"`
	DestinationRoomID *uint64 `json:"destination_room_id"`
	Note              string  `json:"note"`
}
