package inventory

type CreateAssetInput struct {
	AssetModelID uint64 `json:"asset_model_id" validate:"required"`
	SerialNumber string `json:"serial_number"`
	// Optional; a random tag is generated when empty.
	InventoryTag string  `json:"inventory_tag"`
	RoomID       *uint64 `json:"room_id"`
}

type CreateStockItemInput struct {
	StockItemModelID uint64  `json:"stock_item_model_id" validate:"required"`
	SerialNumber     string  `json:"serial_number"`
	RoomID           *uint64 `json:"room_id"`
}

type CreateConsumableInput struct {
	ConsumableModelID uint64  `json:"consumable_model_id" validate:"required"`
	RoomID            *uint64 `json:"room_id"`
	Quantity          float64 `json:"quantity" validate:"gte=0"`
}

type AssignInput struct {
	PersonID   uint64 `json:"person_id" validate:"required"`
	TargetType string `json:"target_type" validate:"required"`
	TargetID   uint64 `json:"target_id" validate:"required"`
}

type MoveInput struct {
	TargetType string `json:"target_type" validate:"required"`
	TargetID   uint64 `json:"target_id" validate:"required"`
	ToRoomID   uint64 `json:"to_room_id" validate:"required"`
	Note       string `json:"note"`
}

type ReportProblemInput struct {
	AssetID     uint64 `json:"asset_id" validate:"required"`
	Description string `json:"description" validate:"required"`
}
