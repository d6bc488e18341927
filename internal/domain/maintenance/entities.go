package maintenance

import (
	"time"

	"assetcare-backend/internal/domain/catalog"
)

// StepStatus values are stored verbatim; the exact strings (including the
// parenthesized pending variants and the capitalized "In Progress") are
// load-bearing for pre-existing data.
type StepStatus string

const (
	StatusStarted           StepStatus = "started"
	StatusPendingStockItem  StepStatus = "pending (waiting for stock item)"
	StatusPendingConsumable StepStatus = "pending (waiting for consumable)"
	StatusInProgress        StepStatus = "In Progress"
	StatusDone              StepStatus = "done"
	StatusFailed            StepStatus = "failed (to be sent to a higher level)"
)

// ParseStepStatus validates a raw status string.
func ParseStepStatus(s string) (StepStatus, error) {
	switch st := StepStatus(s); st {
	case StatusStarted, StatusPendingStockItem, StatusPendingConsumable,
		StatusInProgress, StatusDone, StatusFailed:
		return st, nil
	}
	return "", ErrInvalidStatus
}

type RequestStatus string

const (
	RequestStatusRequested RequestStatus = "requested"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusRejected  RequestStatus = "rejected"
)

// Maintenance is one repair/inspection episode on an asset.
type Maintenance struct {
	ID                uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	AssetID           uint64     `gorm:"not null;index" json:"asset_id"`
	PerformerPersonID uint64     `gorm:"not null;index" json:"performer_person_id"`
	ChiefPersonID     uint64     `gorm:"not null" json:"chief_person_id"`
	Approved          bool       `gorm:"not null;default:false" json:"approved"`
	Status            string     `gorm:"size:64" json:"status"`
	Description       string     `gorm:"type:text" json:"description"`
	StartAt           time.Time  `gorm:"not null" json:"start_at"`
	EndAt             *time.Time `json:"end_at,omitempty"`
	Success           *bool      `json:"success,omitempty"`
	AttachmentURL     string     `gorm:"type:text" json:"attachment_url,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Maintenance) TableName() string { return "maintenances" }

// Closed reports whether the episode is terminal.
func (m *Maintenance) Closed() bool { return m.EndAt != nil }

// MaintenanceTypicalStep is reusable template data, read-only at runtime.
type MaintenanceTypicalStep struct {
	ID            uint64  `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	OperationType string  `gorm:"size:64" json:"operation_type"`
	EstimatedCost float64 `gorm:"not null;default:0" json:"estimated_cost"`
	EstimatedHrs  float64 `gorm:"column:estimated_hours;not null;default:0" json:"estimated_hours"`
}

func (MaintenanceTypicalStep) TableName() string { return "maintenance_typical_steps" }

// MaintenanceStep is one ordered unit of work inside a maintenance,
// assigned to exactly one person at a time.
type MaintenanceStep struct {
	ID            uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	MaintenanceID uint64     `gorm:"not null;index" json:"maintenance_id"`
	TypicalStepID *uint64    `gorm:"index" json:"typical_step_id,omitempty"`
	PersonID      uint64     `gorm:"not null;index" json:"person_id"`
	Ordinal       int        `gorm:"not null;default:0" json:"ordinal"`
	Status        StepStatus `gorm:"size:64;not null" json:"status"`
	Success       *bool      `json:"success,omitempty"`
	StartAt       time.Time  `gorm:"not null" json:"start_at"`
	EndAt         *time.Time `json:"end_at,omitempty"`

	// Cross-references into inventory condition history; never owned here.
	AssetConditionHistoryID      *uint64 `json:"asset_condition_history_id,omitempty"`
	StockItemConditionHistoryID  *uint64 `json:"stock_item_condition_history_id,omitempty"`
	ConsumableConditionHistoryID *uint64 `json:"consumable_condition_history_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MaintenanceStep) TableName() string { return "maintenance_steps" }

// MaintenanceStepAttributeChange is a queued edit to a target entity's
// attribute value. Immutable once created except AppliedAt.
type MaintenanceStepAttributeChange struct {
	ID                    uint64             `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	StepID                uint64             `gorm:"not null;index" json:"step_id"`
	TargetType            catalog.TargetType `gorm:"size:16;not null" json:"target_type"`
	TargetID              uint64             `gorm:"not null" json:"target_id"`
	AttributeDefinitionID uint64             `gorm:"not null" json:"attribute_definition_id"`
	ValueString           *string            `gorm:"size:512" json:"value_string,omitempty"`
	ValueBool             *bool              `json:"value_bool,omitempty"`
	ValueDate             *time.Time         `json:"value_date,omitempty"`
	ValueNumber           *float64           `json:"value_number,omitempty"`
	CreatedByPersonID     uint64             `gorm:"not null" json:"created_by_person_id"`
	CreatedAt             time.Time          `gorm:"autoCreateTime" json:"created_at"`
	AppliedAt             *time.Time         `gorm:"index" json:"applied_at,omitempty"`
}

func (MaintenanceStepAttributeChange) TableName() string {
	return "maintenance_step_attribute_changes"
}

// Value decodes the wide columns into the tagged variant.
func (c *MaintenanceStepAttributeChange) Value() (catalog.AttrValue, error) {
	return catalog.DecodeColumns(c.ValueString, c.ValueBool, c.ValueDate, c.ValueNumber)
}

// SetValue encodes v into the wide columns.
func (c *MaintenanceStepAttributeChange) SetValue(v catalog.AttrValue) {
	c.ValueString, c.ValueBool, c.ValueDate, c.ValueNumber = v.EncodeColumns()
}

// Applied reports whether this change has already been written through.
func (c *MaintenanceStepAttributeChange) Applied() bool { return c.AppliedAt != nil }

// MaintenanceStepItemRequest asks the warehouse for a stock item or
// consumable needed to complete a step.
type MaintenanceStepItemRequest struct {
	ID          uint64             `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	StepID      uint64             `gorm:"not null;index" json:"step_id"`
	RequestType catalog.TargetType `gorm:"size:16;not null" json:"request_type"`
	Status      RequestStatus      `gorm:"size:16;not null" json:"status"`

	RequestedByPersonID uint64     `gorm:"not null" json:"requested_by_person_id"`
	RequestedAt         time.Time  `gorm:"not null" json:"requested_at"`
	FulfilledByPersonID *uint64    `json:"fulfilled_by_person_id,omitempty"`
	FulfilledAt         *time.Time `json:"fulfilled_at,omitempty"`
	RejectedByPersonID  *uint64    `json:"rejected_by_person_id,omitempty"`
	RejectedAt          *time.Time `json:"rejected_at,omitempty"`

	// Pre-fulfillment: what kind of thing is wanted.
	RequestedStockItemModelID  *uint64 `json:"requested_stock_item_model_id,omitempty"`
	RequestedConsumableModelID *uint64 `json:"requested_consumable_model_id,omitempty"`
	// Post-fulfillment (or pre-named by the technician): the concrete thing.
	StockItemID  *uint64 `json:"stock_item_id,omitempty"`
	ConsumableID *uint64 `json:"consumable_id,omitempty"`

	SourceRoomID      *uint64 `json:"source_room_id,omitempty"`
	DestinationRoomID *uint64 `json:"destination_room_id,omitempty"`
	Note              string  `gorm:"type:text" json:"note"`
}

func (MaintenanceStepItemRequest) TableName() string { return "maintenance_step_item_requests" }

// Open reports whether the request can still be fulfilled or rejected.
func (r *MaintenanceStepItemRequest) Open() bool { return r.Status == RequestStatusRequested }
