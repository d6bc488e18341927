package inventory

import (
	"errors"
	"time"

	"assetcare-backend/internal/domain/catalog"
)

var (
	ErrNotFound          = errors.New("inventory record not found")
	ErrAlreadyAssigned   = errors.New("item already assigned")
	ErrAlreadyReturned   = errors.New("assignment already returned")
	ErrAlreadyResolved   = errors.New("problem report already resolved")
	ErrUnknownTargetType = errors.New("unknown target type")
)

type Asset struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	AssetModelID uint64    `gorm:"not null;index" json:"asset_model_id"`
	SerialNumber string    `gorm:"size:128;index" json:"serial_number"`
	InventoryTag string    `gorm:"size:64;uniqueIndex" json:"inventory_tag"`
	RoomID       *uint64   `gorm:"index" json:"room_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string { return "assets" }

type StockItem struct {
	ID               uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	StockItemModelID uint64    `gorm:"not null;index" json:"stock_item_model_id"`
	SerialNumber     string    `gorm:"size:128;index" json:"serial_number"`
	RoomID           *uint64   `gorm:"index" json:"room_id,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StockItem) TableName() string { return "stock_items" }

type Consumable struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	ConsumableModelID uint64    `gorm:"not null;index" json:"consumable_model_id"`
	RoomID            *uint64   `gorm:"index" json:"room_id,omitempty"`
	Quantity          float64   `gorm:"not null;default:0" json:"quantity"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Consumable) TableName() string { return "consumables" }

// Assignment tracks who holds what. Active=false rows are the history.
type Assignment struct {
	ID         uint64             `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	PersonID   uint64             `gorm:"not null;index" json:"person_id"`
	TargetType catalog.TargetType `gorm:"size:16;not null;index:idx_assignment_target" json:"target_type"`
	TargetID   uint64             `gorm:"not null;index:idx_assignment_target" json:"target_id"`
	Active     bool               `gorm:"not null;default:true;index" json:"active"`
	AssignedAt time.Time          `gorm:"not null" json:"assigned_at"`
	ReturnedAt *time.Time         `json:"returned_at,omitempty"`
}

func (Assignment) TableName() string { return "assignments" }

type Movement struct {
	ID               uint64             `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	TargetType       catalog.TargetType `gorm:"size:16;not null;index:idx_movement_target" json:"target_type"`
	TargetID         uint64             `gorm:"not null;index:idx_movement_target" json:"target_id"`
	FromRoomID       *uint64            `json:"from_room_id,omitempty"`
	ToRoomID         uint64             `gorm:"not null" json:"to_room_id"`
	MovedByPersonID  uint64             `gorm:"not null" json:"moved_by_person_id"`
	MovedAt          time.Time          `gorm:"not null" json:"moved_at"`
	Note             string             `gorm:"type:text" json:"note"`
}

func (Movement) TableName() string { return "movements" }

type ProblemReport struct {
	ID               uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	AssetID          uint64     `gorm:"not null;index" json:"asset_id"`
	ReporterPersonID uint64     `gorm:"not null" json:"reporter_person_id"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Resolved         bool       `gorm:"not null;default:false;index" json:"resolved"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (ProblemReport) TableName() string { return "problem_reports" }

// ConditionHistory records observed condition of an entity; maintenance
// steps cross-reference these rows but never own them.
type ConditionHistory struct {
	ID              uint64             `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	TargetType      catalog.TargetType `gorm:"size:16;not null;index:idx_condition_target" json:"target_type"`
	TargetID        uint64             `gorm:"not null;index:idx_condition_target" json:"target_id"`
	Condition       string             `gorm:"size:128;not null" json:"condition"`
	NotedByPersonID uint64             `gorm:"not null" json:"noted_by_person_id"`
	NotedAt         time.Time          `gorm:"not null" json:"noted_at"`
}

func (ConditionHistory) TableName() string { return "condition_history" }
