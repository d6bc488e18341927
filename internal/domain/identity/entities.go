package identity

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("identity record not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrPermissionDenied = errors.New("permission denied")
)

// Role codes stored in the roles table; exact strings matter for existing data.
const (
	RoleSuperuser             = "superuser"
	RoleMaintenanceChief      = "maintenance_chief"
	RoleExploitationChief     = "exploitation_chief"
	RoleMaintenanceTechnician = "maintenance_technician"
)

type Person struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"first_name"`
	LastName  string    `gorm:"size:64;not null" json:"last_name"`
	Email     string    `gorm:"size:128" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Person) TableName() string { return "persons" }

type UserAccount struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	PersonID     uint64    `gorm:"not null;uniqueIndex" json:"person_id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"is_superuser"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserAccount) TableName() string { return "user_accounts" }

type Role struct {
	ID   uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Code string `gorm:"size:64;not null;uniqueIndex" json:"code"`
	Name string `gorm:"size:128;not null" json:"name"`
}

func (Role) TableName() string { return "roles" }

type PersonRole struct {
	ID       uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	PersonID uint64 `gorm:"not null;index;uniqueIndex:ux_person_role" json:"person_id"`
	RoleID   uint64 `gorm:"not null;index;uniqueIndex:ux_person_role" json:"role_id"`
}

func (PersonRole) TableName() string { return "person_roles" }
