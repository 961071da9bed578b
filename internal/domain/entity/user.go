package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an operator account
type User struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Username     string            `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        *string           `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Password     string            `gorm:"size:255;not null" json:"-"`
	FullName     *string           `gorm:"size:100" json:"full_name,omitempty"`
	Role         string            `gorm:"size:20;default:'user'" json:"role"`
	DistrictID   *uuid.UUID        `gorm:"type:uuid;index" json:"district_id,omitempty"`
	ActiveStatus enum.ActiveStatus `gorm:"size:20;default:'Active'" json:"active_status"`
	LastLoginAt  *time.Time        `json:"last_login_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Relationships
	District *District `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"district,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.ActiveStatus == "" {
		u.ActiveStatus = enum.ActiveStatusActive
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may sign in
func (u *User) IsActive() bool {
	return u.ActiveStatus != enum.ActiveStatusInactive
}
