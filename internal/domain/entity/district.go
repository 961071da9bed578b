package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"gorm.io/gorm"
)

// District is a geographic/administrative zone parties and users belong to
type District struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	DistrictCode string            `gorm:"size:20;uniqueIndex;not null" json:"district_code"`
	DistrictName string            `gorm:"size:100;not null" json:"district_name"`
	State        *string           `gorm:"size:100" json:"state,omitempty"`
	PostalCode   *string           `gorm:"size:10" json:"postal_code,omitempty"`
	ZoneRegion   *string           `gorm:"size:50" json:"zone_region,omitempty"`
	ActiveStatus enum.ActiveStatus `gorm:"size:20;default:'Active'" json:"active_status"`
	Remarks      *string           `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new district
func (d *District) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.ActiveStatus == "" {
		d.ActiveStatus = enum.ActiveStatusActive
	}
	return nil
}

// TableName returns the table name for the District model
func (District) TableName() string {
	return "districts"
}
