package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Ledger is a trading party (customer or supplier). Orders reference it.
type Ledger struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	PartyCode     string            `gorm:"size:50;uniqueIndex;not null" json:"party_code"`
	PartyName     string            `gorm:"size:255;not null" json:"party_name"`
	PartyType     enum.PartyType    `gorm:"size:20;default:'Customer'" json:"party_type"`
	Address       *string           `gorm:"type:text" json:"address,omitempty"`
	DistrictID    *uuid.UUID        `gorm:"type:uuid;index" json:"district_id,omitempty"`
	State         *string           `gorm:"size:100" json:"state,omitempty"`
	GSTIN         *string           `gorm:"column:gstin;size:20" json:"gstin,omitempty"`
	PAN           *string           `gorm:"column:pan;size:15" json:"pan,omitempty"`
	ContactPerson *string           `gorm:"size:100" json:"contact_person,omitempty"`
	MobileNumber  *string           `gorm:"size:20" json:"mobile_number,omitempty"`
	Email         *string           `gorm:"size:255" json:"email,omitempty"`
	LedgerMapping *string           `gorm:"size:100" json:"ledger_mapping,omitempty"`
	ActiveStatus  enum.ActiveStatus `gorm:"size:20;default:'Active'" json:"active_status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// Relationships
	District *District `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"district,omitempty"`
}

// BeforeCreate generates a UUID before creating a new ledger
func (l *Ledger) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.PartyType == "" {
		l.PartyType = enum.PartyTypeCustomer
	}
	if l.ActiveStatus == "" {
		l.ActiveStatus = enum.ActiveStatusActive
	}
	return nil
}

// TableName returns the table name for the Ledger model
func (Ledger) TableName() string {
	return "ledgers"
}
