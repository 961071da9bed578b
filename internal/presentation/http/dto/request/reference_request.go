package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
)

// CreateDistrictRequest represents a district creation request
type CreateDistrictRequest struct {
	DistrictCode string  `json:"district_code" binding:"required,max=20"`
	DistrictName string  `json:"district_name" binding:"required,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=10"`
	ZoneRegion   *string `json:"zone_region" binding:"omitempty,max=50"`
	ActiveStatus *string `json:"active_status" binding:"omitempty,oneof=Active Inactive"`
	Remarks      *string `json:"remarks"`
}

// ToInput converts the request into service input
func (r *CreateDistrictRequest) ToInput() *service.DistrictInput {
	return &service.DistrictInput{
		DistrictCode: &r.DistrictCode,
		DistrictName: &r.DistrictName,
		State:        r.State,
		PostalCode:   r.PostalCode,
		ZoneRegion:   r.ZoneRegion,
		ActiveStatus: r.ActiveStatus,
		Remarks:      r.Remarks,
	}
}

// UpdateDistrictRequest represents a district update request
type UpdateDistrictRequest struct {
	DistrictCode *string `json:"district_code" binding:"omitempty,min=1,max=20"`
	DistrictName *string `json:"district_name" binding:"omitempty,min=1,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=10"`
	ZoneRegion   *string `json:"zone_region" binding:"omitempty,max=50"`
	ActiveStatus *string `json:"active_status" binding:"omitempty,oneof=Active Inactive"`
	Remarks      *string `json:"remarks"`
}

// ToInput converts the request into service input
func (r *UpdateDistrictRequest) ToInput() *service.DistrictInput {
	return &service.DistrictInput{
		DistrictCode: r.DistrictCode,
		DistrictName: r.DistrictName,
		State:        r.State,
		PostalCode:   r.PostalCode,
		ZoneRegion:   r.ZoneRegion,
		ActiveStatus: r.ActiveStatus,
		Remarks:      r.Remarks,
	}
}

// LedgerRequest represents a ledger create or update request. Create
// additionally requires party_code and party_name.
type LedgerRequest struct {
	PartyCode     *string    `json:"party_code" binding:"omitempty,min=1,max=50"`
	PartyName     *string    `json:"party_name" binding:"omitempty,min=1,max=255"`
	PartyType     *string    `json:"party_type" binding:"omitempty,oneof=Customer Supplier"`
	Address       *string    `json:"address"`
	DistrictID    *uuid.UUID `json:"district_id"`
	State         *string    `json:"state" binding:"omitempty,max=100"`
	GSTIN         *string    `json:"gstin" binding:"omitempty,max=20"`
	PAN           *string    `json:"pan" binding:"omitempty,max=15"`
	ContactPerson *string    `json:"contact_person" binding:"omitempty,max=100"`
	MobileNumber  *string    `json:"mobile_number" binding:"omitempty,max=20"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	LedgerMapping *string    `json:"ledger_mapping" binding:"omitempty,max=100"`
	ActiveStatus  *string    `json:"active_status" binding:"omitempty,oneof=Active Inactive"`
}

// ToInput converts the request into service input
func (r *LedgerRequest) ToInput() *service.LedgerInput {
	return &service.LedgerInput{
		PartyCode:     r.PartyCode,
		PartyName:     r.PartyName,
		PartyType:     r.PartyType,
		Address:       r.Address,
		DistrictID:    r.DistrictID,
		State:         r.State,
		GSTIN:         r.GSTIN,
		PAN:           r.PAN,
		ContactPerson: r.ContactPerson,
		MobileNumber:  r.MobileNumber,
		Email:         r.Email,
		LedgerMapping: r.LedgerMapping,
		ActiveStatus:  r.ActiveStatus,
	}
}
