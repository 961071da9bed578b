package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PartyType represents the kind of ledger party
type PartyType string

const (
	PartyTypeCustomer PartyType = "Customer"
	PartyTypeSupplier PartyType = "Supplier"
)

func (t PartyType) String() string {
	return string(t)
}

func (t PartyType) IsValid() bool {
	return t == PartyTypeCustomer || t == PartyTypeSupplier
}

func (t PartyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PartyType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PartyType(str)
	return nil
}

func (t PartyType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PartyType) Scan(value interface{}) error {
	if value == nil {
		*t = PartyTypeCustomer
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PartyType(v)
	case []byte:
		*t = PartyType(string(v))
	}
	return nil
}

// ActiveStatus is the soft on/off flag carried by every reference record
type ActiveStatus string

const (
	ActiveStatusActive   ActiveStatus = "Active"
	ActiveStatusInactive ActiveStatus = "Inactive"
)

func (s ActiveStatus) IsValid() bool {
	return s == ActiveStatusActive || s == ActiveStatusInactive
}
