package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultItemType = "Stock"

// Item is a stock catalog entry. Orders never change its quantities.
type Item struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ItemCode          string            `gorm:"size:50;uniqueIndex;not null" json:"item_code"`
	ItemName          string            `gorm:"size:255;not null" json:"item_name"`
	ItemCategory      *string           `gorm:"size:100" json:"item_category,omitempty"`
	StockGroup        *string           `gorm:"size:100" json:"stock_group,omitempty"`
	UnitOfMeasure     *string           `gorm:"size:20" json:"unit_of_measure,omitempty"`
	HSNCode           *string           `gorm:"column:hsn_code;size:20" json:"hsn_code,omitempty"`
	GSTRate           decimal.Decimal   `gorm:"column:gst_rate;type:decimal(5,2);default:0" json:"gst_rate"`
	CGSTRate          decimal.Decimal   `gorm:"column:cgst_rate;type:decimal(5,2);default:0" json:"cgst_rate"`
	SGSTRate          decimal.Decimal   `gorm:"column:sgst_rate;type:decimal(5,2);default:0" json:"sgst_rate"`
	IGSTRate          decimal.Decimal   `gorm:"column:igst_rate;type:decimal(5,2);default:0" json:"igst_rate"`
	ItemType          string            `gorm:"size:20;default:'Stock'" json:"item_type"`
	OpeningQuantity   decimal.Decimal   `gorm:"type:decimal(12,3);default:0" json:"opening_quantity"`
	OpeningValue      decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"opening_value"`
	MinimumStockLevel decimal.Decimal   `gorm:"type:decimal(12,3);default:0" json:"minimum_stock_level"`
	StockQuantity     decimal.Decimal   `gorm:"type:decimal(12,3);default:0" json:"stock_quantity"`
	ActiveStatus      enum.ActiveStatus `gorm:"size:20;default:'Active'" json:"active_status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.ItemType == "" {
		i.ItemType = DefaultItemType
	}
	if i.ActiveStatus == "" {
		i.ActiveStatus = enum.ActiveStatusActive
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
