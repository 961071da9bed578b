package request

import (
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	ItemCode          string           `json:"item_code" binding:"required,max=50"`
	ItemName          string           `json:"item_name" binding:"required,max=255"`
	ItemCategory      *string          `json:"item_category" binding:"omitempty,max=100"`
	StockGroup        *string          `json:"stock_group" binding:"omitempty,max=100"`
	UnitOfMeasure     *string          `json:"unit_of_measure" binding:"omitempty,max=20"`
	HSNCode           *string          `json:"hsn_code" binding:"omitempty,max=20"`
	GSTRate           *decimal.Decimal `json:"gst_rate"`
	CGSTRate          *decimal.Decimal `json:"cgst_rate"`
	SGSTRate          *decimal.Decimal `json:"sgst_rate"`
	IGSTRate          *decimal.Decimal `json:"igst_rate"`
	ItemType          *string          `json:"item_type" binding:"omitempty,max=20"`
	OpeningQuantity   *decimal.Decimal `json:"opening_quantity"`
	OpeningValue      *decimal.Decimal `json:"opening_value"`
	MinimumStockLevel *decimal.Decimal `json:"minimum_stock_level"`
	ActiveStatus      *string          `json:"active_status" binding:"omitempty,oneof=Active Inactive"`
}

// ToInput converts the request into service input
func (r *CreateItemRequest) ToInput() *service.ItemInput {
	return &service.ItemInput{
		ItemCode:          &r.ItemCode,
		ItemName:          &r.ItemName,
		ItemCategory:      r.ItemCategory,
		StockGroup:        r.StockGroup,
		UnitOfMeasure:     r.UnitOfMeasure,
		HSNCode:           r.HSNCode,
		GSTRate:           r.GSTRate,
		CGSTRate:          r.CGSTRate,
		SGSTRate:          r.SGSTRate,
		IGSTRate:          r.IGSTRate,
		ItemType:          r.ItemType,
		OpeningQuantity:   r.OpeningQuantity,
		OpeningValue:      r.OpeningValue,
		MinimumStockLevel: r.MinimumStockLevel,
		ActiveStatus:      r.ActiveStatus,
	}
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	ItemCode          *string          `json:"item_code" binding:"omitempty,min=1,max=50"`
	ItemName          *string          `json:"item_name" binding:"omitempty,min=1,max=255"`
	ItemCategory      *string          `json:"item_category" binding:"omitempty,max=100"`
	StockGroup        *string          `json:"stock_group" binding:"omitempty,max=100"`
	UnitOfMeasure     *string          `json:"unit_of_measure" binding:"omitempty,max=20"`
	HSNCode           *string          `json:"hsn_code" binding:"omitempty,max=20"`
	GSTRate           *decimal.Decimal `json:"gst_rate"`
	CGSTRate          *decimal.Decimal `json:"cgst_rate"`
	SGSTRate          *decimal.Decimal `json:"sgst_rate"`
	IGSTRate          *decimal.Decimal `json:"igst_rate"`
	ItemType          *string          `json:"item_type" binding:"omitempty,max=20"`
	OpeningQuantity   *decimal.Decimal `json:"opening_quantity"`
	OpeningValue      *decimal.Decimal `json:"opening_value"`
	MinimumStockLevel *decimal.Decimal `json:"minimum_stock_level"`
	ActiveStatus      *string          `json:"active_status" binding:"omitempty,oneof=Active Inactive"`
}

// ToInput converts the request into service input
func (r *UpdateItemRequest) ToInput() *service.ItemInput {
	return &service.ItemInput{
		ItemCode:          r.ItemCode,
		ItemName:          r.ItemName,
		ItemCategory:      r.ItemCategory,
		StockGroup:        r.StockGroup,
		UnitOfMeasure:     r.UnitOfMeasure,
		HSNCode:           r.HSNCode,
		GSTRate:           r.GSTRate,
		CGSTRate:          r.CGSTRate,
		SGSTRate:          r.SGSTRate,
		IGSTRate:          r.IGSTRate,
		ItemType:          r.ItemType,
		OpeningQuantity:   r.OpeningQuantity,
		OpeningValue:      r.OpeningValue,
		MinimumStockLevel: r.MinimumStockLevel,
		ActiveStatus:      r.ActiveStatus,
	}
}
