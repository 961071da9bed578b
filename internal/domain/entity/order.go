package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/pkg/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultPaymentMethod = "Pending"

// MoneyScale is the number of decimal places stored for every money column.
const MoneyScale = 2

// Order is the header of a multi-line sales order
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string             `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	LedgerID      *uuid.UUID         `gorm:"type:uuid;index" json:"ledger_id"`
	OrderDate     time.Time          `gorm:"type:date;not null" json:"order_date"`
	DeliveryDate  *time.Time         `gorm:"type:date" json:"delivery_date,omitempty"`
	Status        enum.OrderStatus   `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"paid_amount"`
	BalanceDue    decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"balance_due"`
	Remarks       *string            `gorm:"type:text" json:"remarks,omitempty"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Read-side enrichment, never persisted
	PartyName  string `gorm:"-" json:"party_name,omitempty"`
	ItemsCount int    `gorm:"-" json:"items_count"`

	// Relationships
	Ledger *Ledger     `gorm:"foreignKey:LedgerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"ledger,omitempty"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// AfterFind rounds money read back from the store. SQLite keeps decimal
// columns as REAL, so values can come back with binary noise.
func (o *Order) AfterFind(tx *gorm.DB) error {
	o.TotalAmount = o.TotalAmount.Round(MoneyScale)
	o.PaidAmount = o.PaidAmount.Round(MoneyScale)
	o.BalanceDue = o.BalanceDue.Round(MoneyScale)
	return nil
}

// RecomputeTotals derives total_amount from the lines and balance_due from
// the total and the paid amount. Line amounts and the paid amount are
// rounded to the stored scale first so the total equals the sum of the
// persisted line amounts.
func (o *Order) RecomputeTotals() {
	amounts := make([]decimal.Decimal, len(o.Lines))
	for i := range o.Lines {
		o.Lines[i].Amount = o.Lines[i].Amount.Round(MoneyScale)
		amounts[i] = o.Lines[i].Amount
	}
	total := money.Sum(amounts...)
	o.TotalAmount = total
	o.PaidAmount = o.PaidAmount.Round(MoneyScale)
	o.BalanceDue = total.Sub(o.PaidAmount)
	o.ItemsCount = len(o.Lines)
}

// ApplyPayment records paid against the stored total. An empty method keeps
// the current one. An empty status is derived: Unpaid when nothing is paid,
// Paid once paid covers the total, Partial otherwise.
func (o *Order) ApplyPayment(paid decimal.Decimal, method string, status enum.PaymentStatus) {
	o.TotalAmount = o.TotalAmount.Round(MoneyScale)
	o.PaidAmount = paid.Round(MoneyScale)
	o.BalanceDue = o.TotalAmount.Sub(o.PaidAmount)
	if method != "" {
		o.PaymentMethod = method
	}

	switch {
	case status != "":
		o.PaymentStatus = status
	case !o.PaidAmount.IsPositive():
		o.PaymentStatus = enum.PaymentStatusUnpaid
	case o.PaidAmount.GreaterThanOrEqual(o.TotalAmount):
		o.PaymentStatus = enum.PaymentStatusPaid
	default:
		o.PaymentStatus = enum.PaymentStatusPartial
	}
}

// Enrich fills the read-side fields from loaded relationships.
func (o *Order) Enrich() {
	if o.Ledger != nil {
		o.PartyName = o.Ledger.PartyName
	}
	if len(o.Lines) > 0 {
		o.ItemsCount = len(o.Lines)
	}
}

// OrderLine is one item/quantity/rate/amount row owned by an order
type OrderLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	LineNo    int             `gorm:"not null" json:"line_no"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	QtyMT     decimal.Decimal `gorm:"column:qty_mt;type:decimal(10,3);not null" json:"qty_mt"`
	QtyPcs    int             `gorm:"column:qty_pcs;not null" json:"qty_pcs"`
	Rate      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Item *Item `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AfterFind rounds quantities and money read back from the store
func (l *OrderLine) AfterFind(tx *gorm.DB) error {
	l.QtyMT = l.QtyMT.Round(3)
	l.Rate = l.Rate.Round(MoneyScale)
	l.Amount = l.Amount.Round(MoneyScale)
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_items"
}

// Quantity is the billing quantity: mass when present, otherwise pieces.
func (l *OrderLine) Quantity() decimal.Decimal {
	if l.QtyMT.IsPositive() {
		return l.QtyMT
	}
	return decimal.NewFromInt(int64(l.QtyPcs))
}
