package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/money"
	"github.com/shopspring/decimal"
)

// OrderInput is the proposed header and line set for a create or replace
type OrderInput struct {
	OrderNumber   string
	LedgerID      *uuid.UUID
	OrderDate     *time.Time
	DeliveryDate  *time.Time
	Status        string
	PaymentMethod string
	PaymentStatus string
	PaidAmount    money.Lenient
	Remarks       *string
	CreatedBy     *uuid.UUID
	Lines         []OrderLineInput
}

// OrderLineInput is one proposed line. Numeric fields are lenient: anything
// that does not parse counts as zero.
type OrderLineInput struct {
	ItemID *uuid.UUID
	QtyMT  money.Lenient
	QtyPcs money.Lenient
	Rate   money.Lenient
	Amount money.Lenient
}

// itemIDs returns the distinct item ids referenced by the input lines
func (in *OrderInput) itemIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(in.Lines))
	ids := make([]uuid.UUID, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.ItemID == nil || *l.ItemID == uuid.Nil {
			continue
		}
		if _, ok := seen[*l.ItemID]; ok {
			continue
		}
		seen[*l.ItemID] = struct{}{}
		ids = append(ids, *l.ItemID)
	}
	return ids
}

// BuildOrder validates in and derives a commit-ready order with its lines.
//
// knownItems is the set of item ids that exist in the store. In lenient mode
// lines without an item, with an unknown item or without a positive quantity
// are dropped. In strict mode each of those becomes a field error, as does a
// fractional qty_pcs or an amount that differs from rate x quantity. A
// negative rate or amount is a field error in both modes. Rate and amount
// are rounded to two places.
func BuildOrder(in *OrderInput, knownItems map[uuid.UUID]struct{}, strict bool, now time.Time) (*entity.Order, error) {
	var fieldErrors []apperror.FieldError
	addError := func(field, msg string) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: msg})
	}

	orderNumber := strings.TrimSpace(in.OrderNumber)
	if orderNumber == "" {
		addError("order_number", "order_number is required")
	}
	if in.LedgerID == nil || *in.LedgerID == uuid.Nil {
		addError("ledger_id", "ledger_id is required")
	}

	status := enum.OrderStatusPending
	if in.Status != "" {
		status = enum.OrderStatus(in.Status)
		if !status.IsValid() {
			addError("status", fmt.Sprintf("status must be %s or %s", enum.OrderStatusPending, enum.OrderStatusDispatched))
		}
	}

	paymentStatus := enum.PaymentStatusUnpaid
	if in.PaymentStatus != "" {
		paymentStatus = enum.PaymentStatus(in.PaymentStatus)
		if !paymentStatus.IsValid() {
			addError("payment_status", fmt.Sprintf("payment_status must be %s, %s or %s",
				enum.PaymentStatusUnpaid, enum.PaymentStatusPartial, enum.PaymentStatusPaid))
		}
	}

	paid := in.PaidAmount.Decimal
	if paid.IsNegative() {
		addError("paid_amount", "paid_amount must not be negative")
	}

	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = entity.DefaultPaymentMethod
	}

	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		prefix := fmt.Sprintf("items[%d].", i)

		if l.ItemID == nil || *l.ItemID == uuid.Nil {
			if strict {
				addError(prefix+"item_id", "item_id is required")
			}
			continue
		}
		if _, ok := knownItems[*l.ItemID]; !ok {
			if strict {
				addError(prefix+"item_id", "item not found")
			}
			continue
		}

		// Lenient mode truncates a fractional piece count toward zero.
		if strict && !l.QtyPcs.Decimal.Equal(l.QtyPcs.Decimal.Truncate(0)) {
			addError(prefix+"qty_pcs", "qty_pcs must be a whole number")
			continue
		}

		line := entity.OrderLine{
			ItemID: *l.ItemID,
			QtyMT:  l.QtyMT.Decimal,
			QtyPcs: int(l.QtyPcs.IntPart()),
			Rate:   l.Rate.Decimal.Round(entity.MoneyScale),
			Amount: l.Amount.Decimal.Round(entity.MoneyScale),
		}
		if !line.QtyMT.IsPositive() && line.QtyPcs <= 0 {
			if strict {
				addError(prefix+"qty_mt", "qty_mt or qty_pcs must be positive")
			}
			continue
		}

		if line.Rate.IsNegative() {
			addError(prefix+"rate", "rate must not be negative")
		}
		if line.Amount.IsNegative() {
			addError(prefix+"amount", "amount must not be negative")
		} else if strict {
			expected := line.Rate.Mul(line.Quantity()).Round(entity.MoneyScale)
			if !expected.Equal(line.Amount) {
				addError(prefix+"amount", fmt.Sprintf("amount %s does not match rate x quantity %s",
					line.Amount.StringFixed(2), expected.StringFixed(2)))
			}
		}

		line.LineNo = len(lines) + 1
		lines = append(lines, line)
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}
	if len(lines) == 0 {
		return nil, apperror.NewInvalidInputError("Order must contain at least one valid line item")
	}

	orderDate := dateOnly(now)
	if in.OrderDate != nil && !in.OrderDate.IsZero() {
		orderDate = dateOnly(*in.OrderDate)
	}
	var deliveryDate *time.Time
	if in.DeliveryDate != nil && !in.DeliveryDate.IsZero() {
		d := dateOnly(*in.DeliveryDate)
		deliveryDate = &d
	}

	order := &entity.Order{
		OrderNumber:   orderNumber,
		LedgerID:      in.LedgerID,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		Status:        status,
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
		PaidAmount:    paid,
		Remarks:       in.Remarks,
		CreatedBy:     in.CreatedBy,
		Lines:         lines,
	}
	order.RecomputeTotals()

	return order, nil
}

// dateOnly truncates t to midnight UTC of its calendar day
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// validatePayment checks the fields of a payment update
func validatePayment(paid decimal.Decimal, status string) error {
	var fieldErrors []apperror.FieldError
	if paid.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid_amount", Message: "paid_amount must not be negative"})
	}
	if status != "" && !enum.PaymentStatus(status).IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_status", Message: "unknown payment_status"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
