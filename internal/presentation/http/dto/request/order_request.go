package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/money"
)

const dateLayout = "2006-01-02"

// OrderRequest is the body of a create or replace order request. Line
// numbers accept numbers, numeric strings or garbage, which counts as zero.
type OrderRequest struct {
	OrderNumber   string             `json:"order_number"`
	LedgerID      string             `json:"ledger_id"`
	OrderDate     string             `json:"order_date"`
	DeliveryDate  string             `json:"delivery_date"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	PaymentStatus string             `json:"payment_status"`
	PaidAmount    money.Lenient      `json:"paid_amount"`
	Remarks       *string            `json:"remarks"`
	Items         []OrderLineRequest `json:"items"`
}

// OrderLineRequest is one line of an order request
type OrderLineRequest struct {
	ItemID string        `json:"item_id"`
	QtyMT  money.Lenient `json:"qty_mt"`
	QtyPcs money.Lenient `json:"qty_pcs"`
	Rate   money.Lenient `json:"rate"`
	Amount money.Lenient `json:"amount"`
}

// ToInput converts the request into service input. Malformed ids and dates
// are reported as field errors. A malformed line item id leaves the line
// without an item.
func (r *OrderRequest) ToInput(createdBy *uuid.UUID) (*service.OrderInput, error) {
	var fieldErrors []apperror.FieldError

	in := &service.OrderInput{
		OrderNumber:   r.OrderNumber,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		PaidAmount:    r.PaidAmount,
		Remarks:       r.Remarks,
		CreatedBy:     createdBy,
	}

	if s := strings.TrimSpace(r.LedgerID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "ledger_id", Message: "ledger_id must be a UUID"})
		} else {
			in.LedgerID = &id
		}
	}

	var err error
	if in.OrderDate, err = parseDate(r.OrderDate); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "order_date", Message: "order_date must be YYYY-MM-DD"})
	}
	if in.DeliveryDate, err = parseDate(r.DeliveryDate); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery_date", Message: "delivery_date must be YYYY-MM-DD"})
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	in.Lines = make([]service.OrderLineInput, len(r.Items))
	for i, item := range r.Items {
		line := service.OrderLineInput{
			QtyMT:  item.QtyMT,
			QtyPcs: item.QtyPcs,
			Rate:   item.Rate,
			Amount: item.Amount,
		}
		if id, err := uuid.Parse(strings.TrimSpace(item.ItemID)); err == nil {
			line.ItemID = &id
		}
		in.Lines[i] = line
	}

	return in, nil
}

// PaymentRequest is the body of a payment update
type PaymentRequest struct {
	PaidAmount    money.Lenient `json:"paid_amount"`
	PaymentMethod string        `json:"payment_method"`
	PaymentStatus string        `json:"payment_status"`
}

// ToInput converts the request into service input
func (r *PaymentRequest) ToInput() *service.PaymentInput {
	return &service.PaymentInput{
		PaidAmount:    r.PaidAmount,
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
		PaymentStatus: strings.TrimSpace(r.PaymentStatus),
	}
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. Empty yields nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
