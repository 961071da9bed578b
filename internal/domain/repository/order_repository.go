package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
)

// OrderRepository defines the interface for order header operations
type OrderRepository interface {
	// Create inserts the header only. Lines are written through OrderLineRepository.
	// Returns ErrDuplicateKey when the order number is taken.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetForUpdate loads the header and locks its row until the surrounding
	// transaction ends. Dialects without row locks read it unlocked.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithLines loads the header, its ledger and district, and every line
	// with its item, lines ordered by line number.
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// UpdateHeader overwrites the mutable header columns of order.ID and
	// returns the number of rows affected.
	UpdateHeader(ctx context.Context, order *entity.Order) (int64, error)
	// UpdatePayment writes the payment columns of order.ID as they are set on
	// order: paid_amount, balance_due, payment_method and payment_status.
	UpdatePayment(ctx context.Context, order *entity.Order) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// List returns headers newest first with their ledger loaded.
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, error)
	// ListOrderNumbers returns every order number starting with prefix.
	ListOrderNumbers(ctx context.Context, prefix string) ([]string, error)
}

// OrderFilterParams contains optional filters for order listing
type OrderFilterParams struct {
	Search        string
	Status        *enum.OrderStatus
	PaymentStatus *enum.PaymentStatus
	LedgerID      *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

// OrderLineRepository defines the interface for order line operations
type OrderLineRepository interface {
	Create(ctx context.Context, line *entity.OrderLine) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
	// CountByOrderIDs returns the number of lines per order.
	CountByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CountByItemID(ctx context.Context, itemID uuid.UUID) (int64, error)
}

// OrderTx exposes repositories bound to one open transaction
type OrderTx interface {
	Orders() OrderRepository
	Lines() OrderLineRepository
}

// OrderUnitOfWork runs fn inside a single transaction. The transaction
// commits when fn returns nil and rolls back when fn returns an error or
// panics.
type OrderUnitOfWork interface {
	Do(ctx context.Context, fn func(tx OrderTx) error) error
}
