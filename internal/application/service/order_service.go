package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/money"
)

// OrderService creates, replaces and deletes orders together with their
// lines, each as one transaction.
type OrderService struct {
	uow        repository.OrderUnitOfWork
	orderRepo  repository.OrderRepository
	lineRepo   repository.OrderLineRepository
	ledgerRepo repository.LedgerRepository
	itemRepo   repository.ItemRepository
	now        func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	uow repository.OrderUnitOfWork,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	ledgerRepo repository.LedgerRepository,
	itemRepo repository.ItemRepository,
) *OrderService {
	return &OrderService{
		uow:        uow,
		orderRepo:  orderRepo,
		lineRepo:   lineRepo,
		ledgerRepo: ledgerRepo,
		itemRepo:   itemRepo,
		now:        time.Now,
	}
}

// PaymentInput represents a payment update
type PaymentInput struct {
	PaidAmount    money.Lenient
	PaymentMethod string
	PaymentStatus string
}

// CreateOrder validates input and persists the header and its lines atomically
func (s *OrderService) CreateOrder(ctx context.Context, input *OrderInput, strict bool) (*entity.Order, error) {
	order, ledger, err := s.prepare(ctx, input, strict)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(tx repository.OrderTx) error {
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		return insertLines(ctx, tx.Lines(), order)
	})
	if err != nil {
		return nil, s.translateError(ctx, "create", order.OrderNumber, err)
	}

	order.PartyName = ledger.PartyName
	slog.InfoContext(ctx, "order created",
		"order_id", order.ID, "order_number", order.OrderNumber,
		"lines", order.ItemsCount, "total_amount", order.TotalAmount.String())
	return order, nil
}

// ReplaceOrder overwrites the header of id and swaps its whole line set
func (s *OrderService) ReplaceOrder(ctx context.Context, id uuid.UUID, input *OrderInput, strict bool) (*entity.Order, error) {
	order, _, err := s.prepare(ctx, input, strict)
	if err != nil {
		return nil, err
	}
	order.ID = id

	err = s.uow.Do(ctx, func(tx repository.OrderTx) error {
		affected, err := tx.Orders().UpdateHeader(ctx, order)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewNotFoundError("Order")
		}
		if _, err := tx.Lines().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		return insertLines(ctx, tx.Lines(), order)
	})
	if err != nil {
		return nil, s.translateError(ctx, "replace", order.OrderNumber, err)
	}

	slog.InfoContext(ctx, "order replaced", "order_id", id, "order_number", order.OrderNumber, "lines", order.ItemsCount)
	return s.GetOrder(ctx, id)
}

// DeleteOrder removes the lines of id and then its header
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(tx repository.OrderTx) error {
		if _, err := tx.Lines().DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		affected, err := tx.Orders().Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewNotFoundError("Order")
		}
		return nil
	})
	if err != nil {
		return s.translateError(ctx, "delete", id.String(), err)
	}

	slog.InfoContext(ctx, "order deleted", "order_id", id)
	return nil
}

// GetOrder retrieves an order with its party, district, lines and items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	order.Enrich()
	return order, nil
}

// ListOrders returns every header, newest first, with party name and line count
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	ids := make([]uuid.UUID, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	counts, err := s.lineRepo.CountByOrderIDs(ctx, ids)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	for i := range orders {
		orders[i].Enrich()
		orders[i].ItemsCount = counts[orders[i].ID]
	}
	return orders, nil
}

// UpdatePayment records a payment and derives the balance and payment status
// from the stored total inside one transaction.
func (s *OrderService) UpdatePayment(ctx context.Context, id uuid.UUID, input *PaymentInput) (*entity.Order, error) {
	if err := validatePayment(input.PaidAmount.Decimal, input.PaymentStatus); err != nil {
		return nil, err
	}

	err := s.uow.Do(ctx, func(tx repository.OrderTx) error {
		order, err := tx.Orders().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}

		order.ApplyPayment(input.PaidAmount.Decimal, strings.TrimSpace(input.PaymentMethod), enum.PaymentStatus(input.PaymentStatus))
		affected, err := tx.Orders().UpdatePayment(ctx, order)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperror.NewNotFoundError("Order")
		}
		return nil
	})
	if err != nil {
		return nil, s.translateError(ctx, "update payment", id.String(), err)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	order.Enrich()
	return order, nil
}

// prepare resolves references and builds the order before any transaction opens
func (s *OrderService) prepare(ctx context.Context, input *OrderInput, strict bool) (*entity.Order, *entity.Ledger, error) {
	var ledger *entity.Ledger
	if input.LedgerID != nil && *input.LedgerID != uuid.Nil {
		var err error
		ledger, err = s.ledgerRepo.GetByID(ctx, *input.LedgerID)
		if err != nil {
			return nil, nil, apperror.NewStorageError(err)
		}
		if ledger == nil {
			return nil, nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "ledger_id", Message: "party not found"},
			})
		}
	}

	items, err := s.itemRepo.GetByIDs(ctx, input.itemIDs())
	if err != nil {
		return nil, nil, apperror.NewStorageError(err)
	}
	known := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}

	order, err := BuildOrder(input, known, strict, s.now())
	if err != nil {
		return nil, nil, err
	}
	return order, ledger, nil
}

func insertLines(ctx context.Context, lines repository.OrderLineRepository, order *entity.Order) error {
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
		if err := lines.Create(ctx, &order.Lines[i]); err != nil {
			return err
		}
	}
	return nil
}

// translateError maps a failed, rolled back operation onto an application error
func (s *OrderService) translateError(ctx context.Context, op, ref string, err error) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrDuplicateKey):
		slog.WarnContext(ctx, "order number already taken", "op", op, "order_number", ref)
		return apperror.NewDuplicateOrderNumberError(ref)
	case errors.Is(err, repository.ErrReferenced):
		slog.WarnContext(ctx, "order references a missing party or item", "op", op, "ref", ref, "error", err)
		return apperror.NewInvalidInputError("Order references a party or item that no longer exists")
	default:
		slog.ErrorContext(ctx, "order transaction rolled back", "op", op, "ref", ref, "error", err)
		return apperror.NewStorageError(err)
	}
}
