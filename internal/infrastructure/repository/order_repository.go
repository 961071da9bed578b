package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error)
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Ledger").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Ledger.District").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Preload("Lines.Item").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateHeader(ctx context.Context, order *entity.Order) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"order_number":   order.OrderNumber,
			"ledger_id":      order.LedgerID,
			"order_date":     order.OrderDate,
			"delivery_date":  order.DeliveryDate,
			"status":         order.Status,
			"payment_method": order.PaymentMethod,
			"payment_status": order.PaymentStatus,
			"total_amount":   order.TotalAmount,
			"paid_amount":    order.PaidAmount,
			"balance_due":    order.BalanceDue,
			"remarks":        order.Remarks,
		})
	return result.RowsAffected, translateError(result.Error)
}

func (r *orderRepository) UpdatePayment(ctx context.Context, order *entity.Order) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"paid_amount":    order.PaidAmount,
			"balance_due":    order.BalanceDue,
			"payment_method": order.PaymentMethod,
			"payment_status": order.PaymentStatus,
		})
	return result.RowsAffected, result.Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id)
	return result.RowsAffected, translateError(result.Error)
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if params != nil {
		query = query.Scopes(orderSearchScope(params.Search))

		if params.Status != nil {
			query = query.Where("status = ?", *params.Status)
		}
		if params.PaymentStatus != nil {
			query = query.Where("payment_status = ?", *params.PaymentStatus)
		}
		if params.LedgerID != nil {
			query = query.Where("ledger_id = ?", *params.LedgerID)
		}
		if params.StartDate != nil {
			query = query.Where("order_date >= ?", *params.StartDate)
		}
		if params.EndDate != nil {
			query = query.Where("order_date <= ?", *params.EndDate)
		}
	}

	err := query.
		Preload("Ledger").
		Order("created_at DESC, order_number DESC").
		Find(&orders).Error

	return orders, err
}

func (r *orderRepository) ListOrderNumbers(ctx context.Context, prefix string) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Pluck("order_number", &numbers).Error
	return numbers, err
}

// orderSearchScope matches the order number or the party name of the
// linked ledger, case-insensitively.
func orderSearchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		parties := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Ledger{}).
			Select("id").
			Where("LOWER(party_name) LIKE ?", pattern)
		return db.Where("LOWER(order_number) LIKE ? OR ledger_id IN (?)", pattern, parties)
	}
}

type orderLineRepository struct {
	db *gorm.DB
}

// NewOrderLineRepository creates a new order line repository
func NewOrderLineRepository(db *gorm.DB) domainRepo.OrderLineRepository {
	return &orderLineRepository{db: db}
}

func (r *orderLineRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(line).Error)
}

func (r *orderLineRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("order_id = ?", orderID).
		Order("line_no ASC").
		Find(&lines).Error
	return lines, err
}

func (r *orderLineRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.OrderLine{}, "order_id = ?", orderID)
	return result.RowsAffected, result.Error
}

func (r *orderLineRepository) CountByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(orderIDs))
	if len(orderIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		OrderID uuid.UUID
		Total   int
	}
	err := r.db.WithContext(ctx).Model(&entity.OrderLine{}).
		Select("order_id, COUNT(*) AS total").
		Where("order_id IN ?", orderIDs).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.OrderID] = row.Total
	}
	return counts, nil
}

func (r *orderLineRepository) CountByItemID(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OrderLine{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	return count, err
}
