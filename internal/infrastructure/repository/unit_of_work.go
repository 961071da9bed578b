package repository

import (
	"context"

	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderTx struct {
	orders *orderRepository
	lines  *orderLineRepository
}

func (t *orderTx) Orders() domainRepo.OrderRepository {
	return t.orders
}

func (t *orderTx) Lines() domainRepo.OrderLineRepository {
	return t.lines
}

type orderUnitOfWork struct {
	db *gorm.DB
}

// NewOrderUnitOfWork creates a unit of work whose repositories share one
// database transaction per call to Do
func NewOrderUnitOfWork(db *gorm.DB) domainRepo.OrderUnitOfWork {
	return &orderUnitOfWork{db: db}
}

func (u *orderUnitOfWork) Do(ctx context.Context, fn func(tx domainRepo.OrderTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{
			orders: &orderRepository{db: tx},
			lines:  &orderLineRepository{db: tx},
		})
	})
}
