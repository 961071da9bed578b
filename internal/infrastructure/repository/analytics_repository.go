package repository

import (
	"context"

	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetOrderStats(ctx context.Context) (*domainRepo.OrderStats, error) {
	var row struct {
		TotalOrders      int64
		PendingOrders    int64
		DispatchedOrders int64
		Revenue          decimal.NullDecimal
		CollectedRevenue decimal.NullDecimal
	}

	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select(`
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS dispatched_orders,
			COALESCE(SUM(total_amount), 0) AS revenue,
			COALESCE(SUM(paid_amount), 0) AS collected_revenue`,
			enum.OrderStatusPending.String(), enum.OrderStatusDispatched.String()).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	// SQLite sums decimal columns as REAL
	return &domainRepo.OrderStats{
		TotalOrders:      row.TotalOrders,
		PendingOrders:    row.PendingOrders,
		DispatchedOrders: row.DispatchedOrders,
		Revenue:          row.Revenue.Decimal.Round(entity.MoneyScale),
		CollectedRevenue: row.CollectedRevenue.Decimal.Round(entity.MoneyScale),
	}, nil
}
