package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderStats is the single-pass aggregate over all committed orders
type OrderStats struct {
	TotalOrders      int64
	PendingOrders    int64
	DispatchedOrders int64
	Revenue          decimal.Decimal
	CollectedRevenue decimal.Decimal
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetOrderStats counts orders by status and sums totals and payments.
	// An empty order table yields zeros.
	GetOrderStats(ctx context.Context) (*OrderStats, error)
}
