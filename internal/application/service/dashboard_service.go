package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/cache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dashboardCacheOperation = "dashboard"

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	ledgerRepo    repository.LedgerRepository
	itemRepo      repository.ItemRepository
	districtRepo  repository.DistrictRepository
	cache         cache.Cache
	cacheTTL      time.Duration
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	ledgerRepo repository.LedgerRepository,
	itemRepo repository.ItemRepository,
	districtRepo repository.DistrictRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		ledgerRepo:    ledgerRepo,
		itemRepo:      itemRepo,
		districtRepo:  districtRepo,
	}
}

// WithCache serves stats from c for ttl after each computation
func (s *DashboardService) WithCache(c cache.Cache, ttl time.Duration) *DashboardService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalOrders        int64           `json:"total_orders"`
	PendingOrders      int64           `json:"pending_orders"`
	DispatchedOrders   int64           `json:"dispatched_orders"`
	Revenue            decimal.Decimal `json:"revenue"`
	CollectedRevenue   decimal.Decimal `json:"collected_revenue"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	TotalParties       int64           `json:"total_parties"`
	TotalItems         int64           `json:"total_items"`
	TotalDistricts     int64           `json:"total_districts"`
}

// GetDashboardStats aggregates committed orders and reference data counts
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats := &DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.analyticsRepo.GetOrderStats(gctx)
		if err != nil {
			return err
		}
		stats.TotalOrders = orders.TotalOrders
		stats.PendingOrders = orders.PendingOrders
		stats.DispatchedOrders = orders.DispatchedOrders
		stats.Revenue = orders.Revenue
		stats.CollectedRevenue = orders.CollectedRevenue
		stats.OutstandingBalance = orders.Revenue.Sub(orders.CollectedRevenue)
		return nil
	})
	g.Go(func() (err error) {
		stats.TotalParties, err = s.ledgerRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalItems, err = s.itemRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalDistricts, err = s.districtRepo.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.NewStorageError(err)
	}

	s.toCache(ctx, stats)
	return stats, nil
}

func (s *DashboardService) cacheKey() string {
	return s.cache.GenerateKey(dashboardCacheOperation, "stats")
}

func (s *DashboardService) fromCache(ctx context.Context) *DashboardStats {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cacheKey())
	if err != nil {
		slog.WarnContext(ctx, "dashboard cache read failed", "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		slog.WarnContext(ctx, "dashboard cache entry unreadable", "error", err)
		return nil
	}
	return &stats
}

func (s *DashboardService) toCache(ctx context.Context, stats *DashboardStats) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(), string(payload), s.cacheTTL); err != nil {
		slog.WarnContext(ctx, "dashboard cache write failed", "error", err)
	}
}
