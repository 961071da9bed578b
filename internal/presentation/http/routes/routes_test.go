package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/internal/config"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/infrastructure/database"
	"github.com/sangkips/abs-inventory-api/internal/infrastructure/repository"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/handler"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/middleware"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Errors  []apperror.FieldError `json:"errors"`
	Code    apperror.Kind         `json:"code"`
}

type orderBody struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	PartyName     string          `json:"party_name"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	ItemsCount    int             `json:"items_count"`
	CreatedBy     *uuid.UUID      `json:"created_by"`
	Items         []struct {
		LineNo int `json:"line_no"`
	} `json:"items"`
}

type server struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *utils.JWTManager
	ledger *entity.Ledger
	items  []*entity.Item
}

func newServer(t *testing.T) *server {
	t.Helper()
	cfg := &config.Config{
		App:      config.AppConfig{Name: "abs-inventory-test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: database.MemoryPath},
		Admin:    config.AdminConfig{Username: "admin", Password: "admin-pass"},
	}

	db, err := database.Open(&cfg.Database)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedDefaultData(db, &cfg.Admin))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	ctx := context.Background()
	s := &server{db: db, jwt: utils.NewJWTManager("test-secret", time.Hour)}

	districtRepo := repository.NewDistrictRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)

	s.ledger = &entity.Ledger{PartyCode: "P-01", PartyName: "Acme Traders"}
	require.NoError(t, ledgerRepo.Create(ctx, s.ledger))
	for _, code := range []string{"ST-1", "ST-2", "ST-3"} {
		item := &entity.Item{ItemCode: code, ItemName: "Steel " + code}
		require.NoError(t, itemRepo.Create(ctx, item))
		s.items = append(s.items, item)
	}

	s.router = Setup(&Handlers{
		Health:    handler.NewHealthHandler(cfg.App.Name, sqlDB),
		Auth:      handler.NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), s.jwt)),
		District:  handler.NewDistrictHandler(service.NewDistrictService(districtRepo)),
		Ledger:    handler.NewLedgerHandler(service.NewLedgerService(ledgerRepo, districtRepo)),
		Item:      handler.NewItemHandler(service.NewItemService(itemRepo, lineRepo)),
		Order:     handler.NewOrderHandler(service.NewOrderService(repository.NewOrderUnitOfWork(db), orderRepo, lineRepo, ledgerRepo, itemRepo), service.NewOrderNumberService(orderRepo)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(repository.NewAnalyticsRepository(db), ledgerRepo, itemRepo, districtRepo)),
	}, &Deps{
		JWTManager:      s.jwt,
		Cfg:             cfg,
		IdempotencyRepo: repository.NewIdempotencyRepository(db),
	})
	return s
}

func (s *server) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *server) orderPayload(number string) map[string]interface{} {
	return map[string]interface{}{
		"order_number": number,
		"ledger_id":    s.ledger.ID.String(),
		"order_date":   "2024-01-15",
		"items": []map[string]interface{}{
			{"item_id": s.items[0].ID.String(), "qty_mt": 1, "rate": "12.50", "amount": 12.50},
			{"item_id": s.items[1].ID.String(), "qty_pcs": "1", "rate": 7.25, "amount": "7.25"},
			{"item_id": s.items[2].ID.String(), "qty_mt": "2", "rate": 50, "amount": "100.00"},
			{"item_id": "not-a-uuid", "qty_mt": 5, "rate": 1, "amount": 5},
		},
	}
}

func (s *server) countOrders(t *testing.T) int64 {
	var n int64
	require.NoError(t, s.db.Model(&entity.Order{}).Count(&n).Error)
	return n
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreateOrder(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/orders/bulk", s.orderPayload("ORD-20240115-001"), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order orderBody
	env := decode(t, w, &order)
	assert.True(t, env.Success)
	assert.Equal(t, "Acme Traders", order.PartyName)
	assert.True(t, decimal.RequireFromString("119.75").Equal(order.TotalAmount), "total %s", order.TotalAmount)
	assert.True(t, order.TotalAmount.Equal(order.BalanceDue))
	assert.Equal(t, 3, order.ItemsCount)
	assert.Nil(t, order.CreatedBy)

	w = s.do(t, http.MethodGet, "/api/orders/with-items/"+order.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched orderBody
	decode(t, w, &fetched)
	require.Len(t, fetched.Items, 3)
	assert.Equal(t, 1, fetched.Items[0].LineNo)
}

func TestCreateOrderErrors(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.KindDuplicateOrderNumber, decode(t, w, nil).Code)

	unknownParty := s.orderPayload("ORD-20240115-002")
	unknownParty["ledger_id"] = uuid.NewString()
	w = s.do(t, http.MethodPost, "/api/orders", unknownParty, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decode(t, w, nil)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "ledger_id", env.Errors[0].Field)

	noLines := s.orderPayload("ORD-20240115-003")
	noLines["items"] = []map[string]interface{}{{"item_id": s.items[0].ID.String(), "qty_mt": 0, "amount": 10}}
	w = s.do(t, http.MethodPost, "/api/orders", noLines, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.KindInvalidInput, decode(t, w, nil).Code)

	w = s.do(t, http.MethodPost, "/api/orders?strict=true", s.orderPayload("ORD-20240115-004"), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env = decode(t, w, nil)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "items[3].item_id", env.Errors[0].Field)

	assert.EqualValues(t, 1, s.countOrders(t))
}

func TestCreateOrderRecordsCreator(t *testing.T) {
	s := newServer(t)
	userID := uuid.New()
	token, err := s.jwt.GenerateAccessToken(userID, "clerk", entity.RoleUser)
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order orderBody
	decode(t, w, &order)
	require.NotNil(t, order.CreatedBy)
	assert.Equal(t, userID, *order.CreatedBy)
}

func TestCreateOrderIdempotencyReplay(t *testing.T) {
	s := newServer(t)
	headers := map[string]string{middleware.IdempotencyKeyHeader: "key-1"}

	first := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), headers)
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(middleware.IdempotencyReplayedHeader))

	second := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), headers)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	assert.EqualValues(t, 1, s.countOrders(t))
}

func TestReplaceAndDeleteOrder(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created orderBody
	decode(t, w, &created)

	replacement := s.orderPayload("ORD-20240115-001")
	replacement["items"] = []map[string]interface{}{
		{"item_id": s.items[2].ID.String(), "qty_pcs": 4, "rate": 10, "amount": 40},
	}
	w = s.do(t, http.MethodPut, "/api/orders/bulk/"+created.ID.String(), replacement, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var replaced orderBody
	decode(t, w, &replaced)
	assert.Len(t, replaced.Items, 1)
	assert.True(t, decimal.NewFromInt(40).Equal(replaced.TotalAmount))

	w = s.do(t, http.MethodPut, "/api/orders/"+uuid.NewString(), replacement, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/orders/"+created.ID.String(), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/api/orders/"+created.ID.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersAndPayment(t *testing.T) {
	s := newServer(t)

	for _, n := range []string{"ORD-20240115-001", "ORD-20240115-002"} {
		w := s.do(t, http.MethodPost, "/api/orders", s.orderPayload(n), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/orders/with-items/all?search=002", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []orderBody
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, 3, orders[0].ItemsCount)

	w = s.do(t, http.MethodGet, "/api/orders?status=Shipped", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/orders/"+orders[0].ID.String()+"/payment", map[string]interface{}{
		"paid_amount": "19.75",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid orderBody
	decode(t, w, &paid)
	assert.Equal(t, "Partial", paid.PaymentStatus)
	assert.True(t, decimal.NewFromInt(100).Equal(paid.BalanceDue), "balance %s", paid.BalanceDue)

	w = s.do(t, http.MethodPut, "/api/orders/"+orders[0].ID.String()+"/payment", map[string]interface{}{
		"paid_amount": -1,
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestNextOrderNumber(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/orders/next-number", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var next service.NextOrderNumber
	decode(t, w, &next)
	assert.Equal(t, 1, next.Sequence)
	assert.Equal(t, "ORD-"+next.Date+"-001", next.OrderNumber)
}

func TestDashboardStats(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/utility/dashboard-stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats service.DashboardStats
	decode(t, w, &stats)
	assert.EqualValues(t, 1, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.TotalParties)
	assert.EqualValues(t, 3, stats.TotalItems)
	assert.True(t, decimal.RequireFromString("119.75").Equal(stats.OutstandingBalance))
}

func TestReferenceRoutes(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/districts", map[string]interface{}{
		"district_code": "D-01", "district_name": "Pune",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var district struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, w, &district)

	w = s.do(t, http.MethodPost, "/api/districts", map[string]interface{}{"district_name": "No code"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/ledgers", map[string]interface{}{
		"party_code": "P-02", "party_name": "Bharat Steel", "district_id": district.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/ledgers", map[string]interface{}{
		"party_code": "P-01", "party_name": "Duplicate",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/ledgers?search=bharat&per_page=5", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			PartyCode string `json:"party_code"`
		} `json:"items"`
		Pagination struct {
			Total   int64 `json:"total"`
			PerPage int   `json:"per_page"`
		} `json:"pagination"`
	}
	decode(t, w, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "P-02", page.Items[0].PartyCode)
	assert.EqualValues(t, 1, page.Pagination.Total)
	assert.Equal(t, 5, page.Pagination.PerPage)

	w = s.do(t, http.MethodPost, "/api/orders", s.orderPayload("ORD-20240115-001"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodDelete, "/api/items/"+s.items[0].ID.String(), nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/items/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthRoutes(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin-pass"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.AccessToken)

	w = s.do(t, http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer " + login.AccessToken})
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	decode(t, w, &me)
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, entity.RoleAdmin, me.Role)
}
