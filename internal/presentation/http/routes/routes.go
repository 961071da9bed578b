package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/abs-inventory-api/internal/config"
	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/handler"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/middleware"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	District  *handler.DistrictHandler
	Ledger    *handler.LedgerHandler
	Item      *handler.ItemHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	api := router.Group("/api")
	api.GET("/health", h.Health.Check)

	registerAuthRoutes(api, h, deps)
	registerReferenceRoutes(api, h)
	registerOrderRoutes(api, h, deps)

	api.GET("/utility/dashboard-stats", h.Dashboard.GetStats)

	return router
}

// NewRateLimiter builds the per-client limiter from configuration.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		Requests:        cfg.Requests,
		Window:          time.Duration(cfg.Duration) * time.Second,
		CleanupInterval: 5 * time.Minute,
		EntryTTL:        10 * time.Minute,
	})
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.GET("/me", middleware.AuthMiddleware(deps.JWTManager), h.Auth.Me)
}

func registerReferenceRoutes(rg *gin.RouterGroup, h *Handlers) {
	districts := rg.Group("/districts")
	{
		districts.GET("", h.District.List)
		districts.POST("", h.District.Create)
		districts.GET("/:id", h.District.Get)
		districts.PUT("/:id", h.District.Update)
		districts.DELETE("/:id", h.District.Delete)
	}

	ledgers := rg.Group("/ledgers")
	{
		ledgers.GET("", h.Ledger.List)
		ledgers.POST("", h.Ledger.Create)
		ledgers.GET("/:id", h.Ledger.Get)
		ledgers.PUT("/:id", h.Ledger.Update)
		ledgers.DELETE("/:id", h.Ledger.Delete)
	}

	items := rg.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerOrderRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := rg.Group("/orders")
	orders.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))

	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	orders.GET("", h.Order.List)
	orders.GET("/next-number", h.Order.NextNumber)
	orders.POST("", idempotent, h.Order.Create)
	orders.GET("/:id", h.Order.Get)
	orders.PUT("/:id", h.Order.Replace)
	orders.DELETE("/:id", h.Order.Delete)
	orders.PUT("/:id/payment", h.Order.UpdatePayment)

	// Aliases kept for clients of the bulk endpoints.
	orders.GET("/with-items/all", h.Order.List)
	orders.GET("/with-items/:id", h.Order.Get)
	orders.POST("/bulk", idempotent, h.Order.Create)
	orders.PUT("/bulk/:id", h.Order.Replace)
	orders.DELETE("/bulk/:id", h.Order.Delete)
}
