package router

import (
	"time"

	"revup/internal/access"
	"revup/internal/config"
	"revup/internal/handler"
	"revup/internal/middleware"
	"revup/internal/repository"
	"revup/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	itemSvc := service.NewItemService(itemRepo, cfg.LowStockThreshold)
	saleSvc := service.NewSaleService(saleRepo, itemRepo)
	reportSvc := service.NewReportService(saleRepo, cfg.CurrencyLabel)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginAttemptsPerMin, time.Minute)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), authH.Login)
	}

	// Protected
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))

	items := v1.Group("/items")
	{
		items.GET("", middleware.RequireAction(access.ActionViewItems), itemsH.List)
		items.GET("/low-stock", middleware.RequireAction(access.ActionViewItems), itemsH.LowStock)
		items.POST("", middleware.RequireAction(access.ActionAddItem), itemsH.Create)
		items.PUT("/:id", middleware.RequireAction(access.ActionUpdateItem), itemsH.Update)
		items.DELETE("/:id", middleware.RequireAction(access.ActionDeleteItem), itemsH.Delete)
	}

	sales := v1.Group("/sales")
	{
		sales.POST("", middleware.RequireAction(access.ActionRecordSale), salesH.Record)
		sales.DELETE("/:id", middleware.RequireAction(access.ActionDeleteSale), salesH.Delete)
		sales.DELETE("", middleware.RequireAction(access.ActionResetRevenue), salesH.Reset)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/revenue", middleware.RequireAction(access.ActionViewReports), reportsH.TotalRevenue)
		reports.GET("/years", middleware.RequireAction(access.ActionViewReports), reportsH.Years)
		reports.GET("/annual/:year", middleware.RequireAction(access.ActionViewReports), reportsH.Annual)
		reports.GET("/monthly", middleware.RequireAction(access.ActionViewReports), reportsH.Monthly)
		reports.GET("/monthly/export", middleware.RequireAction(access.ActionExportReports), reportsH.Export)
		reports.GET("/monthly/:month/sales", middleware.RequireAction(access.ActionViewReports), reportsH.MonthSales)
	}

	return r
}
