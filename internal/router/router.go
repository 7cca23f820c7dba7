package router

import (
	"time"

	"github.com/danyol08/transaction/internal/cache"
	"github.com/danyol08/transaction/internal/config"
	"github.com/danyol08/transaction/internal/handler"
	"github.com/danyol08/transaction/internal/infra"
	"github.com/danyol08/transaction/internal/middleware"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/report"
	"github.com/danyol08/transaction/internal/repository"
	"github.com/danyol08/transaction/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/Cache ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	cashierRepo := repository.NewCashierRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Single-slot snapshot cache over the full transaction scan
	snapshot := cache.NewTransactionSnapshot(
		transactionRepo.ListAll,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cashierRepo, cfg)
	txSvc := service.NewTransactionService(transactionRepo, snapshot)
	cashierSvc := service.NewCashierService(cashierRepo, activityRepo)
	activitySvc := service.NewActivityService(activityRepo, cfg.ActivityLogPageSize)

	renderPDF := func(day, scope string, rows []model.Transaction, kpis report.DailyKPIs, breakdown []report.TechnicianTotal) (string, error) {
		return infra.RenderDailyReportPDF(cfg.SalonName, cfg.ReportStoragePath, day, scope, rows, kpis, breakdown)
	}
	reportSvc := service.NewReportService(txSvc, mailer, renderPDF)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	txH := handler.NewTransactionsHandler(txSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	cashiersH := handler.NewCashiersHandler(cashierSvc)
	activityH := handler.NewActivityHandler(activitySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleCashier, model.RoleAdmin)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		txs := v1.Group("/transactions", anyRole)
		{
			txs.POST("", txH.Record)
			txs.GET("", txH.List)
			txs.GET("/search", txH.Search)
			txs.GET("/export", txH.ExportCSV)
		}

		reports := v1.Group("/reports", anyRole)
		{
			reports.GET("/daily", reportsH.Daily)
			reports.GET("/daily/csv", reportsH.DailyCSV)
			reports.GET("/daily/pdf", reportsH.DailyPDF)
			reports.POST("/daily/email", adminOnly, reportsH.EmailDaily)
			// Cashier selector population for the report filter
			reports.GET("/cashiers", cashiersH.ListActive)
		}

		cashiers := v1.Group("/cashiers", adminOnly)
		{
			cashiers.POST("", cashiersH.Create)
			cashiers.GET("", cashiersH.List)
			cashiers.PATCH("/:username/status", cashiersH.SetStatus)
			cashiers.PATCH("/:username/password", cashiersH.ResetPassword)
		}

		v1.GET("/activity", adminOnly, activityH.Recent)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
