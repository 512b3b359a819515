package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dukapoint/dukapoint-api/internal/config"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/handler"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/middleware"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Store     *handler.StoreHandler
	Product   *handler.ProductHandler
	Supplier  *handler.SupplierHandler
	Invoice   *handler.InvoiceHandler
	Expense   *handler.ExpenseHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-store rate limiter
		rateLimiter := middleware.NewStoreRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard (role-aware: admins see the store, cashiers see their sales)
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Printer
	protected.GET("/printer/status", h.Invoice.PrinterStatus)

	registerInvoiceRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerStoreRoutes(protected, h)
	registerExpenseRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerInvoiceRoutes(rg *gin.RouterGroup, h *Handlers) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/price", h.Invoice.PriceCart)
		invoices.POST("", h.Invoice.Commit)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/creditors", h.Invoice.ListCreditors)
		invoices.GET("/no/:invoiceNo", h.Invoice.GetByNo)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/settle", h.Invoice.SettleCredit)
		invoices.POST("/:id/print", h.Invoice.PrintReceipt)
		invoices.POST("/:id/email", h.Invoice.EmailReceipt)
	}
}

func registerProductRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/search", h.Product.Search)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:slug", h.Product.Get)

		// Catalog management is back office only
		products.POST("", middleware.RequireRole("admin"), h.Product.Create)
		products.PATCH("/:id", middleware.RequireRole("admin"), h.Product.Update)
		products.POST("/:slug/restock", middleware.RequireRole("admin"), h.Product.Restock)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.Product.ListCategories)
		categories.POST("", middleware.RequireRole("admin"), h.Product.CreateCategory)
		categories.PUT("/:id", middleware.RequireRole("admin"), h.Product.UpdateCategory)
		categories.DELETE("/:id", middleware.RequireRole("admin"), h.Product.DeleteCategory)
	}
}

func registerSupplierRoutes(rg *gin.RouterGroup, h *Handlers) {
	suppliers := rg.Group("/suppliers")
	suppliers.Use(middleware.RequireRole("admin"))
	{
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerStoreRoutes(rg *gin.RouterGroup, h *Handlers) {
	stores := rg.Group("/stores")
	stores.Use(middleware.RequireRole("admin"))
	{
		stores.POST("", h.Store.Create)
		stores.GET("", h.Store.List)
		stores.GET("/:id", h.Store.Get)
		stores.PUT("/:id", h.Store.Update)
		stores.DELETE("/:id", h.Store.Delete)
	}
}

func registerExpenseRoutes(rg *gin.RouterGroup, h *Handlers) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.PUT("/:id", middleware.RequireRole("admin"), h.Expense.Update)
		expenses.DELETE("/:id", middleware.RequireRole("admin"), h.Expense.Delete)
	}
}

func registerUserRoutes(rg *gin.RouterGroup, h *Handlers) {
	users := rg.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id", h.User.Delete)
	}
}
