package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/config"
	"github.com/dukapoint/dukapoint-api/internal/infrastructure/database"
	"github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/handler"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/routes"
	"github.com/dukapoint/dukapoint-api/pkg/email"
	"github.com/dukapoint/dukapoint-api/pkg/oauth"
	"github.com/dukapoint/dukapoint-api/pkg/printer"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.User,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.App.Name,
		FromEmail:    cfg.SMTP.From,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Device,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, storeRepo, jwtManager, googleOAuthService)
	storeService := service.NewStoreService(storeRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, uow)
	receiptService := service.NewReceiptService(invoiceRepo, storeRepo, thermalPrinter, emailService, cfg.Printer.Width, cfg.App.Currency)
	expenseService := service.NewExpenseService(expenseRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Store:     handler.NewStoreHandler(storeService),
		Product:   handler.NewProductHandler(productService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, receiptService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
