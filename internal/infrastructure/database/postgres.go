package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dukapoint/dukapoint-api/internal/config"
	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true, // surfaces unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Store{},
		&entity.User{},
		&entity.Role{},

		&entity.Category{},
		&entity.Supplier{},
		&entity.Product{},

		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Expense{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, default store, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, name := range []string{"admin", "cashier"} {
		var existing entity.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create role %s: %v", name, err)
			}
		}
	}

	// Create a default store so the first login has somewhere to sell from
	storeName := viper.GetString("DEFAULT_STORE_NAME")
	if storeName == "" {
		storeName = "Main Store"
	}
	var store entity.Store
	if err := db.Where("slug = ?", utils.Slugify(storeName)).First(&store).Error; err != nil {
		store = entity.Store{Name: storeName, Slug: utils.Slugify(storeName)}
		if err := db.Create(&store).Error; err != nil {
			log.Printf("Warning: failed to create default store: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var adminRole entity.Role
				if err := db.Where("name = ?", "admin").First(&adminRole).Error; err == nil {
					if adminName == "" {
						adminName = "Store Admin"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						StoreID:   store.ID,
						Roles:     []entity.Role{adminRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
