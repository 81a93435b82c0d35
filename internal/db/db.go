package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/config"
	"github.com/cleankart/marketplace-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SeedServices(db)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
	)
}

// SeedServices loads the default catalog on an empty database. The
// catalog is static reference data, so this only runs once.
func SeedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Wash & Fold", Category: models.CategoryLaundry, BasePrice: 15, IsActive: true},
		{Name: "Dry Cleaning", Category: models.CategoryLaundry, BasePrice: 25, IsActive: true},
		{Name: "Ironing", Category: models.CategoryLaundry, BasePrice: 10, IsActive: true},
		{Name: "Home Deep Cleaning", Category: models.CategoryCleaning, BasePrice: 80, IsActive: true},
		{Name: "Bathroom Cleaning", Category: models.CategoryCleaning, BasePrice: 30, IsActive: true},
		{Name: "Kitchen Cleaning", Category: models.CategoryCleaning, BasePrice: 40, IsActive: true},
		{Name: "Exterior Car Wash", Category: models.CategoryCarWash, BasePrice: 20, IsActive: true},
		{Name: "Full Car Detailing", Category: models.CategoryCarWash, BasePrice: 60, IsActive: true},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}
