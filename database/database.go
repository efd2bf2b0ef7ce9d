package database

import (
	"os"

	"promotions-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=promotions port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Promotion{})
}

// Recreate drops and rebuilds the schema. For local development only.
func Recreate(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Promotion{}); err != nil {
		return err
	}
	return Migrate(db)
}
