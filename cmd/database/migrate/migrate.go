package migration

import (
	"ShareBite-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrating user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		return fmt.Errorf("migrating food table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Request{}); err != nil {
		return fmt.Errorf("migrating request table: %w", err)
	}
	if err := db.AutoMigrate(&entities.UserRanking{}); err != nil {
		return fmt.Errorf("migrating user ranking table: %w", err)
	}

	return nil
}
