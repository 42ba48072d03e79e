package migration

import (
	"fmt"
	"log"

	"charity-admin-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NotificationSetting{}); err != nil {
		log.Fatalf("Error migrating notification setting database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Charity{}); err != nil {
		log.Fatalf("Error migrating charity database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Payment{}); err != nil {
		log.Fatalf("Error migrating payment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Volunteer{}); err != nil {
		log.Fatalf("Error migrating volunteer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Slide{}); err != nil {
		log.Fatalf("Error migrating slide database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Event{}); err != nil {
		log.Fatalf("Error migrating event database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
