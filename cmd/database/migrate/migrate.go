package migration

import (
	"CampusFind-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Report{}); err != nil {
		log.Fatalf("Error migrating report database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Fatalf("Error migrating claim database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AppNotification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
