// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"greenhouse/entities"
)

// Open opens the sqlite database and runs the idempotent schema migration.
// Migration happens once here at startup, not per-request.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.SensorReading{},
		&entities.FanLog{},
		&entities.CurtainLog{},
		&entities.IrrigationLog{},
		&entities.HeaterLog{},
		&entities.MisterLog{},
		&entities.ConfigSetting{},
		&entities.Product{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.PlantInfo{},
		&entities.PlantComment{},
		&entities.ChatMessage{},
		&entities.Friend{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// MustOpen is Open for main; anything failing here is fatal.
func MustOpen(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	return db
}
