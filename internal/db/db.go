package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alacham/dochazka/internal/models"
)

func Open(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.Employee{},
		&models.AttendanceEvent{},
		&models.AuthToken{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
