package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alacham/dochazka/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(&models.Employee{}, &models.AttendanceEvent{}, &models.AuthToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func createEmployee(t *testing.T, db *gorm.DB, name string, active bool) models.Employee {
	t.Helper()

	employee := models.Employee{Name: name, IsActive: active}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("create employee %s: %v", name, err)
	}
	return employee
}

func insertEvent(t *testing.T, db *gorm.DB, employeeID uint, status, timestamp string) {
	t.Helper()

	event := models.AttendanceEvent{EmployeeID: employeeID, Status: status, Timestamp: timestamp}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("insert event: %v", err)
	}
}
