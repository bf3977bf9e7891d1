package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/alacham/dochazka/internal/models"
)

// Action is the next permitted clock action for an employee.
type Action string

const (
	ActionEnter Action = models.StatusEnter
	ActionLeave Action = models.StatusLeave
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidAction    = errors.New("invalid action")
)

// AttendanceService resolves the next permitted action and records
// clock events. The store handle and timezone are passed in
// explicitly; there is no ambient state.
type AttendanceService struct {
	DB       *gorm.DB
	Location *time.Location
}

func NewAttendanceService(db *gorm.DB, location *time.Location) *AttendanceService {
	return &AttendanceService{DB: db, Location: location}
}

func (s *AttendanceService) ActiveEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Where("is_active = ?", true).Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *AttendanceService) AllEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// NextAction returns the permitted action for an employee based on the
// last event recorded today: none or Leave means Enter, Enter means
// Leave. Earlier days do not count, so a missed Leave yesterday still
// starts today on Enter.
func (s *AttendanceService) NextAction(employeeID uint) (Action, models.Employee, error) {
	employee, err := s.activeEmployee(employeeID)
	if err != nil {
		return "", models.Employee{}, err
	}

	today := time.Now().In(s.Location).Format("2006-01-02")
	var last models.AttendanceEvent
	// Timestamps carry whole-second precision, so two events recorded
	// in one second tie; the insertion id breaks the tie.
	err = s.DB.Where("employee_id = ? AND date(timestamp) = ?", employeeID, today).
		Order("timestamp desc, id desc").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ActionEnter, employee, nil
	}
	if err != nil {
		return "", models.Employee{}, err
	}

	if last.Status == models.StatusEnter {
		return ActionLeave, employee, nil
	}
	return ActionEnter, employee, nil
}

// Record appends one event with the current time in the configured
// timezone and returns that time for display confirmation.
//
// The action is not checked against NextAction: two rapid submissions
// can both read the same last status and both insert it. The store's
// single-writer serialization is the only guard, matching the
// deployed behavior.
func (s *AttendanceService) Record(employeeID uint, action Action) (time.Time, error) {
	if action != ActionEnter && action != ActionLeave {
		return time.Time{}, ErrInvalidAction
	}

	if _, err := s.activeEmployee(employeeID); err != nil {
		return time.Time{}, err
	}

	now := time.Now().In(s.Location)
	event := models.AttendanceEvent{
		EmployeeID: employeeID,
		Status:     string(action),
		Timestamp:  now.Format(models.TimestampLayout),
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return time.Time{}, err
	}

	return now, nil
}

func (s *AttendanceService) activeEmployee(employeeID uint) (models.Employee, error) {
	var employee models.Employee
	err := s.DB.Where("id = ? AND is_active = ?", employeeID, true).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee, ErrEmployeeNotFound
	}
	return employee, err
}
