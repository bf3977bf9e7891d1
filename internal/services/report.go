package services

import (
	"time"

	"gorm.io/gorm"
)

// ReportRow is one line of the attendance report: employee name,
// status, and the date and time parts of the event timestamp. The
// column order matches the CSV export.
type ReportRow struct {
	EmployeeName string
	Status       string
	Date         string
	Time         string
}

// ReportHeader is the fixed export header.
var ReportHeader = []string{"Employee Name", "Status", "Date", "Time"}

type ReportService struct {
	DB       *gorm.DB
	Location *time.Location
}

func NewReportService(db *gorm.DB, location *time.Location) *ReportService {
	return &ReportService{DB: db, Location: location}
}

// Rows returns all events whose timestamp date falls in
// [startDate, endDate] (inclusive, YYYY-MM-DD), joined to employee
// names and ordered by timestamp. A nil employeeID matches everyone.
// An inverted range yields no rows.
func (s *ReportService) Rows(startDate, endDate string, employeeID *uint) ([]ReportRow, error) {
	query := s.DB.Table("attendance").
		Select("employees.name AS employee_name, attendance.status, date(attendance.timestamp) AS date, time(attendance.timestamp) AS time").
		Joins("JOIN employees ON employees.id = attendance.employee_id").
		Where("date(attendance.timestamp) >= ? AND date(attendance.timestamp) <= ?", startDate, endDate)

	if employeeID != nil {
		query = query.Where("attendance.employee_id = ?", *employeeID)
	}

	var rows []ReportRow
	if err := query.Order("attendance.timestamp, attendance.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DefaultRange is the previous full calendar month relative to now in
// the configured timezone.
func (s *ReportService) DefaultRange(now time.Time) (string, string) {
	now = now.In(s.Location)
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.Location)
	lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)
	firstOfPrevious := time.Date(lastOfPrevious.Year(), lastOfPrevious.Month(), 1, 0, 0, 0, 0, s.Location)
	return firstOfPrevious.Format("2006-01-02"), lastOfPrevious.Format("2006-01-02")
}
