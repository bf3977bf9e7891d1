package services

import (
	"testing"
	"time"

	"github.com/alacham/dochazka/internal/models"
)

func seedReportData(t *testing.T) (*ReportService, models.Employee, models.Employee) {
	t.Helper()

	db := openTestDB(t)
	alice := createEmployee(t, db, "Alice", true)
	bob := createEmployee(t, db, "Bob", true)

	insertEvent(t, db, alice.ID, models.StatusEnter, "2024-08-30T08:00:00")
	insertEvent(t, db, alice.ID, models.StatusLeave, "2024-08-30T16:00:00")
	insertEvent(t, db, alice.ID, models.StatusEnter, "2024-09-01T08:00:00")
	insertEvent(t, db, alice.ID, models.StatusLeave, "2024-09-01T16:30:00")
	insertEvent(t, db, bob.ID, models.StatusEnter, "2024-09-15T09:00:00")
	insertEvent(t, db, bob.ID, models.StatusLeave, "2024-09-15T17:00:00")
	insertEvent(t, db, bob.ID, models.StatusEnter, "2024-10-01T09:00:00")

	return NewReportService(db, time.UTC), alice, bob
}

func TestRowsFiltersByRange(t *testing.T) {
	service, _, _ := seedReportData(t)

	rows, err := service.Rows("2024-09-01", "2024-09-30", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 September rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Date < "2024-09-01" || row.Date > "2024-09-30" {
			t.Fatalf("row date %s outside range", row.Date)
		}
	}
}

func TestRowsOrderedByTimestamp(t *testing.T) {
	service, _, _ := seedReportData(t)

	rows, err := service.Rows("2024-08-01", "2024-10-31", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		previous := rows[i-1].Date + rows[i-1].Time
		current := rows[i].Date + rows[i].Time
		if current < previous {
			t.Fatalf("rows out of order at %d: %s before %s", i, current, previous)
		}
	}
}

func TestRowsSameSecondKeepInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	employee := createEmployee(t, db, "Alice", true)
	insertEvent(t, db, employee.ID, models.StatusEnter, "2024-09-01T08:00:00")
	insertEvent(t, db, employee.ID, models.StatusLeave, "2024-09-01T08:00:00")

	service := NewReportService(db, time.UTC)
	rows, err := service.Rows("2024-09-01", "2024-09-01", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Status != models.StatusEnter || rows[1].Status != models.StatusLeave {
		t.Fatalf("expected insertion order on tied timestamps, got %s then %s", rows[0].Status, rows[1].Status)
	}
}

func TestRowsFiltersByEmployee(t *testing.T) {
	service, _, bob := seedReportData(t)

	rows, err := service.Rows("2024-09-01", "2024-09-30", &bob.ID)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for Bob, got %d", len(rows))
	}
	for _, row := range rows {
		if row.EmployeeName != "Bob" {
			t.Fatalf("unexpected employee %s", row.EmployeeName)
		}
	}
}

func TestRowsInvertedRangeIsEmpty(t *testing.T) {
	service, _, _ := seedReportData(t)

	rows, err := service.Rows("2024-09-30", "2024-09-01", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result for inverted range, got %d rows", len(rows))
	}
}

func TestRowsCarryNameStatusDateTime(t *testing.T) {
	service, _, _ := seedReportData(t)

	rows, err := service.Rows("2024-09-01", "2024-09-01", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.EmployeeName != "Alice" || first.Status != models.StatusEnter ||
		first.Date != "2024-09-01" || first.Time != "08:00:00" {
		t.Fatalf("unexpected first row: %+v", first)
	}
}

func TestRowsIncludeDisabledEmployeeHistory(t *testing.T) {
	db := openTestDB(t)
	employee := createEmployee(t, db, "Alice", true)
	insertEvent(t, db, employee.ID, models.StatusEnter, "2024-09-01T08:00:00")

	if err := db.Model(&employee).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable employee: %v", err)
	}

	service := NewReportService(db, time.UTC)
	rows, err := service.Rows("2024-09-01", "2024-09-30", nil)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected disabled employee's history to remain, got %d rows", len(rows))
	}
}

func TestDefaultRangePreviousMonth(t *testing.T) {
	service := NewReportService(openTestDB(t), time.UTC)

	now := time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)
	start, end := service.DefaultRange(now)
	if start != "2024-09-01" || end != "2024-09-30" {
		t.Fatalf("expected September 2024, got %s..%s", start, end)
	}
}

func TestDefaultRangeCrossesYear(t *testing.T) {
	service := NewReportService(openTestDB(t), time.UTC)

	now := time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC)
	start, end := service.DefaultRange(now)
	if start != "2024-12-01" || end != "2024-12-31" {
		t.Fatalf("expected December 2024, got %s..%s", start, end)
	}
}
