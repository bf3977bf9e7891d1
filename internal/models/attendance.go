package models

// Status values stored in the attendance table.
const (
	StatusEnter = "Enter"
	StatusLeave = "Leave"
)

// TimestampLayout is ISO-8601 local wall-clock time in the server
// timezone. No UTC offset is stored: SQLite's date() and time() would
// otherwise normalize to UTC and attribute near-midnight events to
// the neighboring day.
const TimestampLayout = "2006-01-02T15:04:05"

// AttendanceEvent is one Enter or Leave record. Rows are immutable:
// the recorder inserts them and nothing updates or deletes them.
type AttendanceEvent struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"index;not null" json:"employeeId"`
	Status     string `gorm:"size:16;not null" json:"status"`
	// Timestamp is ISO-8601 text (TimestampLayout) in the server
	// timezone, kept as text so SQLite's date()/time() apply directly.
	Timestamp string `gorm:"not null" json:"timestamp"`
}

func (AttendanceEvent) TableName() string {
	return "attendance"
}
