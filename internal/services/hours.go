package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/alacham/dochazka/internal/models"
)

// DailyHoursRow is one employee-day of worked time. ActualHours is the
// raw paired Enter/Leave total, QuarterHours the payroll figure after
// quarter-hour rounding.
type DailyHoursRow struct {
	EmployeeName string
	Date         string
	ActualHours  string
	QuarterHours string
}

// QuarterHeader is the fixed header of the quarter-hours export.
var QuarterHeader = []string{"Employee Name", "Date", "Actual Hours", "Quarter Hours"}

// DailyHours totals worked minutes per employee per day by pairing
// Enter with the following Leave, then applies quarter-hour rounding:
// every day except the employee's last is rounded to the nearest
// quarter (a remainder of seven minutes or less rounds down) and the
// rounding difference carries into the next day; the last day absorbs
// the accumulated difference unrounded. Output is sorted by employee
// name, then date.
func DailyHours(rows []ReportRow) []DailyHoursRow {
	byEmployee := map[string][]ReportRow{}
	for _, row := range rows {
		byEmployee[row.EmployeeName] = append(byEmployee[row.EmployeeName], row)
	}

	var result []DailyHoursRow
	for name, employeeRows := range byEmployee {
		byDate := map[string][]ReportRow{}
		for _, row := range employeeRows {
			byDate[row.Date] = append(byDate[row.Date], row)
		}

		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		accumulated := 0
		for i, date := range dates {
			total := workedMinutes(byDate[date])

			var quarter int
			if i == len(dates)-1 {
				quarter = total + accumulated
				if quarter < 0 {
					quarter = 0
				}
			} else {
				adjusted := total + accumulated
				quarter = roundToQuarter(adjusted)
				if quarter < 0 {
					quarter = 0
				}
				accumulated = adjusted - quarter
			}

			result = append(result, DailyHoursRow{
				EmployeeName: name,
				Date:         date,
				ActualHours:  formatMinutes(total),
				QuarterHours: formatMinutes(quarter),
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].EmployeeName != result[j].EmployeeName {
			return result[i].EmployeeName < result[j].EmployeeName
		}
		return result[i].Date < result[j].Date
	})
	return result
}

func workedMinutes(dayRows []ReportRow) int {
	sorted := make([]ReportRow, len(dayRows))
	copy(sorted, dayRows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	total := 0
	enterAt := -1
	for _, row := range sorted {
		parsed, err := time.Parse("15:04:05", row.Time)
		if err != nil {
			continue
		}
		minutes := parsed.Hour()*60 + parsed.Minute()

		switch row.Status {
		case models.StatusEnter:
			enterAt = minutes
		case models.StatusLeave:
			if enterAt >= 0 {
				total += minutes - enterAt
				enterAt = -1
			}
		}
	}
	return total
}

func roundToQuarter(minutes int) int {
	remainder := ((minutes % 15) + 15) % 15
	if remainder <= 7 {
		return minutes - remainder
	}
	return minutes + (15 - remainder)
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
