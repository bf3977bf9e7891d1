package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alacham/dochazka/internal/models"
	"github.com/alacham/dochazka/internal/services"
)

type AdminHandler struct {
	DB      *gorm.DB
	Reports *services.ReportService
}

func NewAdminHandler(db *gorm.DB, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{DB: db, Reports: reports}
}

// Page renders the report table for the requested (or default) range,
// the roster for management, and optionally the daily hours table.
func (h *AdminHandler) Page(c *gin.Context) {
	startDate, endDate, employeeID := reportFilter(c, h.Reports)

	rows, err := h.Reports.Rows(startDate, endDate, employeeID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not load report")
		return
	}

	var dailyHours []services.DailyHoursRow
	showDailyHours := c.Query("show_daily_hours") == "1"
	if showDailyHours && len(rows) > 0 {
		dailyHours = services.DailyHours(rows)
	}

	var employees []models.Employee
	if err := h.DB.Order("name").Find(&employees).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "could not load employees")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Rows":           rows,
		"DailyHours":     dailyHours,
		"ShowDailyHours": showDailyHours,
		"Employees":      employees,
		"StartDate":      startDate,
		"EndDate":        endDate,
		"EmployeeID":     c.Query("employee_id"),
		"Message":        c.Query("message"),
	})
}

// AddEmployee creates a roster entry from the submitted name.
// Duplicates surface as a flash message, not an error page.
func (h *AdminHandler) AddEmployee(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	var existing models.Employee
	err := h.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		redirectAdmin(c, fmt.Sprintf("Employee %q already exists", name))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		renderError(c, http.StatusInternalServerError, "could not add employee")
		return
	}

	employee := models.Employee{Name: name, IsActive: true}
	if err := h.DB.Create(&employee).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "could not add employee")
		return
	}

	redirectAdmin(c, fmt.Sprintf("Employee %q added", name))
}

// ToggleEmployee enables or disables an employee. History is never
// deleted, so a disabled employee's events stay in every report.
func (h *AdminHandler) ToggleEmployee(c *gin.Context) {
	employeeID, err := parseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	var active bool
	switch c.PostForm("action") {
	case "enable":
		active = true
	case "disable":
		active = false
	default:
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			redirectAdmin(c, "Employee not found")
			return
		}
		renderError(c, http.StatusInternalServerError, "could not update employee")
		return
	}

	if err := h.DB.Model(&employee).Update("is_active", active).Error; err != nil {
		renderError(c, http.StatusInternalServerError, "could not update employee")
		return
	}

	verb := "disabled"
	if active {
		verb = "enabled"
	}
	redirectAdmin(c, fmt.Sprintf("Employee %q %s", employee.Name, verb))
}

func redirectAdmin(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/admin?message="+url.QueryEscape(message))
}

// reportFilter reads start_date, end_date and employee_id from the
// query, falling back to the previous full calendar month when the
// range is incomplete.
func reportFilter(c *gin.Context, reports *services.ReportService) (string, string, *uint) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		startDate, endDate = reports.DefaultRange(time.Now())
	}

	var employeeID *uint
	if raw := c.Query("employee_id"); raw != "" {
		if id, err := parseID(raw); err == nil {
			employeeID = &id
		}
	}

	return startDate, endDate, employeeID
}
