package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alacham/dochazka/internal/services"
)

type ClockHandler struct {
	Attendance *services.AttendanceService
}

func NewClockHandler(attendance *services.AttendanceService) *ClockHandler {
	return &ClockHandler{Attendance: attendance}
}

// Home lists active employees with links to their action pages.
func (h *ClockHandler) Home(c *gin.Context) {
	employees, err := h.Attendance.ActiveEmployees()
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not load employees")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Employees": employees,
		"Message":   c.Query("message"),
	})
}

// ActionPage shows the single Enter or Leave button the resolver
// permits for this employee.
func (h *ClockHandler) ActionPage(c *gin.Context) {
	employeeID, err := parseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	action, employee, err := h.Attendance.NextAction(employeeID)
	if errors.Is(err, services.ErrEmployeeNotFound) {
		renderError(c, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		renderError(c, http.StatusInternalServerError, "could not resolve next action")
		return
	}

	c.HTML(http.StatusOK, "action.html", gin.H{
		"Employee":   employee,
		"NextAction": string(action),
	})
}

// Record writes one clock event and sends the user home with the
// recorded time as confirmation.
func (h *ClockHandler) Record(c *gin.Context) {
	employeeID, err := parseID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	action := services.Action(c.PostForm("action"))
	recordedAt, err := h.Attendance.Record(employeeID, action)
	switch {
	case errors.Is(err, services.ErrInvalidAction):
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/action/%d", employeeID))
		return
	case errors.Is(err, services.ErrEmployeeNotFound):
		renderError(c, http.StatusNotFound, "employee not found")
		return
	case err != nil:
		renderError(c, http.StatusInternalServerError, "could not record action")
		return
	}

	message := fmt.Sprintf("Recorded %s at %s", action, recordedAt.Format("15:04:05"))
	c.Redirect(http.StatusSeeOther, "/?message="+url.QueryEscape(message))
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	return uint(id), err
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Message": message})
}
