package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alacham/dochazka/internal/config"
	"github.com/alacham/dochazka/internal/handlers"
	"github.com/alacham/dochazka/internal/middleware"
	"github.com/alacham/dochazka/internal/services"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(middleware.RequestID())

	router.GET("/healthz", handlers.Health)

	attendance := services.NewAttendanceService(db, cfg.Location)
	reports := services.NewReportService(db, cfg.Location)

	clockHandler := handlers.NewClockHandler(attendance)
	adminHandler := handlers.NewAdminHandler(db, reports)
	exportHandler := handlers.NewExportHandler(reports)

	protected := router.Group("/")
	protected.Use(middleware.BasicAuth(cfg.AuthUsername, cfg.AuthPassword))
	{
		protected.GET("/", clockHandler.Home)
		protected.GET("/action/:id", clockHandler.ActionPage)
		protected.POST("/record/:id", clockHandler.Record)

		protected.GET("/admin", adminHandler.Page)
		protected.POST("/admin/employees", adminHandler.AddEmployee)
		protected.POST("/admin/employees/:id/toggle", adminHandler.ToggleEmployee)

		protected.GET("/export/csv", exportHandler.CSV)
		protected.GET("/export/xlsx", exportHandler.XLSX)
		protected.GET("/export/quarters/csv", exportHandler.QuartersCSV)
	}
}
