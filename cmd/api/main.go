package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/taskscout/taskscout/internal/api/middleware"
	"github.com/taskscout/taskscout/internal/api/routes"
	"github.com/taskscout/taskscout/internal/config"
	"github.com/taskscout/taskscout/internal/config/db"
	"github.com/taskscout/taskscout/internal/domain/audit"
	"github.com/taskscout/taskscout/internal/domain/bid"
	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/internal/domain/invoice"
	"github.com/taskscout/taskscout/internal/domain/location"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/support"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"github.com/taskscout/taskscout/internal/domain/workorder"
	"github.com/taskscout/taskscout/internal/storage"

	_ "github.com/taskscout/taskscout/docs"
)

// @title TaskScout API
// @version 1.0
// @description Maintenance ticket management backend.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize object storage for ticket media
	storage.InitMinio()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&org.Organization{},
		&org.SubAdminGrant{},
		&vendor.MaintenanceVendor{},
		&vendor.VendorOrganization{},
		&location.Location{},
		&ticket.Ticket{},
		&ticket.Milestone{},
		&bid.VendorBid{},
		&workorder.WorkOrder{},
		&invoice.Invoice{},
		&calendar.Event{},
		&support.Request{},
		&support.Message{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
