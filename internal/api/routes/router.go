package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/taskscout/taskscout/internal/api/handlers"
	"github.com/taskscout/taskscout/internal/api/middleware"
	"github.com/taskscout/taskscout/internal/application"
	"github.com/taskscout/taskscout/internal/cache"
	"github.com/taskscout/taskscout/internal/config"
	"github.com/taskscout/taskscout/internal/config/db"
	"github.com/taskscout/taskscout/internal/cron"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/events"
	"github.com/taskscout/taskscout/internal/metrics"
	"github.com/taskscout/taskscout/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	cacheStore := cache.New(cache.NewClient(config.RedisURL), time.Duration(config.CacheTTLSeconds)*time.Second)
	hub := events.NewHub()

	availability, err := application.LoadAvailability(config.AvailabilityFile)
	if err != nil {
		log.Printf("availability config not loaded: %v", err)
	}

	services := application.New(repos, cacheStore, hub, availability)
	h := handlers.New(services, hub, r)

	// Background tasks
	cron.StartCleanupTask(services.Audit)
	cron.StartOverdueSweep(services.Invoice)

	Register(r, h)
}

// Register wires the HTTP surface onto the engine. Kept separate from
// RegisterRoutes so the route table can be exercised without a database,
// redis, or the background tasks.
func Register(r *gin.Engine, h *handlers.Handlers) {
	// Public surface
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.GET("/ws/tickets", middleware.JWTAuthMiddleware(), h.WS.TicketStream)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(), metrics.Middleware())
	{
		tickets := api.Group("/tickets")
		{
			tickets.POST("", h.Ticket.Create)
			tickets.GET("", h.Ticket.List)
			tickets.GET("/marketplace", middleware.RequireVendor(), h.Ticket.Marketplace)
			tickets.GET("/:id", h.Ticket.Get)
			tickets.POST("/:id/accept", h.Ticket.Accept)
			tickets.POST("/:id/reject", h.Ticket.Reject)
			tickets.POST("/:id/start", middleware.RequireVendor(), h.Ticket.Start)
			tickets.POST("/:id/complete", h.Ticket.Confirm)
			tickets.POST("/:id/confirm", h.Ticket.Confirm)
			tickets.POST("/:id/return", h.Ticket.RequestReturn)
			tickets.POST("/:id/ready-for-billing", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Ticket.ReadyForBilling)
			tickets.POST("/:id/force-close", h.Ticket.ForceClose)
			tickets.POST("/:id/milestones", middleware.RequireVendor(), h.Ticket.AddMilestone)
			tickets.GET("/:id/milestones", h.Ticket.ListMilestones)
			tickets.GET("/:id/bids", h.Bid.ListByTicket)
			tickets.POST("/:id/work-orders", middleware.RequireVendor(), h.WorkOrder.Create)
			tickets.GET("/:id/work-orders", h.WorkOrder.ListByTicket)
		}

		marketplace := api.Group("/marketplace")
		{
			marketplace.POST("/vendor-bids", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Bid.Submit)
			marketplace.GET("/vendor-bids", middleware.RequireVendor(), h.Bid.ListMine)
			marketplace.GET("/bids/:id", h.Bid.Get)
			marketplace.PATCH("/bids/:id", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Bid.Update)
			marketplace.POST("/bids/:id/respond", middleware.RequireOrganization(), h.Bid.Respond)
			marketplace.POST("/bids/:id/counter-response", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Bid.RespondToCounter)
		}

		workOrders := api.Group("/work-orders")
		{
			workOrders.GET("/:id", h.WorkOrder.Get)
		}

		invoices := api.Group("/invoices")
		{
			invoices.POST("", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Invoice.Create)
			invoices.GET("", h.Invoice.List)
			invoices.GET("/:id", h.Invoice.Get)
			invoices.PUT("/:id/status", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Invoice.UpdateStatus)
		}

		orgs := api.Group("/organizations")
		{
			orgs.POST("", middleware.RequireRoles(user.RoleOrgAdmin), h.Org.Create)
			orgs.GET("", h.Org.List)
			orgs.GET("/:id", h.Org.Get)
			orgs.PUT("/:id", middleware.RequireRoles(user.RoleOrgAdmin), h.Org.Update)
			orgs.DELETE("/:id", middleware.RequireRoles(user.RoleOrgAdmin), h.Org.Delete)
			orgs.PUT("/:id/grants", middleware.RequireRoles(user.RoleOrgAdmin), h.Org.UpsertGrant)
			orgs.GET("/:id/grants", middleware.RequireOrganization(), h.Org.ListGrants)
			orgs.GET("/:id/locations", h.Location.ListByOrg)
		}

		grants := api.Group("/grants")
		{
			grants.GET("/:user_id", middleware.RequireOrganization(), h.Org.GetGrant)
			grants.PUT("/:user_id/tiers", middleware.RequireRoles(user.RoleOrgAdmin), h.Org.ToggleTier)
		}

		vendors := api.Group("/maintenance-vendors")
		{
			vendors.POST("", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Vendor.Create)
			vendors.GET("", h.Vendor.List)
			vendors.GET("/:id", h.Vendor.Get)
			vendors.PUT("/:id", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Vendor.Update)
			vendors.DELETE("/:id", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Vendor.Delete)
			vendors.POST("/:id/organizations", middleware.RequireRoles(user.RoleMaintenanceAdmin, user.RoleOrgAdmin), h.Vendor.LinkOrganization)
			vendors.GET("/:id/organizations", h.Vendor.ListOrganizations)
			vendors.GET("/:id/technicians", h.User.ListTechnicians)
		}

		locations := api.Group("/locations")
		{
			locations.POST("", middleware.RequireOrganization(), h.Location.Create)
			locations.GET("/:id", h.Location.Get)
			locations.PUT("/:id", middleware.RequireOrganization(), h.Location.Update)
			locations.DELETE("/:id", middleware.RequireOrganization(), h.Location.Delete)
		}

		cal := api.Group("/calendar")
		{
			cal.POST("/events", middleware.RequireVendor(), h.Calendar.Create)
			cal.DELETE("/events/:id", middleware.RequireVendor(), h.Calendar.Delete)
			cal.GET("/technicians/:id", h.Calendar.ListByTechnician)
		}
		api.GET("/availability/config", h.Calendar.Availability)

		users := api.Group("/users")
		{
			users.GET("/me", h.User.Me)
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		support := api.Group("/support-contact")
		{
			support.POST("", h.Support.Create)
			support.GET("", h.Support.List)
			support.GET("/:id", h.Support.Get)
			support.PUT("/:id/status", middleware.RequireRoles(user.RoleMaintenanceAdmin), h.Support.UpdateStatus)
			support.POST("/:id/messages", h.Support.AddMessage)
		}

		audit := api.Group("/audit/logs")
		{
			audit.GET("", middleware.RequireRoles(user.RoleMaintenanceAdmin, user.RoleOrgAdmin), h.Audit.List)
		}
	}
}
