package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CorprexAhmed/Corprex-Scheduler/handlers"
	"github.com/CorprexAhmed/Corprex-Scheduler/middleware"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// RegisterAvailabilityRoutes registers the public calendar queries consumed
// by the booking widget.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/dates", hb.GetAvailableDatesHandler)
		api.GET("/times", hb.GetAvailableTimesHandler)
	}
}

// RegisterMeetingRoutes registers booking, cancellation and the admin
// meeting list.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.POST("/book", hb.BookMeetingHandler)
		api.POST("/:id/cancel", hb.CancelMeetingHandler)

		// Dashboard-only listing.
		api.GET("", middleware.JWTAuthAdminMiddleware(), hb.ListMeetingsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		protected.POST("/users", hb.AdminHandler.CreateUserHandler)
		protected.PUT("/users/:id", hb.AdminHandler.UpdateUserHandler)
		protected.DELETE("/users/:id", hb.AdminHandler.DeleteUserHandler)

		protected.GET("/models", hb.AdminHandler.GetModelsHandler)
		protected.POST("/models", hb.AdminHandler.UpsertModelHandler)
		protected.DELETE("/models/:id", hb.AdminHandler.DeleteModelHandler)

		protected.GET("/stats", hb.AdminHandler.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
