// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/CorprexAhmed/Corprex-Scheduler/config"
	"github.com/CorprexAhmed/Corprex-Scheduler/cron"
	"github.com/CorprexAhmed/Corprex-Scheduler/database"
	aimodelRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/aimodel"
	meetingRepoPkg "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/meeting"
	userRepoPkg "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/user"
	"github.com/CorprexAhmed/Corprex-Scheduler/handlers"
	"github.com/CorprexAhmed/Corprex-Scheduler/middleware"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/routes"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/admin"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/notification"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/scheduling"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/tasks"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStatsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	modelRepo := aimodelRepo.NewMongoAIModelRepo()

	// services.
	notificationService := notification.NewDefaultNotificationService()
	reminderClient := tasks.NewClient()

	engine := scheduling.NewDefaultSchedulingEngine(meetingRepo, notificationService, reminderClient)
	engine.Initialize(config.AppConfig.SlotHorizonDays, scheduling.DefaultTimeLabels)

	// Reload mirrored meetings so booked slots stay booked across restarts.
	if meetings, err := meetingRepo.GetByStatus(""); err != nil {
		logger.Sugar().Warnf("main: could not restore meetings from mirror: %v", err)
	} else {
		engine.Restore(meetings)
		logger.Sugar().Infof("main: restored %d meetings from mirror", len(meetings))
	}

	adminService := &admin.DefaultAdminService{
		Users:  userRepo,
		Models: modelRepo,
	}
	usageService := &admin.DefaultUsageService{
		Cache: utils.GetStatsCacheClient(),
	}

	cron.InitReminderWorker(engine, notificationService)

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(engine, usageService)
	meetingHandler := handlers.NewMeetingHandler(engine, usageService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, usageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		GetAvailableDatesHandler: availabilityHandler.GetAvailableDatesHandler,
		GetAvailableTimesHandler: availabilityHandler.GetAvailableTimesHandler,

		// Meeting endpoints.
		BookMeetingHandler:   meetingHandler.BookMeetingHandler,
		CancelMeetingHandler: meetingHandler.CancelMeetingHandler,
		ListMeetingsHandler:  meetingHandler.ListMeetingsHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetStatsCacheClient()}, database.MongoClient)

	// Make sure at least one dashboard account exists on a fresh deployment.
	ensureDefaultAdmin(adminService, userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// ensureDefaultAdmin seeds an owner account from the environment when the
// collection is empty, so a fresh deployment can be signed into.
func ensureDefaultAdmin(svc admin.AdminService, repo userRepoPkg.UserRepository) {
	users, err := repo.GetAll()
	if err != nil || len(users) > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.GetLogger().Warn("no admin accounts exist and ADMIN_EMAIL/ADMIN_PASSWORD are unset")
		return
	}

	if _, err := svc.CreateUser(models.AdminUserInput{
		Name:     "Owner",
		Email:    email,
		Password: password,
		Role:     models.RoleOwner,
	}); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to seed default admin: %v", err)
	}
}
