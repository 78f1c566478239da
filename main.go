package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"KidSafe/config"
	"KidSafe/controllers"
	"KidSafe/repositories/impl"
	"KidSafe/routes"
	"KidSafe/services"
	"KidSafe/websocket"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitLogger()
	config.InitDatabase()
	config.InitMessaging()

	// Initialize repositories
	parentRepo := impl.NewParentRepository(config.DB)
	childRepo := impl.NewChildRepository(config.DB)
	deviceRepo := impl.NewDeviceRepository(config.DB)
	sessionRepo := impl.NewChildSessionRepository(config.DB)
	ruleRepo := impl.NewContentRuleRepository(config.DB)
	usageRepo := impl.NewUsageLogRepository(config.DB)
	attemptRepo := impl.NewBlockedAttemptRepository(config.DB)
	alertRepo := impl.NewAlertRepository(config.DB)
	alertSettingRepo := impl.NewAlertSettingRepository(config.DB)
	appSettingRepo := impl.NewAppSettingRepository(config.DB)

	// Alert delivery channels
	hub := websocket.NewHub(config.Logger)
	pushService := services.NewNotificationService(config.FCM, config.Logger)
	emailService := services.NewEmailService()

	// Initialize services
	authService := services.NewAuthService(parentRepo, childRepo, deviceRepo,
		sessionRepo, alertSettingRepo, appSettingRepo, config.JWTSecret())
	alertService := services.NewAlertService(alertRepo, alertSettingRepo, parentRepo,
		pushService, emailService, hub, config.Logger)
	ruleService := services.NewRuleService(ruleRepo)
	usageService := services.NewUsageService(usageRepo, childRepo)
	childService := services.NewChildService(childRepo, usageRepo, attemptRepo,
		ruleService, alertService, config.Logger)
	deviceService := services.NewDeviceService(deviceRepo, childRepo)
	settingsService := services.NewSettingsService(parentRepo, childRepo, appSettingRepo)
	reportService := services.NewReportService(childRepo, usageService)

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetAlertService(alertService)
	controllers.SetRuleService(ruleService)
	controllers.SetUsageService(usageService)
	controllers.SetChildService(childService)
	controllers.SetDeviceService(deviceService)
	controllers.SetSettingsService(settingsService)
	controllers.SetReportService(reportService)
	controllers.SetAlertHub(hub)

	// Initialize Gin router
	r := gin.Default()

	// Register routes
	routes.RegisterRoutes(r, authService)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
