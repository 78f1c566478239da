package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/controllers"
	"KidSafe/middlewares"
	"KidSafe/services"
)

func RegisterRoutes(r *gin.Engine, auth *services.AuthService) {
	resolver := services.NewSessionResolver()
	gate := middlewares.PageGateMiddleware(auth, resolver)
	parentAuth := middlewares.AuthMiddleware(auth)
	childAuth := middlewares.ChildAuthMiddleware(auth)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Page routes, all behind the session gate.
	pages := r.Group("/")
	pages.Use(gate)
	{
		pages.GET("/", controllers.DashboardPage)
		pages.GET("/login", controllers.LoginPage)
		pages.GET("/signup", controllers.SignupPage)
		pages.GET("/child-login", controllers.ChildLoginPage)
		pages.GET("/dashboard", controllers.DashboardPage)
		pages.GET("/children", controllers.ChildrenPage)
		pages.GET("/children/:id", controllers.ChildDetailPage)
		pages.GET("/reports", controllers.ReportsPage)
		pages.GET("/alerts", controllers.AlertsPage)
		pages.GET("/settings", controllers.SettingsPage)
		pages.GET("/child-dashboard", controllers.ChildDashboardPage)
	}

	// Auth endpoints.
	r.POST("/api/signup", controllers.Signup)
	r.POST("/api/login", controllers.LoginParent)
	r.POST("/api/logout", controllers.LogoutParent)
	r.POST("/api/child-login", controllers.LoginChild)
	r.POST("/api/child-logout", childAuth, controllers.LogoutChild)

	// Live alert stream.
	r.GET("/ws/alerts", parentAuth, controllers.ServeAlerts)

	// Parent API.
	api := r.Group("/api")
	api.Use(parentAuth)
	{
		api.GET("/overview", controllers.GetOverview)
		api.GET("/activity", controllers.GetRecentActivity)

		api.GET("/children", controllers.ListChildren)
		api.POST("/children", controllers.CreateChild)
		api.GET("/children/:id", controllers.ReadChild)
		api.PUT("/children/:id", controllers.UpdateChild)
		api.DELETE("/children/:id", controllers.DeleteChild)
		api.PUT("/children/:id/time-settings", controllers.UpdateTimeSettings)
		api.PUT("/children/:id/status", controllers.SetChildStatus)
		api.GET("/children/:id/usage", controllers.GetUsageSummary)
		api.GET("/children/:id/blocked-attempts", controllers.ChildBlockedAttempts)
		api.GET("/children/:id/devices", controllers.ListDevices)

		api.GET("/children/:id/rules", controllers.ListRules)
		api.POST("/children/:id/rules/urls", controllers.AddURLRule)
		api.DELETE("/children/:id/rules/urls", controllers.RemoveURLRule)
		api.POST("/children/:id/rules/categories/toggle", controllers.ToggleCategory)

		api.POST("/devices", controllers.RegisterDevice)
		api.PUT("/devices/:id", controllers.UpdateDevice)
		api.DELETE("/devices/:id", controllers.DeleteDevice)

		api.GET("/alerts", controllers.ListAlerts)
		api.POST("/alerts", controllers.CreateAlert)
		api.PUT("/alerts/read-all", controllers.MarkAllAlertsRead)
		api.PUT("/alerts/:id/read", controllers.MarkAlertRead)
		api.GET("/alert-settings", controllers.GetAlertSettings)
		api.PUT("/alert-settings", controllers.UpdateAlertSetting)

		api.GET("/settings", controllers.GetAppSettings)
		api.PUT("/settings", controllers.UpdateAppSettings)
		api.PUT("/settings/profile", controllers.UpdateProfile)
		api.PUT("/settings/notifications", controllers.UpdateNotificationPreferences)
		api.PUT("/settings/device-token", controllers.UpdateDeviceToken)
		api.DELETE("/settings/account", controllers.DeleteAccount)

		api.GET("/reports/export", controllers.ExportReport)
	}

	// Device-facing API, guarded by the child session token.
	child := r.Group("/api/child")
	child.Use(childAuth)
	{
		child.GET("/me", controllers.ChildMe)
		child.GET("/usage", controllers.ChildUsage)
		child.POST("/usage", controllers.IngestUsage)
		child.GET("/blocked-attempts", controllers.ChildRecentBlockedAttempts)
		child.POST("/blocked-attempts", controllers.IngestBlockedAttempt)
	}
}
