package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

// Page handlers back the dashboard routes. The session gate middleware has
// already run by the time these execute, so each handler only assembles the
// view's data. Public pages carry no data beyond their name.

func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signup"})
}

func ChildLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "child-login"})
}

// DashboardPage aggregates the landing view: per-child overview, recent
// activity and the unread alert count.
func DashboardPage(c *gin.Context) {
	parentID := c.GetString("parent_id")

	overview, err := usageService.Overview(parentID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	activity, err := usageService.RecentActivity(parentID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	unread, err := alertService.List(parentID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": "dashboard", "data": gin.H{
		"children":        overview,
		"recent_activity": activity,
		"unread_alerts":   len(unread),
	}})
}

func ChildrenPage(c *gin.Context) {
	parentID := c.GetString("parent_id")
	children, err := childService.ListChildren(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "children", "data": gin.H{"children": children}})
}

// ChildDetailPage bundles everything the per-child management view shows:
// the profile, its devices, content rules and today's usage.
func ChildDetailPage(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")

	child, err := childService.GetChild(parentID, childID)
	if err != nil {
		writeChildError(c, err)
		return
	}
	devices, err := deviceService.ListDevices(parentID, childID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	urls, err := ruleService.BlockedURLs(childID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	categories, err := ruleService.CategoryStates(childID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	summary, err := usageService.Summary(childID, services.WindowToday, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": "child-detail", "data": gin.H{
		"child":        child,
		"devices":      devices,
		"blocked_urls": urls,
		"categories":   categories,
		"usage":        summary,
	}})
}

func ReportsPage(c *gin.Context) {
	parentID := c.GetString("parent_id")
	children, err := childService.ListChildren(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "reports", "data": gin.H{"children": children}})
}

func AlertsPage(c *gin.Context) {
	parentID := c.GetString("parent_id")
	alerts, err := alertService.List(parentID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	settings, err := alertService.Settings(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "alerts", "data": gin.H{
		"alerts":   alerts,
		"settings": settings,
	}})
}

func SettingsPage(c *gin.Context) {
	parentID := c.GetString("parent_id")
	setting, err := settingsService.AppSettings(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "settings", "data": gin.H{"app_settings": setting}})
}

// ChildDashboardPage is the child-facing view, driven by the payload the
// session gate already verified.
func ChildDashboardPage(c *gin.Context) {
	value, exists := c.Get("child_payload")
	payload, ok := value.(services.ChildSessionPayload)
	if !exists || !ok {
		c.Redirect(http.StatusFound, "/child-login")
		return
	}

	now := time.Now()
	summary, err := usageService.Summary(payload.Child.ID, services.WindowToday, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": "child-dashboard", "data": gin.H{
		"device":         payload.Device,
		"children":       payload.Child,
		"usage":          summary,
		"time_remaining": payload.Child.TimeRemaining(),
		"percent_used":   payload.Child.PercentUsed(),
		"in_bedtime": services.InBedtime(now, payload.Child.BedtimeStart,
			payload.Child.BedtimeEnd, payload.Child.BedtimeEnabled),
	}})
}
