package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var usageService *services.UsageService

func SetUsageService(service *services.UsageService) {
	usageService = service
}

// GetUsageSummary returns the aggregated usage for one child over the
// requested window (today, week or month).
func GetUsageSummary(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")
	if _, err := childService.GetChild(parentID, childID); err != nil {
		writeChildError(c, err)
		return
	}

	window := c.DefaultQuery("window", services.WindowToday)
	switch window {
	case services.WindowToday, services.WindowWeek, services.WindowMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be today, week or month"})
		return
	}

	summary, err := usageService.Summary(childID, window, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": summary})
}

// GetOverview returns every child with remaining time, percent of limit and
// bedtime state, the dashboard's landing view.
func GetOverview(c *gin.Context) {
	parentID := c.GetString("parent_id")
	overview, err := usageService.Overview(parentID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": overview})
}

func GetRecentActivity(c *gin.Context) {
	parentID := c.GetString("parent_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	activity, err := usageService.RecentActivity(parentID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": activity})
}

// ChildMe returns the joined device and child view for the child dashboard,
// plus the derived time and bedtime state.
func ChildMe(c *gin.Context) {
	sessionID := c.GetString("session_id")
	device, child, err := authService.SessionContext(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{"message": true, "data": gin.H{
		"device":         device,
		"children":       child,
		"time_remaining": child.TimeRemaining(),
		"percent_used":   child.PercentUsed(),
		"in_bedtime":     services.InBedtime(now, child.BedtimeStart, child.BedtimeEnd, child.BedtimeEnabled),
	}})
}

// ChildUsage returns today's summary for the logged-in child.
func ChildUsage(c *gin.Context) {
	childID := c.GetString("child_id")
	summary, err := usageService.Summary(childID, services.WindowToday, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": summary})
}

func ChildRecentBlockedAttempts(c *gin.Context) {
	childID := c.GetString("child_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	attempts, err := childService.BlockedAttempts(childID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": attempts})
}

// IngestUsage receives usage sessions reported by the device agent.
func IngestUsage(c *gin.Context) {
	sessionID := c.GetString("session_id")
	device, _, err := authService.SessionContext(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		Entries []services.UsageEntry `json:"entries" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.RecordUsage(c.GetString("child_id"), device.ID, input.Entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usage data recorded successfully", "data": child})
}

// IngestBlockedAttempt receives a denied access attempt from the device
// agent. The stored reason comes from the child's content rules.
func IngestBlockedAttempt(c *gin.Context) {
	sessionID := c.GetString("session_id")
	device, _, err := authService.SessionContext(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		URL      string `json:"url"`
		AppName  string `json:"app_name"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if input.URL == "" && input.AppName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url or app_name is required"})
		return
	}

	attempt, err := childService.RecordBlockedAttempt(c.GetString("child_id"), device.ID,
		input.URL, input.AppName, input.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "data": attempt})
}
