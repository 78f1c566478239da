package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var alertService *services.AlertService

func SetAlertService(service *services.AlertService) {
	alertService = service
}

func ListAlerts(c *gin.Context) {
	parentID := c.GetString("parent_id")
	unreadOnly := c.Query("unread") == "true"
	alerts, err := alertService.List(parentID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": alerts})
}

func MarkAlertRead(c *gin.Context) {
	parentID := c.GetString("parent_id")
	alert, err := alertService.MarkRead(parentID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": alert})
}

func MarkAllAlertsRead(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if err := alertService.MarkAllRead(parentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true})
}

// CreateAlert lets monitoring posts raise an alert directly. Delivery (email,
// push, websocket) follows the parent's alert settings.
func CreateAlert(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		ChildID string `json:"child_id" binding:"required"`
		Type    string `json:"type" binding:"required"`
		Message string `json:"message" binding:"required"`
		Urgent  bool   `json:"urgent"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if _, err := childService.GetChild(parentID, input.ChildID); err != nil {
		writeChildError(c, err)
		return
	}

	alert, err := alertService.Raise(parentID, input.ChildID, input.Type, input.Message, input.Urgent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "data": alert})
}

func GetAlertSettings(c *gin.Context) {
	parentID := c.GetString("parent_id")
	settings, err := alertService.Settings(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": settings})
}

func UpdateAlertSetting(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		AlertType         string `json:"alert_type" binding:"required"`
		Enabled           bool   `json:"enabled"`
		EmailNotification bool   `json:"email_notification"`
		PushNotification  bool   `json:"push_notification"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	setting, err := alertService.UpdateSetting(parentID, input.AlertType,
		input.Enabled, input.EmailNotification, input.PushNotification)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": setting})
}
