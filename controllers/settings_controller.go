package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/middlewares"
	"KidSafe/models"
	"KidSafe/services"
)

var settingsService *services.SettingsService

func SetSettingsService(service *services.SettingsService) {
	settingsService = service
}

func GetAppSettings(c *gin.Context) {
	parentID := c.GetString("parent_id")
	setting, err := settingsService.AppSettings(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": setting})
}

func UpdateAppSettings(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input models.AppSetting
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	setting, err := settingsService.UpdateAppSettings(parentID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": setting})
}

func UpdateProfile(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		Name        string `json:"name"`
		AvatarURL   string `json:"avatar_url"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	parent, err := settingsService.UpdateProfile(parentID, input.Name, input.AvatarURL, input.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": parent})
}

func UpdateNotificationPreferences(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input models.NotificationPreferences
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	parent, err := settingsService.UpdateNotificationPreferences(parentID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": parent})
}

// DeleteAccount removes the account with its children and ends the session.
func DeleteAccount(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if err := settingsService.DeleteAccount(parentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.SetCookie(middlewares.ParentSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": true})
}

// UpdateDeviceToken stores the FCM registration token used for alert pushes.
func UpdateDeviceToken(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		DeviceToken string `json:"device_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := settingsService.UpdateDeviceToken(parentID, input.DeviceToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true})
}
