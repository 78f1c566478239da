package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var childService *services.ChildService

func SetChildService(service *services.ChildService) {
	childService = service
}

func ListChildren(c *gin.Context) {
	parentID := c.GetString("parent_id")
	children, err := childService.ListChildren(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": children})
}

func ReadChild(c *gin.Context) {
	parentID := c.GetString("parent_id")
	child, err := childService.GetChild(parentID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": child})
}

func CreateChild(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		Name string `json:"name" binding:"required"`
		Age  int    `json:"age"`
		PIN  string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.CreateChild(parentID, input.Name, input.Age, input.PIN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "data": child})
}

func UpdateChild(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		Name      string `json:"name"`
		Age       int    `json:"age"`
		AvatarURL string `json:"avatar_url"`
		PIN       string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateChild(parentID, c.Param("id"), input.Name, input.Age, input.AvatarURL, input.PIN)
	if err != nil {
		writeChildError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": child})
}

func UpdateTimeSettings(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		DailyLimit     int    `json:"daily_limit" binding:"required"`
		BedtimeStart   string `json:"bedtime_start"`
		BedtimeEnd     string `json:"bedtime_end"`
		BedtimeEnabled bool   `json:"bedtime_enabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateTimeSettings(parentID, c.Param("id"),
		input.DailyLimit, input.BedtimeStart, input.BedtimeEnd, input.BedtimeEnabled)
	if err != nil {
		writeChildError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": child})
}

func SetChildStatus(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.SetStatus(parentID, c.Param("id"), input.Status)
	if err != nil {
		writeChildError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": child})
}

func DeleteChild(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if err := childService.DeleteChild(parentID, c.Param("id")); err != nil {
		writeChildError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}

func ChildBlockedAttempts(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if _, err := childService.GetChild(parentID, c.Param("id")); err != nil {
		writeChildError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	attempts, err := childService.BlockedAttempts(c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": attempts})
}

func writeChildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrChildNotFound), errors.Is(err, services.ErrNotOwned):
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
	case errors.Is(err, services.ErrInvalidPIN),
		errors.Is(err, services.ErrInvalidLimit),
		errors.Is(err, services.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
