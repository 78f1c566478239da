package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var deviceService *services.DeviceService

func SetDeviceService(service *services.DeviceService) {
	deviceService = service
}

func RegisterDevice(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		ChildID    string `json:"child_id" binding:"required"`
		DeviceID   string `json:"device_id" binding:"required"`
		DeviceName string `json:"device_name" binding:"required"`
		DeviceType string `json:"device_type" binding:"required"`
		OSType     string `json:"os_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	device, err := deviceService.RegisterDevice(parentID, input.ChildID,
		input.DeviceID, input.DeviceName, input.DeviceType, input.OSType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDeviceIDTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChildNotFound), errors.Is(err, services.ErrNotOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "data": device})
}

func ListDevices(c *gin.Context) {
	parentID := c.GetString("parent_id")
	devices, err := deviceService.ListDevices(parentID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": devices})
}

func UpdateDevice(c *gin.Context) {
	parentID := c.GetString("parent_id")
	var input struct {
		DeviceName string `json:"device_name"`
		IsActive   *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	device, err := deviceService.UpdateDevice(parentID, c.Param("id"), input.DeviceName, input.IsActive)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": device})
}

func DeleteDevice(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if err := deviceService.DeleteDevice(parentID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device deleted successfully"})
}
