package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/websocket"
)

var alertHub *websocket.Hub

func SetAlertHub(hub *websocket.Hub) {
	alertHub = hub
	go alertHub.Run()
}

// ServeAlerts upgrades the request to a WebSocket and streams the parent's
// alerts as they are raised.
func ServeAlerts(c *gin.Context) {
	parentID := c.GetString("parent_id")
	if parentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := websocket.ServeWs(alertHub, c.Writer, c.Request, parentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
