package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"KidSafe/middlewares"
	"KidSafe/services"
)

var authService *services.AuthService

func SetAuthService(service *services.AuthService) {
	authService = service
}

const sessionCookieMaxAge = 24 * 60 * 60

func Signup(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	parent, token, err := authService.SignupParent(input.Name, input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middlewares.ParentSessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"message": true, "token": token, "user": parent})
}

func LoginParent(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	parent, token, err := authService.LoginParent(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middlewares.ParentSessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": true, "token": token, "user": parent})
}

func LogoutParent(c *gin.Context) {
	c.SetCookie(middlewares.ParentSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": true})
}

// LoginChild authenticates a device by its opaque ID and the child's PIN.
// The full device/child payload goes back to the client and into the child
// session cookie, exactly the shape the child dashboard stores.
func LoginChild(c *gin.Context) {
	var input struct {
		DeviceID string `json:"device_id" binding:"required"`
		PIN      string `json:"pin" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	payload, err := authService.LoginChild(input.DeviceID, input.PIN)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middlewares.ChildSessionCookie, string(raw), sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": true, "data": payload})
}

func LogoutChild(c *gin.Context) {
	if sessionID, exists := c.Get("session_id"); exists {
		authService.LogoutChild(sessionID.(string))
	}
	c.SetCookie(middlewares.ChildSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": true})
}
