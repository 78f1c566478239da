package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var ruleService *services.RuleService

func SetRuleService(service *services.RuleService) {
	ruleService = service
}

// ListRules returns the blocked URL list and the state of every filter
// category for one child.
func ListRules(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")
	if _, err := childService.GetChild(parentID, childID); err != nil {
		writeChildError(c, err)
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
	c.JSON(http.StatusOK, gin.H{"message": true, "data": gin.H{
		"blocked_urls": urls,
		"categories":   categories,
	}})
}

func AddURLRule(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")
	if _, err := childService.GetChild(parentID, childID); err != nil {
		writeChildError(c, err)
		return
	}

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	rule, err := ruleService.AddURLRule(childID, input.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": true, "data": rule})
}

func RemoveURLRule(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")
	if _, err := childService.GetChild(parentID, childID); err != nil {
		writeChildError(c, err)
		return
	}

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := ruleService.RemoveURLRule(childID, input.URL); err != nil {
		if errors.Is(err, services.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rule removed successfully"})
}

func ToggleCategory(c *gin.Context) {
	parentID := c.GetString("parent_id")
	childID := c.Param("id")
	if _, err := childService.GetChild(parentID, childID); err != nil {
		writeChildError(c, err)
		return
	}

	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	rule, err := ruleService.ToggleCategory(childID, input.Category)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": true, "data": rule})
}
