package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"KidSafe/services"
)

var reportService *services.ReportService

func SetReportService(service *services.ReportService) {
	reportService = service
}

// ExportReport streams the aggregated usage report as a JSON download with a
// deterministic filename.
func ExportReport(c *gin.Context) {
	parentID := c.GetString("parent_id")

	childID := c.DefaultQuery("child_id", services.AllChildren)
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	doc, filename, err := reportService.Export(parentID, childID, start, end)
	if err != nil {
		if errors.Is(err, services.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body, err := reportService.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", body)
}
