package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayops/services"
)

// GetDashboardStats returns the aggregated dashboard snapshot
func GetDashboardStats(c *gin.Context) {
	stats, err := services.GetDashboardStats(time.Now())
	if err != nil {
		zap.L().Error("dashboard stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetDashboardAvailability returns the per-property availability summary
// for a single date (today unless ?date=YYYY-MM-DD is given)
func GetDashboardAvailability(c *gin.Context) {
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	summary, err := services.GetAvailabilitySummary(date)
	if err != nil {
		zap.L().Error("availability summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching availability summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// parseDateParam reads an optional YYYY-MM-DD query parameter, defaulting
// to today. On a malformed value it writes a 400 and returns ok=false.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  []FieldError{{Field: name, Message: "must be a date in YYYY-MM-DD format"}},
		})
		return time.Time{}, false
	}
	return date, true
}
