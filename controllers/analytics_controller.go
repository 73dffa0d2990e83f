package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayops/database"
)

// AnalyticsRequest contains data for ingesting a precomputed rollup row
type AnalyticsRequest struct {
	PropertyID    *uint     `json:"propertyId" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	OccupancyRate float64   `json:"occupancyRate" binding:"gte=0,lte=100"`
	Revenue       float64   `json:"revenue" binding:"gte=0"`
	BookingsCount int       `json:"bookingsCount" binding:"gte=0"`
	AverageStay   float64   `json:"averageStay" binding:"gte=0"`
	Source        string    `json:"source" binding:"omitempty,oneof=daily weekly monthly"`
}

// GetAnalytics lists rollup rows filtered by ?propertyId=&startDate=&endDate=
func GetAnalytics(c *gin.Context) {
	query := database.DB.Order("date DESC")

	if propertyID := c.Query("propertyId"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}
	if raw := c.Query("startDate"); raw != "" {
		startDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  []FieldError{{Field: "startDate", Message: "must be a date in YYYY-MM-DD format"}},
			})
			return
		}
		query = query.Where("date >= ?", startDate)
	}
	if raw := c.Query("endDate"); raw != "" {
		endDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  []FieldError{{Field: "endDate", Message: "must be a date in YYYY-MM-DD format"}},
			})
			return
		}
		query = query.Where("date <= ?", endDate)
	}

	rows := []database.Analytics{}
	if err := query.Find(&rows).Error; err != nil {
		zap.L().Error("analytics list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching analytics"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateAnalytics ingests a rollup row computed out-of-band
func CreateAnalytics(c *gin.Context) {
	var request AnalyticsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	row := database.Analytics{
		PropertyID:    request.PropertyID,
		Date:          request.Date,
		OccupancyRate: request.OccupancyRate,
		Revenue:       request.Revenue,
		BookingsCount: request.BookingsCount,
		AverageStay:   request.AverageStay,
		Source:        request.Source,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		zap.L().Error("analytics creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating analytics row"})
		return
	}

	c.JSON(http.StatusCreated, row)
}
