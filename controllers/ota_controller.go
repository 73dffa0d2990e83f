package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayops/database"
)

// OtaIntegrationRequest contains data for creating an OTA sync link
type OtaIntegrationRequest struct {
	Platform           string         `json:"platform" binding:"required,oneof=airbnb booking_com vrbo expedia"`
	PropertyID         *uint          `json:"propertyId" binding:"required"`
	ExternalPropertyID string         `json:"externalPropertyId" binding:"required"`
	IsActive           *bool          `json:"isActive"`
	SyncSettings       datatypes.JSON `json:"syncSettings"`
	Credentials        datatypes.JSON `json:"credentials"`
}

// OtaIntegrationUpdateRequest is a partial patch; nil fields stay untouched
type OtaIntegrationUpdateRequest struct {
	Platform           *string         `json:"platform" binding:"omitempty,oneof=airbnb booking_com vrbo expedia"`
	ExternalPropertyID *string         `json:"externalPropertyId"`
	IsActive           *bool           `json:"isActive"`
	LastSyncAt         *time.Time      `json:"lastSyncAt"`
	SyncSettings       *datatypes.JSON `json:"syncSettings"`
	Credentials        *datatypes.JSON `json:"credentials"`
}

// GetOtaIntegrations lists OTA sync links, optionally filtered by ?propertyId=
func GetOtaIntegrations(c *gin.Context) {
	query := database.DB.Session(&gorm.Session{})

	if propertyID := c.Query("propertyId"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	integrations := []database.OtaIntegration{}
	if err := query.Find(&integrations).Error; err != nil {
		zap.L().Error("ota integration list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching OTA integrations"})
		return
	}

	c.JSON(http.StatusOK, integrations)
}

// CreateOtaIntegration creates a new OTA sync link
func CreateOtaIntegration(c *gin.Context) {
	var request OtaIntegrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	integration := database.OtaIntegration{
		Platform:           request.Platform,
		PropertyID:         request.PropertyID,
		ExternalPropertyID: request.ExternalPropertyID,
		IsActive:           isActive,
		SyncSettings:       request.SyncSettings,
		Credentials:        request.Credentials,
	}

	if err := database.DB.Create(&integration).Error; err != nil {
		zap.L().Error("ota integration creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating OTA integration"})
		return
	}

	c.JSON(http.StatusCreated, integration)
}

// UpdateOtaIntegration applies a partial patch to an existing sync link
func UpdateOtaIntegration(c *gin.Context) {
	var integration database.OtaIntegration
	if err := database.DB.First(&integration, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "OTA integration not found"})
		} else {
			zap.L().Error("ota integration fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching OTA integration"})
		}
		return
	}

	var request OtaIntegrationUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.Platform != nil {
		updates["platform"] = *request.Platform
	}
	if request.ExternalPropertyID != nil {
		updates["external_property_id"] = *request.ExternalPropertyID
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}
	if request.LastSyncAt != nil {
		updates["last_sync_at"] = request.LastSyncAt
	}
	if request.SyncSettings != nil {
		updates["sync_settings"] = *request.SyncSettings
	}
	if request.Credentials != nil {
		updates["credentials"] = *request.Credentials
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&integration).Updates(updates).Error; err != nil {
			zap.L().Error("ota integration update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating OTA integration"})
			return
		}
		if err := database.DB.First(&integration, integration.ID).Error; err != nil {
			zap.L().Error("ota integration refetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching OTA integration"})
			return
		}
	}

	c.JSON(http.StatusOK, integration)
}
