package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayops/database"
	"stayops/services"
)

// PropertyRequest contains data for creating a property
type PropertyRequest struct {
	Name         string         `json:"name" binding:"required"`
	Address      string         `json:"address" binding:"required"`
	Description  string         `json:"description"`
	Type         string         `json:"type" binding:"required"`
	Bedrooms     *int           `json:"bedrooms" binding:"required,gte=0"`
	Bathrooms    *int           `json:"bathrooms" binding:"required,gte=0"`
	MaxGuests    *int           `json:"maxGuests" binding:"required,min=1"`
	BasePrice    *float64       `json:"basePrice" binding:"required,gte=0"`
	CleaningFee  float64        `json:"cleaningFee" binding:"gte=0"`
	OwnerID      *uint          `json:"ownerId"`
	Images       datatypes.JSON `json:"images"`
	Amenities    datatypes.JSON `json:"amenities"`
	IsActive     *bool          `json:"isActive"`
	AirbnbID     string         `json:"airbnbId"`
	BookingComID string         `json:"bookingComId"`
	VrboID       string         `json:"vrboId"`
}

// PropertyUpdateRequest is a partial patch; nil fields stay untouched
type PropertyUpdateRequest struct {
	Name         *string         `json:"name"`
	Address      *string         `json:"address"`
	Description  *string         `json:"description"`
	Type         *string         `json:"type"`
	Bedrooms     *int            `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int            `json:"bathrooms" binding:"omitempty,gte=0"`
	MaxGuests    *int            `json:"maxGuests" binding:"omitempty,min=1"`
	BasePrice    *float64        `json:"basePrice" binding:"omitempty,gte=0"`
	CleaningFee  *float64        `json:"cleaningFee" binding:"omitempty,gte=0"`
	OwnerID      *uint           `json:"ownerId"`
	Images       *datatypes.JSON `json:"images"`
	Amenities    *datatypes.JSON `json:"amenities"`
	IsActive     *bool           `json:"isActive"`
	AirbnbID     *string         `json:"airbnbId"`
	BookingComID *string         `json:"bookingComId"`
	VrboID       *string         `json:"vrboId"`
}

// GetProperties lists active properties
func GetProperties(c *gin.Context) {
	properties := []database.Property{}
	if err := database.DB.Where("is_active = ?", true).Find(&properties).Error; err != nil {
		zap.L().Error("property list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetPropertyByID retrieves a property by ID
func GetPropertyByID(c *gin.Context) {
	var property database.Property
	if err := database.DB.First(&property, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		} else {
			zap.L().Error("property fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching property"})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty creates a new property
func CreateProperty(c *gin.Context) {
	var request PropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	property := database.Property{
		Name:         request.Name,
		Address:      request.Address,
		Description:  request.Description,
		Type:         request.Type,
		Bedrooms:     *request.Bedrooms,
		Bathrooms:    *request.Bathrooms,
		MaxGuests:    *request.MaxGuests,
		BasePrice:    *request.BasePrice,
		CleaningFee:  request.CleaningFee,
		OwnerID:      request.OwnerID,
		Images:       request.Images,
		Amenities:    request.Amenities,
		IsActive:     isActive,
		AirbnbID:     request.AirbnbID,
		BookingComID: request.BookingComID,
		VrboID:       request.VrboID,
	}

	if err := database.DB.Create(&property).Error; err != nil {
		zap.L().Error("property creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating property"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty applies a partial patch to an existing property.
// Last write wins; there is no version check.
func UpdateProperty(c *gin.Context) {
	var property database.Property
	if err := database.DB.First(&property, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		} else {
			zap.L().Error("property fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching property"})
		}
		return
	}

	var request PropertyUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Address != nil {
		updates["address"] = *request.Address
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Type != nil {
		updates["type"] = *request.Type
	}
	if request.Bedrooms != nil {
		updates["bedrooms"] = *request.Bedrooms
	}
	if request.Bathrooms != nil {
		updates["bathrooms"] = *request.Bathrooms
	}
	if request.MaxGuests != nil {
		updates["max_guests"] = *request.MaxGuests
	}
	if request.BasePrice != nil {
		updates["base_price"] = *request.BasePrice
	}
	if request.CleaningFee != nil {
		updates["cleaning_fee"] = *request.CleaningFee
	}
	if request.OwnerID != nil {
		updates["owner_id"] = *request.OwnerID
	}
	if request.Images != nil {
		updates["images"] = *request.Images
	}
	if request.Amenities != nil {
		updates["amenities"] = *request.Amenities
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}
	if request.AirbnbID != nil {
		updates["airbnb_id"] = *request.AirbnbID
	}
	if request.BookingComID != nil {
		updates["booking_com_id"] = *request.BookingComID
	}
	if request.VrboID != nil {
		updates["vrbo_id"] = *request.VrboID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&property).Updates(updates).Error; err != nil {
			zap.L().Error("property update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating property"})
			return
		}
		if err := database.DB.First(&property, property.ID).Error; err != nil {
			zap.L().Error("property refetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching property"})
			return
		}
	}

	c.JSON(http.StatusOK, property)
}

// GetPropertyStatus derives the occupied/maintenance/available status of a
// property for a single date (today unless ?date=YYYY-MM-DD is given)
func GetPropertyStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  []FieldError{{Field: "id", Message: "must be an integer"}},
		})
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	status, err := services.GetPropertyStatus(uint(id), date)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
			return
		}
		zap.L().Error("property status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deriving property status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
