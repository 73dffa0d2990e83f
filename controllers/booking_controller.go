package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayops/database"
)

// BookingRequest contains data for creating a booking. Check-in before
// check-out is not enforced at write time; scheduling here is soft.
type BookingRequest struct {
	PropertyID        *uint     `json:"propertyId"`
	GuestName         string    `json:"guestName" binding:"required"`
	GuestEmail        string    `json:"guestEmail" binding:"required,email"`
	GuestPhone        string    `json:"guestPhone"`
	CheckInDate       time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate      time.Time `json:"checkOutDate" binding:"required"`
	Guests            *int      `json:"guests" binding:"required,min=1"`
	TotalAmount       *float64  `json:"totalAmount" binding:"required,gte=0"`
	Status            string    `json:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled completed"`
	Source            string    `json:"source" binding:"omitempty,oneof=direct airbnb booking_com vrbo"`
	ExternalBookingID string    `json:"externalBookingId"`
	PaymentStatus     string    `json:"paymentStatus"`
	SpecialRequests   string    `json:"specialRequests"`
}

// BookingUpdateRequest is a partial patch; nil fields stay untouched
type BookingUpdateRequest struct {
	PropertyID        *uint      `json:"propertyId"`
	GuestName         *string    `json:"guestName"`
	GuestEmail        *string    `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone        *string    `json:"guestPhone"`
	CheckInDate       *time.Time `json:"checkInDate"`
	CheckOutDate      *time.Time `json:"checkOutDate"`
	Guests            *int       `json:"guests" binding:"omitempty,min=1"`
	TotalAmount       *float64   `json:"totalAmount" binding:"omitempty,gte=0"`
	Status            *string    `json:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled completed"`
	Source            *string    `json:"source" binding:"omitempty,oneof=direct airbnb booking_com vrbo"`
	ExternalBookingID *string    `json:"externalBookingId"`
	PaymentStatus     *string    `json:"paymentStatus"`
	SpecialRequests   *string    `json:"specialRequests"`
}

// GetBookings lists bookings, optionally filtered by ?propertyId=
func GetBookings(c *gin.Context) {
	query := database.DB.Order("created_at DESC")

	if propertyID := c.Query("propertyId"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	bookings := []database.Booking{}
	if err := query.Find(&bookings).Error; err != nil {
		zap.L().Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetRecentBookings lists the most recent bookings (?limit=N, default 10)
func GetRecentBookings(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  []FieldError{{Field: "limit", Message: "must be a positive integer"}},
			})
			return
		}
		limit = parsed
	}

	bookings := []database.Booking{}
	if err := database.DB.Order("created_at DESC").Limit(limit).Find(&bookings).Error; err != nil {
		zap.L().Error("recent booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching recent bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by ID
func GetBookingByID(c *gin.Context) {
	var booking database.Booking
	if err := database.DB.First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			zap.L().Error("booking fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching booking"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking creates a new booking
func CreateBooking(c *gin.Context) {
	var request BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	status := request.Status
	if status == "" {
		status = database.BookingStatusPending
	}
	source := request.Source
	if source == "" {
		source = database.BookingSourceDirect
	}
	paymentStatus := request.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	booking := database.Booking{
		PropertyID:        request.PropertyID,
		GuestName:         request.GuestName,
		GuestEmail:        request.GuestEmail,
		GuestPhone:        request.GuestPhone,
		CheckInDate:       request.CheckInDate,
		CheckOutDate:      request.CheckOutDate,
		Guests:            *request.Guests,
		TotalAmount:       *request.TotalAmount,
		Status:            status,
		Source:            source,
		ExternalBookingID: request.ExternalBookingID,
		PaymentStatus:     paymentStatus,
		SpecialRequests:   request.SpecialRequests,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		zap.L().Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking applies a partial patch to an existing booking.
// Last write wins; there is no version check.
func UpdateBooking(c *gin.Context) {
	var booking database.Booking
	if err := database.DB.First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			zap.L().Error("booking fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching booking"})
		}
		return
	}

	var request BookingUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.PropertyID != nil {
		updates["property_id"] = *request.PropertyID
	}
	if request.GuestName != nil {
		updates["guest_name"] = *request.GuestName
	}
	if request.GuestEmail != nil {
		updates["guest_email"] = *request.GuestEmail
	}
	if request.GuestPhone != nil {
		updates["guest_phone"] = *request.GuestPhone
	}
	if request.CheckInDate != nil {
		updates["check_in_date"] = *request.CheckInDate
	}
	if request.CheckOutDate != nil {
		updates["check_out_date"] = *request.CheckOutDate
	}
	if request.Guests != nil {
		updates["guests"] = *request.Guests
	}
	if request.TotalAmount != nil {
		updates["total_amount"] = *request.TotalAmount
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.Source != nil {
		updates["source"] = *request.Source
	}
	if request.ExternalBookingID != nil {
		updates["external_booking_id"] = *request.ExternalBookingID
	}
	if request.PaymentStatus != nil {
		updates["payment_status"] = *request.PaymentStatus
	}
	if request.SpecialRequests != nil {
		updates["special_requests"] = *request.SpecialRequests
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&booking).Updates(updates).Error; err != nil {
			zap.L().Error("booking update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating booking"})
			return
		}
		if err := database.DB.First(&booking, booking.ID).Error; err != nil {
			zap.L().Error("booking refetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching booking"})
			return
		}
	}

	c.JSON(http.StatusOK, booking)
}
