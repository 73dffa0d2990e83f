package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayops/config"
	"stayops/database"
)

// PaymentRequest contains data for recording a payment attempt
type PaymentRequest struct {
	BookingID     *uint    `json:"bookingId"`
	Amount        *float64 `json:"amount" binding:"required,gte=0"`
	Currency      string   `json:"currency"`
	Status        string   `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaymentMethod string   `json:"paymentMethod"`
	ProcessingFee float64  `json:"processingFee" binding:"gte=0"`
}

// PaymentUpdateRequest drives status transitions: "retry" moves a payment
// back to pending, "refund" marks it refunded. A plain status patch is
// also accepted.
type PaymentUpdateRequest struct {
	Action string  `json:"action" binding:"omitempty,oneof=retry refund"`
	Status *string `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
}

// PaymentIntentRequest contains data for creating a gateway payment order
type PaymentIntentRequest struct {
	Amount    *float64 `json:"amount" binding:"required,gt=0"`
	Currency  string   `json:"currency"`
	BookingID *uint    `json:"bookingId"`
}

// GetPayments lists payments, optionally filtered by ?bookingId=
func GetPayments(c *gin.Context) {
	query := database.DB.Order("created_at DESC")

	if bookingID := c.Query("bookingId"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	payments := []database.Payment{}
	if err := query.Find(&payments).Error; err != nil {
		zap.L().Error("payment list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CreatePayment records a payment attempt against a booking
func CreatePayment(c *gin.Context) {
	var request PaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}
	status := request.Status
	if status == "" {
		status = database.PaymentStatusPending
	}

	payment := database.Payment{
		BookingID:     request.BookingID,
		Amount:        *request.Amount,
		Currency:      currency,
		Status:        status,
		PaymentMethod: request.PaymentMethod,
		ProcessingFee: request.ProcessingFee,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		zap.L().Error("payment creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// UpdatePayment applies a status transition or a plain status patch
func UpdatePayment(c *gin.Context) {
	var payment database.Payment
	if err := database.DB.First(&payment, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
		} else {
			zap.L().Error("payment fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching payment"})
		}
		return
	}

	var request PaymentUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	var status string
	switch request.Action {
	case "retry":
		status = database.PaymentStatusPending
	case "refund":
		status = database.PaymentStatusRefunded
	default:
		if request.Status == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  []FieldError{{Field: "action", Message: "either action or status is required"}},
			})
			return
		}
		status = *request.Status
	}

	if err := database.DB.Model(&payment).Update("status", status).Error; err != nil {
		zap.L().Error("payment update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating payment"})
		return
	}
	payment.Status = status

	c.JSON(http.StatusOK, payment)
}

// CreatePaymentIntent delegates to the payment gateway, creating an order
// and a matching pending payment row
func CreatePaymentIntent(c *gin.Context) {
	var request PaymentIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "INR"
	}

	client := razorpay.NewClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret)

	// Gateway amounts are in the smallest currency unit
	data := map[string]interface{}{
		"amount":   int64(*request.Amount * 100),
		"currency": currency,
	}
	if request.BookingID != nil {
		data["receipt"] = fmt.Sprintf("booking_%d", *request.BookingID)
		data["notes"] = map[string]interface{}{"booking_id": *request.BookingID}
	}

	order, err := client.Order.Create(data, nil)
	if err != nil {
		zap.L().Error("gateway order creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent"})
		return
	}

	gatewayOrderID, _ := order["id"].(string)

	payment := database.Payment{
		BookingID:      request.BookingID,
		Amount:         *request.Amount,
		Currency:       currency,
		Status:         database.PaymentStatusPending,
		PaymentMethod:  "razorpay",
		GatewayOrderID: gatewayOrderID,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		zap.L().Error("payment record creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error recording payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gatewayOrderId": gatewayOrderID,
		"amount":         *request.Amount,
		"currency":       currency,
		"key":            config.AppConfig.RazorpayKey,
		"paymentId":      payment.ID,
	})
}
