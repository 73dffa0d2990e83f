package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayops/database"
)

// MessageRequest contains data for creating a message
type MessageRequest struct {
	BookingID         *uint  `json:"bookingId"`
	PropertyID        *uint  `json:"propertyId"`
	Sender            string `json:"sender" binding:"required,oneof=guest host system ai"`
	SenderName        string `json:"senderName"`
	SenderEmail       string `json:"senderEmail" binding:"omitempty,email"`
	Message           string `json:"message" binding:"required"`
	Source            string `json:"source"`
	ExternalMessageID string `json:"externalMessageId"`
}

// GetMessages lists messages, optionally filtered by ?bookingId=
func GetMessages(c *gin.Context) {
	query := database.DB.Order("created_at DESC")

	if bookingID := c.Query("bookingId"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	messages := []database.Message{}
	if err := query.Find(&messages).Error; err != nil {
		zap.L().Error("message list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetUnreadMessages lists messages that have not been marked read
func GetUnreadMessages(c *gin.Context) {
	messages := []database.Message{}
	if err := database.DB.Where("is_read = ?", false).Find(&messages).Error; err != nil {
		zap.L().Error("unread message list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching unread messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// CreateMessage creates a new message
func CreateMessage(c *gin.Context) {
	var request MessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	source := request.Source
	if source == "" {
		source = "direct"
	}

	message := database.Message{
		BookingID:         request.BookingID,
		PropertyID:        request.PropertyID,
		Sender:            request.Sender,
		SenderName:        request.SenderName,
		SenderEmail:       request.SenderEmail,
		Message:           request.Message,
		IsRead:            false,
		Source:            source,
		ExternalMessageID: request.ExternalMessageID,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		zap.L().Error("message creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// MarkMessageRead flips isRead to true. Marking an already-read message
// again is a no-op success.
func MarkMessageRead(c *gin.Context) {
	var message database.Message
	if err := database.DB.First(&message, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		} else {
			zap.L().Error("message fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching message"})
		}
		return
	}

	if !message.IsRead {
		if err := database.DB.Model(&message).Update("is_read", true).Error; err != nil {
			zap.L().Error("message mark-read failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error marking message as read"})
			return
		}
		message.IsRead = true
	}

	c.JSON(http.StatusOK, message)
}
