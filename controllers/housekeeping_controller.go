package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayops/database"
)

// HousekeepingTaskRequest contains data for creating a housekeeping task
type HousekeepingTaskRequest struct {
	PropertyID *uint      `json:"propertyId" binding:"required"`
	BookingID  *uint      `json:"bookingId"`
	AssignedTo *uint      `json:"assignedTo"`
	TaskType   string     `json:"taskType" binding:"required,oneof=cleaning maintenance inspection"`
	Status     string     `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate    *time.Time `json:"dueDate"`
	Notes      string     `json:"notes"`
}

// HousekeepingTaskUpdateRequest is a partial patch; nil fields stay untouched
type HousekeepingTaskUpdateRequest struct {
	PropertyID *uint      `json:"propertyId"`
	BookingID  *uint      `json:"bookingId"`
	AssignedTo *uint      `json:"assignedTo"`
	TaskType   *string    `json:"taskType" binding:"omitempty,oneof=cleaning maintenance inspection"`
	Status     *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate    *time.Time `json:"dueDate"`
	Notes      *string    `json:"notes"`
}

// GetHousekeepingTasks lists tasks, optionally filtered by ?propertyId=
func GetHousekeepingTasks(c *gin.Context) {
	query := database.DB.Order("created_at DESC")

	if propertyID := c.Query("propertyId"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}

	tasks := []database.HousekeepingTask{}
	if err := query.Find(&tasks).Error; err != nil {
		zap.L().Error("housekeeping list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching housekeeping tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetPendingHousekeepingTasks lists tasks still in pending status
func GetPendingHousekeepingTasks(c *gin.Context) {
	tasks := []database.HousekeepingTask{}
	if err := database.DB.Where("status = ?", database.TaskStatusPending).Find(&tasks).Error; err != nil {
		zap.L().Error("pending housekeeping list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching pending housekeeping tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateHousekeepingTask creates a new housekeeping task
func CreateHousekeepingTask(c *gin.Context) {
	var request HousekeepingTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	status := request.Status
	if status == "" {
		status = database.TaskStatusPending
	}

	task := database.HousekeepingTask{
		PropertyID: request.PropertyID,
		BookingID:  request.BookingID,
		AssignedTo: request.AssignedTo,
		TaskType:   request.TaskType,
		Status:     status,
		DueDate:    request.DueDate,
		Notes:      request.Notes,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		zap.L().Error("housekeeping creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating housekeeping task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateHousekeepingTask applies a partial patch. Completing a task stamps
// completedAt once.
func UpdateHousekeepingTask(c *gin.Context) {
	var task database.HousekeepingTask
	if err := database.DB.First(&task, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Housekeeping task not found"})
		} else {
			zap.L().Error("housekeeping fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching housekeeping task"})
		}
		return
	}

	var request HousekeepingTaskUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.PropertyID != nil {
		updates["property_id"] = *request.PropertyID
	}
	if request.BookingID != nil {
		updates["booking_id"] = *request.BookingID
	}
	if request.AssignedTo != nil {
		updates["assigned_to"] = *request.AssignedTo
	}
	if request.TaskType != nil {
		updates["task_type"] = *request.TaskType
	}
	if request.Status != nil {
		updates["status"] = *request.Status
		if *request.Status == database.TaskStatusCompleted && task.CompletedAt == nil {
			now := time.Now()
			updates["completed_at"] = &now
		}
	}
	if request.DueDate != nil {
		updates["due_date"] = request.DueDate
	}
	if request.Notes != nil {
		updates["notes"] = *request.Notes
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&task).Updates(updates).Error; err != nil {
			zap.L().Error("housekeeping update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating housekeeping task"})
			return
		}
		if err := database.DB.First(&task, task.ID).Error; err != nil {
			zap.L().Error("housekeeping refetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching housekeeping task"})
			return
		}
	}

	c.JSON(http.StatusOK, task)
}
