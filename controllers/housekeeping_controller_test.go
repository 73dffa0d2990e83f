package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/database"
)

func TestCreateHousekeepingTask(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	property := database.Property{Name: "Beach House", Address: "1", Type: "house", IsActive: true}
	require.NoError(t, database.DB.Create(&property).Error)

	w := performRequest(t, r, http.MethodPost, "/api/housekeeping", map[string]interface{}{
		"propertyId": property.ID,
		"taskType":   "cleaning",
		"dueDate":    "2026-08-12T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created database.HousekeepingTask
	decodeBody(t, w, &created)
	assert.Equal(t, database.TaskStatusPending, created.Status)
	assert.Nil(t, created.CompletedAt)
}

func TestCreateHousekeepingTaskRejectsUnknownType(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/housekeeping", map[string]interface{}{
		"propertyId": 1,
		"taskType":   "gardening",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "taskType")
}

func TestGetPendingHousekeepingTasks(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	require.NoError(t, database.DB.Create(&database.HousekeepingTask{PropertyID: uintPtr(1), TaskType: "cleaning", Status: database.TaskStatusPending}).Error)
	require.NoError(t, database.DB.Create(&database.HousekeepingTask{PropertyID: uintPtr(1), TaskType: "maintenance", Status: database.TaskStatusInProgress}).Error)
	require.NoError(t, database.DB.Create(&database.HousekeepingTask{PropertyID: uintPtr(1), TaskType: "inspection", Status: database.TaskStatusCompleted}).Error)

	w := performRequest(t, r, http.MethodGet, "/api/housekeeping/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.HousekeepingTask
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "cleaning", listed[0].TaskType)
}

func TestCompletingTaskStampsCompletedAt(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	task := database.HousekeepingTask{PropertyID: uintPtr(1), TaskType: "cleaning", Status: database.TaskStatusPending}
	require.NoError(t, database.DB.Create(&task).Error)

	w := performRequest(t, r, http.MethodPut, fmt.Sprintf("/api/housekeeping/%d", task.ID), map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated database.HousekeepingTask
	decodeBody(t, w, &updated)
	assert.Equal(t, database.TaskStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
}
