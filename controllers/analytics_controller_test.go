package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/database"
)

func TestCreateAnalytics(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/analytics", map[string]interface{}{
		"propertyId":    1,
		"date":          "2026-08-01T00:00:00Z",
		"occupancyRate": 72.5,
		"revenue":       1840.0,
		"bookingsCount": 6,
		"averageStay":   3.2,
		"source":        "daily",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created database.Analytics
	decodeBody(t, w, &created)
	assert.Equal(t, 72.5, created.OccupancyRate)
	assert.Equal(t, "daily", created.Source)
}

func TestCreateAnalyticsRejectsBadRate(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/analytics", map[string]interface{}{
		"propertyId":    1,
		"date":          "2026-08-01T00:00:00Z",
		"occupancyRate": 140.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "occupancyRate")
}

func TestGetAnalyticsDateRangeFilter(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	for day := 1; day <= 3; day++ {
		require.NoError(t, database.DB.Create(&database.Analytics{
			PropertyID:    uintPtr(1),
			Date:          time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
			OccupancyRate: float64(day * 10),
		}).Error)
	}

	w := performRequest(t, r, http.MethodGet, "/api/analytics?startDate=2026-08-02&endDate=2026-08-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.Analytics
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	// Ordered newest first.
	assert.Equal(t, 30.0, listed[0].OccupancyRate)
	assert.Equal(t, 20.0, listed[1].OccupancyRate)

	w = performRequest(t, r, http.MethodGet, "/api/analytics?startDate=Aug-2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAnalyticsPropertyFilter(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	require.NoError(t, database.DB.Create(&database.Analytics{PropertyID: uintPtr(1), Date: time.Now(), Revenue: 100}).Error)
	require.NoError(t, database.DB.Create(&database.Analytics{PropertyID: uintPtr(2), Date: time.Now(), Revenue: 200}).Error)

	w := performRequest(t, r, http.MethodGet, "/api/analytics?propertyId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.Analytics
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 200.0, listed[0].Revenue)
}
