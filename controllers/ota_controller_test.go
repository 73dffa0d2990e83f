package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/database"
)

func TestCreateOtaIntegration(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	property := database.Property{Name: "Beach House", Address: "1", Type: "house", IsActive: true}
	require.NoError(t, database.DB.Create(&property).Error)

	w := performRequest(t, r, http.MethodPost, "/api/integrations/ota", map[string]interface{}{
		"platform":           "airbnb",
		"propertyId":         property.ID,
		"externalPropertyId": "abnb-1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created database.OtaIntegration
	decodeBody(t, w, &created)
	assert.Equal(t, "airbnb", created.Platform)
	assert.True(t, created.IsActive)
	// Channel credentials never appear in responses.
	assert.NotContains(t, w.Body.String(), "credentials")
}

func TestCreateOtaIntegrationRejectsUnknownPlatform(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/integrations/ota", map[string]interface{}{
		"platform":           "craigslist",
		"propertyId":         1,
		"externalPropertyId": "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "platform")
}

func TestUpdateOtaIntegrationSyncState(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	integration := database.OtaIntegration{Platform: "vrbo", PropertyID: uintPtr(1), ExternalPropertyID: "vrbo-9", IsActive: true}
	require.NoError(t, database.DB.Create(&integration).Error)

	w := performRequest(t, r, http.MethodPut, fmt.Sprintf("/api/integrations/ota/%d", integration.ID), map[string]interface{}{
		"isActive":   false,
		"lastSyncAt": "2026-08-30T06:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated database.OtaIntegration
	decodeBody(t, w, &updated)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.LastSyncAt)

	w = performRequest(t, r, http.MethodPut, "/api/integrations/ota/99999", map[string]interface{}{"isActive": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOtaIntegrationsFilteredByProperty(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	require.NoError(t, database.DB.Create(&database.OtaIntegration{Platform: "airbnb", PropertyID: uintPtr(1), ExternalPropertyID: "a"}).Error)
	require.NoError(t, database.DB.Create(&database.OtaIntegration{Platform: "booking_com", PropertyID: uintPtr(2), ExternalPropertyID: "b"}).Error)

	w := performRequest(t, r, http.MethodGet, "/api/integrations/ota?propertyId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.OtaIntegration
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "booking_com", listed[0].Platform)
}
