package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/database"
)

func TestCreateBooking(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	body := map[string]interface{}{
		"guestName":    "Jordan Lee",
		"guestEmail":   "jordan@example.com",
		"checkInDate":  "2026-09-01T15:00:00Z",
		"checkOutDate": "2026-09-05T11:00:00Z",
		"guests":       2,
		"totalAmount":  800.0,
	}

	w := performRequest(t, r, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created database.Booking
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, database.BookingStatusPending, created.Status)
	assert.Equal(t, database.BookingSourceDirect, created.Source)
}

func TestCreateBookingValidation(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"guestName":  "No Dates",
		"guestEmail": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "guestEmail")
	assert.Contains(t, w.Body.String(), "checkInDate")
}

func TestCreateBookingAllowsOverlap(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	property := database.Property{Name: "Beach House", Address: "1", Type: "house", IsActive: true}
	require.NoError(t, database.DB.Create(&property).Error)

	body := map[string]interface{}{
		"propertyId":   property.ID,
		"guestName":    "First",
		"guestEmail":   "first@example.com",
		"checkInDate":  "2026-09-01T15:00:00Z",
		"checkOutDate": "2026-09-05T11:00:00Z",
		"guests":       2,
		"totalAmount":  800.0,
		"status":       "confirmed",
	}
	w := performRequest(t, r, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Scheduling is soft: an overlapping booking for the same unit and
	// dates is accepted, not rejected.
	body["guestName"] = "Second"
	body["guestEmail"] = "second@example.com"
	w = performRequest(t, r, http.MethodPost, "/api/bookings", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetRecentBookingsLimit(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, database.DB.Create(&database.Booking{
			GuestName:    fmt.Sprintf("Guest %d", i),
			GuestEmail:   fmt.Sprintf("g%d@example.com", i),
			CheckInDate:  base.AddDate(0, 0, i),
			CheckOutDate: base.AddDate(0, 0, i+2),
			Status:       database.BookingStatusPending,
		}).Error)
	}

	w := performRequest(t, r, http.MethodGet, "/api/bookings/recent?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.Booking
	decodeBody(t, w, &listed)
	assert.Len(t, listed, 3)

	w = performRequest(t, r, http.MethodGet, "/api/bookings/recent?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingsFilteredByProperty(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	p1 := database.Property{Name: "One", Address: "1", Type: "house", IsActive: true}
	p2 := database.Property{Name: "Two", Address: "2", Type: "house", IsActive: true}
	require.NoError(t, database.DB.Create(&p1).Error)
	require.NoError(t, database.DB.Create(&p2).Error)

	require.NoError(t, database.DB.Create(&database.Booking{
		PropertyID: &p1.ID, GuestName: "A", GuestEmail: "a@x.com",
		CheckInDate: time.Now(), CheckOutDate: time.Now().AddDate(0, 0, 1),
	}).Error)
	require.NoError(t, database.DB.Create(&database.Booking{
		PropertyID: &p2.ID, GuestName: "B", GuestEmail: "b@x.com",
		CheckInDate: time.Now(), CheckOutDate: time.Now().AddDate(0, 0, 1),
	}).Error)

	w := performRequest(t, r, http.MethodGet, fmt.Sprintf("/api/bookings?propertyId=%d", p1.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []database.Booking
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "A", listed[0].GuestName)
}

func TestUpdateBookingStatusPatch(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	booking := database.Booking{
		GuestName:    "Jordan",
		GuestEmail:   "jordan@example.com",
		CheckInDate:  time.Now(),
		CheckOutDate: time.Now().AddDate(0, 0, 3),
		Status:       database.BookingStatusPending,
		TotalAmount:  500,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	w := performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", booking.ID), map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated database.Booking
	decodeBody(t, w, &updated)
	assert.Equal(t, database.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, 500.0, updated.TotalAmount)

	w = performRequest(t, r, http.MethodPatch, "/api/bookings/99999", map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", booking.ID), map[string]interface{}{
		"status": "no-such-status",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
