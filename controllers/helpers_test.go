package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayops/database"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&database.User{},
		&database.Property{},
		&database.Booking{},
		&database.Message{},
		&database.HousekeepingTask{},
		&database.Payment{},
		&database.OtaIntegration{},
		&database.Analytics{},
	))

	for _, table := range []string{"users", "properties", "bookings", "messages", "housekeeping_tasks", "payments", "ota_integrations", "analytics"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	database.DB = db
}

// newTestRouter registers the API routes without the auth middleware so
// handler behavior can be exercised directly.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	{
		api.POST("/users", Register)
		api.POST("/auth/login", Login)

		api.GET("/dashboard/stats", GetDashboardStats)
		api.GET("/dashboard/availability", GetDashboardAvailability)

		api.GET("/properties", GetProperties)
		api.GET("/properties/:id", GetPropertyByID)
		api.GET("/properties/:id/status", GetPropertyStatus)
		api.POST("/properties", CreateProperty)
		api.PUT("/properties/:id", UpdateProperty)

		api.GET("/bookings", GetBookings)
		api.GET("/bookings/recent", GetRecentBookings)
		api.GET("/bookings/:id", GetBookingByID)
		api.POST("/bookings", CreateBooking)
		api.PUT("/bookings/:id", UpdateBooking)
		api.PATCH("/bookings/:id", UpdateBooking)

		api.GET("/messages", GetMessages)
		api.GET("/messages/unread", GetUnreadMessages)
		api.POST("/messages", CreateMessage)
		api.PUT("/messages/:id/read", MarkMessageRead)

		api.GET("/housekeeping", GetHousekeepingTasks)
		api.GET("/housekeeping/pending", GetPendingHousekeepingTasks)
		api.POST("/housekeeping", CreateHousekeepingTask)
		api.PUT("/housekeeping/:id", UpdateHousekeepingTask)

		api.GET("/payments", GetPayments)
		api.POST("/payments", CreatePayment)
		api.PUT("/payments/:id", UpdatePayment)

		api.GET("/integrations/ota", GetOtaIntegrations)
		api.POST("/integrations/ota", CreateOtaIntegration)
		api.PUT("/integrations/ota/:id", UpdateOtaIntegration)

		api.GET("/analytics", GetAnalytics)
		api.POST("/analytics", CreateAnalytics)
	}

	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRawRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func uintPtr(v uint) *uint { return &v }
