package services

import (
	"fmt"
	"math"
	"time"

	"stayops/database"
)

// DashboardStats is the on-demand aggregation snapshot rendered by the
// dashboard cards. Every call re-queries the store; nothing is cached.
type DashboardStats struct {
	TotalProperties int64   `json:"totalProperties"`
	ActiveBookings  int64   `json:"activeBookings"`
	OccupancyRate   float64 `json:"occupancyRate"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	UnreadMessages  int64   `json:"unreadMessages"`
	PendingTasks    int64   `json:"pendingTasks"`
}

// GetDashboardStats computes the dashboard snapshot as of now. The first
// failing query aborts the whole call; there is no partial result.
func GetDashboardStats(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := database.DB.Model(&database.Property{}).
		Where("is_active = ?", true).
		Count(&stats.TotalProperties).Error; err != nil {
		return nil, fmt.Errorf("counting properties: %w", err)
	}

	// Only "confirmed" bookings count as active; checked_in is deliberately
	// excluded to match the dashboard's historical definition.
	if err := database.DB.Model(&database.Booking{}).
		Where("status = ? AND check_out_date >= ?", database.BookingStatusConfirmed, now).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, fmt.Errorf("counting active bookings: %w", err)
	}

	if err := database.DB.Model(&database.Message{}).
		Where("is_read = ?", false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return nil, fmt.Errorf("counting unread messages: %w", err)
	}

	if err := database.DB.Model(&database.HousekeepingTask{}).
		Where("status = ?", database.TaskStatusPending).
		Count(&stats.PendingTasks).Error; err != nil {
		return nil, fmt.Errorf("counting pending tasks: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	if err := database.DB.Model(&database.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND created_at >= ? AND created_at < ?",
			database.PaymentStatusCompleted, monthStart, nextMonthStart).
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, fmt.Errorf("summing monthly revenue: %w", err)
	}

	stats.OccupancyRate = occupancyRate(stats.ActiveBookings, stats.TotalProperties)

	return stats, nil
}

// occupancyRate returns bookings/properties as a percentage rounded to one
// decimal. Zero bookings or zero properties both yield 0.
func occupancyRate(bookings, properties int64) float64 {
	if bookings == 0 || properties == 0 {
		return 0
	}
	return roundToOneDecimal(float64(bookings) / float64(properties) * 100)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
