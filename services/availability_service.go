package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayops/database"
)

// Property day-status classifications, in priority order.
const (
	PropertyStatusOccupied    = "occupied"
	PropertyStatusMaintenance = "maintenance"
	PropertyStatusAvailable   = "available"
)

// ErrPropertyNotFound is returned when a status query references an
// unknown property id.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyDayStatus is the derived status of one property on one date.
type PropertyDayStatus struct {
	PropertyID   uint   `json:"propertyId"`
	PropertyName string `json:"propertyName"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// AvailabilitySummary aggregates the derived status of every active
// property for a single date.
type AvailabilitySummary struct {
	Date          string              `json:"date"`
	Available     int                 `json:"available"`
	Occupied      int                 `json:"occupied"`
	Maintenance   int                 `json:"maintenance"`
	OccupancyRate float64             `json:"occupancyRate"`
	Properties    []PropertyDayStatus `json:"properties"`
}

// DeriveStatus classifies a property's status for the day containing date,
// given that property's bookings and housekeeping tasks. First match wins:
// occupied beats maintenance beats available. A check-in or check-out
// falling exactly on the day still counts as occupied, and overlapping
// (double) bookings classify the same as a single one.
func DeriveStatus(bookings []database.Booking, tasks []database.HousekeepingTask, date time.Time) string {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	for _, b := range bookings {
		if b.Status == database.BookingStatusCancelled {
			continue
		}
		if !b.CheckInDate.After(dayEnd) && !b.CheckOutDate.Before(dayStart) {
			return PropertyStatusOccupied
		}
	}

	for _, t := range tasks {
		if t.Status == database.TaskStatusCompleted || t.DueDate == nil {
			continue
		}
		if !t.DueDate.Before(dayStart) && !t.DueDate.After(dayEnd) {
			return PropertyStatusMaintenance
		}
	}

	return PropertyStatusAvailable
}

// GetPropertyStatus derives the status of a single property for the given
// date by fetching its bookings and tasks.
func GetPropertyStatus(propertyID uint, date time.Time) (*PropertyDayStatus, error) {
	var property database.Property
	if err := database.DB.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("fetching property: %w", err)
	}

	bookings, tasks, err := loadPropertyDay(propertyID)
	if err != nil {
		return nil, err
	}

	return &PropertyDayStatus{
		PropertyID:   property.ID,
		PropertyName: property.Name,
		Date:         date.Format("2006-01-02"),
		Status:       DeriveStatus(bookings, tasks, date),
	}, nil
}

// GetAvailabilitySummary derives the status of every active property for
// the given date and totals the results for the dashboard cards.
func GetAvailabilitySummary(date time.Time) (*AvailabilitySummary, error) {
	var properties []database.Property
	if err := database.DB.Where("is_active = ?", true).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}

	summary := &AvailabilitySummary{
		Date:       date.Format("2006-01-02"),
		Properties: make([]PropertyDayStatus, 0, len(properties)),
	}

	for _, p := range properties {
		bookings, tasks, err := loadPropertyDay(p.ID)
		if err != nil {
			return nil, err
		}

		status := DeriveStatus(bookings, tasks, date)
		switch status {
		case PropertyStatusOccupied:
			summary.Occupied++
		case PropertyStatusMaintenance:
			summary.Maintenance++
		default:
			summary.Available++
		}

		summary.Properties = append(summary.Properties, PropertyDayStatus{
			PropertyID:   p.ID,
			PropertyName: p.Name,
			Date:         summary.Date,
			Status:       status,
		})
	}

	summary.OccupancyRate = occupancyRate(int64(summary.Occupied), int64(len(properties)))

	return summary, nil
}

func loadPropertyDay(propertyID uint) ([]database.Booking, []database.HousekeepingTask, error) {
	var bookings []database.Booking
	if err := database.DB.
		Where("property_id = ? AND status <> ?", propertyID, database.BookingStatusCancelled).
		Find(&bookings).Error; err != nil {
		return nil, nil, fmt.Errorf("fetching bookings: %w", err)
	}

	var tasks []database.HousekeepingTask
	if err := database.DB.
		Where("property_id = ? AND status <> ?", propertyID, database.TaskStatusCompleted).
		Find(&tasks).Error; err != nil {
		return nil, nil, fmt.Errorf("fetching housekeeping tasks: %w", err)
	}

	return bookings, tasks, nil
}
