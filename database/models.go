package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a dashboard user (operator staff, not a guest)
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         string `json:"role" gorm:"default:staff"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
}

// Property represents a short-term-rental unit
type Property struct {
	gorm.Model
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	Description  string         `json:"description"`
	Type         string         `json:"type"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	MaxGuests    int            `json:"maxGuests"`
	BasePrice    float64        `json:"basePrice"`
	CleaningFee  float64        `json:"cleaningFee"`
	OwnerID      *uint          `json:"ownerId"`
	Images       datatypes.JSON `json:"images"`
	Amenities    datatypes.JSON `json:"amenities"`
	IsActive     bool           `json:"isActive"`
	AirbnbID     string         `json:"airbnbId"`
	BookingComID string         `json:"bookingComId"`
	VrboID       string         `json:"vrboId"`
	Owner        *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// Booking represents a guest reservation
type Booking struct {
	gorm.Model
	PropertyID        *uint     `json:"propertyId"`
	GuestName         string    `json:"guestName"`
	GuestEmail        string    `json:"guestEmail"`
	GuestPhone        string    `json:"guestPhone"`
	CheckInDate       time.Time `json:"checkInDate"`
	CheckOutDate      time.Time `json:"checkOutDate"`
	Guests            int       `json:"guests"`
	TotalAmount       float64   `json:"totalAmount"`
	Status            string    `json:"status" gorm:"default:pending"`
	Source            string    `json:"source" gorm:"default:direct"`
	ExternalBookingID string    `json:"externalBookingId"`
	PaymentStatus     string    `json:"paymentStatus" gorm:"default:pending"`
	SpecialRequests   string    `json:"specialRequests"`
	Property          *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// Message represents a guest/host communication entry
type Message struct {
	gorm.Model
	BookingID         *uint     `json:"bookingId"`
	PropertyID        *uint     `json:"propertyId"`
	Sender            string    `json:"sender"`
	SenderName        string    `json:"senderName"`
	SenderEmail       string    `json:"senderEmail"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"isRead" gorm:"default:false"`
	Source            string    `json:"source" gorm:"default:direct"`
	ExternalMessageID string    `json:"externalMessageId"`
	Booking           *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Property          *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// HousekeepingTask represents a cleaning/maintenance/inspection work item
type HousekeepingTask struct {
	gorm.Model
	PropertyID   *uint      `json:"propertyId"`
	BookingID    *uint      `json:"bookingId"`
	AssignedTo   *uint      `json:"assignedTo"`
	TaskType     string     `json:"taskType"`
	Status       string     `json:"status" gorm:"default:pending"`
	DueDate      *time.Time `json:"dueDate"`
	Notes        string     `json:"notes"`
	CompletedAt  *time.Time `json:"completedAt"`
	Property     *Property  `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Booking      *Booking   `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	AssignedUser *User      `gorm:"foreignKey:AssignedTo" json:"assignedUser,omitempty"`
}

// Payment represents a payment attempt against a booking
type Payment struct {
	gorm.Model
	BookingID      *uint    `json:"bookingId"`
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency" gorm:"default:USD"`
	Status         string   `json:"status" gorm:"default:pending"`
	PaymentMethod  string   `json:"paymentMethod"`
	GatewayOrderID string   `json:"gatewayOrderId"`
	ProcessingFee  float64  `json:"processingFee"`
	Booking        *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// OtaIntegration represents a sync link to an external booking channel
type OtaIntegration struct {
	gorm.Model
	Platform           string         `json:"platform"`
	PropertyID         *uint          `json:"propertyId"`
	ExternalPropertyID string         `json:"externalPropertyId"`
	IsActive           bool           `json:"isActive"`
	LastSyncAt         *time.Time     `json:"lastSyncAt"`
	SyncSettings       datatypes.JSON `json:"syncSettings"`
	Credentials        datatypes.JSON `json:"-"`
	Property           *Property      `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// Analytics represents a precomputed per-property rollup row, written out-of-band
type Analytics struct {
	gorm.Model
	PropertyID    *uint     `json:"propertyId"`
	Date          time.Time `json:"date"`
	OccupancyRate float64   `json:"occupancyRate"`
	Revenue       float64   `json:"revenue"`
	BookingsCount int       `json:"bookingsCount"`
	AverageStay   float64   `json:"averageStay"`
	Source        string    `json:"source"`
	Property      *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// Constants for status values
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusCompleted  = "completed"

	BookingSourceDirect     = "direct"
	BookingSourceAirbnb     = "airbnb"
	BookingSourceBookingCom = "booking_com"
	BookingSourceVrbo       = "vrbo"

	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskTypeCleaning    = "cleaning"
	TaskTypeMaintenance = "maintenance"
	TaskTypeInspection  = "inspection"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"

	OtaPlatformAirbnb     = "airbnb"
	OtaPlatformBookingCom = "booking_com"
	OtaPlatformVrbo       = "vrbo"
	OtaPlatformExpedia    = "expedia"

	// User roles
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleStaff = "staff"
)
