package domain

import "time"

// BookingStatus enumerates lifecycle states for shoot bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ShootType enumerates the kinds of shoots the studio offers.
type ShootType string

const (
	ShootTypePortrait ShootType = "PORTRAIT"
	ShootTypeEvent    ShootType = "EVENT"
	ShootTypeProduct  ShootType = "PRODUCT"
	ShootTypeFamily   ShootType = "FAMILY"
	ShootTypeOther    ShootType = "OTHER"
)

// Booking is a public request for a photo shoot slot.
type Booking struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	ShootType   ShootType
	Location    string
	PreferredAt time.Time
	Message     *string
	Status      BookingStatus
	AdminNotes  *string
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingStatusValues lists valid status strings.
func BookingStatusValues() []string {
	return enumValues(BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled)
}

// ShootTypeValues lists valid shoot type strings.
func ShootTypeValues() []string {
	return enumValues(ShootTypePortrait, ShootTypeEvent, ShootTypeProduct, ShootTypeFamily, ShootTypeOther)
}
