package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	ShootType     string  `json:"shootType"`
	Location      string  `json:"location"`
	PreferredDate string  `json:"preferredDate"`
	Message       *string `json:"message"`
}

// UpdateBookingRequest payload for admin partial updates.
type UpdateBookingRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	AssignedTo *string `json:"assignedTo"`
}

// BookingResponse response.
type BookingResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       *string              `json:"phone,omitempty"`
	ShootType   domain.ShootType     `json:"shootType"`
	Location    string               `json:"location"`
	PreferredAt time.Time            `json:"preferredDate"`
	Message     *string              `json:"message,omitempty"`
	Status      domain.BookingStatus `json:"status"`
	AdminNotes  *string              `json:"adminNotes,omitempty"`
	AssignedTo  *string              `json:"assignedTo,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
