package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateInternshipRequest payload.
type CreateInternshipRequest struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             *string  `json:"phone"`
	University        string   `json:"university"`
	Major             string   `json:"major"`
	Interests         []string `json:"interests"`
	AvailabilityStart string   `json:"availabilityStart"`
	AvailabilityEnd   string   `json:"availabilityEnd"`
	ResumeURL         *string  `json:"resumeUrl"`
	Motivation        string   `json:"motivation"`
}

// UpdateInternshipRequest payload for admin partial updates.
type UpdateInternshipRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	AssignedTo *string `json:"assignedTo"`
}

// InternshipResponse response.
type InternshipResponse struct {
	ID                string                  `json:"id"`
	FullName          string                  `json:"fullName"`
	Email             string                  `json:"email"`
	Phone             *string                 `json:"phone,omitempty"`
	University        string                  `json:"university"`
	Major             string                  `json:"major"`
	Interests         []domain.InterestArea   `json:"interests"`
	AvailabilityStart time.Time               `json:"availabilityStart"`
	AvailabilityEnd   time.Time               `json:"availabilityEnd"`
	ResumeURL         *string                 `json:"resumeUrl,omitempty"`
	Motivation        string                  `json:"motivation"`
	Status            domain.InternshipStatus `json:"status"`
	AdminNotes        *string                 `json:"adminNotes,omitempty"`
	AssignedTo        *string                 `json:"assignedTo,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}
