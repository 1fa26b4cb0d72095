package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateEnrollmentRequest payload.
type CreateEnrollmentRequest struct {
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone"`
	Age              int     `json:"age"`
	Track            string  `json:"track"`
	Experience       string  `json:"experience"`
	HasLaptop        bool    `json:"hasLaptop"`
	Motivation       string  `json:"motivation"`
	ConsentConfirmed bool    `json:"consentConfirmed"`
}

// UpdateEnrollmentRequest payload for admin partial updates.
type UpdateEnrollmentRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	AssignedTo *string `json:"assignedTo"`
}

// EnrollmentResponse response.
type EnrollmentResponse struct {
	ID               string                  `json:"id"`
	FullName         string                  `json:"fullName"`
	Email            string                  `json:"email"`
	Phone            *string                 `json:"phone,omitempty"`
	Age              int                     `json:"age"`
	Track            domain.Track            `json:"track"`
	Experience       domain.ExperienceLevel  `json:"experience"`
	HasLaptop        bool                    `json:"hasLaptop"`
	Motivation       string                  `json:"motivation"`
	ConsentConfirmed bool                    `json:"consentConfirmed"`
	Status           domain.EnrollmentStatus `json:"status"`
	AdminNotes       *string                 `json:"adminNotes,omitempty"`
	AssignedTo       *string                 `json:"assignedTo,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}
