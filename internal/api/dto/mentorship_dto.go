package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateMentorshipRequest payload.
type CreateMentorshipRequest struct {
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	Expertise            string `json:"expertise"`
	Motivation           string `json:"motivation"`
	PrefersInPerson      bool   `json:"prefersInPerson"`
	PrefersVirtual       bool   `json:"prefersVirtual"`
	AvailableWeekdays    bool   `json:"availableWeekdays"`
	AvailableWeekends    bool   `json:"availableWeekends"`
	ConsentCodeOfConduct bool   `json:"consentCodeOfConduct"`
	ConsentContact       bool   `json:"consentContact"`
}

// UpdateMentorshipRequest payload for admin partial updates.
type UpdateMentorshipRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

// MentorshipResponse response.
type MentorshipResponse struct {
	ID                   string                  `json:"id"`
	FullName             string                  `json:"fullName"`
	Email                string                  `json:"email"`
	Expertise            string                  `json:"expertise"`
	Motivation           string                  `json:"motivation"`
	PrefersInPerson      bool                    `json:"prefersInPerson"`
	PrefersVirtual       bool                    `json:"prefersVirtual"`
	AvailableWeekdays    bool                    `json:"availableWeekdays"`
	AvailableWeekends    bool                    `json:"availableWeekends"`
	ConsentCodeOfConduct bool                    `json:"consentCodeOfConduct"`
	ConsentContact       bool                    `json:"consentContact"`
	Status               domain.MentorshipStatus `json:"status"`
	AdminNotes           *string                 `json:"adminNotes,omitempty"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
}
