package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateContactRequest payload.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateContactRequest payload for admin partial updates.
type UpdateContactRequest struct {
	Status     *string `json:"status"`
	Read       *bool   `json:"read"`
	AdminNotes *string `json:"adminNotes"`
}

// ContactResponse response.
type ContactResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Subject    string               `json:"subject"`
	Message    string               `json:"message"`
	Read       bool                 `json:"read"`
	Status     domain.ContactStatus `json:"status"`
	AdminNotes *string              `json:"adminNotes,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}
