package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreatePartnershipRequest payload.
type CreatePartnershipRequest struct {
	OrgName         string  `json:"orgName"`
	ContactName     string  `json:"contactName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	Website         *string `json:"website"`
	PartnershipType string  `json:"partnershipType"`
	Proposal        string  `json:"proposal"`
}

// UpdatePartnershipRequest payload for admin partial updates.
type UpdatePartnershipRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

// PartnershipResponse response.
type PartnershipResponse struct {
	ID          string                   `json:"id"`
	OrgName     string                   `json:"orgName"`
	ContactName string                   `json:"contactName"`
	Email       string                   `json:"email"`
	Phone       *string                  `json:"phone,omitempty"`
	Website     *string                  `json:"website,omitempty"`
	Type        domain.PartnershipType   `json:"partnershipType"`
	Proposal    string                   `json:"proposal"`
	Status      domain.PartnershipStatus `json:"status"`
	AdminNotes  *string                  `json:"adminNotes,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}
