package dto

import (
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// CreateSocialSupportRequest payload.
type CreateSocialSupportRequest struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	OrgName     *string           `json:"orgName"`
	Platforms   []string          `json:"platforms"`
	Handles     map[string]string `json:"handles"`
	SupportType string            `json:"supportType"`
	Description string            `json:"description"`
}

// UpdateSocialSupportRequest payload for admin partial updates.
type UpdateSocialSupportRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

// SocialSupportResponse response.
type SocialSupportResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	OrgName     *string              `json:"orgName,omitempty"`
	Platforms   []domain.Platform    `json:"platforms"`
	Handles     map[string]string    `json:"handles"`
	SupportType domain.SupportType   `json:"supportType"`
	Description string               `json:"description"`
	Status      domain.SupportStatus `json:"status"`
	AdminNotes  *string              `json:"adminNotes,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
