package domain

import "time"

// PartnershipStatus enumerates lifecycle states for partnership requests.
type PartnershipStatus string

const (
	PartnershipStatusPending      PartnershipStatus = "PENDING"
	PartnershipStatusInDiscussion PartnershipStatus = "IN_DISCUSSION"
	PartnershipStatusApproved     PartnershipStatus = "APPROVED"
	PartnershipStatusDeclined     PartnershipStatus = "DECLINED"
)

// PartnershipType enumerates the forms a partnership can take.
type PartnershipType string

const (
	PartnershipSponsorship PartnershipType = "SPONSORSHIP"
	PartnershipVenue       PartnershipType = "VENUE"
	PartnershipEquipment   PartnershipType = "EQUIPMENT"
	PartnershipTraining    PartnershipType = "TRAINING"
	PartnershipMedia       PartnershipType = "MEDIA"
)

// PartnershipRequest is a proposal submitted by an external organization.
type PartnershipRequest struct {
	ID          string
	OrgName     string
	ContactName string
	Email       string
	Phone       *string
	Website     *string
	Type        PartnershipType
	Proposal    string
	Status      PartnershipStatus
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PartnershipStatusValues lists valid status strings.
func PartnershipStatusValues() []string {
	return enumValues(PartnershipStatusPending, PartnershipStatusInDiscussion, PartnershipStatusApproved, PartnershipStatusDeclined)
}

// PartnershipTypeValues lists valid partnership type strings.
func PartnershipTypeValues() []string {
	return enumValues(PartnershipSponsorship, PartnershipVenue, PartnershipEquipment, PartnershipTraining, PartnershipMedia)
}
