package domain

import "time"

// InternshipStatus enumerates lifecycle states for internship applications.
type InternshipStatus string

const (
	InternshipStatusPending   InternshipStatus = "PENDING"
	InternshipStatusReviewing InternshipStatus = "REVIEWING"
	InternshipStatusAccepted  InternshipStatus = "ACCEPTED"
	InternshipStatusRejected  InternshipStatus = "REJECTED"
)

// InterestArea enumerates fields an intern can apply for.
type InterestArea string

const (
	InterestPhotography InterestArea = "PHOTOGRAPHY"
	InterestVideography InterestArea = "VIDEOGRAPHY"
	InterestEditing     InterestArea = "EDITING"
	InterestSocialMedia InterestArea = "SOCIAL_MEDIA"
	InterestWeb         InterestArea = "WEB"
)

// InternshipApplication is a public application for an internship slot.
type InternshipApplication struct {
	ID                string
	FullName          string
	Email             string
	Phone             *string
	University        string
	Major             string
	Interests         []InterestArea
	AvailabilityStart time.Time
	AvailabilityEnd   time.Time
	ResumeURL         *string
	Motivation        string
	Status            InternshipStatus
	AdminNotes        *string
	AssignedTo        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InternshipStatusValues lists valid status strings.
func InternshipStatusValues() []string {
	return enumValues(InternshipStatusPending, InternshipStatusReviewing, InternshipStatusAccepted, InternshipStatusRejected)
}

// InterestAreaValues lists valid interest area strings.
func InterestAreaValues() []string {
	return enumValues(InterestPhotography, InterestVideography, InterestEditing, InterestSocialMedia, InterestWeb)
}
