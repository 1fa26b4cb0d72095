package domain

import "time"

// MentorshipStatus enumerates lifecycle states for mentorship sign-ups.
type MentorshipStatus string

const (
	MentorshipStatusPending  MentorshipStatus = "PENDING"
	MentorshipStatusActive   MentorshipStatus = "ACTIVE"
	MentorshipStatusInactive MentorshipStatus = "INACTIVE"
)

// MentorshipSignup is a volunteer mentor registration from the
// get-involved form. Email is unique across all sign-ups regardless
// of status.
type MentorshipSignup struct {
	ID                   string
	FullName             string
	Email                string
	Expertise            string
	Motivation           string
	PrefersInPerson      bool
	PrefersVirtual       bool
	AvailableWeekdays    bool
	AvailableWeekends    bool
	ConsentCodeOfConduct bool
	ConsentContact       bool
	Status               MentorshipStatus
	AdminNotes           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// MentorshipStatusValues lists valid status strings.
func MentorshipStatusValues() []string {
	return enumValues(MentorshipStatusPending, MentorshipStatusActive, MentorshipStatusInactive)
}
