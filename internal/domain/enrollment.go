package domain

import "time"

// EnrollmentStatus enumerates lifecycle states for coding program enrollments.
type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "PENDING"
	EnrollmentStatusActive    EnrollmentStatus = "ACTIVE"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentStatusWithdrawn EnrollmentStatus = "WITHDRAWN"
	EnrollmentStatusRejected  EnrollmentStatus = "REJECTED"
)

// Track enumerates the coding program tracks.
type Track string

const (
	TrackWeb    Track = "WEB"
	TrackMobile Track = "MOBILE"
	TrackData   Track = "DATA"
	TrackGames  Track = "GAMES"
)

// ExperienceLevel enumerates self-reported coding experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
)

// CodingEnrollment is a start-coding program sign-up. An email may not
// hold a pending or active enrollment while submitting a new one.
type CodingEnrollment struct {
	ID               string
	FullName         string
	Email            string
	Phone            *string
	Age              int
	Track            Track
	Experience       ExperienceLevel
	HasLaptop        bool
	Motivation       string
	ConsentConfirmed bool
	Status           EnrollmentStatus
	AdminNotes       *string
	AssignedTo       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EnrollmentStatusValues lists valid status strings.
func EnrollmentStatusValues() []string {
	return enumValues(EnrollmentStatusPending, EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusWithdrawn, EnrollmentStatusRejected)
}

// TrackValues lists valid track strings.
func TrackValues() []string {
	return enumValues(TrackWeb, TrackMobile, TrackData, TrackGames)
}

// ExperienceLevelValues lists valid experience level strings.
func ExperienceLevelValues() []string {
	return enumValues(ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced)
}
