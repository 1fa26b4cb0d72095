package domain

import "time"

// ContactStatus enumerates lifecycle states for contact messages.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "NEW"
	ContactStatusReplied  ContactStatus = "REPLIED"
	ContactStatusArchived ContactStatus = "ARCHIVED"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	Read       bool
	Status     ContactStatus
	AdminNotes *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContactStatusValues lists valid status strings.
func ContactStatusValues() []string {
	return enumValues(ContactStatusNew, ContactStatusReplied, ContactStatusArchived)
}
