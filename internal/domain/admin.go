package domain

import "time"

// Admin is a staff account allowed to manage submissions.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
