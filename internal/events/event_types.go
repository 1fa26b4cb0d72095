package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubmissionReceived EventType = "submission_received"
	EventStatusChanged      EventType = "status_changed"
	EventSubmissionDeleted  EventType = "submission_deleted"
)

// Event represents a domain event emitted by services. Resource names the
// entity type (booking, contact, internship, ...), RecordID its identifier.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Resource  string      `json:"resource"`
	RecordID  string      `json:"record_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SubmissionReceivedPayload payload.
type SubmissionReceivedPayload struct {
	Email   string `json:"email,omitempty"`
	Summary string `json:"summary"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}
