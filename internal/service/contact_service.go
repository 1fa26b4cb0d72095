package service

import (
	"context"
	"strings"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/events"
	"github.com/visualpath/visualpath-api/internal/repository"
	"github.com/visualpath/visualpath-api/internal/validate"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// ContactService coordinates contact message workflows.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// ContactCreateInput describes a public contact form submission.
type ContactCreateInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUpdateInput describes an admin partial update.
type ContactUpdateInput struct {
	Status     *string
	Read       *bool
	AdminNotes *string
}

// Create validates and persists a contact message.
func (s *ContactService) Create(ctx context.Context, input ContactCreateInput) (*domain.ContactMessage, error) {
	v := validate.New()
	v.Require("name", input.Name)
	v.Length("name", input.Name, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Require("subject", input.Subject)
	v.Length("subject", input.Subject, 2, 200)
	v.Require("message", input.Message)
	v.Length("message", input.Message, 10, 5000)
	if err := v.Err("invalid contact payload"); err != nil {
		return nil, err
	}

	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   validate.NormalizeEmail(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "contact",
		RecordID: msg.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   msg.Email,
			Summary: msg.Subject,
		},
	})
	return msg, nil
}

// Get fetches one contact message by id.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	msg, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "contact message", id)
	}
	return msg, nil
}

// List returns a page of messages filtered by status and read flag.
func (s *ContactService) List(ctx context.Context, status *string, read *bool, page, limit int) (repository.Page[domain.ContactMessage], error) {
	filter := repository.ContactFilter{Read: read, Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseContactStatus(*status)
		if err != nil {
			return repository.Page[domain.ContactMessage]{}, err
		}
		filter.Status = &parsed
	}
	return s.contacts.List(ctx, filter)
}

// ListByEmail returns a sender's messages, newest first.
func (s *ContactService) ListByEmail(ctx context.Context, email string) ([]domain.ContactMessage, error) {
	return s.contacts.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// Update applies a partial admin update.
func (s *ContactService) Update(ctx context.Context, id string, input ContactUpdateInput) (*domain.ContactMessage, error) {
	update := repository.ContactUpdate{
		Read:       input.Read,
		AdminNotes: validate.TrimPtr(input.AdminNotes),
	}
	if input.Status != nil {
		parsed, err := parseContactStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	msg, err := s.contacts.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "contact message", id)
	}
	return msg, nil
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	read := true
	return s.Update(ctx, id, ContactUpdateInput{Read: &read})
}

// Delete removes a message permanently.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "contact message", id)
	}
	return nil
}

// Stats returns read/unread counts.
func (s *ContactService) Stats(ctx context.Context) (map[string]int, error) {
	read, unread, err := s.contacts.CountRead(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]int{"read": read, "unread": unread, "total": read + unread}, nil
}

func parseContactStatus(status string) (domain.ContactStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.ContactStatusValues())
	if err := v.Err("invalid contact status"); err != nil {
		return "", err
	}
	return domain.ContactStatus(status), nil
}
