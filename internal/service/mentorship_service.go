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

// MentorshipService coordinates mentorship sign-up workflows.
type MentorshipService struct {
	signups    repository.MentorshipRepository
	dispatcher events.Dispatcher
}

// NewMentorshipService constructs the service.
func NewMentorshipService(signups repository.MentorshipRepository, dispatcher events.Dispatcher) *MentorshipService {
	return &MentorshipService{signups: signups, dispatcher: dispatcher}
}

// MentorshipCreateInput describes a public get-involved submission.
type MentorshipCreateInput struct {
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
}

// MentorshipUpdateInput describes an admin partial update.
type MentorshipUpdateInput struct {
	Status     *string
	AdminNotes *string
}

// Create validates a sign-up, enforces the preference and consent rules and
// the one-sign-up-per-email rule, then persists.
func (s *MentorshipService) Create(ctx context.Context, input MentorshipCreateInput) (*domain.MentorshipSignup, error) {
	v := validate.New()
	v.Require("fullName", input.FullName)
	v.Length("fullName", input.FullName, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Require("expertise", input.Expertise)
	v.Length("expertise", input.Expertise, 2, 200)
	v.Require("motivation", input.Motivation)
	v.Length("motivation", input.Motivation, 20, 3000)
	if err := v.Err("invalid mentorship payload"); err != nil {
		return nil, err
	}

	if !input.PrefersInPerson && !input.PrefersVirtual {
		return nil, apperrors.NewBusinessRule("at least one format preference must be selected")
	}
	if !input.AvailableWeekdays && !input.AvailableWeekends {
		return nil, apperrors.NewBusinessRule("at least one availability preference must be selected")
	}
	if !input.ConsentCodeOfConduct || !input.ConsentContact {
		return nil, apperrors.NewBusinessRule("both consent confirmations are required")
	}

	email := validate.NormalizeEmail(input.Email)
	exists, err := s.signups.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict(
			"a mentorship sign-up already exists for this email",
			map[string]any{"email": email},
		)
	}

	signup := &domain.MentorshipSignup{
		FullName:             strings.TrimSpace(input.FullName),
		Email:                email,
		Expertise:            strings.TrimSpace(input.Expertise),
		Motivation:           strings.TrimSpace(input.Motivation),
		PrefersInPerson:      input.PrefersInPerson,
		PrefersVirtual:       input.PrefersVirtual,
		AvailableWeekdays:    input.AvailableWeekdays,
		AvailableWeekends:    input.AvailableWeekends,
		ConsentCodeOfConduct: input.ConsentCodeOfConduct,
		ConsentContact:       input.ConsentContact,
		Status:               domain.MentorshipStatusPending,
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "mentorship",
		RecordID: signup.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   signup.Email,
			Summary: signup.FullName + " / " + signup.Expertise,
		},
	})
	return signup, nil
}

// Get fetches one sign-up by id.
func (s *MentorshipService) Get(ctx context.Context, id string) (*domain.MentorshipSignup, error) {
	signup, err := s.signups.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "mentorship sign-up", id)
	}
	return signup, nil
}

// List returns a page of sign-ups, optionally filtered by status.
func (s *MentorshipService) List(ctx context.Context, status *string, page, limit int) (repository.Page[domain.MentorshipSignup], error) {
	filter := repository.MentorshipFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseMentorshipStatus(*status)
		if err != nil {
			return repository.Page[domain.MentorshipSignup]{}, err
		}
		filter.Status = &parsed
	}
	return s.signups.List(ctx, filter)
}

// Update applies a partial admin update.
func (s *MentorshipService) Update(ctx context.Context, id string, input MentorshipUpdateInput) (*domain.MentorshipSignup, error) {
	update := repository.MentorshipUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
	}
	if input.Status != nil {
		parsed, err := parseMentorshipStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	signup, err := s.signups.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "mentorship sign-up", id)
	}
	return signup, nil
}

// Delete removes a sign-up permanently.
func (s *MentorshipService) Delete(ctx context.Context, id string) error {
	if err := s.signups.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "mentorship sign-up", id)
	}
	return nil
}

func parseMentorshipStatus(status string) (domain.MentorshipStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.MentorshipStatusValues())
	if err := v.Err("invalid mentorship status"); err != nil {
		return "", err
	}
	return domain.MentorshipStatus(status), nil
}
