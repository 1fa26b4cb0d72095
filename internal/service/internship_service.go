package service

import (
	"context"
	"strings"
	"time"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/events"
	"github.com/visualpath/visualpath-api/internal/repository"
	"github.com/visualpath/visualpath-api/internal/validate"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// InternshipService coordinates internship application workflows.
type InternshipService struct {
	applications repository.InternshipRepository
	dispatcher   events.Dispatcher
	now          func() time.Time
}

// NewInternshipService constructs the service.
func NewInternshipService(applications repository.InternshipRepository, dispatcher events.Dispatcher) *InternshipService {
	return &InternshipService{applications: applications, dispatcher: dispatcher, now: time.Now}
}

// InternshipCreateInput describes a public application submission.
type InternshipCreateInput struct {
	FullName          string
	Email             string
	Phone             *string
	University        string
	Major             string
	Interests         []string
	AvailabilityStart string
	AvailabilityEnd   string
	ResumeURL         *string
	Motivation        string
}

// InternshipUpdateInput describes an admin partial update.
type InternshipUpdateInput struct {
	Status     *string
	AdminNotes *string
	AssignedTo *string
}

// Create validates a submission, enforces the availability window rules and
// the one-pending-application-per-email rule, then persists.
func (s *InternshipService) Create(ctx context.Context, input InternshipCreateInput) (*domain.InternshipApplication, error) {
	v := validate.New()
	v.Require("fullName", input.FullName)
	v.Length("fullName", input.FullName, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Require("university", input.University)
	v.Length("university", input.University, 2, 200)
	v.Require("major", input.Major)
	v.Length("major", input.Major, 2, 120)
	v.Each("interests", input.Interests, domain.InterestAreaValues())
	start := v.Time("availabilityStart", input.AvailabilityStart)
	end := v.Time("availabilityEnd", input.AvailabilityEnd)
	v.URL("resumeUrl", input.ResumeURL)
	v.Require("motivation", input.Motivation)
	v.Length("motivation", input.Motivation, 20, 3000)
	if err := v.Err("invalid internship application payload"); err != nil {
		return nil, err
	}

	today := s.now().Truncate(24 * time.Hour)
	if start.Before(today) {
		return nil, apperrors.NewBusinessRule("availability start date must not be in the past")
	}
	if !end.After(start) {
		return nil, apperrors.NewBusinessRule("availability end date must be after the start date")
	}

	email := validate.NormalizeEmail(input.Email)
	pending, err := s.applications.ExistsWithStatus(ctx, email, domain.InternshipStatusPending)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.NewConflict(
			"a pending internship application already exists for this email",
			map[string]any{"email": email},
		)
	}

	app := &domain.InternshipApplication{
		FullName:          strings.TrimSpace(input.FullName),
		Email:             email,
		Phone:             validate.TrimPtr(input.Phone),
		University:        strings.TrimSpace(input.University),
		Major:             strings.TrimSpace(input.Major),
		Interests:         toInterestAreas(input.Interests),
		AvailabilityStart: start,
		AvailabilityEnd:   end,
		ResumeURL:         validate.TrimPtr(input.ResumeURL),
		Motivation:        strings.TrimSpace(input.Motivation),
		Status:            domain.InternshipStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "internship",
		RecordID: app.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   app.Email,
			Summary: app.FullName + " / " + app.University,
		},
	})
	return app, nil
}

// Get fetches one application by id.
func (s *InternshipService) Get(ctx context.Context, id string) (*domain.InternshipApplication, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "internship application", id)
	}
	return app, nil
}

// List returns a page of applications, optionally filtered by status.
func (s *InternshipService) List(ctx context.Context, status *string, page, limit int) (repository.Page[domain.InternshipApplication], error) {
	filter := repository.InternshipFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseInternshipStatus(*status)
		if err != nil {
			return repository.Page[domain.InternshipApplication]{}, err
		}
		filter.Status = &parsed
	}
	return s.applications.List(ctx, filter)
}

// ListByEmail returns an applicant's applications, newest first.
func (s *InternshipService) ListByEmail(ctx context.Context, email string) ([]domain.InternshipApplication, error) {
	return s.applications.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// ListByStatus returns all applications in one status.
func (s *InternshipService) ListByStatus(ctx context.Context, status string) ([]domain.InternshipApplication, error) {
	parsed, err := parseInternshipStatus(status)
	if err != nil {
		return nil, err
	}
	return s.applications.ListByStatus(ctx, parsed)
}

// Update applies a partial admin update.
func (s *InternshipService) Update(ctx context.Context, id string, input InternshipUpdateInput) (*domain.InternshipApplication, error) {
	update := repository.InternshipUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
		AssignedTo: validate.TrimPtr(input.AssignedTo),
	}
	if input.Status != nil {
		parsed, err := parseInternshipStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	app, err := s.applications.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "internship application", id)
	}
	return app, nil
}

// Delete removes an application permanently.
func (s *InternshipService) Delete(ctx context.Context, id string) error {
	if err := s.applications.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "internship application", id)
	}
	return nil
}

// Stats returns per-status counts, zero-filled for empty statuses.
func (s *InternshipService) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := map[string]int{}
	for _, status := range domain.InternshipStatusValues() {
		stats[status] = counts[domain.InternshipStatus(status)]
	}
	return stats, nil
}

func parseInternshipStatus(status string) (domain.InternshipStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.InternshipStatusValues())
	if err := v.Err("invalid internship status"); err != nil {
		return "", err
	}
	return domain.InternshipStatus(status), nil
}

func toInterestAreas(values []string) []domain.InterestArea {
	out := make([]domain.InterestArea, 0, len(values))
	for _, value := range values {
		out = append(out, domain.InterestArea(value))
	}
	return out
}
