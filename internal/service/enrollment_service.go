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

// EnrollmentService coordinates start-coding enrollment workflows.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	dispatcher  events.Dispatcher
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(enrollments repository.EnrollmentRepository, dispatcher events.Dispatcher) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, dispatcher: dispatcher}
}

// EnrollmentCreateInput describes a public program sign-up.
type EnrollmentCreateInput struct {
	FullName         string
	Email            string
	Phone            *string
	Age              int
	Track            string
	Experience       string
	HasLaptop        bool
	Motivation       string
	ConsentConfirmed bool
}

// EnrollmentUpdateInput describes an admin partial update.
type EnrollmentUpdateInput struct {
	Status     *string
	AdminNotes *string
	AssignedTo *string
}

// Create validates a sign-up, requires consent, rejects emails that already
// hold a pending or active enrollment, then persists.
func (s *EnrollmentService) Create(ctx context.Context, input EnrollmentCreateInput) (*domain.CodingEnrollment, error) {
	v := validate.New()
	v.Require("fullName", input.FullName)
	v.Length("fullName", input.FullName, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Range("age", input.Age, 13, 30)
	v.Require("track", input.Track)
	v.OneOf("track", input.Track, domain.TrackValues())
	v.Require("experience", input.Experience)
	v.OneOf("experience", input.Experience, domain.ExperienceLevelValues())
	v.Require("motivation", input.Motivation)
	v.Length("motivation", input.Motivation, 20, 3000)
	if err := v.Err("invalid enrollment payload"); err != nil {
		return nil, err
	}

	if !input.ConsentConfirmed {
		return nil, apperrors.NewBusinessRule("program consent must be confirmed")
	}

	email := validate.NormalizeEmail(input.Email)
	blocked, err := s.enrollments.ExistsWithStatus(ctx, email,
		domain.EnrollmentStatusPending, domain.EnrollmentStatusActive)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.NewConflict(
			"a pending or active enrollment already exists for this email",
			map[string]any{"email": email},
		)
	}

	enrollment := &domain.CodingEnrollment{
		FullName:         strings.TrimSpace(input.FullName),
		Email:            email,
		Phone:            validate.TrimPtr(input.Phone),
		Age:              input.Age,
		Track:            domain.Track(input.Track),
		Experience:       domain.ExperienceLevel(input.Experience),
		HasLaptop:        input.HasLaptop,
		Motivation:       strings.TrimSpace(input.Motivation),
		ConsentConfirmed: input.ConsentConfirmed,
		Status:           domain.EnrollmentStatusPending,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "start-coding",
		RecordID: enrollment.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   enrollment.Email,
			Summary: string(enrollment.Track) + " / " + string(enrollment.Experience),
		},
	})
	return enrollment, nil
}

// Get fetches one enrollment by id.
func (s *EnrollmentService) Get(ctx context.Context, id string) (*domain.CodingEnrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "enrollment", id)
	}
	return enrollment, nil
}

// List returns a page of enrollments, optionally filtered by status.
func (s *EnrollmentService) List(ctx context.Context, status *string, page, limit int) (repository.Page[domain.CodingEnrollment], error) {
	filter := repository.EnrollmentFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseEnrollmentStatus(*status)
		if err != nil {
			return repository.Page[domain.CodingEnrollment]{}, err
		}
		filter.Status = &parsed
	}
	return s.enrollments.List(ctx, filter)
}

// ListByEmail returns a student's enrollments, newest first.
func (s *EnrollmentService) ListByEmail(ctx context.Context, email string) ([]domain.CodingEnrollment, error) {
	return s.enrollments.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// ListByStatus returns all enrollments in one status.
func (s *EnrollmentService) ListByStatus(ctx context.Context, status string) ([]domain.CodingEnrollment, error) {
	parsed, err := parseEnrollmentStatus(status)
	if err != nil {
		return nil, err
	}
	return s.enrollments.ListByStatus(ctx, parsed)
}

// Update applies a partial admin update.
func (s *EnrollmentService) Update(ctx context.Context, id string, input EnrollmentUpdateInput) (*domain.CodingEnrollment, error) {
	update := repository.EnrollmentUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
		AssignedTo: validate.TrimPtr(input.AssignedTo),
	}
	if input.Status != nil {
		parsed, err := parseEnrollmentStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	enrollment, err := s.enrollments.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "enrollment", id)
	}
	return enrollment, nil
}

// Delete removes an enrollment permanently.
func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "enrollment", id)
	}
	return nil
}

// Stats returns per-status counts, zero-filled for empty statuses.
func (s *EnrollmentService) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.enrollments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := map[string]int{}
	for _, status := range domain.EnrollmentStatusValues() {
		stats[status] = counts[domain.EnrollmentStatus(status)]
	}
	return stats, nil
}

func parseEnrollmentStatus(status string) (domain.EnrollmentStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.EnrollmentStatusValues())
	if err := v.Err("invalid enrollment status"); err != nil {
		return "", err
	}
	return domain.EnrollmentStatus(status), nil
}
