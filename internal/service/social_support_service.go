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

// SocialSupportService coordinates social media support request workflows.
type SocialSupportService struct {
	requests   repository.SocialSupportRepository
	dispatcher events.Dispatcher
}

// NewSocialSupportService constructs the service.
func NewSocialSupportService(requests repository.SocialSupportRepository, dispatcher events.Dispatcher) *SocialSupportService {
	return &SocialSupportService{requests: requests, dispatcher: dispatcher}
}

// SocialSupportCreateInput describes a public support request.
type SocialSupportCreateInput struct {
	Name        string
	Email       string
	OrgName     *string
	Platforms   []string
	Handles     map[string]string
	SupportType string
	Description string
}

// SocialSupportUpdateInput describes an admin partial update.
type SocialSupportUpdateInput struct {
	Status     *string
	AdminNotes *string
}

// Create validates a request, requires a handle for at least one requested
// platform, rejects duplicate pending requests per email, then persists.
func (s *SocialSupportService) Create(ctx context.Context, input SocialSupportCreateInput) (*domain.SocialSupportRequest, error) {
	v := validate.New()
	v.Require("name", input.Name)
	v.Length("name", input.Name, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Each("platforms", input.Platforms, domain.PlatformValues())
	v.Require("supportType", input.SupportType)
	v.OneOf("supportType", input.SupportType, domain.SupportTypeValues())
	v.Require("description", input.Description)
	v.Length("description", input.Description, 10, 3000)
	if err := v.Err("invalid social media support payload"); err != nil {
		return nil, err
	}

	handles := normalizeHandles(input.Handles)
	if !anyPlatformHasHandle(input.Platforms, handles) {
		return nil, apperrors.NewBusinessRule("at least one requested platform must have a handle")
	}

	email := validate.NormalizeEmail(input.Email)
	pending, err := s.requests.ExistsWithStatus(ctx, email, domain.SupportStatusPending)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.NewConflict(
			"a pending support request already exists for this email",
			map[string]any{"email": email},
		)
	}

	req := &domain.SocialSupportRequest{
		Name:        strings.TrimSpace(input.Name),
		Email:       email,
		OrgName:     validate.TrimPtr(input.OrgName),
		Platforms:   toPlatforms(input.Platforms),
		Handles:     handles,
		SupportType: domain.SupportType(input.SupportType),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.SupportStatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "social-media-support",
		RecordID: req.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   req.Email,
			Summary: string(req.SupportType),
		},
	})
	return req, nil
}

// Get fetches one request by id.
func (s *SocialSupportService) Get(ctx context.Context, id string) (*domain.SocialSupportRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "support request", id)
	}
	return req, nil
}

// List returns a page of requests filtered by status and platform membership.
func (s *SocialSupportService) List(ctx context.Context, status, platform *string, page, limit int) (repository.Page[domain.SocialSupportRequest], error) {
	filter := repository.SocialSupportFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseSupportStatus(*status)
		if err != nil {
			return repository.Page[domain.SocialSupportRequest]{}, err
		}
		filter.Status = &parsed
	}
	if platform != nil {
		v := validate.New()
		v.OneOf("platform", *platform, domain.PlatformValues())
		if err := v.Err("invalid platform filter"); err != nil {
			return repository.Page[domain.SocialSupportRequest]{}, err
		}
		parsed := domain.Platform(*platform)
		filter.Platform = &parsed
	}
	return s.requests.List(ctx, filter)
}

// ListByEmail returns a requester's submissions, newest first.
func (s *SocialSupportService) ListByEmail(ctx context.Context, email string) ([]domain.SocialSupportRequest, error) {
	return s.requests.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// Update applies a partial admin update.
func (s *SocialSupportService) Update(ctx context.Context, id string, input SocialSupportUpdateInput) (*domain.SocialSupportRequest, error) {
	update := repository.SocialSupportUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
	}
	if input.Status != nil {
		parsed, err := parseSupportStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	req, err := s.requests.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "support request", id)
	}
	return req, nil
}

// Delete removes a request permanently.
func (s *SocialSupportService) Delete(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "support request", id)
	}
	return nil
}

func parseSupportStatus(status string) (domain.SupportStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.SupportStatusValues())
	if err := v.Err("invalid support status"); err != nil {
		return "", err
	}
	return domain.SupportStatus(status), nil
}

// normalizeHandles uppercases platform keys and drops blank handles so
// lookups match the platform enum regardless of submitted casing.
func normalizeHandles(handles map[string]string) map[string]string {
	out := map[string]string{}
	for platform, handle := range handles {
		handle = strings.TrimSpace(handle)
		if handle == "" {
			continue
		}
		out[strings.ToUpper(strings.TrimSpace(platform))] = handle
	}
	return out
}

func anyPlatformHasHandle(platforms []string, handles map[string]string) bool {
	for _, platform := range platforms {
		if _, ok := handles[platform]; ok {
			return true
		}
	}
	return false
}

func toPlatforms(values []string) []domain.Platform {
	out := make([]domain.Platform, 0, len(values))
	for _, value := range values {
		out = append(out, domain.Platform(value))
	}
	return out
}
