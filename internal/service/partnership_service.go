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

// PartnershipService coordinates partnership request workflows.
type PartnershipService struct {
	partnerships repository.PartnershipRepository
	dispatcher   events.Dispatcher
}

// NewPartnershipService constructs the service.
func NewPartnershipService(partnerships repository.PartnershipRepository, dispatcher events.Dispatcher) *PartnershipService {
	return &PartnershipService{partnerships: partnerships, dispatcher: dispatcher}
}

// PartnershipCreateInput describes a public partnership proposal.
type PartnershipCreateInput struct {
	OrgName     string
	ContactName string
	Email       string
	Phone       *string
	Website     *string
	Type        string
	Proposal    string
}

// PartnershipUpdateInput describes an admin partial update.
type PartnershipUpdateInput struct {
	Status     *string
	AdminNotes *string
}

// Create validates and persists a partnership request.
func (s *PartnershipService) Create(ctx context.Context, input PartnershipCreateInput) (*domain.PartnershipRequest, error) {
	v := validate.New()
	v.Require("orgName", input.OrgName)
	v.Length("orgName", input.OrgName, 2, 200)
	v.Require("contactName", input.ContactName)
	v.Length("contactName", input.ContactName, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.URL("website", input.Website)
	v.Require("partnershipType", input.Type)
	v.OneOf("partnershipType", input.Type, domain.PartnershipTypeValues())
	v.Require("proposal", input.Proposal)
	v.Length("proposal", input.Proposal, 20, 5000)
	if err := v.Err("invalid partnership payload"); err != nil {
		return nil, err
	}

	req := &domain.PartnershipRequest{
		OrgName:     strings.TrimSpace(input.OrgName),
		ContactName: strings.TrimSpace(input.ContactName),
		Email:       validate.NormalizeEmail(input.Email),
		Phone:       validate.TrimPtr(input.Phone),
		Website:     validate.TrimPtr(input.Website),
		Type:        domain.PartnershipType(input.Type),
		Proposal:    strings.TrimSpace(input.Proposal),
		Status:      domain.PartnershipStatusPending,
	}
	if err := s.partnerships.Create(ctx, req); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "partnership",
		RecordID: req.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   req.Email,
			Summary: req.OrgName + " / " + string(req.Type),
		},
	})
	return req, nil
}

// Get fetches one request by id.
func (s *PartnershipService) Get(ctx context.Context, id string) (*domain.PartnershipRequest, error) {
	req, err := s.partnerships.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "partnership request", id)
	}
	return req, nil
}

// List returns a page of requests, optionally filtered by status.
func (s *PartnershipService) List(ctx context.Context, status *string, page, limit int) (repository.Page[domain.PartnershipRequest], error) {
	filter := repository.PartnershipFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parsePartnershipStatus(*status)
		if err != nil {
			return repository.Page[domain.PartnershipRequest]{}, err
		}
		filter.Status = &parsed
	}
	return s.partnerships.List(ctx, filter)
}

// ListByEmail returns an organization's requests, newest first.
func (s *PartnershipService) ListByEmail(ctx context.Context, email string) ([]domain.PartnershipRequest, error) {
	return s.partnerships.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// Update applies a partial admin update.
func (s *PartnershipService) Update(ctx context.Context, id string, input PartnershipUpdateInput) (*domain.PartnershipRequest, error) {
	update := repository.PartnershipUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
	}
	if input.Status != nil {
		parsed, err := parsePartnershipStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &parsed
	}
	req, err := s.partnerships.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "partnership request", id)
	}
	return req, nil
}

// Delete removes a request permanently.
func (s *PartnershipService) Delete(ctx context.Context, id string) error {
	if err := s.partnerships.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "partnership request", id)
	}
	return nil
}

func parsePartnershipStatus(status string) (domain.PartnershipStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.PartnershipStatusValues())
	if err := v.Err("invalid partnership status"); err != nil {
		return "", err
	}
	return domain.PartnershipStatus(status), nil
}
