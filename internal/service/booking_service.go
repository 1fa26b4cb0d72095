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

// Two bookings closer together than this window conflict.
const bookingConflictWindow = 2 * time.Hour

// BookingService coordinates shoot booking workflows.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(bookings repository.BookingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, dispatcher: dispatcher}
}

// BookingCreateInput describes a public booking submission.
type BookingCreateInput struct {
	Name          string
	Email         string
	Phone         *string
	ShootType     string
	Location      string
	PreferredDate string
	Message       *string
}

// BookingUpdateInput describes an admin partial update.
type BookingUpdateInput struct {
	Status     *string
	AdminNotes *string
	AssignedTo *string
}

// Create validates a submission, rejects overlapping slots and persists the booking.
func (s *BookingService) Create(ctx context.Context, input BookingCreateInput) (*domain.Booking, error) {
	v := validate.New()
	v.Require("name", input.Name)
	v.Length("name", input.Name, 2, 120)
	v.Require("email", input.Email)
	v.Email("email", input.Email)
	v.Require("shootType", input.ShootType)
	v.OneOf("shootType", input.ShootType, domain.ShootTypeValues())
	v.Require("location", input.Location)
	v.Length("location", input.Location, 2, 200)
	preferredAt := v.Time("preferredDate", input.PreferredDate)
	if err := v.Err("invalid booking payload"); err != nil {
		return nil, err
	}

	overlapping, err := s.bookings.CountOverlapping(ctx, preferredAt, bookingConflictWindow)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperrors.NewConflict(
			"another shoot is already booked within two hours of the requested time",
			map[string]any{"preferredDate": preferredAt},
		)
	}

	booking := &domain.Booking{
		Name:        strings.TrimSpace(input.Name),
		Email:       validate.NormalizeEmail(input.Email),
		Phone:       validate.TrimPtr(input.Phone),
		ShootType:   domain.ShootType(input.ShootType),
		Location:    strings.TrimSpace(input.Location),
		PreferredAt: preferredAt,
		Message:     validate.TrimPtr(input.Message),
		Status:      domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionReceived,
		Resource: "booking",
		RecordID: booking.ID,
		Payload: events.SubmissionReceivedPayload{
			Email:   booking.Email,
			Summary: string(booking.ShootType) + " shoot at " + booking.Location,
		},
	})
	return booking, nil
}

// Get fetches one booking by id.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "booking", id)
	}
	return booking, nil
}

// List returns a page of bookings, optionally filtered by status.
func (s *BookingService) List(ctx context.Context, status *string, page, limit int) (repository.Page[domain.Booking], error) {
	filter := repository.BookingFilter{Page: page, Limit: limit}
	if status != nil {
		parsed, err := parseBookingStatus(*status)
		if err != nil {
			return repository.Page[domain.Booking]{}, err
		}
		filter.Status = &parsed
	}
	return s.bookings.List(ctx, filter)
}

// ListByEmail returns a requester's bookings, newest first.
func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.bookings.ListByEmail(ctx, validate.NormalizeEmail(email))
}

// ListByStatus returns all bookings in one status.
func (s *BookingService) ListByStatus(ctx context.Context, status string) ([]domain.Booking, error) {
	parsed, err := parseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByStatus(ctx, parsed)
}

// Update applies a partial admin update, merging only the provided fields.
func (s *BookingService) Update(ctx context.Context, id string, input BookingUpdateInput) (*domain.Booking, error) {
	update := repository.BookingUpdate{
		AdminNotes: validate.TrimPtr(input.AdminNotes),
		AssignedTo: validate.TrimPtr(input.AssignedTo),
	}
	var oldStatus domain.BookingStatus
	if input.Status != nil {
		parsed, err := parseBookingStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		oldStatus = current.Status
		update.Status = &parsed
	}

	booking, err := s.bookings.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NotFoundForResource(err, "booking", id)
	}

	if update.Status != nil && oldStatus != booking.Status {
		publishEvent(ctx, s.dispatcher, events.Event{
			Type:     events.EventStatusChanged,
			Resource: "booking",
			RecordID: booking.ID,
			Payload: events.StatusChangedPayload{
				OldStatus: string(oldStatus),
				NewStatus: string(booking.Status),
			},
		})
	}
	return booking, nil
}

// Delete removes a booking permanently.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return apperrors.NotFoundForResource(err, "booking", id)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSubmissionDeleted,
		Resource: "booking",
		RecordID: id,
	})
	return nil
}

// Stats returns per-status counts, zero-filled for empty statuses.
func (s *BookingService) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := map[string]int{}
	for _, status := range domain.BookingStatusValues() {
		stats[status] = counts[domain.BookingStatus(status)]
	}
	return stats, nil
}

func parseBookingStatus(status string) (domain.BookingStatus, error) {
	v := validate.New()
	v.OneOf("status", status, domain.BookingStatusValues())
	if err := v.Err("invalid booking status"); err != nil {
		return "", err
	}
	return domain.BookingStatus(status), nil
}
