package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/events"
	"github.com/visualpath/visualpath-api/internal/repository"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

type fakeBookingRepo struct {
	created     *domain.Booking
	overlapping int
	window      time.Duration
	byID        map[string]*domain.Booking
	updated     *repository.BookingUpdate
	counts      map[domain.BookingStatus]int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[string]*domain.Booking{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = "b-1"
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	f.byID[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	return booking, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter repository.BookingFilter) (repository.Page[domain.Booking], error) {
	return repository.NewPage([]domain.Booking{}, 0, filter.Page, filter.Limit), nil
}

func (f *fakeBookingRepo) ListByEmail(_ context.Context, _ string) ([]domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByStatus(_ context.Context, _ domain.BookingStatus) ([]domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id string, update repository.BookingUpdate) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	f.updated = &update
	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.AdminNotes != nil {
		booking.AdminNotes = update.AdminNotes
	}
	if update.AssignedTo != nil {
		booking.AssignedTo = update.AssignedTo
	}
	return booking, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int, error) {
	return f.counts, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, _ time.Time, window time.Duration) (int, error) {
	f.window = window
	return f.overlapping, nil
}

func validBookingInput() BookingCreateInput {
	return BookingCreateInput{
		Name:          "Ada Lovelace",
		Email:         "ADA@Example.org",
		ShootType:     "PORTRAIT",
		Location:      "Community Hall",
		PreferredDate: "2026-09-12T10:00:00Z",
	}
}

func TestBookingCreate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo, events.NewInMemoryDispatcher())

	booking, err := svc.Create(context.Background(), validBookingInput())
	require.NoError(t, err)

	assert.Equal(t, "ada@example.org", booking.Email)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 2*time.Hour, repo.window)
	require.NotNil(t, repo.created)
}

func TestBookingCreateCollectsAllViolations(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), nil)

	_, err := svc.Create(context.Background(), BookingCreateInput{
		Email:         "not-an-email",
		ShootType:     "SELFIE",
		PreferredDate: "someday",
	})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "shootType")
	assert.Contains(t, domainErr.Details, "location")
	assert.Contains(t, domainErr.Details, "preferredDate")
}

func TestBookingCreateConflictOnOverlap(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.overlapping = 1
	svc := NewBookingService(repo, nil)

	_, err := svc.Create(context.Background(), validBookingInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Nil(t, repo.created)
}

func TestBookingUpdateStatusPublishesEvent(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID["b-1"] = &domain.Booking{ID: "b-1", Status: domain.BookingStatusPending}

	dispatcher := events.NewInMemoryDispatcher()
	var got events.Event
	dispatcher.Subscribe(events.EventStatusChanged, func(_ context.Context, event events.Event) error {
		got = event
		return nil
	})

	svc := NewBookingService(repo, dispatcher)
	status := "CONFIRMED"
	booking, err := svc.Update(context.Background(), "b-1", BookingUpdateInput{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	require.Equal(t, events.EventStatusChanged, got.Type)
	payload, ok := got.Payload.(events.StatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "PENDING", payload.OldStatus)
	assert.Equal(t, "CONFIRMED", payload.NewStatus)
}

func TestBookingUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), nil)
	status := "SCHEDULED"
	_, err := svc.Update(context.Background(), "b-1", BookingUpdateInput{Status: &status})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestBookingGetMissingIsNotFound(t *testing.T) {
	svc := NewBookingService(newFakeBookingRepo(), nil)
	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestBookingStatsZeroFills(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.counts = map[domain.BookingStatus]int{domain.BookingStatusPending: 3}
	svc := NewBookingService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats["PENDING"])
	assert.Equal(t, 0, stats["CONFIRMED"])
	assert.Equal(t, 0, stats["COMPLETED"])
	assert.Equal(t, 0, stats["CANCELLED"])
}
