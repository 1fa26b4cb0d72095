package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/repository"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

type fakeInternshipRepo struct {
	created *domain.InternshipApplication
	pending bool
}

func (f *fakeInternshipRepo) Create(_ context.Context, app *domain.InternshipApplication) error {
	app.ID = "i-1"
	f.created = app
	return nil
}

func (f *fakeInternshipRepo) GetByID(_ context.Context, _ string) (*domain.InternshipApplication, error) {
	return nil, errNoRows
}

func (f *fakeInternshipRepo) List(_ context.Context, filter repository.InternshipFilter) (repository.Page[domain.InternshipApplication], error) {
	return repository.NewPage([]domain.InternshipApplication{}, 0, filter.Page, filter.Limit), nil
}

func (f *fakeInternshipRepo) ListByEmail(_ context.Context, _ string) ([]domain.InternshipApplication, error) {
	return nil, nil
}

func (f *fakeInternshipRepo) ListByStatus(_ context.Context, _ domain.InternshipStatus) ([]domain.InternshipApplication, error) {
	return nil, nil
}

func (f *fakeInternshipRepo) Update(_ context.Context, _ string, _ repository.InternshipUpdate) (*domain.InternshipApplication, error) {
	return nil, errNoRows
}

func (f *fakeInternshipRepo) Delete(_ context.Context, _ string) error {
	return errNoRows
}

func (f *fakeInternshipRepo) CountByStatus(_ context.Context) (map[domain.InternshipStatus]int, error) {
	return nil, nil
}

func (f *fakeInternshipRepo) ExistsWithStatus(_ context.Context, _ string, status domain.InternshipStatus) (bool, error) {
	return f.pending && status == domain.InternshipStatusPending, nil
}

func fixedInternshipService(repo *fakeInternshipRepo, now time.Time) *InternshipService {
	svc := NewInternshipService(repo, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func validInternshipInput() InternshipCreateInput {
	return InternshipCreateInput{
		FullName:          "Grace Hopper",
		Email:             "grace@example.org",
		University:        "State University",
		Major:             "Computer Science",
		Interests:         []string{"PHOTOGRAPHY", "EDITING"},
		AvailabilityStart: "2026-10-01",
		AvailabilityEnd:   "2026-12-15",
		Motivation:        "I want to learn how a production studio actually runs.",
	}
}

func TestInternshipCreate(t *testing.T) {
	repo := &fakeInternshipRepo{}
	svc := fixedInternshipService(repo, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	app, err := svc.Create(context.Background(), validInternshipInput())
	require.NoError(t, err)

	assert.Equal(t, domain.InternshipStatusPending, app.Status)
	assert.Equal(t, []domain.InterestArea{"PHOTOGRAPHY", "EDITING"}, app.Interests)
	require.NotNil(t, repo.created)
}

func TestInternshipCreateRejectsPastStart(t *testing.T) {
	svc := fixedInternshipService(&fakeInternshipRepo{}, time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC))

	_, err := svc.Create(context.Background(), validInternshipInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	assert.Contains(t, domainErr.Message, "start date")
}

func TestInternshipCreateRejectsInvertedWindow(t *testing.T) {
	svc := fixedInternshipService(&fakeInternshipRepo{}, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	input := validInternshipInput()
	input.AvailabilityEnd = "2026-10-01"
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
	assert.Contains(t, domainErr.Message, "end date")
}

func TestInternshipCreateDuplicatePending(t *testing.T) {
	repo := &fakeInternshipRepo{pending: true}
	svc := fixedInternshipService(repo, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	_, err := svc.Create(context.Background(), validInternshipInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Nil(t, repo.created)
}

func TestInternshipCreateRequiresInterests(t *testing.T) {
	svc := fixedInternshipService(&fakeInternshipRepo{}, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	input := validInternshipInput()
	input.Interests = nil
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "interests")
}
