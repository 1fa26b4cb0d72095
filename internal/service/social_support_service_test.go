package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/repository"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

type fakeSocialSupportRepo struct {
	created *domain.SocialSupportRequest
	pending bool
}

func (f *fakeSocialSupportRepo) Create(_ context.Context, req *domain.SocialSupportRequest) error {
	req.ID = "s-1"
	f.created = req
	return nil
}

func (f *fakeSocialSupportRepo) GetByID(_ context.Context, _ string) (*domain.SocialSupportRequest, error) {
	return nil, errNoRows
}

func (f *fakeSocialSupportRepo) List(_ context.Context, filter repository.SocialSupportFilter) (repository.Page[domain.SocialSupportRequest], error) {
	return repository.NewPage([]domain.SocialSupportRequest{}, 0, filter.Page, filter.Limit), nil
}

func (f *fakeSocialSupportRepo) ListByEmail(_ context.Context, _ string) ([]domain.SocialSupportRequest, error) {
	return nil, nil
}

func (f *fakeSocialSupportRepo) Update(_ context.Context, _ string, _ repository.SocialSupportUpdate) (*domain.SocialSupportRequest, error) {
	return nil, errNoRows
}

func (f *fakeSocialSupportRepo) Delete(_ context.Context, _ string) error {
	return errNoRows
}

func (f *fakeSocialSupportRepo) ExistsWithStatus(_ context.Context, _ string, status domain.SupportStatus) (bool, error) {
	return f.pending && status == domain.SupportStatusPending, nil
}

func validSocialSupportInput() SocialSupportCreateInput {
	return SocialSupportCreateInput{
		Name:        "Dorothy Vaughan",
		Email:       "dorothy@example.org",
		Platforms:   []string{"INSTAGRAM", "TIKTOK"},
		Handles:     map[string]string{"instagram": "@dorothy.codes"},
		SupportType: "GROWTH",
		Description: "Looking for help growing our community page.",
	}
}

func TestSocialSupportCreateNormalizesHandles(t *testing.T) {
	repo := &fakeSocialSupportRepo{}
	svc := NewSocialSupportService(repo, nil)

	req, err := svc.Create(context.Background(), validSocialSupportInput())
	require.NoError(t, err)

	assert.Equal(t, domain.SupportStatusPending, req.Status)
	assert.Equal(t, map[string]string{"INSTAGRAM": "@dorothy.codes"}, req.Handles)
}

func TestSocialSupportCreateDropsBlankHandles(t *testing.T) {
	svc := NewSocialSupportService(&fakeSocialSupportRepo{}, nil)

	input := validSocialSupportInput()
	input.Handles = map[string]string{"instagram": "   ", "tiktok": "@dv"}
	req, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"TIKTOK": "@dv"}, req.Handles)
}

func TestSocialSupportCreateRequiresHandleForRequestedPlatform(t *testing.T) {
	svc := NewSocialSupportService(&fakeSocialSupportRepo{}, nil)

	input := validSocialSupportInput()
	input.Platforms = []string{"YOUTUBE"}
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "BUSINESS_RULE", domainErr.Code)
}

func TestSocialSupportCreateDuplicatePending(t *testing.T) {
	repo := &fakeSocialSupportRepo{pending: true}
	svc := NewSocialSupportService(repo, nil)

	_, err := svc.Create(context.Background(), validSocialSupportInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Nil(t, repo.created)
}

func TestSocialSupportCreateRejectsUnknownPlatform(t *testing.T) {
	svc := NewSocialSupportService(&fakeSocialSupportRepo{}, nil)

	input := validSocialSupportInput()
	input.Platforms = []string{"MYSPACE"}
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "platforms")
}
