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

type fakeContactRepo struct {
	created *domain.ContactMessage
	byID    map[string]*domain.ContactMessage
	updated *repository.ContactUpdate
	read    int
	unread  int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: map[string]*domain.ContactMessage{}}
}

func (f *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	msg.ID = "c-1"
	f.created = msg
	f.byID[msg.ID] = msg
	return nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	msg, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	return msg, nil
}

func (f *fakeContactRepo) List(_ context.Context, filter repository.ContactFilter) (repository.Page[domain.ContactMessage], error) {
	return repository.NewPage([]domain.ContactMessage{}, 0, filter.Page, filter.Limit), nil
}

func (f *fakeContactRepo) ListByEmail(_ context.Context, _ string) ([]domain.ContactMessage, error) {
	return nil, nil
}

func (f *fakeContactRepo) Update(_ context.Context, id string, update repository.ContactUpdate) (*domain.ContactMessage, error) {
	msg, ok := f.byID[id]
	if !ok {
		return nil, errNoRows
	}
	f.updated = &update
	if update.Read != nil {
		msg.Read = *update.Read
	}
	if update.Status != nil {
		msg.Status = *update.Status
	}
	return msg, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeContactRepo) CountRead(_ context.Context) (int, int, error) {
	return f.read, f.unread, nil
}

func TestContactCreateDefaults(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo, nil)

	msg, err := svc.Create(context.Background(), ContactCreateInput{
		Name:    "Ada Lovelace",
		Email:   "ADA@example.org",
		Subject: "Venue question",
		Message: "Is the studio wheelchair accessible?",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ContactStatusNew, msg.Status)
	assert.False(t, msg.Read)
	assert.Equal(t, "ada@example.org", msg.Email)
}

func TestContactCreateRejectsShortMessage(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nil)

	_, err := svc.Create(context.Background(), ContactCreateInput{
		Name:    "Ada",
		Email:   "ada@example.org",
		Subject: "Hi",
		Message: "short",
	})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "message")
}

func TestContactMarkReadDelegatesToUpdate(t *testing.T) {
	repo := newFakeContactRepo()
	repo.byID["c-1"] = &domain.ContactMessage{ID: "c-1", Status: domain.ContactStatusNew}
	svc := NewContactService(repo, nil)

	msg, err := svc.MarkRead(context.Background(), "c-1")
	require.NoError(t, err)

	assert.True(t, msg.Read)
	require.NotNil(t, repo.updated)
	require.NotNil(t, repo.updated.Read)
	assert.True(t, *repo.updated.Read)
	assert.Nil(t, repo.updated.Status, "status untouched by mark-read")
}

func TestContactStats(t *testing.T) {
	repo := newFakeContactRepo()
	repo.read, repo.unread = 4, 6
	svc := NewContactService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats["read"])
	assert.Equal(t, 6, stats["unread"])
	assert.Equal(t, 10, stats["total"])
}
