package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visualpath/visualpath-api/internal/api/http/handlers"
	"github.com/visualpath/visualpath-api/internal/auth"
	"github.com/visualpath/visualpath-api/internal/config"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/events"
	"github.com/visualpath/visualpath-api/internal/observability"
	"github.com/visualpath/visualpath-api/internal/repository"
	"github.com/visualpath/visualpath-api/internal/service"
)

// memBookingRepo keeps bookings in a map so transport tests run without
// Postgres.
type memBookingRepo struct {
	seq  int
	rows map[string]*domain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{rows: map[string]*domain.Booking{}}
}

func (m *memBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	m.seq++
	booking.ID = fmt.Sprintf("11111111-1111-1111-1111-%012d", m.seq)
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	copied := *booking
	m.rows[booking.ID] = &copied
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *booking
	return &copied, nil
}

func (m *memBookingRepo) List(_ context.Context, filter repository.BookingFilter) (repository.Page[domain.Booking], error) {
	items := make([]domain.Booking, 0, len(m.rows))
	for _, booking := range m.rows {
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		items = append(items, *booking)
	}
	return repository.NewPage(items, len(items), filter.Page, filter.Limit), nil
}

func (m *memBookingRepo) ListByEmail(_ context.Context, email string) ([]domain.Booking, error) {
	var items []domain.Booking
	for _, booking := range m.rows {
		if booking.Email == email {
			items = append(items, *booking)
		}
	}
	return items, nil
}

func (m *memBookingRepo) ListByStatus(_ context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var items []domain.Booking
	for _, booking := range m.rows {
		if booking.Status == status {
			items = append(items, *booking)
		}
	}
	return items, nil
}

func (m *memBookingRepo) Update(_ context.Context, id string, update repository.BookingUpdate) (*domain.Booking, error) {
	booking, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.AdminNotes != nil {
		booking.AdminNotes = update.AdminNotes
	}
	if update.AssignedTo != nil {
		booking.AssignedTo = update.AssignedTo
	}
	booking.UpdatedAt = time.Now()
	copied := *booking
	return &copied, nil
}

func (m *memBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memBookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int, error) {
	counts := map[domain.BookingStatus]int{}
	for _, booking := range m.rows {
		counts[booking.Status]++
	}
	return counts, nil
}

func (m *memBookingRepo) CountOverlapping(_ context.Context, preferredAt time.Time, window time.Duration) (int, error) {
	count := 0
	for _, booking := range m.rows {
		if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
			continue
		}
		diff := booking.PreferredAt.Sub(preferredAt)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			count++
		}
	}
	return count, nil
}

type memContactRepo struct {
	seq  int
	rows map[string]*domain.ContactMessage
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{rows: map[string]*domain.ContactMessage{}}
}

func (m *memContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	m.seq++
	msg.ID = fmt.Sprintf("22222222-2222-2222-2222-%012d", m.seq)
	msg.CreatedAt = time.Now()
	msg.UpdatedAt = msg.CreatedAt
	copied := *msg
	m.rows[msg.ID] = &copied
	return nil
}

func (m *memContactRepo) GetByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	msg, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *msg
	return &copied, nil
}

func (m *memContactRepo) List(_ context.Context, filter repository.ContactFilter) (repository.Page[domain.ContactMessage], error) {
	items := make([]domain.ContactMessage, 0, len(m.rows))
	for _, msg := range m.rows {
		items = append(items, *msg)
	}
	return repository.NewPage(items, len(items), filter.Page, filter.Limit), nil
}

func (m *memContactRepo) ListByEmail(_ context.Context, email string) ([]domain.ContactMessage, error) {
	var items []domain.ContactMessage
	for _, msg := range m.rows {
		if msg.Email == email {
			items = append(items, *msg)
		}
	}
	return items, nil
}

func (m *memContactRepo) Update(_ context.Context, id string, update repository.ContactUpdate) (*domain.ContactMessage, error) {
	msg, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if update.Status != nil {
		msg.Status = *update.Status
	}
	if update.Read != nil {
		msg.Read = *update.Read
	}
	if update.AdminNotes != nil {
		msg.AdminNotes = update.AdminNotes
	}
	copied := *msg
	return &copied, nil
}

func (m *memContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

func (m *memContactRepo) CountRead(_ context.Context) (int, int, error) {
	read, unread := 0, 0
	for _, msg := range m.rows {
		if msg.Read {
			read++
		} else {
			unread++
		}
	}
	return read, unread, nil
}

// Stub repos back the resources these tests do not exercise.

type stubInternshipRepo struct{}

func (stubInternshipRepo) Create(_ context.Context, _ *domain.InternshipApplication) error {
	return nil
}

func (stubInternshipRepo) GetByID(_ context.Context, _ string) (*domain.InternshipApplication, error) {
	return nil, pgx.ErrNoRows
}

func (stubInternshipRepo) List(_ context.Context, filter repository.InternshipFilter) (repository.Page[domain.InternshipApplication], error) {
	return repository.NewPage([]domain.InternshipApplication{}, 0, filter.Page, filter.Limit), nil
}

func (stubInternshipRepo) ListByEmail(_ context.Context, _ string) ([]domain.InternshipApplication, error) {
	return nil, nil
}

func (stubInternshipRepo) ListByStatus(_ context.Context, _ domain.InternshipStatus) ([]domain.InternshipApplication, error) {
	return nil, nil
}

func (stubInternshipRepo) Update(_ context.Context, _ string, _ repository.InternshipUpdate) (*domain.InternshipApplication, error) {
	return nil, pgx.ErrNoRows
}

func (stubInternshipRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (stubInternshipRepo) CountByStatus(_ context.Context) (map[domain.InternshipStatus]int, error) {
	return nil, nil
}

func (stubInternshipRepo) ExistsWithStatus(_ context.Context, _ string, _ domain.InternshipStatus) (bool, error) {
	return false, nil
}

type stubPartnershipRepo struct{}

func (stubPartnershipRepo) Create(_ context.Context, _ *domain.PartnershipRequest) error { return nil }

func (stubPartnershipRepo) GetByID(_ context.Context, _ string) (*domain.PartnershipRequest, error) {
	return nil, pgx.ErrNoRows
}

func (stubPartnershipRepo) List(_ context.Context, filter repository.PartnershipFilter) (repository.Page[domain.PartnershipRequest], error) {
	return repository.NewPage([]domain.PartnershipRequest{}, 0, filter.Page, filter.Limit), nil
}

func (stubPartnershipRepo) ListByEmail(_ context.Context, _ string) ([]domain.PartnershipRequest, error) {
	return nil, nil
}

func (stubPartnershipRepo) Update(_ context.Context, _ string, _ repository.PartnershipUpdate) (*domain.PartnershipRequest, error) {
	return nil, pgx.ErrNoRows
}

func (stubPartnershipRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

type stubMentorshipRepo struct{}

func (stubMentorshipRepo) Create(_ context.Context, _ *domain.MentorshipSignup) error { return nil }

func (stubMentorshipRepo) GetByID(_ context.Context, _ string) (*domain.MentorshipSignup, error) {
	return nil, pgx.ErrNoRows
}

func (stubMentorshipRepo) List(_ context.Context, filter repository.MentorshipFilter) (repository.Page[domain.MentorshipSignup], error) {
	return repository.NewPage([]domain.MentorshipSignup{}, 0, filter.Page, filter.Limit), nil
}

func (stubMentorshipRepo) Update(_ context.Context, _ string, _ repository.MentorshipUpdate) (*domain.MentorshipSignup, error) {
	return nil, pgx.ErrNoRows
}

func (stubMentorshipRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (stubMentorshipRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type stubSocialSupportRepo struct{}

func (stubSocialSupportRepo) Create(_ context.Context, _ *domain.SocialSupportRequest) error {
	return nil
}

func (stubSocialSupportRepo) GetByID(_ context.Context, _ string) (*domain.SocialSupportRequest, error) {
	return nil, pgx.ErrNoRows
}

func (stubSocialSupportRepo) List(_ context.Context, filter repository.SocialSupportFilter) (repository.Page[domain.SocialSupportRequest], error) {
	return repository.NewPage([]domain.SocialSupportRequest{}, 0, filter.Page, filter.Limit), nil
}

func (stubSocialSupportRepo) ListByEmail(_ context.Context, _ string) ([]domain.SocialSupportRequest, error) {
	return nil, nil
}

func (stubSocialSupportRepo) Update(_ context.Context, _ string, _ repository.SocialSupportUpdate) (*domain.SocialSupportRequest, error) {
	return nil, pgx.ErrNoRows
}

func (stubSocialSupportRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (stubSocialSupportRepo) ExistsWithStatus(_ context.Context, _ string, _ domain.SupportStatus) (bool, error) {
	return false, nil
}

type stubEnrollmentRepo struct{}

func (stubEnrollmentRepo) Create(_ context.Context, _ *domain.CodingEnrollment) error { return nil }

func (stubEnrollmentRepo) GetByID(_ context.Context, _ string) (*domain.CodingEnrollment, error) {
	return nil, pgx.ErrNoRows
}

func (stubEnrollmentRepo) List(_ context.Context, filter repository.EnrollmentFilter) (repository.Page[domain.CodingEnrollment], error) {
	return repository.NewPage([]domain.CodingEnrollment{}, 0, filter.Page, filter.Limit), nil
}

func (stubEnrollmentRepo) ListByEmail(_ context.Context, _ string) ([]domain.CodingEnrollment, error) {
	return nil, nil
}

func (stubEnrollmentRepo) ListByStatus(_ context.Context, _ domain.EnrollmentStatus) ([]domain.CodingEnrollment, error) {
	return nil, nil
}

func (stubEnrollmentRepo) Update(_ context.Context, _ string, _ repository.EnrollmentUpdate) (*domain.CodingEnrollment, error) {
	return nil, pgx.ErrNoRows
}

func (stubEnrollmentRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (stubEnrollmentRepo) CountByStatus(_ context.Context) (map[domain.EnrollmentStatus]int, error) {
	return nil, nil
}

func (stubEnrollmentRepo) ExistsWithStatus(_ context.Context, _ string, _ ...domain.EnrollmentStatus) (bool, error) {
	return false, nil
}

type memAdminRepo struct {
	admin *domain.Admin
}

func (m *memAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	if m.admin != nil && m.admin.ID == id {
		return m.admin, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if m.admin != nil && m.admin.Email == email {
		return m.admin, nil
	}
	return nil, pgx.ErrNoRows
}

type testEnv struct {
	app   *fiber.App
	token string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	adminRepo := &memAdminRepo{admin: &domain.Admin{ID: "admin-1", Name: "Ops", Email: "ops@example.org"}}
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 30}, adminRepo)
	bookingService := service.NewBookingService(newMemBookingRepo(), dispatcher)
	contactService := service.NewContactService(newMemContactRepo(), dispatcher)
	internshipService := service.NewInternshipService(stubInternshipRepo{}, dispatcher)
	partnershipService := service.NewPartnershipService(stubPartnershipRepo{}, dispatcher)
	mentorshipService := service.NewMentorshipService(stubMentorshipRepo{}, dispatcher)
	socialSupportService := service.NewSocialSupportService(stubSocialSupportRepo{}, dispatcher)
	enrollmentService := service.NewEnrollmentService(stubEnrollmentRepo{}, dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Bookings:       handlers.NewBookingHandler(bookingService),
		Contacts:       handlers.NewContactHandler(contactService),
		Internships:    handlers.NewInternshipHandler(internshipService),
		Partnerships:   handlers.NewPartnershipHandler(partnershipService),
		Mentorships:    handlers.NewMentorshipHandler(mentorshipService),
		SocialSupport:  handlers.NewSocialSupportHandler(socialSupportService),
		Enrollments:    handlers.NewEnrollmentHandler(enrollmentService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), adminRepo),
	})

	token, _, err := authService.TokenManager().GenerateToken("admin-1", "ops@example.org")
	require.NoError(t, err)

	return &testEnv{app: app, token: token}
}

func (e *testEnv) request(t *testing.T, method, path, body string, admin bool) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := stdhttp.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

const bookingBody = `{
	"name": "Ada Lovelace",
	"email": "ada@example.org",
	"shootType": "PORTRAIT",
	"location": "Community Hall",
	"preferredDate": "2026-09-12T10:00:00Z"
}`

func TestSubmitBookingReturnsEnvelope(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "POST", "/book-shoot/", bookingBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)

	assert.EqualValues(t, 201, body["status"])
	assert.Equal(t, "booking received", body["message"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "PENDING", data["status"])
}

func TestSubmitBookingValidationEnvelope(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "POST", "/book-shoot/", `{"email":"nope"}`, false)
	require.Equal(t, stdhttp.StatusBadRequest, status)

	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
}

func TestOverlappingBookingConflict(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, "POST", "/book-shoot/", bookingBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)

	conflicting := strings.Replace(bookingBody, "ada@example.org", "other@example.org", 1)
	conflicting = strings.Replace(conflicting, "10:00:00", "11:30:00", 1)
	status, body := env.request(t, "POST", "/book-shoot/", conflicting, false)
	require.Equal(t, stdhttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestBookingConflictWindowBoundary(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, "POST", "/book-shoot/", bookingBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)

	// Exactly two hours out still conflicts; one minute past is free.
	atBoundary := strings.Replace(bookingBody, "10:00:00", "12:00:00", 1)
	status, body := env.request(t, "POST", "/book-shoot/", atBoundary, false)
	require.Equal(t, stdhttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])

	pastBoundary := strings.Replace(bookingBody, "10:00:00", "12:01:00", 1)
	status, _ = env.request(t, "POST", "/book-shoot/", pastBoundary, false)
	require.Equal(t, stdhttp.StatusCreated, status)
}

func TestAdminListingRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "GET", "/book-shoot/", "", false)
	require.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	status, body = env.request(t, "GET", "/book-shoot/", "", true)
	require.Equal(t, stdhttp.StatusOK, status)
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, meta["page"])
	assert.EqualValues(t, 10, meta["limit"])
}

func TestGetRejectsMalformedID(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "GET", "/book-shoot/not-a-uuid", "", true)
	require.Equal(t, stdhttp.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "POST", "/book-shoot/", bookingBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)
	id := body["data"].(map[string]any)["id"].(string)

	status, _ = env.request(t, "DELETE", "/book-shoot/"+id, "", true)
	require.Equal(t, stdhttp.StatusOK, status)

	status, body = env.request(t, "GET", "/book-shoot/"+id, "", true)
	require.Equal(t, stdhttp.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestPartialUpdateMergesFields(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "POST", "/book-shoot/", bookingBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)
	id := body["data"].(map[string]any)["id"].(string)

	status, body = env.request(t, "PATCH", "/book-shoot/"+id, `{"adminNotes":"call back"}`, true)
	require.Equal(t, stdhttp.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "call back", data["adminNotes"])
	assert.Equal(t, "PENDING", data["status"], "untouched fields survive the merge")

	status, body = env.request(t, "PATCH", "/book-shoot/"+id, `{"status":"CONFIRMED"}`, true)
	require.Equal(t, stdhttp.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, "CONFIRMED", data["status"])
	assert.Equal(t, "call back", data["adminNotes"])
}

func TestContactMarkRead(t *testing.T) {
	env := newTestEnv(t)

	contactBody := `{
		"name": "Ada Lovelace",
		"email": "ada@example.org",
		"subject": "Venue question",
		"message": "Is the studio wheelchair accessible?"
	}`
	status, body := env.request(t, "POST", "/contact/", contactBody, false)
	require.Equal(t, stdhttp.StatusCreated, status)
	data := body["data"].(map[string]any)
	id := data["id"].(string)
	assert.Equal(t, false, data["read"])

	status, body = env.request(t, "PATCH", "/contact/"+id+"/read", "", true)
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Equal(t, true, body["data"].(map[string]any)["read"])
}

func TestLoginUnknownAdminIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, "POST", "/auth/login", `{"email":"nobody@example.org","password":"x"}`, false)
	require.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
	assert.Equal(t, "invalid credentials", body["message"])
}
