package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// EnrollmentHandler manages coding program enrollment endpoints.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler constructs handler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: enrollmentService}
}

// Create POST /start-coding.
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	enrollment, err := h.service.Create(c.Context(), service.EnrollmentCreateInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Age:              req.Age,
		Track:            req.Track,
		Experience:       req.Experience,
		HasLaptop:        req.HasLaptop,
		Motivation:       req.Motivation,
		ConsentConfirmed: req.ConsentConfirmed,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "enrollment received", enrollmentResponse(enrollment))
}

// List GET /start-coding.
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "enrollments retrieved", enrollmentResponses(result.Items), pageMeta(result))
}

// Get GET /start-coding/:id.
func (h *EnrollmentHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	enrollment, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollment retrieved", enrollmentResponse(enrollment))
}

// ListByEmail GET /start-coding/my-enrollments/:email.
func (h *EnrollmentHandler) ListByEmail(c *fiber.Ctx) error {
	enrollments, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollments retrieved", enrollmentResponses(enrollments))
}

// ListByStatus GET /start-coding/status/:status.
func (h *EnrollmentHandler) ListByStatus(c *fiber.Ctx) error {
	enrollments, err := h.service.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollments retrieved", enrollmentResponses(enrollments))
}

// Stats GET /start-coding/stats.
func (h *EnrollmentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollment stats retrieved", stats)
}

// Update PATCH /start-coding/:id.
func (h *EnrollmentHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	enrollment, err := h.service.Update(c.Context(), id, service.EnrollmentUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollment updated", enrollmentResponse(enrollment))
}

// Delete DELETE /start-coding/:id.
func (h *EnrollmentHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "enrollment deleted", nil)
}

func enrollmentResponse(enrollment *domain.CodingEnrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		ID:               enrollment.ID,
		FullName:         enrollment.FullName,
		Email:            enrollment.Email,
		Phone:            enrollment.Phone,
		Age:              enrollment.Age,
		Track:            enrollment.Track,
		Experience:       enrollment.Experience,
		HasLaptop:        enrollment.HasLaptop,
		Motivation:       enrollment.Motivation,
		ConsentConfirmed: enrollment.ConsentConfirmed,
		Status:           enrollment.Status,
		AdminNotes:       enrollment.AdminNotes,
		AssignedTo:       enrollment.AssignedTo,
		CreatedAt:        enrollment.CreatedAt,
		UpdatedAt:        enrollment.UpdatedAt,
	}
}

func enrollmentResponses(enrollments []domain.CodingEnrollment) []dto.EnrollmentResponse {
	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, enrollmentResponse(&enrollments[i]))
	}
	return items
}
