package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// InternshipHandler manages internship application endpoints.
type InternshipHandler struct {
	service *service.InternshipService
}

// NewInternshipHandler constructs handler.
func NewInternshipHandler(internshipService *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{service: internshipService}
}

// Create POST /internships.
func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	app, err := h.service.Create(c.Context(), service.InternshipCreateInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		University:        req.University,
		Major:             req.Major,
		Interests:         req.Interests,
		AvailabilityStart: req.AvailabilityStart,
		AvailabilityEnd:   req.AvailabilityEnd,
		ResumeURL:         req.ResumeURL,
		Motivation:        req.Motivation,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "application received", internshipResponse(app))
}

// List GET /internships.
func (h *InternshipHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "applications retrieved", internshipResponses(result.Items), pageMeta(result))
}

// Get GET /internships/:id.
func (h *InternshipHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	app, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "application retrieved", internshipResponse(app))
}

// ListByEmail GET /internships/my-applications/:email.
func (h *InternshipHandler) ListByEmail(c *fiber.Ctx) error {
	apps, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "applications retrieved", internshipResponses(apps))
}

// ListByStatus GET /internships/status/:status.
func (h *InternshipHandler) ListByStatus(c *fiber.Ctx) error {
	apps, err := h.service.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "applications retrieved", internshipResponses(apps))
}

// Stats GET /internships/stats.
func (h *InternshipHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "internship stats retrieved", stats)
}

// Update PATCH /internships/:id.
func (h *InternshipHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	app, err := h.service.Update(c.Context(), id, service.InternshipUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "application updated", internshipResponse(app))
}

// Delete DELETE /internships/:id.
func (h *InternshipHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "application deleted", nil)
}

func internshipResponse(app *domain.InternshipApplication) dto.InternshipResponse {
	return dto.InternshipResponse{
		ID:                app.ID,
		FullName:          app.FullName,
		Email:             app.Email,
		Phone:             app.Phone,
		University:        app.University,
		Major:             app.Major,
		Interests:         app.Interests,
		AvailabilityStart: app.AvailabilityStart,
		AvailabilityEnd:   app.AvailabilityEnd,
		ResumeURL:         app.ResumeURL,
		Motivation:        app.Motivation,
		Status:            app.Status,
		AdminNotes:        app.AdminNotes,
		AssignedTo:        app.AssignedTo,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}

func internshipResponses(apps []domain.InternshipApplication) []dto.InternshipResponse {
	items := make([]dto.InternshipResponse, 0, len(apps))
	for i := range apps {
		items = append(items, internshipResponse(&apps[i]))
	}
	return items
}
