package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// MentorshipHandler manages mentorship sign-up endpoints.
type MentorshipHandler struct {
	service *service.MentorshipService
}

// NewMentorshipHandler constructs handler.
func NewMentorshipHandler(mentorshipService *service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{service: mentorshipService}
}

// Create POST /get-involved.
func (h *MentorshipHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMentorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	signup, err := h.service.Create(c.Context(), service.MentorshipCreateInput{
		FullName:             req.FullName,
		Email:                req.Email,
		Expertise:            req.Expertise,
		Motivation:           req.Motivation,
		PrefersInPerson:      req.PrefersInPerson,
		PrefersVirtual:       req.PrefersVirtual,
		AvailableWeekdays:    req.AvailableWeekdays,
		AvailableWeekends:    req.AvailableWeekends,
		ConsentCodeOfConduct: req.ConsentCodeOfConduct,
		ConsentContact:       req.ConsentContact,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "sign-up received", mentorshipResponse(signup))
}

// List GET /get-involved.
func (h *MentorshipHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "sign-ups retrieved", mentorshipResponses(result.Items), pageMeta(result))
}

// Get GET /get-involved/:id.
func (h *MentorshipHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	signup, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "sign-up retrieved", mentorshipResponse(signup))
}

// Update PATCH /get-involved/:id.
func (h *MentorshipHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateMentorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	signup, err := h.service.Update(c.Context(), id, service.MentorshipUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "sign-up updated", mentorshipResponse(signup))
}

// Delete DELETE /get-involved/:id.
func (h *MentorshipHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "sign-up deleted", nil)
}

func mentorshipResponse(signup *domain.MentorshipSignup) dto.MentorshipResponse {
	return dto.MentorshipResponse{
		ID:                   signup.ID,
		FullName:             signup.FullName,
		Email:                signup.Email,
		Expertise:            signup.Expertise,
		Motivation:           signup.Motivation,
		PrefersInPerson:      signup.PrefersInPerson,
		PrefersVirtual:       signup.PrefersVirtual,
		AvailableWeekdays:    signup.AvailableWeekdays,
		AvailableWeekends:    signup.AvailableWeekends,
		ConsentCodeOfConduct: signup.ConsentCodeOfConduct,
		ConsentContact:       signup.ConsentContact,
		Status:               signup.Status,
		AdminNotes:           signup.AdminNotes,
		CreatedAt:            signup.CreatedAt,
		UpdatedAt:            signup.UpdatedAt,
	}
}

func mentorshipResponses(signups []domain.MentorshipSignup) []dto.MentorshipResponse {
	items := make([]dto.MentorshipResponse, 0, len(signups))
	for i := range signups {
		items = append(items, mentorshipResponse(&signups[i]))
	}
	return items
}
