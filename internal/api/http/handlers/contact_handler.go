package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// ContactHandler manages contact message endpoints.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Create POST /contact.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.Create(c.Context(), service.ContactCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "message received", contactResponse(msg))
}

// List GET /contact.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	var read *bool
	if val := c.Query("read"); val != "" {
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			return apperrors.NewValidationError("invalid query", map[string]any{"read": "must be true or false"})
		}
		read = &parsed
	}
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), read, page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "messages retrieved", contactResponses(result.Items), pageMeta(result))
}

// Get GET /contact/:id.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	msg, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "message retrieved", contactResponse(msg))
}

// ListByEmail GET /contact/my-messages/:email.
func (h *ContactHandler) ListByEmail(c *fiber.Ctx) error {
	msgs, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "messages retrieved", contactResponses(msgs))
}

// Stats GET /contact/stats.
func (h *ContactHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "contact stats retrieved", stats)
}

// Update PATCH /contact/:id.
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.Update(c.Context(), id, service.ContactUpdateInput{
		Status:     req.Status,
		Read:       req.Read,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "message updated", contactResponse(msg))
}

// MarkRead PATCH /contact/:id/read.
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	msg, err := h.service.MarkRead(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "message marked as read", contactResponse(msg))
}

// Delete DELETE /contact/:id.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "message deleted", nil)
}

func contactResponse(msg *domain.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		Message:    msg.Message,
		Read:       msg.Read,
		Status:     msg.Status,
		AdminNotes: msg.AdminNotes,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
	}
}

func contactResponses(msgs []domain.ContactMessage) []dto.ContactResponse {
	items := make([]dto.ContactResponse, 0, len(msgs))
	for i := range msgs {
		items = append(items, contactResponse(&msgs[i]))
	}
	return items
}
