package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// SocialSupportHandler manages social media support request endpoints.
type SocialSupportHandler struct {
	service *service.SocialSupportService
}

// NewSocialSupportHandler constructs handler.
func NewSocialSupportHandler(supportService *service.SocialSupportService) *SocialSupportHandler {
	return &SocialSupportHandler{service: supportService}
}

// Create POST /social-media-support.
func (h *SocialSupportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSocialSupportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.Create(c.Context(), service.SocialSupportCreateInput{
		Name:        req.Name,
		Email:       req.Email,
		OrgName:     req.OrgName,
		Platforms:   req.Platforms,
		Handles:     req.Handles,
		SupportType: req.SupportType,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "support request received", socialSupportResponse(request))
}

// List GET /social-media-support.
func (h *SocialSupportHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), optionalQuery(c, "platform"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "support requests retrieved", socialSupportResponses(result.Items), pageMeta(result))
}

// Get GET /social-media-support/:id.
func (h *SocialSupportHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "support request retrieved", socialSupportResponse(request))
}

// ListByEmail GET /social-media-support/my-requests/:email.
func (h *SocialSupportHandler) ListByEmail(c *fiber.Ctx) error {
	requests, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "support requests retrieved", socialSupportResponses(requests))
}

// Update PATCH /social-media-support/:id.
func (h *SocialSupportHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSocialSupportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.Update(c.Context(), id, service.SocialSupportUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "support request updated", socialSupportResponse(request))
}

// Delete DELETE /social-media-support/:id.
func (h *SocialSupportHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "support request deleted", nil)
}

func socialSupportResponse(request *domain.SocialSupportRequest) dto.SocialSupportResponse {
	return dto.SocialSupportResponse{
		ID:          request.ID,
		Name:        request.Name,
		Email:       request.Email,
		OrgName:     request.OrgName,
		Platforms:   request.Platforms,
		Handles:     request.Handles,
		SupportType: request.SupportType,
		Description: request.Description,
		Status:      request.Status,
		AdminNotes:  request.AdminNotes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}

func socialSupportResponses(requests []domain.SocialSupportRequest) []dto.SocialSupportResponse {
	items := make([]dto.SocialSupportResponse, 0, len(requests))
	for i := range requests {
		items = append(items, socialSupportResponse(&requests[i]))
	}
	return items
}
