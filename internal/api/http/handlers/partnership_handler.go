package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// PartnershipHandler manages partnership request endpoints.
type PartnershipHandler struct {
	service *service.PartnershipService
}

// NewPartnershipHandler constructs handler.
func NewPartnershipHandler(partnershipService *service.PartnershipService) *PartnershipHandler {
	return &PartnershipHandler{service: partnershipService}
}

// Create POST /partnerships.
func (h *PartnershipHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePartnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.Create(c.Context(), service.PartnershipCreateInput{
		OrgName:     req.OrgName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Type:        req.PartnershipType,
		Proposal:    req.Proposal,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "partnership request received", partnershipResponse(request))
}

// List GET /partnerships.
func (h *PartnershipHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "partnership requests retrieved", partnershipResponses(result.Items), pageMeta(result))
}

// Get GET /partnerships/:id.
func (h *PartnershipHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	request, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "partnership request retrieved", partnershipResponse(request))
}

// ListByEmail GET /partnerships/my-requests/:email.
func (h *PartnershipHandler) ListByEmail(c *fiber.Ctx) error {
	requests, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "partnership requests retrieved", partnershipResponses(requests))
}

// Update PATCH /partnerships/:id.
func (h *PartnershipHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePartnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.Update(c.Context(), id, service.PartnershipUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "partnership request updated", partnershipResponse(request))
}

// Delete DELETE /partnerships/:id.
func (h *PartnershipHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "partnership request deleted", nil)
}

func partnershipResponse(request *domain.PartnershipRequest) dto.PartnershipResponse {
	return dto.PartnershipResponse{
		ID:          request.ID,
		OrgName:     request.OrgName,
		ContactName: request.ContactName,
		Email:       request.Email,
		Phone:       request.Phone,
		Website:     request.Website,
		Type:        request.Type,
		Proposal:    request.Proposal,
		Status:      request.Status,
		AdminNotes:  request.AdminNotes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}

func partnershipResponses(requests []domain.PartnershipRequest) []dto.PartnershipResponse {
	items := make([]dto.PartnershipResponse, 0, len(requests))
	for i := range requests {
		items = append(items, partnershipResponse(&requests[i]))
	}
	return items
}
