package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// BookingHandler manages shoot booking endpoints.
type BookingHandler struct {
	service *service.BookingService
}

// NewBookingHandler constructs handler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{service: bookingService}
}

// Create POST /book-shoot.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.service.Create(c.Context(), service.BookingCreateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ShootType:     req.ShootType,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		Message:       req.Message,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "booking received", bookingResponse(booking))
}

// List GET /book-shoot.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.service.List(c.Context(), optionalQuery(c, "status"), page, limit)
	if err != nil {
		return err
	}
	return respondPage(c, "bookings retrieved", bookingResponses(result.Items), pageMeta(result))
}

// Get GET /book-shoot/:id.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "booking retrieved", bookingResponse(booking))
}

// ListByEmail GET /book-shoot/my-bookings/:email.
func (h *BookingHandler) ListByEmail(c *fiber.Ctx) error {
	bookings, err := h.service.ListByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "bookings retrieved", bookingResponses(bookings))
}

// ListByStatus GET /book-shoot/status/:status.
func (h *BookingHandler) ListByStatus(c *fiber.Ctx) error {
	bookings, err := h.service.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "bookings retrieved", bookingResponses(bookings))
}

// Stats GET /book-shoot/stats.
func (h *BookingHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "booking stats retrieved", stats)
}

// Update PATCH /book-shoot/:id.
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.service.Update(c.Context(), id, service.BookingUpdateInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "booking updated", bookingResponse(booking))
}

// Delete DELETE /book-shoot/:id.
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "booking deleted", nil)
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          booking.ID,
		Name:        booking.Name,
		Email:       booking.Email,
		Phone:       booking.Phone,
		ShootType:   booking.ShootType,
		Location:    booking.Location,
		PreferredAt: booking.PreferredAt,
		Message:     booking.Message,
		Status:      booking.Status,
		AdminNotes:  booking.AdminNotes,
		AssignedTo:  booking.AssignedTo,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func bookingResponses(bookings []domain.Booking) []dto.BookingResponse {
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return items
}
