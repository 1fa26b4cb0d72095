package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/service"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// AuthHandler manages admin authentication endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	result, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "login successful", dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Name:      result.Admin.Name,
		Email:     result.Admin.Email,
	})
}
