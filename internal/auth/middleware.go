package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/visualpath/visualpath-api/internal/domain"
	"github.com/visualpath/visualpath-api/internal/repository"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated admin caller.
type Principal struct {
	Admin *domain.Admin
}

// AuthMiddleware validates bearer tokens and loads the admin principal.
// Routes behind it see either an authenticated admin or a 401 before the
// handler runs; handlers themselves stay credential-agnostic.
type AuthMiddleware struct {
	tokens *TokenManager
	admins repository.AdminRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, admins repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins}
}

// RequireAdmin enforces authentication for admin routes.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	admin, err := m.admins.GetByID(c.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("admin not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Admin: admin})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated admin.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
