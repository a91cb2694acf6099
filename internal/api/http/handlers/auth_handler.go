package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elegance-studio/salon-service/internal/api/dto"
	"github.com/elegance-studio/salon-service/internal/auth"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// AuthHandler exposes administrator login.
type AuthHandler struct {
	admin *auth.Admin
}

// NewAuthHandler constructs handler.
func NewAuthHandler(admin *auth.Admin) *AuthHandler {
	return &AuthHandler{admin: admin}
}

// Login handles POST /auth/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	token, exp, err := h.admin.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: exp}})
}
