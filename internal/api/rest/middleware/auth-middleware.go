package middleware

import (
	"strings"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", user.UserID)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// SuperAdminOnly guards the user-management endpoints: only the configured
// super-admin email passes, every other authenticated user gets 403.
func SuperAdminOnly(userSvc services.UserService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := ctx.Locals("user").(dto.AuthResponse)
		if !ok || user.UserID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		if !userSvc.IsSuperAdmin(user.Email) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": services.ErrAcessoRestrito.Error(),
			})
		}

		return ctx.Next()
	}
}

// RequireEscrita allows writes only for the admin and operador levels;
// consulta and visitante stay read-only.
func RequireEscrita(userSvc services.UserService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, ok := ctx.Locals("userID").(string)
		if !ok || userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		switch userSvc.NivelAcesso(userID) {
		case domain.NivelAdmin, domain.NivelOperador:
			return ctx.Next()
		}

		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "seu nível de acesso não permite alterações",
		})
	}
}
