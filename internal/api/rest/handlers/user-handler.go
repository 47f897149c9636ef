package handlers

import (
	"errors"

	"github.com/bepp-pmpa/sigpen-backend/internal/api/rest/middleware"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper/utils"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)

	// User management, super-admin only
	usuarios := api.Group(
		"/usuarios",
		middleware.AuthMiddleware(h.auth),
		middleware.SuperAdminOnly(h.svc),
	)
	usuarios.Get("/", h.ListUsers)
	usuarios.Post("/", h.CreateUser)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.Register(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"id":    p.ID,
		"email": p.Email,
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	res, err := h.svc.Login(requestBody, ctx.IP())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, res)
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	p, err := h.svc.GetProfile(user.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "profile not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to load profile")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"id":            p.ID,
		"email":         p.Email,
		"nome_completo": p.NomeCompleto,
		"nivel_acesso":  h.svc.NivelAcesso(p.ID),
		"ultimo_login":  p.UltimoLogin,
	})
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	out, err := h.svc.ListUsers(user)
	if err != nil {
		if errors.Is(err, services.ErrAcessoRestrito) {
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list users")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.CreateUserRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.CreateUser(requestBody, user, ctx.IP())
	if err != nil {
		if errors.Is(err, services.ErrAcessoRestrito) {
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"id":            p.ID,
		"email":         p.Email,
		"nome_completo": p.NomeCompleto,
		"nivel_acesso":  p.NivelAcesso,
	})
}
