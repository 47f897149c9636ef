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

type RegistrosHandler struct {
	svc   services.RegistroService
	users services.UserService
	auth  helper.Auth
}

func NewRegistrosHandler(svc services.RegistroService, users services.UserService, auth helper.Auth) *RegistrosHandler {
	return &RegistrosHandler{svc: svc, users: users, auth: auth}
}

func (h *RegistrosHandler) SetupRoutes(app *fiber.App) {
	grp := app.Group("/api/registros", middleware.AuthMiddleware(h.auth))
	escrita := middleware.RequireEscrita(h.users)

	grp.Get("/transferencias", h.ListTransferencias)
	grp.Post("/transferencias", escrita, h.CreateTransferencia)
	grp.Get("/ocorrencias", h.ListOcorrencias)
	grp.Post("/ocorrencias", escrita, h.CreateOcorrencia)
	grp.Get("/saude", h.ListSaude)
	grp.Post("/saude", escrita, h.CreateSaude)
	grp.Get("/visitas", h.ListVisitas)
	grp.Post("/visitas", escrita, h.CreateVisita)
}

func (h *RegistrosHandler) ListTransferencias(ctx *fiber.Ctx) error {
	out, err := h.svc.ListTransferencias()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list transferencias")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *RegistrosHandler) CreateTransferencia(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.TransferenciaRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	t, err := h.svc.CriarTransferencia(requestBody, user, ctx.IP())
	if err != nil {
		return registroError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, t)
}

func (h *RegistrosHandler) ListOcorrencias(ctx *fiber.Ctx) error {
	out, err := h.svc.ListOcorrencias()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list ocorrencias")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *RegistrosHandler) CreateOcorrencia(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.OcorrenciaRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	o, err := h.svc.CriarOcorrencia(requestBody, user, ctx.IP())
	if err != nil {
		return registroError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, o)
}

func (h *RegistrosHandler) ListSaude(ctx *fiber.Ctx) error {
	out, err := h.svc.ListSaude()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list registros de saude")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *RegistrosHandler) CreateSaude(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.SaudeRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	reg, err := h.svc.CriarSaude(requestBody, user, ctx.IP())
	if err != nil {
		return registroError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, reg)
}

func (h *RegistrosHandler) ListVisitas(ctx *fiber.Ctx) error {
	out, err := h.svc.ListVisitas()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list visitas")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *RegistrosHandler) CreateVisita(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.VisitaRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	v, err := h.svc.CriarVisita(requestBody, user, ctx.IP())
	if err != nil {
		return registroError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, v)
}

func registroError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
	}
	return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
}
