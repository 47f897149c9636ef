package handlers

import (
	"errors"

	"github.com/bepp-pmpa/sigpen-backend/internal/api/rest/middleware"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper/utils"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RelatorioHandler struct {
	svc  services.RelatorioService
	auth helper.Auth
}

func NewRelatorioHandler(svc services.RelatorioService, auth helper.Auth) *RelatorioHandler {
	return &RelatorioHandler{svc: svc, auth: auth}
}

func (h *RelatorioHandler) SetupRoutes(app *fiber.App) {
	grp := app.Group("/api/relatorios", middleware.AuthMiddleware(h.auth))
	grp.Get("/:tipo", h.Gerar)
}

// GET /api/relatorios/:tipo (todos|regime|ala|soltura) -> CSV download
func (h *RelatorioHandler) Gerar(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	rel, err := h.svc.Gerar(ctx.Params("tipo"), user, ctx.IP())
	if err != nil {
		if errors.Is(err, services.ErrRelatorioVazio) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rel.Filename+`"`)
	return ctx.Status(fiber.StatusOK).Send(rel.CSV)
}
