package handlers

import (
	"github.com/bepp-pmpa/sigpen-backend/internal/api/rest/middleware"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper/utils"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	svc  services.StatsService
	auth helper.Auth
}

func NewDashboardHandler(svc services.StatsService, auth helper.Auth) *DashboardHandler {
	return &DashboardHandler{svc: svc, auth: auth}
}

func (h *DashboardHandler) SetupRoutes(app *fiber.App) {
	grp := app.Group("/api/dashboard", middleware.AuthMiddleware(h.auth))
	grp.Get("/stats", h.Stats)
}

// Stats always answers 200: a failing counter renders as zero, never as an
// error page.
func (h *DashboardHandler) Stats(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.svc.Dashboard(ctx.Context()))
}
