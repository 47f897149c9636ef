package handlers

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bepp-pmpa/sigpen-backend/internal/api/rest/middleware"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper/utils"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	pkgutils "github.com/bepp-pmpa/sigpen-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const fotoMaxBytes = 5 * 1024 * 1024 // 5MB

type PresidiarioHandler struct {
	svc   services.PresidiarioService
	users services.UserService
	auth  helper.Auth
}

func NewPresidiarioHandler(svc services.PresidiarioService, users services.UserService, auth helper.Auth) *PresidiarioHandler {
	return &PresidiarioHandler{svc: svc, users: users, auth: auth}
}

func (h *PresidiarioHandler) SetupRoutes(app *fiber.App) {
	grp := app.Group("/api/presidiarios", middleware.AuthMiddleware(h.auth))
	escrita := middleware.RequireEscrita(h.users)

	grp.Get("/", h.List)
	grp.Get("/:id", h.Ficha)
	grp.Post("/", escrita, h.Create)
	grp.Put("/:id", escrita, h.Update)
	grp.Post("/:id/foto", escrita, h.UploadFoto)
}

// List returns the roster newest first, or the search matches when ?q= is set.
func (h *PresidiarioHandler) List(ctx *fiber.Ctx) error {
	out, err := h.svc.Buscar(ctx.Query("q"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list presidiarios")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

// Ficha returns the consolidated detail view. A malformed id never reaches
// the store: it is answered as not found straight away.
func (h *PresidiarioHandler) Ficha(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx.Params("id"))
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
	}

	ficha, err := h.svc.Ficha(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to load ficha")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ficha)
}

func (h *PresidiarioHandler) Create(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	var requestBody dto.PresidiarioRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.Cadastrar(requestBody, user, ctx.IP())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, p)
}

func (h *PresidiarioHandler) Update(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	id, ok := parseID(ctx.Params("id"))
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
	}

	var requestBody dto.PresidiarioRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	p, err := h.svc.Atualizar(id, requestBody, user, ctx.IP())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, p)
}

// POST /api/presidiarios/:id/foto
// form-data: file=<image>
func (h *PresidiarioHandler) UploadFoto(ctx *fiber.Ctx) error {
	user, _ := h.auth.GetCurrentUser(ctx)

	id, ok := parseID(ctx.Params("id"))
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if !allowed[ext] {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "only jpg/jpeg/png/webp allowed")
	}
	if file.Size > fotoMaxBytes {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	raw, err := pkgutils.ReadAllLimit(f, fotoMaxBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	url, err := h.svc.AtualizarFoto(ctx.Context(), id, raw, user, ctx.IP())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "presidiário não encontrado")
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"foto_url": url})
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
