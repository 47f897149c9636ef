package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRelatorioService struct {
	rel *dto.Relatorio
	err error
}

func (f *fakeRelatorioService) Gerar(tipo string, actor dto.AuthResponse, ip string) (*dto.Relatorio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rel, nil
}

type fakeStatsService struct {
	stats dto.DashboardStats
}

func (f *fakeStatsService) Dashboard(ctx context.Context) dto.DashboardStats {
	return f.stats
}

func TestRelatorioDownload(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := fiber.New()
	NewRelatorioHandler(&fakeRelatorioService{rel: &dto.Relatorio{
		Titulo:   "Relatório Geral de Presidiários",
		Filename: "relatorio-todos-2024-06-15.csv",
		CSV:      []byte("id_presidiario,nome_completo\n1,Ana\n"),
	}}, auth).SetupRoutes(app)

	req := httptest.NewRequest("GET", "/api/relatorios/todos", nil)
	req.Header.Set("Authorization", bearer(t, auth, "u1", "op@sigpen.gov.br"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "relatorio-todos-2024-06-15.csv")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Ana")
}

func TestRelatorioVazio404(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := fiber.New()
	NewRelatorioHandler(&fakeRelatorioService{err: services.ErrRelatorioVazio}, auth).SetupRoutes(app)

	req := httptest.NewRequest("GET", "/api/relatorios/regime", nil)
	req.Header.Set("Authorization", bearer(t, auth, "u1", "op@sigpen.gov.br"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardStats(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := fiber.New()
	NewDashboardHandler(&fakeStatsService{stats: dto.DashboardStats{
		Total: 120, ProximosSair: 4, Ocorrencias: 9, CasosMedicos: 2,
	}}, auth).SetupRoutes(app)

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", bearer(t, auth, "u1", "op@sigpen.gov.br"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"total":120`)
}
