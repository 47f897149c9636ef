package services

import (
	"testing"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistroSvc(pres *fakePresidiarioRepo, transf *fakeTransferenciaRepo, ocor *fakeOcorrenciaRepo, saude *fakeSaudeRepo, visitas *fakeVisitaRepo) RegistroService {
	return NewRegistroService(pres, transf, ocor, saude, visitas, noopAudit())
}

func existingSubject(id uint) *fakePresidiarioRepo {
	return &fakePresidiarioRepo{byID: map[uint]*domain.Presidiario{
		id: {IDPresidiario: id, NomeCompleto: "José"},
	}}
}

func TestCriarOcorrencia(t *testing.T) {
	ocor := &fakeOcorrenciaRepo{}
	svc := newRegistroSvc(existingSubject(1), &fakeTransferenciaRepo{}, ocor, &fakeSaudeRepo{}, &fakeVisitaRepo{})

	o, err := svc.CriarOcorrencia(dto.OcorrenciaRequest{
		IDPresidiario:  1,
		Tipo:           domain.OcorrenciaBriga,
		Descricao:      "  briga no pátio  ",
		DataOcorrencia: "2024-03-10",
	}, dto.AuthResponse{UserID: "u1"}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "briga no pátio", o.Descricao)
	require.NotNil(t, o.RegistradoPor)
	assert.Equal(t, "u1", *o.RegistradoPor)
	assert.Len(t, ocor.items, 1)
}

func TestCriarOcorrenciaSubjectMissing(t *testing.T) {
	ocor := &fakeOcorrenciaRepo{}
	svc := newRegistroSvc(&fakePresidiarioRepo{byID: map[uint]*domain.Presidiario{}}, &fakeTransferenciaRepo{}, ocor, &fakeSaudeRepo{}, &fakeVisitaRepo{})

	_, err := svc.CriarOcorrencia(dto.OcorrenciaRequest{
		IDPresidiario:  99,
		Descricao:      "x",
		DataOcorrencia: "2024-03-10",
	}, dto.AuthResponse{}, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, ocor.items)
}

func TestCriarOcorrenciaRejectsTipoInvalido(t *testing.T) {
	svc := newRegistroSvc(existingSubject(1), &fakeTransferenciaRepo{}, &fakeOcorrenciaRepo{}, &fakeSaudeRepo{}, &fakeVisitaRepo{})

	_, err := svc.CriarOcorrencia(dto.OcorrenciaRequest{
		IDPresidiario:  1,
		Tipo:           "Elogio",
		Descricao:      "x",
		DataOcorrencia: "2024-03-10",
	}, dto.AuthResponse{}, "")
	assert.Error(t, err)
}

func TestCriarTransferenciaRequiresDate(t *testing.T) {
	svc := newRegistroSvc(existingSubject(1), &fakeTransferenciaRepo{}, &fakeOcorrenciaRepo{}, &fakeSaudeRepo{}, &fakeVisitaRepo{})

	_, err := svc.CriarTransferencia(dto.TransferenciaRequest{
		IDPresidiario:  1,
		UnidadeDestino: "CRPP III",
	}, dto.AuthResponse{}, "")
	assert.Error(t, err)
}

func TestCriarSaude(t *testing.T) {
	saude := &fakeSaudeRepo{}
	svc := newRegistroSvc(existingSubject(1), &fakeTransferenciaRepo{}, &fakeOcorrenciaRepo{}, saude, &fakeVisitaRepo{})

	reg, err := svc.CriarSaude(dto.SaudeRequest{
		IDPresidiario:   1,
		CondicoesSaude:  "hipertensão",
		RiscoSuicidio:   true,
		DataAtualizacao: "2024-05-01",
	}, dto.AuthResponse{UserID: "u1"}, "")
	require.NoError(t, err)

	assert.True(t, reg.RiscoSuicidio)
	require.NotNil(t, reg.CondicoesSaude)
	assert.Equal(t, "hipertensão", *reg.CondicoesSaude)
}

func TestCriarVisitaRequiresNome(t *testing.T) {
	svc := newRegistroSvc(existingSubject(1), &fakeTransferenciaRepo{}, &fakeOcorrenciaRepo{}, &fakeSaudeRepo{}, &fakeVisitaRepo{})

	_, err := svc.CriarVisita(dto.VisitaRequest{
		IDPresidiario: 1,
		DataVisita:    "2024-05-01",
	}, dto.AuthResponse{}, "")
	assert.Error(t, err)
}
