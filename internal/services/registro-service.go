package services

import (
	"errors"
	"strings"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
)

// RegistroService handles the four history tables attached to a presidiario.
// Every create checks that the subject exists before inserting.
type RegistroService interface {
	CriarTransferencia(input dto.TransferenciaRequest, actor dto.AuthResponse, ip string) (*domain.Transferencia, error)
	ListTransferencias() ([]domain.Transferencia, error)
	CriarOcorrencia(input dto.OcorrenciaRequest, actor dto.AuthResponse, ip string) (*domain.Ocorrencia, error)
	ListOcorrencias() ([]domain.Ocorrencia, error)
	CriarSaude(input dto.SaudeRequest, actor dto.AuthResponse, ip string) (*domain.SaudePsicologia, error)
	ListSaude() ([]domain.SaudePsicologia, error)
	CriarVisita(input dto.VisitaRequest, actor dto.AuthResponse, ip string) (*domain.Visita, error)
	ListVisitas() ([]domain.Visita, error)
}

type registroService struct {
	presidiarios   repository.PresidiarioRepository
	transferencias repository.TransferenciaRepository
	ocorrencias    repository.OcorrenciaRepository
	saude          repository.SaudeRepository
	visitas        repository.VisitaRepository
	audit          *AuditTrail
}

func NewRegistroService(
	presidiarios repository.PresidiarioRepository,
	transferencias repository.TransferenciaRepository,
	ocorrencias repository.OcorrenciaRepository,
	saude repository.SaudeRepository,
	visitas repository.VisitaRepository,
	audit *AuditTrail,
) RegistroService {
	return &registroService{
		presidiarios:   presidiarios,
		transferencias: transferencias,
		ocorrencias:    ocorrencias,
		saude:          saude,
		visitas:        visitas,
		audit:          audit,
	}
}

// subjectExists surfaces repository.ErrNotFound when the FK target is gone so
// handlers can answer 404 instead of a bare insert failure.
func (s *registroService) subjectExists(id uint) error {
	_, err := s.presidiarios.FindByID(id)
	return err
}

func (s *registroService) CriarTransferencia(input dto.TransferenciaRequest, actor dto.AuthResponse, ip string) (*domain.Transferencia, error) {
	if err := s.subjectExists(input.IDPresidiario); err != nil {
		return nil, err
	}
	data, err := dateValue(input.DataTransferencia)
	if err != nil {
		return nil, err
	}

	t := &domain.Transferencia{
		IDPresidiario:     &input.IDPresidiario,
		UnidadeOrigem:     strPtr(input.UnidadeOrigem),
		UnidadeDestino:    strPtr(input.UnidadeDestino),
		Motivo:            strPtr(input.Motivo),
		Responsavel:       strPtr(actor.Email),
		DataTransferencia: data,
	}
	if err := s.transferencias.Create(t); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Registro de transferência", ip, map[string]interface{}{
		"id_presidiario": input.IDPresidiario,
	})
	return t, nil
}

func (s *registroService) ListTransferencias() ([]domain.Transferencia, error) {
	return s.transferencias.ListRecentes()
}

func (s *registroService) CriarOcorrencia(input dto.OcorrenciaRequest, actor dto.AuthResponse, ip string) (*domain.Ocorrencia, error) {
	if err := s.subjectExists(input.IDPresidiario); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Descricao) == "" {
		return nil, errors.New("descricao is required")
	}
	if input.Tipo != "" && !validTipoOcorrencia(input.Tipo) {
		return nil, errors.New("invalid tipo de ocorrencia")
	}
	data, err := dateValue(input.DataOcorrencia)
	if err != nil {
		return nil, err
	}

	o := &domain.Ocorrencia{
		IDPresidiario:  &input.IDPresidiario,
		Tipo:           strPtr(input.Tipo),
		Descricao:      strings.TrimSpace(input.Descricao),
		DataOcorrencia: data,
	}
	if actor.UserID != "" {
		o.RegistradoPor = &actor.UserID
	}
	if err := s.ocorrencias.Create(o); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Registro de ocorrência", ip, map[string]interface{}{
		"id_presidiario": input.IDPresidiario,
		"tipo":           input.Tipo,
	})
	return o, nil
}

func (s *registroService) ListOcorrencias() ([]domain.Ocorrencia, error) {
	return s.ocorrencias.ListRecentes()
}

func (s *registroService) CriarSaude(input dto.SaudeRequest, actor dto.AuthResponse, ip string) (*domain.SaudePsicologia, error) {
	if err := s.subjectExists(input.IDPresidiario); err != nil {
		return nil, err
	}
	data, err := dateValue(input.DataAtualizacao)
	if err != nil {
		return nil, err
	}

	reg := &domain.SaudePsicologia{
		IDPresidiario:          &input.IDPresidiario,
		CondicoesSaude:         strPtr(input.CondicoesSaude),
		Medicamentos:           strPtr(input.Medicamentos),
		AvaliacoesPsicologicas: strPtr(input.AvaliacoesPsicologicas),
		Observacoes:            strPtr(input.Observacoes),
		RiscoSuicidio:          input.RiscoSuicidio,
		DataAtualizacao:        data,
	}
	if actor.UserID != "" {
		reg.AtualizadoPor = &actor.UserID
	}
	if err := s.saude.Create(reg); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Registro de saúde", ip, map[string]interface{}{
		"id_presidiario": input.IDPresidiario,
		"risco_suicidio": input.RiscoSuicidio,
	})
	return reg, nil
}

func (s *registroService) ListSaude() ([]domain.SaudePsicologia, error) {
	return s.saude.ListRecentes()
}

func (s *registroService) CriarVisita(input dto.VisitaRequest, actor dto.AuthResponse, ip string) (*domain.Visita, error) {
	if err := s.subjectExists(input.IDPresidiario); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.NomeVisitante) == "" {
		return nil, errors.New("nome_visitante is required")
	}
	data, err := dateValue(input.DataVisita)
	if err != nil {
		return nil, err
	}

	v := &domain.Visita{
		IDPresidiario:      &input.IDPresidiario,
		NomeVisitante:      strings.TrimSpace(input.NomeVisitante),
		Parentesco:         strPtr(input.Parentesco),
		DocumentoVisitante: strPtr(input.DocumentoVisitante),
		Observacoes:        strPtr(input.Observacoes),
		DataVisita:         data,
	}
	if actor.UserID != "" {
		v.RegistradoPor = &actor.UserID
	}
	if err := s.visitas.Create(v); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Registro de visita", ip, map[string]interface{}{
		"id_presidiario": input.IDPresidiario,
	})
	return v, nil
}

func (s *registroService) ListVisitas() ([]domain.Visita, error) {
	return s.visitas.ListRecentes()
}

func validTipoOcorrencia(s string) bool {
	switch s {
	case domain.OcorrenciaAdvertencia, domain.OcorrenciaFuga, domain.OcorrenciaBriga,
		domain.OcorrenciaBoaConduta, domain.OcorrenciaOutros:
		return true
	}
	return false
}
