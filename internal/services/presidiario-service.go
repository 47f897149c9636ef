package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/interfaces"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/bepp-pmpa/sigpen-backend/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	fotoMaxWidth = 1200
	fotoQuality  = 85
	fotoFolder   = "sigpen/presidiarios"
)

type PresidiarioService interface {
	Cadastrar(input dto.PresidiarioRequest, actor dto.AuthResponse, ip string) (*domain.Presidiario, error)
	Atualizar(id uint, input dto.PresidiarioRequest, actor dto.AuthResponse, ip string) (*domain.Presidiario, error)
	ListRecentes() ([]domain.Presidiario, error)
	Buscar(term string) ([]domain.Presidiario, error)
	Ficha(ctx context.Context, id uint) (*dto.FichaResponse, error)
	AtualizarFoto(ctx context.Context, id uint, raw []byte, actor dto.AuthResponse, ip string) (string, error)
}

type presidiarioService struct {
	repo           repository.PresidiarioRepository
	transferencias repository.TransferenciaRepository
	ocorrencias    repository.OcorrenciaRepository
	saude          repository.SaudeRepository
	visitas        repository.VisitaRepository
	uploader       interfaces.Uploader
	audit          *AuditTrail
}

func NewPresidiarioService(
	repo repository.PresidiarioRepository,
	transferencias repository.TransferenciaRepository,
	ocorrencias repository.OcorrenciaRepository,
	saude repository.SaudeRepository,
	visitas repository.VisitaRepository,
	uploader interfaces.Uploader,
	audit *AuditTrail,
) PresidiarioService {
	return &presidiarioService{
		repo:           repo,
		transferencias: transferencias,
		ocorrencias:    ocorrencias,
		saude:          saude,
		visitas:        visitas,
		uploader:       uploader,
		audit:          audit,
	}
}

func (s *presidiarioService) Cadastrar(input dto.PresidiarioRequest, actor dto.AuthResponse, ip string) (*domain.Presidiario, error) {
	p := &domain.Presidiario{}
	if err := applyPresidiarioRequest(p, input); err != nil {
		return nil, err
	}
	if actor.UserID != "" {
		p.CadastradoPor = &actor.UserID
	}

	created, err := s.repo.Create(p)
	if err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Cadastro de presidiário", ip, map[string]interface{}{
		"id_presidiario": created.IDPresidiario,
		"nome_completo":  created.NomeCompleto,
	})
	return created, nil
}

func (s *presidiarioService) Atualizar(id uint, input dto.PresidiarioRequest, actor dto.AuthResponse, ip string) (*domain.Presidiario, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := applyPresidiarioRequest(p, input); err != nil {
		return nil, err
	}
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Atualização de presidiário", ip, map[string]interface{}{
		"id_presidiario": p.IDPresidiario,
	})
	return p, nil
}

func (s *presidiarioService) ListRecentes() ([]domain.Presidiario, error) {
	return s.repo.ListRecentes()
}

func (s *presidiarioService) Buscar(term string) ([]domain.Presidiario, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.ListRecentes()
	}
	return s.repo.Search(term)
}

// Ficha builds the consolidated detail view. The subject lookup decides the
// outcome; the four histories are fetched concurrently and independently, and
// a history that fails to load comes back empty instead of failing the ficha.
func (s *presidiarioService) Ficha(ctx context.Context, id uint) (*dto.FichaResponse, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	ficha := &dto.FichaResponse{
		Presidiario:    p,
		Transferencias: []domain.Transferencia{},
		Ocorrencias:    []domain.Ocorrencia{},
		Saude:          []domain.SaudePsicologia{},
		Visitas:        []domain.Visita{},
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.transferencias.ListByPresidiario(id)
		if err != nil {
			log.Printf("ficha %d: transferencias fetch failed: %v", id, err)
			return nil
		}
		if out != nil {
			ficha.Transferencias = out
		}
		return nil
	})
	g.Go(func() error {
		out, err := s.ocorrencias.ListByPresidiario(id)
		if err != nil {
			log.Printf("ficha %d: ocorrencias fetch failed: %v", id, err)
			return nil
		}
		if out != nil {
			ficha.Ocorrencias = out
		}
		return nil
	})
	g.Go(func() error {
		out, err := s.saude.ListByPresidiario(id)
		if err != nil {
			log.Printf("ficha %d: saude fetch failed: %v", id, err)
			return nil
		}
		if out != nil {
			ficha.Saude = out
		}
		return nil
	})
	g.Go(func() error {
		out, err := s.visitas.ListByPresidiario(id)
		if err != nil {
			log.Printf("ficha %d: visitas fetch failed: %v", id, err)
			return nil
		}
		if out != nil {
			ficha.Visitas = out
		}
		return nil
	})
	g.Wait()

	return ficha, nil
}

func (s *presidiarioService) AtualizarFoto(ctx context.Context, id uint, raw []byte, actor dto.AuthResponse, ip string) (string, error) {
	if s.uploader == nil {
		return "", errors.New("image upload is not configured")
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}

	normalized, err := utils.NormalizeFoto(raw, fotoMaxWidth, fotoQuality)
	if err != nil {
		return "", err
	}

	url, err := s.uploader.UploadBytes(ctx, fotoFolder, fmt.Sprintf("presidiario-%d", id), normalized)
	if err != nil {
		log.Printf("foto upload for presidiario %d failed: %v", id, err)
		return "", errors.New("failed to upload foto")
	}

	p.FotoURL = &url
	if err := s.repo.Save(p); err != nil {
		return "", err
	}

	s.audit.Record(actor.UserID, "Atualização de foto", ip, map[string]interface{}{
		"id_presidiario": id,
	})
	return url, nil
}

func applyPresidiarioRequest(p *domain.Presidiario, input dto.PresidiarioRequest) error {
	nome := strings.TrimSpace(input.NomeCompleto)
	if nome == "" {
		return errors.New("nome_completo is required")
	}
	if input.Regime != "" && !validRegime(input.Regime) {
		return errors.New("invalid regime")
	}
	if input.Situacao != "" && !validSituacao(input.Situacao) {
		return errors.New("invalid situacao")
	}

	dataNascimento, err := datePtr(input.DataNascimento)
	if err != nil {
		return err
	}
	dataPrisao, err := datePtr(input.DataPrisao)
	if err != nil {
		return err
	}
	dataSoltura, err := datePtr(input.DataPrevistaSoltura)
	if err != nil {
		return err
	}

	p.NomeCompleto = nome
	p.Apelido = strPtr(input.Apelido)
	p.CPF = strPtr(input.CPF)
	p.RG = strPtr(input.RG)
	p.DataNascimento = dataNascimento
	p.Naturalidade = strPtr(input.Naturalidade)
	p.EstadoCivil = strPtr(input.EstadoCivil)
	p.FiliacaoPai = strPtr(input.FiliacaoPai)
	p.FiliacaoMae = strPtr(input.FiliacaoMae)
	p.Religiao = strPtr(input.Religiao)
	p.ProcessoNumero = cleanList(input.ProcessoNumero)
	p.Crime = cleanList(input.Crime)
	p.PenaTotal = strPtr(input.PenaTotal)
	p.DataPrisao = dataPrisao
	p.DataPrevistaSoltura = dataSoltura
	p.Regime = strPtr(input.Regime)
	p.Situacao = strPtr(input.Situacao)
	p.VaraResponsavel = strPtr(input.VaraResponsavel)
	p.JuizResponsavel = strPtr(input.JuizResponsavel)
	p.UnidadeOrigem = strPtr(input.UnidadeOrigem)
	p.Ala = strPtr(input.Ala)
	p.Cela = strPtr(input.Cela)
	p.Observacoes = strPtr(input.Observacoes)
	return nil
}

func validRegime(s string) bool {
	switch s {
	case domain.RegimeFechado, domain.RegimeSemiaberto, domain.RegimeAberto:
		return true
	}
	return false
}

func validSituacao(s string) bool {
	switch s {
	case domain.SituacaoProvisorio, domain.SituacaoCondenado, domain.SituacaoEmJulgamento:
		return true
	}
	return false
}
