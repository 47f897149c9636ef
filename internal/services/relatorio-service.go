package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
)

// Report types accepted by Gerar.
const (
	RelatorioTodos   = "todos"
	RelatorioRegime  = "regime"
	RelatorioAla     = "ala"
	RelatorioSoltura = "soltura"
)

var ErrRelatorioVazio = errors.New("nenhum dado encontrado para o relatório selecionado")

type RelatorioService interface {
	Gerar(tipo string, actor dto.AuthResponse, ip string) (*dto.Relatorio, error)
}

type relatorioService struct {
	presidiarios repository.PresidiarioRepository
	audit        *AuditTrail
	now          func() time.Time
}

func NewRelatorioService(presidiarios repository.PresidiarioRepository, audit *AuditTrail) RelatorioService {
	return &relatorioService{
		presidiarios: presidiarios,
		audit:        audit,
		now:          time.Now,
	}
}

func (s *relatorioService) Gerar(tipo string, actor dto.AuthResponse, ip string) (*dto.Relatorio, error) {
	var (
		titulo string
		rows   []domain.Presidiario
		err    error
	)

	switch tipo {
	case RelatorioTodos:
		titulo = "Relatório Geral de Presidiários"
		rows, err = s.presidiarios.ListOrdenado("nome_completo")
	case RelatorioRegime:
		titulo = "Relatório por Regime"
		rows, err = s.presidiarios.ListOrdenado("regime")
	case RelatorioAla:
		titulo = "Relatório por Ala"
		rows, err = s.presidiarios.ListOrdenado("ala")
	case RelatorioSoltura:
		titulo = "Relatório de Solturas Previstas"
		rows, err = s.presidiarios.ListComSolturaPrevista()
	default:
		return nil, errors.New("invalid report type")
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRelatorioVazio
	}

	var header []string
	var record func(p *domain.Presidiario) []string

	switch tipo {
	case RelatorioRegime:
		header = []string{"regime", "nome_completo", "crime", "data_prisao", "data_prevista_soltura"}
		record = func(p *domain.Presidiario) []string {
			return []string{
				deref(p.Regime), p.NomeCompleto, strings.Join(p.Crime, "; "),
				fmtDate(p.DataPrisao), fmtDate(p.DataPrevistaSoltura),
			}
		}
	case RelatorioAla:
		header = []string{"ala", "cela", "nome_completo", "regime", "situacao"}
		record = func(p *domain.Presidiario) []string {
			return []string{
				deref(p.Ala), deref(p.Cela), p.NomeCompleto,
				deref(p.Regime), deref(p.Situacao),
			}
		}
	default:
		header = []string{
			"id_presidiario", "nome_completo", "apelido", "cpf",
			"processo_numero", "crime", "regime", "situacao",
			"data_prisao", "data_prevista_soltura", "ala", "cela",
		}
		record = func(p *domain.Presidiario) []string {
			return []string{
				fmt.Sprintf("%d", p.IDPresidiario), p.NomeCompleto,
				deref(p.Apelido), deref(p.CPF),
				strings.Join(p.ProcessoNumero, "; "), strings.Join(p.Crime, "; "),
				deref(p.Regime), deref(p.Situacao),
				fmtDate(p.DataPrisao), fmtDate(p.DataPrevistaSoltura),
				deref(p.Ala), deref(p.Cela),
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range rows {
		if err := w.Write(record(&rows[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.audit.Record(actor.UserID, "Geração de relatório", ip, map[string]interface{}{
		"tipo":      tipo,
		"registros": len(rows),
	})

	return &dto.Relatorio{
		Titulo:   titulo,
		Filename: fmt.Sprintf("relatorio-%s-%s.csv", tipo, s.now().Format("2006-01-02")),
		CSV:      buf.Bytes(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
